package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// SweepHTML renders the sweep as an interactive line chart page.
func SweepHTML(w io.Writer, s *Sweep) error {
	if s.Len() == 0 {
		return fmt.Errorf("sweep of %s has no points", s.Param)
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "ufo sweep",
			Theme:     types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Sweep over %s", s.Param),
			Subtitle: "CGS values of the outflow variables",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: s.Param,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "log",
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
	)
	labels := make([]string, s.Len())
	for i, v := range s.Values {
		labels[i] = strconv.FormatFloat(v, 'g', 6, 64)
	}
	line.SetXAxis(labels)
	for i, id := range s.Targets {
		items := make([]opts.LineData, s.Len())
		for j, v := range s.Series[i] {
			items[j] = opts.LineData{Value: v}
		}
		line.AddSeries(id, items)
	}
	return line.Render(w)
}
