package report

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Figure size of SweepSVG.
var (
	PlotWidth  = 6 * vg.Inch
	PlotHeight = 4 * vg.Inch
)

// SweepSVG renders the sweep as a static SVG figure. The y axis is logarithmic
// when every value is positive.
func SweepSVG(w io.Writer, s *Sweep) error {
	if s.Len() == 0 {
		return fmt.Errorf("sweep of %s has no points", s.Param)
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Sweep over %s", s.Param)
	p.X.Label.Text = s.Param
	p.Y.Label.Text = "CGS value"
	p.Legend.Top = true

	positive := true
	lines := make([]any, 0, 2*len(s.Targets))
	for i, id := range s.Targets {
		xys := make(plotter.XYs, s.Len())
		for j := range xys {
			xys[j].X = s.Values[j]
			xys[j].Y = s.Series[i][j]
			if xys[j].Y <= 0 {
				positive = false
			}
		}
		lines = append(lines, id, xys)
	}
	if positive {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return fmt.Errorf("plot sweep: %w", err)
	}
	wt, err := p.WriterTo(PlotWidth, PlotHeight, "svg")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
