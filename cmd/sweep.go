package main

import (
	"fmt"

	"outflow"
	"outflow/report"
	"outflow/ufo"

	"github.com/MakeNowJust/heredoc"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSweepCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Chart outflow variables over a range of one parameter",
		Long: heredoc.Doc(`
			Solve the outflow for evenly spaced values of one parameter and write a
			chart of the CGS values of the target variables to standard output, as
			an interactive HTML page or a static SVG figure.
		`),
		Example: heredoc.Doc(`
			ufo sweep --param speed --from 0.01 --to 0.1 --steps 20 --target temp,pratio > sweep.html
			ufo sweep --param mdot --from 0.05 --to 1 --format svg > sweep.svg
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			anchors, err := a.anchors()
			if err != nil {
				return err
			}
			param := a.v.GetString("param")
			values, err := outflow.Span(a.v.GetFloat64("from"), a.v.GetFloat64("to"), a.v.GetInt("steps"))
			if err != nil {
				return err
			}
			targets := a.v.GetStringSlice("target")
			a.log.WithFields(logrus.Fields{"param": param, "points": len(values), "targets": targets}).Info("sweeping")

			s, err := outflow.Sweep(a.params(), anchors, param, values, targets, ufo.WithLogger(a.log))
			if err != nil {
				return err
			}
			switch format := a.v.GetString("format"); format {
			case "html":
				return report.SweepHTML(cmd.OutOrStdout(), s)
			case "svg":
				return report.SweepSVG(cmd.OutOrStdout(), s)
			default:
				return fmt.Errorf("unknown format %q, accepted: html, svg", format)
			}
		},
	}
	addParamFlags(cmd.Flags())
	cmd.Flags().String("param", "speed", "Parameter to vary")
	cmd.Flags().Float64("from", 0.01, "First value of the parameter")
	cmd.Flags().Float64("to", 0.1, "Last value of the parameter")
	cmd.Flags().Int("steps", 10, "Number of values")
	cmd.Flags().StringSlice("target", []string{"temp", "pres"}, "Variables to chart")
	cmd.Flags().String("format", "html", "Chart format: html or svg")
	return cmd
}
