package main

import (
	"fmt"
	"io"
	"os"

	"outflow"
	"outflow/load"
	"outflow/norm"
	"outflow/report"
	"outflow/ufo"

	"github.com/MakeNowJust/heredoc"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSolveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the outflow for the given parameters",
		Long: heredoc.Doc(`
			Solve the outflow and print every variable with its value in code units
			and in CGS.
		`),
		Example: heredoc.Doc(`
			# reference outflow
			ufo solve

			# faster outflow through a ring, in CGS only
			ufo solve --speed 0.1 --geometry annulus --units cgs
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			anchors, err := a.anchors()
			if err != nil {
				return err
			}
			return a.solve(cmd.OutOrStdout(), a.params(), anchors)
		},
	}
	addParamFlags(cmd.Flags())
	addUnitsFlag(cmd)
	return cmd
}

func addUnitsFlag(cmd *cobra.Command) {
	cmd.Flags().String("units", "both", "Units of the printed values: code, cgs or both")
}

func (a *app) solve(w io.Writer, p ufo.Params, anchors map[string]float64) error {
	a.log.WithFields(logrus.Fields{"geometry": p.Geometry, "power": p.Power, "speed": p.Speed}).Info("solving outflow")
	m, err := outflow.Solve(p, anchors, ufo.WithLogger(a.log))
	if err != nil {
		return err
	}
	switch units := a.v.GetString("units"); units {
	case "both":
		return report.Table(w, m.Code(), m.CGS())
	case "code":
		return report.Values(w, m.Code())
	case "cgs":
		return report.Values(w, m.CGS())
	default:
		return fmt.Errorf("unknown units %q, accepted: code, cgs, both", units)
	}
}

func newScalingsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scalings",
		Short: "Print the CGS value of one code unit of every dimension",
		Example: heredoc.Doc(`
			# default anchors
			ufo scalings

			# parsec, year and solar mass
			ufo scalings --anchor x=3.0856775814913673e18 --anchor t=3.15576e7 --anchor m=1.98892e33 --anchor curr=1 --anchor temp=1
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			anchors, err := a.anchors()
			if err != nil {
				return err
			}
			if anchors == nil {
				anchors = outflow.DefaultAnchors()
			}
			table, err := norm.Build(anchors)
			if err != nil {
				return err
			}
			return report.Scalings(cmd.OutOrStdout(), table)
		},
	}
	addAnchorFlag(cmd.Flags())
	return cmd
}

func newDeckCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deck [FILE]",
		Short: "Solve the outflow described by a parameter deck",
		Long: heredoc.Doc(`
			Read a parameter deck from FILE, or from standard input when FILE is
			omitted or "-", and print the solution.

			A deck holds one directive per line:

			  .value <parameter> <value>     e.g. .value speed 0.05
			  .geometry cone|annulus
			  .anchor <dimension> <value>    replaces the default anchors
			  .define <name> <value>         referenced as %name

			Comments start with # or // and /* */ blocks may span lines.
		`),
		Example: heredoc.Doc(`
			printf '.value speed 0.05\n.geometry annulus\n' | ufo deck
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			p, anchors, err := load.Deck(r)
			if err != nil {
				return err
			}
			return a.solve(cmd.OutOrStdout(), p, anchors)
		},
	}
	addUnitsFlag(cmd)
	return cmd
}
