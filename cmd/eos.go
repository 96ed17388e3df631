package main

import (
	"fmt"
	"strconv"

	"outflow/eos"
	"outflow/quantity"
	"outflow/report"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

func newEosCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eos [V1 V2]",
		Short: "Complete the ideal-gas density, pressure and temperature triple (CGS)",
		Long: heredoc.Doc(`
			Give exactly two of --dens, --pres and --temp and the third is computed
			from p = rho T k_B / (mu m_u). All values are CGS.

			With --mode the two known values are passed as arguments instead, in the
			order of the mode name: dens_pres, dens_temp or pres_temp.
		`),
		Example: heredoc.Doc(`
			ufo eos --dens 1e-24 --temp 1e7
			ufo eos --mode pres_temp 1e-9 1e7
		`),
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp := eos.Composition{Mu: a.v.GetFloat64("mu")}
			if mode := a.v.GetString("mode"); mode != "" {
				return a.eosMode(cmd, comp, mode, args)
			}
			if len(args) > 0 {
				return fmt.Errorf("arguments need --mode")
			}
			var opts []eos.Option
			if a.v.IsSet("dens") {
				opts = append(opts, eos.WithDens(a.v.GetFloat64("dens")))
			}
			if a.v.IsSet("pres") {
				opts = append(opts, eos.WithPres(a.v.GetFloat64("pres")))
			}
			if a.v.IsSet("temp") {
				opts = append(opts, eos.WithTemp(a.v.GetFloat64("temp")))
			}
			e := eos.NewIdeal(comp, opts...)
			if _, err := e.AutoEOS(); err != nil {
				return err
			}
			dens, _ := e.Dens()
			pres, _ := e.Pres()
			temp, _ := e.Temp()
			return report.Values(cmd.OutOrStdout(), quantity.Report{
				{ID: "dens", Value: dens},
				{ID: "pres", Value: pres},
				{ID: "temp", Value: temp},
			})
		},
	}
	cmd.Flags().Float64("dens", 0, "Mass density (g/cm^3)")
	cmd.Flags().Float64("pres", 0, "Pressure (dyn/cm^2)")
	cmd.Flags().Float64("temp", 0, "Temperature (K)")
	cmd.Flags().Float64("mu", eos.IonizedISM().Mu, "Mean particle mass (amu)")
	cmd.Flags().String("mode", "", "Take the two known values as arguments: dens_pres, dens_temp or pres_temp")
	return cmd
}

func (a *app) eosMode(cmd *cobra.Command, comp eos.Composition, name string, args []string) error {
	mode, err := eos.ParseMode(name)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("mode %s needs two values, got %d", mode, len(args))
	}
	var v [2]float64
	for i, s := range args {
		if v[i], err = strconv.ParseFloat(s, 64); err != nil {
			return fmt.Errorf("value %q: %w", s, err)
		}
	}
	out, err := eos.NewIdeal(comp).Eos(v[0], v[1], mode)
	if err != nil {
		return err
	}
	id := map[eos.Mode]string{eos.DensPres: "temp", eos.DensTemp: "pres", eos.PresTemp: "dens"}[mode]
	return report.Values(cmd.OutOrStdout(), quantity.Report{{ID: id, Value: out}})
}
