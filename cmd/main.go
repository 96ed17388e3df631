package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"outflow/ufo"

	"github.com/MakeNowJust/heredoc"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefix of the environment variables that set flags, e.g. UFO_SPEED for --speed.
const EnvPrefix = "UFO"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// app state shared by the subcommands of one invocation
type app struct {
	v   *viper.Viper
	log *logrus.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}
	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "ufo",
		Short: "Derive the state of an ultra-fast outflow in code units and CGS",
		Long: heredoc.Doc(`
			Derive pressure, density, temperature, Mach numbers and fluxes of an
			ultra-fast outflow from its power, speed, mass outflow rate and launch
			geometry.

			Values are reported in code units, defined by a set of anchor scalings,
			and in CGS. Every flag can also be set through an environment variable
			named UFO_<FLAG>, e.g. UFO_SPEED=0.05 or UFO_DENS_AMBIENT=2.
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			level, err := logrus.ParseLevel(a.v.GetString("log-level"))
			if err != nil {
				return err
			}
			a.log.SetOutput(cmd.ErrOrStderr())
			a.log.SetLevel(level)
			return nil
		},
	}
	cmd.PersistentFlags().String("log-level", logrus.WarnLevel.String(), "Log level: trace, debug, info, warn, error")

	cmd.AddCommand(
		newSolveCommand(a),
		newScalingsCommand(a),
		newDeckCommand(a),
		newEosCommand(a),
		newSweepCommand(a),
	)
	return cmd
}

// addParamFlags outflow parameters, defaulting to ufo.DefaultParams.
func addParamFlags(fs *pflag.FlagSet) {
	p := ufo.DefaultParams()
	fs.Float64("power", p.Power, "Outflow power (erg/s)")
	fs.Float64("angle", p.Angle, "Opening angle of the cone, or angle with the disc for an annulus (degrees)")
	fs.Float64("speed", p.Speed, "Outflow speed (c)")
	fs.Float64("mdot", p.Mdot, "Mass outflow rate (Msun/yr)")
	fs.Float64("rufo", p.Radius, "Outflow radius (kpc)")
	fs.Float64("wufo", p.Width, "Annulus width (kpc)")
	fs.Float64("dens-ambient", p.DensAmbient, "Ambient density (mu_ambient amu)")
	fs.Float64("temp-ambient", p.TempAmbient, "Ambient temperature (K)")
	fs.Float64("gamma", p.Gamma, "Adiabatic index")
	fs.Float64("mu-ufo", p.MuUfo, "Mean particle mass of the outflow (amu)")
	fs.Float64("mu-ambient", p.MuAmbient, "Mean particle mass of the ambient gas (amu)")
	fs.String("geometry", p.Geometry, "Launch geometry: cone or annulus")
	addAnchorFlag(fs)
}

func addAnchorFlag(fs *pflag.FlagSet) {
	fs.StringSlice("anchor", nil, "Anchor scaling <dimension>=<cgs value>, repeatable; replaces the default anchors (kpc, kyr, ...)")
}

func (a *app) params() ufo.Params {
	return ufo.Params{
		Power:       a.v.GetFloat64("power"),
		Angle:       a.v.GetFloat64("angle"),
		Speed:       a.v.GetFloat64("speed"),
		Mdot:        a.v.GetFloat64("mdot"),
		Radius:      a.v.GetFloat64("rufo"),
		Width:       a.v.GetFloat64("wufo"),
		DensAmbient: a.v.GetFloat64("dens-ambient"),
		TempAmbient: a.v.GetFloat64("temp-ambient"),
		Gamma:       a.v.GetFloat64("gamma"),
		MuUfo:       a.v.GetFloat64("mu-ufo"),
		MuAmbient:   a.v.GetFloat64("mu-ambient"),
		Geometry:    a.v.GetString("geometry"),
	}
}

// anchors parsed --anchor values; nil when none were given.
func (a *app) anchors() (map[string]float64, error) {
	list := a.v.GetStringSlice("anchor")
	if len(list) == 0 {
		return nil, nil
	}
	anchors := make(map[string]float64, len(list))
	for _, s := range list {
		id, value, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("anchor %q: want <dimension>=<value>", s)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("anchor %q: %w", s, err)
		}
		anchors[strings.TrimSpace(id)] = f
	}
	a.log.WithField("anchors", anchors).Debug("using anchors from flags")
	return anchors, nil
}
