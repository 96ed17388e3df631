package ufo

import (
	"fmt"
	"math"

	"outflow/eos"
	"outflow/quantity"
	"outflow/types"
)

// formulas the outflow equations in code units, bound to the two equations of state.
func formulas(g Geometry, eosU, eosA *eos.Ideal) map[string]quantity.Formula {
	f := map[string]quantity.Formula{
		"pres_ambient": quantity.Func{In: []string{"dens_ambient", "temp_ambient"}, Fn: func(a *quantity.Args) (float64, error) {
			return eosA.PresFromDensTemp(a.Get("dens_ambient"), a.Get("temp_ambient")), nil
		}},
		"eint_ambient": quantity.Func{In: []string{"dens_ambient", "gamma"}, Uses: []string{"pres_ambient"}, Fn: func(a *quantity.Args) (float64, error) {
			return a.Call("pres_ambient") / (a.Get("dens_ambient") * (a.Get("gamma") - 1)), nil
		}},
		"vsnd_ambient": quantity.Func{In: []string{"dens_ambient", "gamma"}, Uses: []string{"pres_ambient"}, Fn: func(a *quantity.Args) (float64, error) {
			return SoundSpeed(a.Call("pres_ambient"), a.Get("dens_ambient"), a.Get("gamma")), nil
		}},
		"pres": quantity.Func{In: []string{"power", "speed", "mdot", "gamma"}, Uses: []string{"area"}, Fn: func(a *quantity.Args) (float64, error) {
			power, v, mdot, gamma := a.Get("power"), a.Get("speed"), a.Get("mdot"), a.Get("gamma")
			area := a.Call("area")
			if err := a.Err(); err != nil {
				return 0, err
			}
			thermal := power - 0.5*mdot*v*v
			if thermal <= 0 {
				return 0, &types.DomainError{Variable: "pres", Reason: fmt.Sprintf("kinetic power %g exceeds total power %g", 0.5*mdot*v*v, power)}
			}
			return thermal * (gamma - 1) / (gamma * area * v), nil
		}},
		"dens": quantity.Func{In: []string{"speed", "mdot"}, Uses: []string{"area"}, Fn: func(a *quantity.Args) (float64, error) {
			return a.Get("mdot") / (a.Call("area") * a.Get("speed")), nil
		}},
		"temp": quantity.Func{Uses: []string{"dens", "pres"}, Fn: func(a *quantity.Args) (float64, error) {
			return eosU.TempFromDensPres(a.Call("dens"), a.Call("pres")), nil
		}},
		"vsnd": quantity.Func{In: []string{"gamma"}, Uses: []string{"pres", "dens"}, Fn: func(a *quantity.Args) (float64, error) {
			return SoundSpeed(a.Call("pres"), a.Call("dens"), a.Get("gamma")), nil
		}},
		"mach_internal": quantity.Func{In: []string{"speed"}, Uses: []string{"vsnd"}, Fn: func(a *quantity.Args) (float64, error) {
			return a.Get("speed") / a.Call("vsnd"), nil
		}},
		"mach": quantity.Func{In: []string{"speed"}, Uses: []string{"vsnd_ambient"}, Fn: func(a *quantity.Args) (float64, error) {
			return a.Get("speed") / a.Call("vsnd_ambient"), nil
		}},
		"eflx": quantity.Func{In: []string{"power"}, Uses: []string{"area"}, Fn: func(a *quantity.Args) (float64, error) {
			return a.Get("power") / a.Call("area"), nil
		}},
		"pratio": quantity.Func{Uses: []string{"pres", "pres_ambient"}, Fn: func(a *quantity.Args) (float64, error) {
			return a.Call("pres") / a.Call("pres_ambient"), nil
		}},
		"dratio": quantity.Func{In: []string{"dens_ambient"}, Uses: []string{"dens"}, Fn: func(a *quantity.Args) (float64, error) {
			return a.Call("dens") / a.Get("dens_ambient"), nil
		}},
		"eint": quantity.Func{In: []string{"gamma"}, Uses: []string{"pres", "dens"}, Fn: func(a *quantity.Args) (float64, error) {
			return a.Call("pres") / ((a.Get("gamma") - 1) * a.Call("dens")), nil
		}},
		"enth": quantity.Func{Uses: []string{"eint", "pres", "dens"}, Fn: func(a *quantity.Args) (float64, error) {
			return a.Call("eint") + a.Call("pres")/a.Call("dens"), nil
		}},
		"pdot": quantity.Func{In: []string{"speed", "mdot"}, Fn: func(a *quantity.Args) (float64, error) {
			return a.Get("mdot") * a.Get("speed"), nil
		}},
		"pflx": quantity.Func{Uses: []string{"pdot", "area"}, Fn: func(a *quantity.Args) (float64, error) {
			return a.Call("pdot") / a.Call("area"), nil
		}},
	}
	for id, geo := range g.Formulas() {
		f[id] = geo
	}
	return f
}

// SoundSpeed adiabatic sound speed √(γ p / ρ).
func SoundSpeed(pres, dens, gamma float64) float64 {
	return math.Sqrt(gamma * pres / dens)
}
