package ufo

import (
	"fmt"
	"sort"

	"outflow/physconst"
	"outflow/types"
)

// Params outflow inputs in physical units.
type Params struct {
	Power       float64 // erg s^-1
	Angle       float64 // degrees; cone opening angle, or angle with the disc for an annulus
	Speed       float64 // in units of c
	Mdot        float64 // M_sun yr^-1
	Radius      float64 // kpc
	Width       float64 // kpc, annulus only
	DensAmbient float64 // in units of MuAmbient m_u
	TempAmbient float64 // K
	Gamma       float64 // adiabatic index
	MuUfo       float64 // mean mass per particle of the outflow, m_u
	MuAmbient   float64 // mean mass per particle of the ambient gas, m_u
	Geometry    string  // "cone" or "annulus"
}

// DefaultParams the reference outflow.
func DefaultParams() Params {
	return Params{
		Power:       1e44,
		Angle:       30,
		Speed:       0.03,
		Mdot:        0.1,
		Radius:      0.1,
		Width:       0.002,
		DensAmbient: 1.0,
		TempAmbient: 1e7,
		Gamma:       1.6666666666,
		MuUfo:       0.6165,
		MuAmbient:   0.6165,
		Geometry:    "cone",
	}
}

// DefaultAnchors kpc, kyr, the mass of an ionized-gas particle, and the temperature
// whose thermal energy per particle matches (kpc/kyr)^2.
func DefaultAnchors() map[string]float64 {
	v := physconst.Kiloparsec / physconst.Kiloyear
	return map[string]float64{
		"x":    physconst.Kiloparsec,
		"t":    physconst.Kiloyear,
		"dens": 0.6165 * physconst.AtomicMass,
		"temp": v * v * physconst.AtomicMass / physconst.Boltzmann,
		"curr": 1,
	}
}

// Validate rejects parameters the formulas cannot take.
func (p Params) Validate() error {
	if p.Gamma <= 1 {
		return &types.DomainError{Variable: "gamma", Reason: fmt.Sprintf("adiabatic index must exceed 1, got %g", p.Gamma)}
	}
	if p.MuUfo <= 0 || p.MuAmbient <= 0 {
		return &types.DomainError{Variable: "mu", Reason: "mean particle mass must be positive"}
	}
	if p.Speed <= 0 {
		return &types.DomainError{Variable: "speed", Reason: fmt.Sprintf("must be positive, got %g", p.Speed)}
	}
	if p.Radius <= 0 {
		return &types.DomainError{Variable: "rufo", Reason: fmt.Sprintf("must be positive, got %g", p.Radius)}
	}
	if _, err := ParseGeometry(p.Geometry); err != nil {
		return err
	}
	return nil
}

var setters = map[string]func(*Params, float64){
	"power":        func(p *Params, v float64) { p.Power = v },
	"angle":        func(p *Params, v float64) { p.Angle = v },
	"speed":        func(p *Params, v float64) { p.Speed = v },
	"mdot":         func(p *Params, v float64) { p.Mdot = v },
	"rufo":         func(p *Params, v float64) { p.Radius = v },
	"wufo":         func(p *Params, v float64) { p.Width = v },
	"dens_ambient": func(p *Params, v float64) { p.DensAmbient = v },
	"temp_ambient": func(p *Params, v float64) { p.TempAmbient = v },
	"gamma":        func(p *Params, v float64) { p.Gamma = v },
	"mu_ufo":       func(p *Params, v float64) { p.MuUfo = v },
	"mu_ambient":   func(p *Params, v float64) { p.MuAmbient = v },
}

// SetParam sets a parameter by its variable name, e.g. "speed" or "rufo".
func SetParam(p *Params, name string, v float64) error {
	set, ok := setters[name]
	if !ok {
		return types.Configf("unknown parameter %q, accepted: %v", name, ParamNames())
	}
	set(p, v)
	return nil
}

// ParamNames names accepted by SetParam, sorted.
func ParamNames() []string {
	names := make([]string, 0, len(setters))
	for name := range setters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
