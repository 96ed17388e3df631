// Package eos ideal-gas equation of state linking density, pressure and temperature.
//
// An Ideal converts its inputs to CGS with its input table as soon as they are set
// and returns results in units of its output table.
package eos

import (
	"outflow/norm"
	"outflow/physconst"
	"outflow/types"
)

// Composition mean mass per particle in units of the atomic mass unit.
type Composition struct {
	Mu float64
}

// IonizedISM fully ionized interstellar gas.
func IonizedISM() Composition { return Composition{Mu: 0.6165} }

// AtomicISM neutral atomic interstellar gas.
func AtomicISM() Composition { return Composition{Mu: 1.21} }

// PresCGS p = ρ T k_B / (μ m_u).
func PresCGS(dens, temp, mu float64) float64 {
	return dens * temp * physconst.Boltzmann / (mu * physconst.AtomicMass)
}

// DensCGS ρ = μ m_u p / (T k_B).
func DensCGS(pres, temp, mu float64) float64 {
	return mu * physconst.AtomicMass * pres / (temp * physconst.Boltzmann)
}

// TempCGS T = μ m_u p / (ρ k_B).
func TempCGS(dens, pres, mu float64) float64 {
	return mu * physconst.AtomicMass * pres / (dens * physconst.Boltzmann)
}

// Ideal an ideal-gas equation of state with optional stored state.
type Ideal struct {
	comp    Composition
	in, out *norm.Table
	// stored state, CGS; nil when unknown
	dens, pres, temp *float64
}

// state values as given, in input units
type state struct {
	dens, pres, temp, mu *float64
}

// Option configures an Ideal.
type Option func(*Ideal, *state)

// WithInput sets the normalization of inputs (default identity).
func WithInput(t *norm.Table) Option { return func(e *Ideal, _ *state) { e.in = t } }

// WithOutput sets the normalization of results (default identity).
func WithOutput(t *norm.Table) Option { return func(e *Ideal, _ *state) { e.out = t } }

// WithDens stores a density given in input units.
func WithDens(v float64) Option { return func(_ *Ideal, s *state) { s.dens = ptr(v) } }

// WithPres stores a pressure given in input units.
func WithPres(v float64) Option { return func(_ *Ideal, s *state) { s.pres = ptr(v) } }

// WithTemp stores a temperature given in input units.
func WithTemp(v float64) Option { return func(_ *Ideal, s *state) { s.temp = ptr(v) } }

// WithMu overrides the mean particle mass of the composition.
func WithMu(mu float64) Option { return func(_ *Ideal, s *state) { s.mu = ptr(mu) } }

// NewIdeal creates an equation of state. Stored values are converted to CGS here, once.
func NewIdeal(comp Composition, opts ...Option) *Ideal {
	e := &Ideal{comp: comp, in: norm.Identity(), out: norm.Identity()}
	var s state
	for _, opt := range opts {
		opt(e, &s)
	}
	if s.mu != nil {
		e.comp.Mu = *s.mu
	}
	if s.dens != nil {
		e.dens = ptr(*s.dens * e.in.MustLookup("dens"))
	}
	if s.pres != nil {
		e.pres = ptr(*s.pres * e.in.MustLookup("pres"))
	}
	if s.temp != nil {
		e.temp = ptr(*s.temp * e.in.MustLookup("temp"))
	}
	return e
}

// Composition the gas composition.
func (e *Ideal) Composition() Composition { return e.comp }

// PresFromDensTemp pressure (output units) from density and temperature (input units).
func (e *Ideal) PresFromDensTemp(dens, temp float64) float64 {
	d := dens * e.in.MustLookup("dens")
	t := temp * e.in.MustLookup("temp")
	return PresCGS(d, t, e.comp.Mu) / e.out.MustLookup("pres")
}

// DensFromPresTemp density (output units) from pressure and temperature (input units).
func (e *Ideal) DensFromPresTemp(pres, temp float64) float64 {
	p := pres * e.in.MustLookup("pres")
	t := temp * e.in.MustLookup("temp")
	return DensCGS(p, t, e.comp.Mu) / e.out.MustLookup("dens")
}

// TempFromDensPres temperature (output units) from density and pressure (input units).
func (e *Ideal) TempFromDensPres(dens, pres float64) float64 {
	d := dens * e.in.MustLookup("dens")
	p := pres * e.in.MustLookup("pres")
	return TempCGS(d, p, e.comp.Mu) / e.out.MustLookup("temp")
}

// PresFrom pressure in output units from the density and temperature set by opts,
// falling back to the stored state. Options apply to this call only.
func (e *Ideal) PresFrom(opts ...Option) (float64, error) {
	c, s := e.call(opts)
	if s.dens == nil {
		return 0, &types.MissingValueError{Variable: "dens"}
	}
	if s.temp == nil {
		return 0, &types.MissingValueError{Variable: "temp"}
	}
	return PresCGS(*s.dens, *s.temp, *s.mu) / c.out.MustLookup("pres"), nil
}

// DensFrom density in output units from the pressure and temperature set by opts,
// falling back to the stored state. Options apply to this call only.
func (e *Ideal) DensFrom(opts ...Option) (float64, error) {
	c, s := e.call(opts)
	if s.pres == nil {
		return 0, &types.MissingValueError{Variable: "pres"}
	}
	if s.temp == nil {
		return 0, &types.MissingValueError{Variable: "temp"}
	}
	return DensCGS(*s.pres, *s.temp, *s.mu) / c.out.MustLookup("dens"), nil
}

// TempFrom temperature in output units from the density and pressure set by opts,
// falling back to the stored state. Options apply to this call only.
func (e *Ideal) TempFrom(opts ...Option) (float64, error) {
	c, s := e.call(opts)
	if s.dens == nil {
		return 0, &types.MissingValueError{Variable: "dens"}
	}
	if s.pres == nil {
		return 0, &types.MissingValueError{Variable: "pres"}
	}
	return TempCGS(*s.dens, *s.pres, *s.mu) / c.out.MustLookup("temp"), nil
}

// call arguments of one relation, in CGS, on a copy of e
func (e *Ideal) call(opts []Option) (*Ideal, state) {
	c := *e
	var s state
	for _, opt := range opts {
		opt(&c, &s)
	}
	s.dens = c.cgs(s.dens, e.dens, "dens")
	s.pres = c.cgs(s.pres, e.pres, "pres")
	s.temp = c.cgs(s.temp, e.temp, "temp")
	if s.mu == nil {
		s.mu = ptr(c.comp.Mu)
	}
	return &c, s
}

func (e *Ideal) cgs(given, stored *float64, dim string) *float64 {
	if given == nil {
		return stored
	}
	return ptr(*given * e.in.MustLookup(dim))
}

// Dens stored density in output units.
func (e *Ideal) Dens() (float64, bool) { return e.get(e.dens, "dens") }

// Pres stored pressure in output units.
func (e *Ideal) Pres() (float64, bool) { return e.get(e.pres, "pres") }

// Temp stored temperature in output units.
func (e *Ideal) Temp() (float64, bool) { return e.get(e.temp, "temp") }

func (e *Ideal) get(v *float64, dim string) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v / e.out.MustLookup(dim), true
}

// AutoEOS completes the stored triple: exactly two of density, pressure and temperature
// must be known. The missing one is computed and returned in output units; afterwards all
// three are available from Dens, Pres and Temp.
func (e *Ideal) AutoEOS() (float64, error) {
	var present []string
	if e.dens != nil {
		present = append(present, "dens")
	}
	if e.pres != nil {
		present = append(present, "pres")
	}
	if e.temp != nil {
		present = append(present, "temp")
	}
	if len(present) != 2 {
		return 0, &types.AmbiguousInputError{Present: present, Want: 2}
	}
	switch {
	case e.temp == nil:
		e.temp = ptr(TempCGS(*e.dens, *e.pres, e.comp.Mu))
		v, _ := e.Temp()
		return v, nil
	case e.pres == nil:
		e.pres = ptr(PresCGS(*e.dens, *e.temp, e.comp.Mu))
		v, _ := e.Pres()
		return v, nil
	default:
		e.dens = ptr(DensCGS(*e.pres, *e.temp, e.comp.Mu))
		v, _ := e.Dens()
		return v, nil
	}
}

func ptr(v float64) *float64 { return &v }
