// Package ufo parameters of an ultra-fast outflow derived from its power, speed,
// mass outflow rate and launch geometry, in code units and in CGS.
package ufo

import (
	"fmt"

	"outflow/eos"
	"outflow/norm"
	"outflow/physconst"
	"outflow/quantity"

	"github.com/sirupsen/logrus"
)

// Model an evaluated outflow.
type Model struct {
	params Params
	geom   Geometry
	table  *norm.Table
	ev     *quantity.Evaluator
}

type options struct {
	log logrus.FieldLogger
}

// Option configures New.
type Option func(*options)

// WithLogger logs evaluations at debug level.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) { o.log = log }
}

// New builds the normalization from anchors (DefaultAnchors when nil), ingests p
// and evaluates every variable.
func New(p Params, anchors map[string]float64, opts ...Option) (*Model, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	geom, err := ParseGeometry(p.Geometry)
	if err != nil {
		return nil, err
	}
	if anchors == nil {
		anchors = DefaultAnchors()
	}
	table, err := norm.Build(anchors)
	if err != nil {
		return nil, fmt.Errorf("normalization: %w", err)
	}

	eosU := eos.NewIdeal(eos.Composition{Mu: p.MuUfo}, eos.WithInput(table), eos.WithOutput(table))
	eosA := eos.NewIdeal(eos.Composition{Mu: p.MuAmbient}, eos.WithInput(table), eos.WithOutput(table))

	ev, err := quantity.New(quantity.Config{
		Table:    table,
		Specs:    specs(geom),
		Given:    given(p, geom),
		Formulas: formulas(geom, eosU, eosA),
		Log:      o.log,
	})
	if err != nil {
		return nil, err
	}
	m := &Model{params: p, geom: geom, table: table, ev: ev}
	if err := m.UpdateAll(); err != nil {
		return nil, err
	}
	return m, nil
}

// specs variables in report order.
func specs(g Geometry) quantity.Specs {
	s := quantity.Specs{
		{ID: "power", Dimension: "epwr", Description: "Ufo power"},
		{ID: "angle", Dimension: "none", Description: "Polar angle of ufo"},
		{ID: "speed", Dimension: "v", Description: "Ufo speed"},
		{ID: "mdot", Dimension: "mdot", Description: "Ufo mass outflow rate"},
		{ID: "rufo", Dimension: "x", Description: "Ufo radius"},
	}
	s = append(s, g.Inputs()...)
	s = append(s,
		quantity.Spec{ID: "temp_ambient", Dimension: "temp", Description: "Reference temperature of background ISM"},
		quantity.Spec{ID: "dens_ambient", Dimension: "dens", Description: "Reference density of background ISM"},
		quantity.Spec{ID: "gamma", Dimension: "none", Description: "Adiabatic index"},
		quantity.Spec{ID: "pres_ambient", Dimension: "pres", Description: "Reference pressure of background ISM"},
		quantity.Spec{ID: "eint_ambient", Dimension: "eint", Description: "Ambient specific internal energy"},
		quantity.Spec{ID: "vsnd_ambient", Dimension: "v", Description: "Ambient sound speed"},
	)
	s = append(s, g.Derived()...)
	return append(s,
		quantity.Spec{ID: "area", Dimension: "area", Description: "Outflow area"},
		quantity.Spec{ID: "pres", Dimension: "pres", Description: "Ufo pressure"},
		quantity.Spec{ID: "dens", Dimension: "dens", Description: "Ufo density"},
		quantity.Spec{ID: "temp", Dimension: "temp", Description: "Ufo temperature"},
		quantity.Spec{ID: "vsnd", Dimension: "v", Description: "Ufo sound speed"},
		quantity.Spec{ID: "mach_internal", Dimension: "none", Description: "Internal mach number of the ufo wind"},
		quantity.Spec{ID: "mach", Dimension: "none", Description: "Ufo mach number w.r.t. the ambient sound speed"},
		quantity.Spec{ID: "eflx", Dimension: "eflx", Description: "Ufo energy flux"},
		quantity.Spec{ID: "pratio", Dimension: "none", Description: "Pressure ratio (ufo/ISM)"},
		quantity.Spec{ID: "dratio", Dimension: "none", Description: "Density ratio (ufo/ISM)"},
		quantity.Spec{ID: "eint", Dimension: "eint", Description: "Ufo specific internal energy"},
		quantity.Spec{ID: "enth", Dimension: "eint", Description: "Ufo specific enthalpy"},
		quantity.Spec{ID: "pdot", Dimension: "pdot", Description: "Ufo momentum injection rate"},
		quantity.Spec{ID: "pflx", Dimension: "pres", Description: "Ufo momentum flux"},
	)
}

// given inputs with their CGS conversion.
func given(p Params, g Geometry) map[string]quantity.Given {
	in := map[string]quantity.Given{
		"power":        {Value: p.Power},
		"angle":        {Value: p.Angle},
		"speed":        {Value: p.Speed, CGSFactor: physconst.LightSpeed},
		"mdot":         {Value: p.Mdot, CGSFactor: physconst.SolarMassPerYear},
		"rufo":         {Value: p.Radius, CGSFactor: physconst.Kiloparsec},
		"temp_ambient": {Value: p.TempAmbient},
		"dens_ambient": {Value: p.DensAmbient, CGSFactor: p.MuAmbient * physconst.AtomicMass},
		"gamma":        {Value: p.Gamma},
	}
	for id, v := range g.Given(p) {
		in[id] = v
	}
	return in
}

// Params inputs the model was built from.
func (m *Model) Params() Params { return m.params }

// Geometry launch geometry.
func (m *Model) Geometry() Geometry { return m.geom }

// Table normalization in use.
func (m *Model) Table() *norm.Table { return m.table }

// Specs variables in report order.
func (m *Model) Specs() quantity.Specs { return m.ev.Specs() }

// Update recomputes one variable; overrides are in code units.
func (m *Model) Update(id string, overrides quantity.Overrides) (float64, error) {
	return m.ev.Update(id, overrides)
}

// UpdateAll recomputes every derived variable.
func (m *Model) UpdateAll() error { return m.ev.UpdateAll() }

// Value code-unit value of id.
func (m *Model) Value(id string) (float64, bool) { return m.ev.Value(id) }

// Code all values in code units.
func (m *Model) Code() quantity.Report { return m.ev.AsCodeUnits() }

// CGS all values in CGS.
func (m *Model) CGS() quantity.Report { return m.ev.AsCGSUnits() }
