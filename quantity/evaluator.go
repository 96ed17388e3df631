package quantity

import (
	"fmt"
	"io"
	"math"

	"outflow/graph"
	"outflow/norm"
	"outflow/types"

	"github.com/sirupsen/logrus"
)

// Config everything an Evaluator is built from.
type Config struct {
	Table    *norm.Table        // normalization of the store
	Specs    Specs              // variables in report order
	Given    map[string]Given   // inputs in physical units
	Formulas map[string]Formula // one per non-given variable
	Log      logrus.FieldLogger // optional, discards by default
}

// Evaluator code-unit store plus the formulas that fill it.
type Evaluator struct {
	table    *norm.Table
	specs    Specs
	dims     map[string]string // variable -> dimension
	given    map[string]bool
	formulas map[string]Formula
	order    []string // dependency order over all variables
	values   map[string]float64
	log      logrus.FieldLogger

	revision uint64
	reports  struct {
		revision  uint64
		code, cgs Report
	}
}

// New validates cfg and ingests the given values.
//
// Parameters:
//   - cfg: table, variables, inputs and formulas
//
// Returns:
//   - *types.UnknownDimensionError for a dimension missing from the table
//   - *types.ConfigError for variables without exactly one source
//   - *types.CyclicDependencyError when formulas depend on each other in a loop
func New(cfg Config) (*Evaluator, error) {
	if cfg.Table == nil {
		return nil, types.Configf("no normalization table")
	}
	ev := &Evaluator{
		table:    cfg.Table,
		specs:    append(Specs(nil), cfg.Specs...),
		dims:     make(map[string]string, len(cfg.Specs)),
		given:    make(map[string]bool, len(cfg.Given)),
		formulas: make(map[string]Formula, len(cfg.Formulas)),
		values:   make(map[string]float64, len(cfg.Specs)),
		log:      cfg.Log,
	}
	if ev.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		ev.log = l
	}

	g, err := graph.New(ev.specs.IDs())
	if err != nil {
		return nil, err
	}
	for _, spec := range ev.specs {
		if _, err := cfg.Table.Lookup(spec.Dimension); err != nil {
			return nil, fmt.Errorf("variable %s: %w", spec.ID, err)
		}
		ev.dims[spec.ID] = spec.Dimension
	}

	for id := range cfg.Given {
		if _, ok := ev.dims[id]; !ok {
			return nil, types.Configf("given value for unknown variable %q", id)
		}
		ev.given[id] = true
	}
	for id, f := range cfg.Formulas {
		if _, ok := ev.dims[id]; !ok {
			return nil, types.Configf("formula for unknown variable %q", id)
		}
		if ev.given[id] {
			return nil, types.Configf("variable %q is given and also has a formula", id)
		}
		ev.formulas[id] = f
	}
	for _, spec := range ev.specs {
		id := spec.ID
		if ev.given[id] {
			continue
		}
		f, ok := ev.formulas[id]
		if !ok {
			return nil, types.Configf("variable %q is neither given nor computed", id)
		}
		for _, dep := range append(append([]string(nil), f.Inputs()...), f.Calls()...) {
			if err := g.AddEdge(dep, id); err != nil {
				return nil, err
			}
		}
	}
	if ev.order, err = g.Sort(); err != nil {
		return nil, err
	}

	for id, in := range cfg.Given {
		factor := in.CGSFactor
		if factor == 0 {
			factor = 1
		}
		code, err := cfg.Table.ToCode(ev.dims[id], in.Value*factor)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(code) || math.IsInf(code, 0) {
			return nil, &types.NonFiniteError{Variable: id, Value: code}
		}
		ev.values[id] = code
	}
	ev.revision++
	return ev, nil
}

// Table normalization of the store.
func (ev *Evaluator) Table() *norm.Table { return ev.table }

// Specs variables in report order.
func (ev *Evaluator) Specs() Specs { return append(Specs(nil), ev.specs...) }

// Order variables in evaluation order.
func (ev *Evaluator) Order() []string { return append([]string(nil), ev.order...) }

// Value stored code-unit value of id.
func (ev *Evaluator) Value(id string) (float64, bool) {
	v, ok := ev.values[id]
	return v, ok
}

// Set replaces a given input, in code units. Computed variables keep their values
// until the next update.
func (ev *Evaluator) Set(id string, code float64) error {
	if !ev.given[id] {
		return types.Configf("%q is not a given variable", id)
	}
	if math.IsNaN(code) || math.IsInf(code, 0) {
		return &types.NonFiniteError{Variable: id, Value: code}
	}
	ev.values[id] = code
	ev.revision++
	return nil
}

// Update evaluates id with the stored inputs, except for those in overrides, and
// stores the result. On error the store is not changed.
func (ev *Evaluator) Update(id string, overrides Overrides) (float64, error) {
	if ev.given[id] {
		return 0, types.Configf("%q is a given variable and cannot be updated", id)
	}
	f, ok := ev.formulas[id]
	if !ok {
		return 0, types.Configf("unknown variable %q", id)
	}
	v, err := ev.eval(id, f, overrides, nil, nil)
	if err != nil {
		return 0, err
	}
	ev.values[id] = v
	ev.revision++
	ev.log.WithFields(logrus.Fields{"variable": id, "value": v}).Debug("updated")
	return v, nil
}

// UpdateAll evaluates every computed variable in dependency order. Results are
// stored together once all of them succeeded.
func (ev *Evaluator) UpdateAll() error {
	staged := make(map[string]float64, len(ev.formulas))
	for _, id := range ev.order {
		if ev.given[id] {
			continue
		}
		v, err := ev.eval(id, ev.formulas[id], nil, staged, nil)
		if err != nil {
			return fmt.Errorf("update %s: %w", id, err)
		}
		staged[id] = v
		ev.log.WithFields(logrus.Fields{"variable": id, "value": v}).Debug("evaluated")
	}
	for id, v := range staged {
		ev.values[id] = v
	}
	ev.revision++
	ev.log.WithField("count", len(staged)).Debug("updated all")
	return nil
}

func (ev *Evaluator) eval(id string, f Formula, overrides Overrides, staged map[string]float64, stack []string) (float64, error) {
	a := &Args{
		ev:        ev,
		target:    id,
		overrides: overrides,
		staged:    staged,
		stack:     append(append([]string(nil), stack...), id),
	}
	v, err := f.Eval(a)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &types.NonFiniteError{Variable: id, Value: v}
	}
	return v, nil
}
