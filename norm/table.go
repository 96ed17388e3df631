package norm

import (
	"outflow/types"
)

// Table scaling factors (CGS value of one code unit) for every registered dimension.
// Built once by Build and read-only afterwards.
type Table struct {
	anchors []Anchor             // anchors in registry order
	factors map[string]float64   // dimension ID -> scaling
	powers  map[string][]float64 // dimension ID -> powers over anchors
}

// Entry one row of the table.
type Entry struct {
	DimensionSpec
	Factor float64
}

// Lookup returns the scaling factor of a dimension.
func (t *Table) Lookup(id string) (float64, error) {
	f, ok := t.factors[id]
	if !ok {
		return 0, &types.UnknownDimensionError{ID: id}
	}
	return f, nil
}

// MustLookup is Lookup for identifiers that are registry constants.
func (t *Table) MustLookup(id string) float64 {
	f, err := t.Lookup(id)
	if err != nil {
		panic(err)
	}
	return f
}

// Powers returns the exponents of each anchor (in Anchors order) whose product gives
// the scaling of id.
func (t *Table) Powers(id string) ([]float64, error) {
	p, ok := t.powers[id]
	if !ok {
		return nil, &types.UnknownDimensionError{ID: id}
	}
	return append([]float64(nil), p...), nil
}

// Anchors returns the anchors the table was built from.
func (t *Table) Anchors() []Anchor {
	return append([]Anchor(nil), t.anchors...)
}

// Entries lists every dimension with its scaling, in registry order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(dimensions))
	for _, d := range dimensions {
		out = append(out, Entry{DimensionSpec: d, Factor: t.factors[d.ID]})
	}
	return out
}

// ToCode converts a CGS value of dimension id into code units.
func (t *Table) ToCode(id string, cgs float64) (float64, error) {
	f, err := t.Lookup(id)
	if err != nil {
		return 0, err
	}
	return cgs / f, nil
}

// ToCGS converts a code-unit value of dimension id into CGS.
func (t *Table) ToCGS(id string, code float64) (float64, error) {
	f, err := t.Lookup(id)
	if err != nil {
		return 0, err
	}
	return code * f, nil
}
