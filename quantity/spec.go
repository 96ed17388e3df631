// Package quantity evaluator for named physical quantities stored in code units.
//
// Every variable has a dimension from the norm registry. Given variables are
// ingested once from physical units; the others are computed by formulas that
// read their inputs from the store unless the caller overrides them.
package quantity

// Spec a variable: its name, the dimension it is measured in and a description.
type Spec struct {
	ID          string // variable name
	Dimension   string // dimension ID in the norm registry
	Description string
}

// Specs variables in report order.
type Specs []Spec

// Lookup finds a variable by name.
func (s Specs) Lookup(id string) (Spec, bool) {
	for _, spec := range s {
		if spec.ID == id {
			return spec, true
		}
	}
	return Spec{}, false
}

// IDs variable names in order.
func (s Specs) IDs() []string {
	out := make([]string, len(s))
	for i, spec := range s {
		out[i] = spec.ID
	}
	return out
}

// Given an input in physical units. The code-unit value is
// Value * CGSFactor / scaling(dimension); a zero CGSFactor means 1.
type Given struct {
	Value     float64
	CGSFactor float64
}
