// Package norm solves for the scaling factors between code units and CGS units.
//
// A handful of anchor quantities get their scaling directly; the scaling of every other
// registered quantity follows from the dimensional exponents. With M the stacked exponent
// matrix of the anchors (one row per anchor), the powers p_d of quantity d over the anchors
// solve
//
//	Mᵀ·p_d = e_d
//
// and its scaling is Π anchor_i^{p_d,i}.
package norm

import (
	"fmt"
	"math"

	"outflow/types"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Anchor a quantity whose scaling was supplied directly.
type Anchor struct {
	ID    string
	Value float64
}

// Build solves the scaling table for the given anchors.
//
// Parameters:
//
//	anchors - dimension ID to scaling value (CGS per code unit)
//
// Returns:
//
//	the immutable table, or an UnknownDimensionError, InvalidScalingError,
//	UnderdeterminedSystemError or InconsistentSystemError
func Build(anchors map[string]float64) (*Table, error) {
	for id, v := range anchors {
		if _, ok := Lookup(id); !ok {
			return nil, &types.UnknownDimensionError{ID: id}
		}
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, &types.InvalidScalingError{ID: id, Value: v}
		}
	}

	// stack anchors in registry order so the result does not depend on map iteration
	ordered := make([]Anchor, 0, len(anchors))
	for _, d := range dimensions {
		if v, ok := anchors[d.ID]; ok {
			ordered = append(ordered, Anchor{ID: d.ID, Value: v})
		}
	}
	if len(ordered) == 0 {
		return nil, &types.UnderdeterminedSystemError{Dimension: types.Length.String()}
	}

	m := coefficients(ordered)
	if err := checkSpan(m); err != nil {
		return nil, err
	}

	t := &Table{
		anchors: ordered,
		factors: make(map[string]float64, len(dimensions)),
		powers:  make(map[string][]float64, len(dimensions)),
	}
	values := make([]float64, len(ordered))
	for i, a := range ordered {
		values[i] = a.Value
	}
	terms := make([]float64, len(ordered))
	for _, d := range dimensions {
		var p mat.VecDense
		if err := p.SolveVec(m.T(), mat.NewVecDense(types.NumBase, d.Exponents.Float())); err != nil {
			return nil, fmt.Errorf("solve powers of %s: %w", d.ID, &types.UnderdeterminedSystemError{Rank: -1})
		}
		powers := p.RawVector().Data
		for i := range terms {
			terms[i] = math.Pow(values[i], powers[i])
		}
		t.powers[d.ID] = append([]float64(nil), powers...)
		t.factors[d.ID] = floats.Prod(terms)
	}
	// anchors keep the caller's value bit for bit
	for _, a := range ordered {
		t.factors[a.ID] = a.Value
	}
	if err := t.checkConsistency(); err != nil {
		return nil, err
	}
	return t, nil
}

// MustBuild is Build for anchor sets known to be valid.
func MustBuild(anchors map[string]float64) *Table {
	t, err := Build(anchors)
	if err != nil {
		panic(err)
	}
	return t
}

// Identity returns the table in which code units are CGS units.
func Identity() *Table {
	return MustBuild(map[string]float64{"x": 1, "m": 1, "t": 1, "curr": 1, "temp": 1})
}

// coefficients stacks the anchors' exponent vectors into an n×5 matrix.
func coefficients(anchors []Anchor) *mat.Dense {
	m := mat.NewDense(len(anchors), types.NumBase, nil)
	for i, a := range anchors {
		d, _ := Lookup(a.ID)
		m.SetRow(i, d.Exponents.Float())
	}
	return m
}

// checkSpan rejects anchor sets that leave a base dimension free: first column-wise
// (naming the dimension), then by rank.
func checkSpan(m *mat.Dense) error {
	rows, _ := m.Dims()
	col := make([]float64, rows)
	for _, b := range types.BaseDimensions() {
		mat.Col(col, int(b), m)
		if floats.Norm(col, 1) == 0 {
			return &types.UnderdeterminedSystemError{Dimension: b.String()}
		}
	}
	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDNone) {
		return &types.UnderdeterminedSystemError{Rank: -1}
	}
	if rank := svd.Rank(types.RankTolerance); rank < types.NumBase {
		return &types.UnderdeterminedSystemError{Rank: rank}
	}
	return nil
}

// checkConsistency rebuilds every anchor from the base scalings. Exactly determined
// systems always pass; over-determined ones pass only if the anchors agree.
func (t *Table) checkConsistency() error {
	var base [types.NumBase]float64
	for i, id := range baseIDs {
		base[i] = t.factors[id]
	}
	for _, a := range t.anchors {
		d, _ := Lookup(a.ID)
		derived := 1.0
		for i, p := range d.Exponents {
			derived *= math.Pow(base[i], float64(p))
		}
		if math.Abs(derived-a.Value) > types.ConsistencyTolerance*a.Value {
			return &types.InconsistentSystemError{Dimension: a.ID, Supplied: a.Value, Derived: derived}
		}
	}
	return nil
}
