// Package outflow solves for the state of an ultra-fast outflow and reports it in
// code units and CGS.
package outflow

import (
	"fmt"
	"os"

	"outflow/load"
	"outflow/report"
	"outflow/ufo"

	"gonum.org/v1/gonum/floats"
)

// DefaultAnchors kpc, kyr, ionized-gas particle mass and the matching temperature.
func DefaultAnchors() map[string]float64 { return ufo.DefaultAnchors() }

// Solve builds the model for p; nil anchors mean DefaultAnchors.
func Solve(p ufo.Params, anchors map[string]float64, opts ...ufo.Option) (*ufo.Model, error) {
	return ufo.New(p, anchors, opts...)
}

// Load reads a parameter deck from a file.
func Load(filename string) (ufo.Params, map[string]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return ufo.Params{}, nil, err
	}
	defer file.Close()
	p, anchors, err := load.Deck(file)
	if err != nil {
		return p, nil, fmt.Errorf("%s: %w", filename, err)
	}
	return p, anchors, nil
}

// Sweep solves the model once per value of param and records the CGS values of targets.
func Sweep(p ufo.Params, anchors map[string]float64, param string, values []float64, targets []string, opts ...ufo.Option) (*report.Sweep, error) {
	s := report.NewSweep(param, targets)
	for _, v := range values {
		q := p
		if err := ufo.SetParam(&q, param, v); err != nil {
			return nil, err
		}
		m, err := ufo.New(q, anchors, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s=%g: %w", param, v, err)
		}
		if err := s.Add(v, m.CGS()); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Span n evenly spaced values from lo to hi inclusive.
func Span(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("span needs at least 2 points, got %d", n)
	}
	return floats.Span(make([]float64, n), lo, hi), nil
}
