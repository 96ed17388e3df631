package report

import (
	"fmt"

	"outflow/quantity"
)

// Sweep results of re-solving the model over a range of one parameter.
type Sweep struct {
	Param   string      // swept parameter, e.g. "speed"
	Values  []float64   // parameter values, physical units
	Targets []string    // reported variables
	Series  [][]float64 // Series[i][j]: CGS value of Targets[i] at Values[j]
}

// NewSweep an empty sweep of param recording targets.
func NewSweep(param string, targets []string) *Sweep {
	return &Sweep{
		Param:   param,
		Targets: append([]string(nil), targets...),
		Series:  make([][]float64, len(targets)),
	}
}

// Add records the targets of one solution at parameter value v.
func (s *Sweep) Add(v float64, cgs quantity.Report) error {
	row := make([]float64, len(s.Targets))
	for i, id := range s.Targets {
		x, ok := cgs.Get(id)
		if !ok {
			return fmt.Errorf("sweep %s=%g: no value for %s", s.Param, v, id)
		}
		row[i] = x
	}
	s.Values = append(s.Values, v)
	for i, x := range row {
		s.Series[i] = append(s.Series[i], x)
	}
	return nil
}

// Len number of recorded points.
func (s *Sweep) Len() int { return len(s.Values) }
