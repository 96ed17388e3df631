// Package report text tables and sweep charts of outflow results.
package report

import (
	"fmt"
	"io"

	"outflow/norm"
	"outflow/quantity"
)

// Table one row per variable: name, code-unit value, CGS value.
func Table(w io.Writer, code, cgs quantity.Report) error {
	for _, e := range code {
		v, ok := cgs.Get(e.ID)
		if !ok {
			return fmt.Errorf("no CGS value for %s", e.ID)
		}
		if _, err := fmt.Fprintf(w, "%-16s%16.8e   %16.8e\n", e.ID, e.Value, v); err != nil {
			return err
		}
	}
	return nil
}

// Values one row per variable: name and value.
func Values(w io.Writer, r quantity.Report) error {
	for _, e := range r {
		if _, err := fmt.Fprintf(w, "%-16s%16.8e\n", e.ID, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// Scalings one row per registered dimension: ID and the CGS value of one code unit.
func Scalings(w io.Writer, t *norm.Table) error {
	for _, e := range t.Entries() {
		if _, err := fmt.Fprintf(w, "%-16s%16.8e\n", e.ID, e.Factor); err != nil {
			return err
		}
	}
	return nil
}
