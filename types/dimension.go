package types

import (
	"fmt"
	"strings"
)

// BaseDimension one of the independent axes of the dimensional system.
type BaseDimension int

// Base dimensions, in exponent-vector order.
const (
	Length      BaseDimension = iota // L
	Mass                             // M
	Time                             // T
	Current                          // A
	Temperature                      // K
)

// NumBase number of base dimensions.
const NumBase = 5

var baseDimensionNames = [NumBase]string{"length", "mass", "time", "current", "temperature"}

// String returns the lower-case name of the base dimension.
func (d BaseDimension) String() string {
	if d < 0 || int(d) >= NumBase {
		return fmt.Sprintf("BaseDimension(%d)", int(d))
	}
	return baseDimensionNames[d]
}

// BaseDimensions lists the base dimensions in exponent-vector order.
func BaseDimensions() []BaseDimension {
	return []BaseDimension{Length, Mass, Time, Current, Temperature}
}

// Exponents powers of (length, mass, time, current, temperature).
type Exponents [NumBase]int

// IsZero reports whether the quantity is dimensionless.
func (e Exponents) IsZero() bool { return e == Exponents{} }

// Float returns the exponents as a float64 slice.
func (e Exponents) Float() []float64 {
	out := make([]float64, NumBase)
	for i, v := range e {
		out[i] = float64(v)
	}
	return out
}

// String formats the exponents as e.g. "L^-1 M T^-2".
func (e Exponents) String() string {
	if e.IsZero() {
		return "1"
	}
	symbols := [NumBase]string{"L", "M", "T", "A", "K"}
	parts := make([]string, 0, NumBase)
	for i, v := range e {
		switch v {
		case 0:
		case 1:
			parts = append(parts, symbols[i])
		default:
			parts = append(parts, fmt.Sprintf("%s^%d", symbols[i], v))
		}
	}
	return strings.Join(parts, " ")
}
