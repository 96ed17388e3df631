package types

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched with errors.Is against the typed errors below.
var (
	ErrUnknownDimension = errors.New("unknown dimension")
	ErrUnderdetermined  = errors.New("underdetermined system")
	ErrInconsistent     = errors.New("inconsistent system")
	ErrAmbiguousInput   = errors.New("ambiguous input")
	ErrCyclicDependency = errors.New("cyclic dependency")
	ErrInvalidScaling   = errors.New("invalid scaling value")
	ErrUnknownMode      = errors.New("unknown mode")
	ErrMissingValue     = errors.New("missing value")
	ErrNonFinite        = errors.New("non-finite result")
	ErrDomain           = errors.New("argument out of domain")
	ErrConfig           = errors.New("invalid configuration")
)

// UnknownDimensionError an identifier that is not in the dimension table.
type UnknownDimensionError struct {
	ID string
}

func (e *UnknownDimensionError) Error() string {
	return fmt.Sprintf("unknown dimension %q", e.ID)
}

func (e *UnknownDimensionError) Unwrap() error { return ErrUnknownDimension }

// UnderdeterminedSystemError the anchors do not fix every base dimension.
// Dimension is empty when every column is touched but the anchors are linearly dependent.
type UnderdeterminedSystemError struct {
	Dimension string
	Rank      int
}

func (e *UnderdeterminedSystemError) Error() string {
	if e.Dimension != "" {
		return fmt.Sprintf("this set of scalings is incomplete: no finite dimension for %s", e.Dimension)
	}
	if e.Rank < 0 {
		return "this set of scalings is incomplete: anchor exponent matrix is singular"
	}
	return fmt.Sprintf("this set of scalings is incomplete: anchors span only %d of %d base dimensions", e.Rank, NumBase)
}

func (e *UnderdeterminedSystemError) Unwrap() error { return ErrUnderdetermined }

// InconsistentSystemError an over-determined anchor set whose values disagree.
type InconsistentSystemError struct {
	Dimension string  // offending anchor
	Supplied  float64 // value given by the caller
	Derived   float64 // value implied by the other anchors
}

func (e *InconsistentSystemError) Error() string {
	return fmt.Sprintf("inconsistent scalings: %s supplied as %g but the other anchors imply %g",
		e.Dimension, e.Supplied, e.Derived)
}

func (e *InconsistentSystemError) Unwrap() error { return ErrInconsistent }

// InvalidScalingError a scaling value that is not a finite positive number.
type InvalidScalingError struct {
	ID    string
	Value float64
}

func (e *InvalidScalingError) Error() string {
	return fmt.Sprintf("scaling for %q must be finite and positive, got %g", e.ID, e.Value)
}

func (e *InvalidScalingError) Unwrap() error { return ErrInvalidScaling }

// AmbiguousInputError wrong number of knowns for a closed triple.
type AmbiguousInputError struct {
	Present []string // knowns that were supplied
	Want    int      // knowns required
}

func (e *AmbiguousInputError) Error() string {
	present := "none"
	if len(e.Present) > 0 {
		present = strings.Join(e.Present, ", ")
	}
	return fmt.Sprintf("combination of values does not allow auto completion: need exactly %d known, have %d (%s)",
		e.Want, len(e.Present), present)
}

func (e *AmbiguousInputError) Unwrap() error { return ErrAmbiguousInput }

// CyclicDependencyError a formula graph that is not acyclic.
type CyclicDependencyError struct {
	Cycle []string // first element repeated at the end
}

func (e *CyclicDependencyError) Error() string {
	return "cyclic formula dependency: " + strings.Join(e.Cycle, " -> ")
}

func (e *CyclicDependencyError) Unwrap() error { return ErrCyclicDependency }

// UnknownModeError a mode string that is not one of the accepted values.
type UnknownModeError struct {
	Kind     string
	Mode     string
	Accepted []string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("undefined %s mode %q, accepted: %s", e.Kind, e.Mode, strings.Join(e.Accepted, ", "))
}

func (e *UnknownModeError) Unwrap() error { return ErrUnknownMode }

// MissingValueError a formula input with neither an override nor a stored value.
type MissingValueError struct {
	Variable string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("no value for %q: not overridden and not stored", e.Variable)
}

func (e *MissingValueError) Unwrap() error { return ErrMissingValue }

// NonFiniteError a formula produced NaN or Inf.
type NonFiniteError struct {
	Variable string
	Value    float64
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("%s evaluated to %g", e.Variable, e.Value)
}

func (e *NonFiniteError) Unwrap() error { return ErrNonFinite }

// DomainError an argument outside the range a formula accepts.
type DomainError struct {
	Variable string
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Variable, e.Reason)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// ConfigError an evaluator configuration that cannot be used.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return e.Reason }

func (e *ConfigError) Unwrap() error { return ErrConfig }

// Configf builds a ConfigError.
func Configf(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
