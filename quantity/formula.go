package quantity

import (
	"outflow/types"
)

// Formula computes one variable in code units.
type Formula interface {
	// Inputs variables read with Args.Get.
	Inputs() []string
	// Calls formulas evaluated with Args.Call.
	Calls() []string
	Eval(a *Args) (float64, error)
}

// Func a Formula backed by a plain function.
type Func struct {
	In   []string
	Uses []string
	Fn   func(a *Args) (float64, error)
}

// Inputs implements Formula.
func (f Func) Inputs() []string { return f.In }

// Calls implements Formula.
func (f Func) Calls() []string { return f.Uses }

// Eval implements Formula. An error recorded on a during Fn is returned even if Fn ignored it.
func (f Func) Eval(a *Args) (float64, error) {
	v, err := f.Fn(a)
	if err != nil {
		return 0, err
	}
	if err := a.Err(); err != nil {
		return 0, err
	}
	return v, nil
}

// Overrides code-unit values that replace stored ones for one evaluation.
type Overrides map[string]float64

// Args argument resolution for one formula evaluation.
type Args struct {
	ev        *Evaluator
	target    string
	overrides Overrides
	staged    map[string]float64 // results of the running UpdateAll, not yet stored
	stack     []string           // formulas being evaluated, outermost first
	err       error
}

// Target the variable being computed.
func (a *Args) Target() string { return a.target }

// Err first error met while resolving arguments.
func (a *Args) Err() error { return a.err }

func (a *Args) fail(err error) {
	if a.err == nil {
		a.err = err
	}
}

// Get resolves name: an override wins, then a value computed earlier in the same
// UpdateAll, then the store. A missing value is recorded and 0 returned.
func (a *Args) Get(name string) float64 {
	if v, ok := a.overrides[name]; ok {
		return v
	}
	if v, ok := a.staged[name]; ok {
		return v
	}
	if v, ok := a.ev.values[name]; ok {
		return v
	}
	a.fail(&types.MissingValueError{Variable: name})
	return 0
}

// Call evaluates the formula of name with the same overrides without storing the
// result. An override of name is returned as is.
func (a *Args) Call(name string) float64 {
	if v, ok := a.overrides[name]; ok {
		return v
	}
	for i, s := range a.stack {
		if s == name {
			cycle := append(append([]string(nil), a.stack[i:]...), name)
			a.fail(&types.CyclicDependencyError{Cycle: cycle})
			return 0
		}
	}
	f, ok := a.ev.formulas[name]
	if !ok {
		if v, ok := a.staged[name]; ok {
			return v
		}
		if v, ok := a.ev.values[name]; ok {
			return v
		}
		a.fail(&types.MissingValueError{Variable: name})
		return 0
	}
	v, err := a.ev.eval(name, f, a.overrides, a.staged, a.stack)
	if err != nil {
		a.fail(err)
		return 0
	}
	return v
}
