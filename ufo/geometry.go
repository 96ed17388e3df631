package ufo

import (
	"fmt"
	"math"

	"outflow/physconst"
	"outflow/quantity"
	"outflow/types"
)

// Geometry shape of the surface the outflow crosses.
type Geometry interface {
	Name() string
	// Inputs geometric inputs besides rufo and angle, reported after rufo.
	Inputs() quantity.Specs
	// Given values of Inputs.
	Given(p Params) map[string]quantity.Given
	// Derived intermediate variables, reported before area.
	Derived() quantity.Specs
	// Formulas computes area and every Derived variable.
	Formulas() map[string]quantity.Formula
}

// ParseGeometry "cone" or "annulus"; empty means cone.
func ParseGeometry(name string) (Geometry, error) {
	switch name {
	case "", "cone":
		return Cone{}, nil
	case "annulus":
		return Annulus{}, nil
	}
	return nil, &types.UnknownModeError{Kind: "geometry", Mode: name, Accepted: []string{"cone", "annulus"}}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// Cone spherical cap of a cone with half-opening angle alpha whose base has radius rufo.
type Cone struct{}

// Name implements Geometry.
func (Cone) Name() string { return "cone" }

// Inputs implements Geometry.
func (Cone) Inputs() quantity.Specs { return nil }

// Given implements Geometry.
func (Cone) Given(Params) map[string]quantity.Given { return nil }

// Derived implements Geometry.
func (Cone) Derived() quantity.Specs { return nil }

// Formulas implements Geometry.
func (Cone) Formulas() map[string]quantity.Formula {
	return map[string]quantity.Formula{
		"area": quantity.Func{In: []string{"rufo", "angle"}, Fn: func(a *quantity.Args) (float64, error) {
			return ConeArea(a.Get("rufo"), radians(a.Get("angle"))), nil
		}},
	}
}

// ConeArea 2π(1−cos α)(r/sin α)², or πr² when α vanishes.
func ConeArea(r, alpha float64) float64 {
	if alpha <= types.ConeAngleEpsilon {
		return math.Pi * r * r
	}
	s := r / math.Sin(alpha)
	return 2 * math.Pi * (1 - math.Cos(alpha)) * s * s
}

// Annulus ring of width wufo around radius rufo in a disc, crossed at angle phi to the disc.
type Annulus struct{}

// Name implements Geometry.
func (Annulus) Name() string { return "annulus" }

// Inputs implements Geometry.
func (Annulus) Inputs() quantity.Specs {
	return quantity.Specs{{ID: "wufo", Dimension: "x", Description: "Ufo width"}}
}

// Given implements Geometry.
func (Annulus) Given(p Params) map[string]quantity.Given {
	return map[string]quantity.Given{"wufo": {Value: p.Width, CGSFactor: physconst.Kiloparsec}}
}

// Derived implements Geometry.
func (Annulus) Derived() quantity.Specs {
	return quantity.Specs{
		{ID: "delta", Dimension: "x", Description: "Width projected onto the disc"},
		{ID: "r1", Dimension: "x", Description: "Inner annulus radius"},
		{ID: "r2", Dimension: "x", Description: "Outer annulus radius"},
	}
}

// Formulas implements Geometry.
func (Annulus) Formulas() map[string]quantity.Formula {
	return map[string]quantity.Formula{
		"delta": quantity.Func{In: []string{"wufo", "angle"}, Fn: func(a *quantity.Args) (float64, error) {
			phi, err := discAngle(a.Get("angle"))
			if err != nil {
				return 0, err
			}
			return a.Get("wufo") / math.Sin(phi), nil
		}},
		"r1": quantity.Func{In: []string{"rufo"}, Uses: []string{"delta"}, Fn: func(a *quantity.Args) (float64, error) {
			r1 := a.Get("rufo") - a.Call("delta")/2
			if r1 < 0 {
				return 0, &types.DomainError{Variable: "r1", Reason: fmt.Sprintf("projected width exceeds the diameter, inner radius %g", r1)}
			}
			return r1, nil
		}},
		"r2": quantity.Func{In: []string{"rufo"}, Uses: []string{"delta"}, Fn: func(a *quantity.Args) (float64, error) {
			return a.Get("rufo") + a.Call("delta")/2, nil
		}},
		"area": quantity.Func{In: []string{"angle"}, Uses: []string{"r1", "r2"}, Fn: func(a *quantity.Args) (float64, error) {
			phi, err := discAngle(a.Get("angle"))
			if err != nil {
				return 0, err
			}
			r1, r2 := a.Call("r1"), a.Call("r2")
			if err := a.Err(); err != nil {
				return 0, err
			}
			return AnnulusArea(r1, r2, phi), nil
		}},
	}
}

// AnnulusArea π(r2²−r1²) sin φ.
func AnnulusArea(r1, r2, phi float64) float64 {
	return math.Pi * (r2*r2 - r1*r1) * math.Sin(phi)
}

// discAngle converts degrees to radians and checks 0° < φ ≤ 90°.
func discAngle(deg float64) (float64, error) {
	if deg <= 0 || deg > 90 {
		return 0, &types.DomainError{Variable: "angle", Reason: fmt.Sprintf("angle with the disc must lie in (0, 90] degrees, got %g", deg)}
	}
	return radians(deg), nil
}
