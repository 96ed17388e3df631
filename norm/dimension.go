package norm

import (
	"outflow/types"

	"gonum.org/v1/gonum/unit"
)

// DimensionSpec a named physical quantity and its powers of the base dimensions.
type DimensionSpec struct {
	ID          string          // key, e.g. "pres"
	Exponents   types.Exponents // (L, M, T, A, K)
	Description string
}

// Unit returns the exponents as gonum unit dimensions. Zero powers are omitted.
func (d DimensionSpec) Unit() unit.Dimensions {
	gonumDims := [types.NumBase]unit.Dimension{
		unit.LengthDim, unit.MassDim, unit.TimeDim, unit.CurrentDim, unit.TemperatureDim,
	}
	dims := unit.Dimensions{}
	for i, p := range d.Exponents {
		if p != 0 {
			dims[gonumDims[i]] = p
		}
	}
	return dims
}

// dimensions is the fixed registry. Order matters: anchors are stacked in this order
// and tables are listed in it.
var dimensions = []DimensionSpec{
	{"x", types.Exponents{1, 0, 0, 0, 0}, "position or displacement"},
	{"m", types.Exponents{0, 1, 0, 0, 0}, "mass"},
	{"t", types.Exponents{0, 0, 1, 0, 0}, "time"},
	{"curr", types.Exponents{0, 0, 0, 1, 0}, "electric current"},
	{"temp", types.Exponents{0, 0, 0, 0, 1}, "temperature"},
	{"v", types.Exponents{1, 0, -1, 0, 0}, "speed"},
	{"dens", types.Exponents{-3, 1, 0, 0, 0}, "mass density"},
	{"pres", types.Exponents{-1, 1, -2, 0, 0}, "pressure, or energy density"},
	{"pmom", types.Exponents{1, 1, -1, 0, 0}, "linear momentum"},
	{"pdot", types.Exponents{1, 1, -2, 0, 0}, "rate of change of linear momentum"},
	{"pflx", types.Exponents{-1, 1, -2, 0, 0}, "linear momentum flux (pressure)"},
	{"ener", types.Exponents{2, 1, -2, 0, 0}, "energy"},
	{"epwr", types.Exponents{2, 1, -3, 0, 0}, "power or luminosity (energy per unit time)"},
	{"eflx", types.Exponents{0, 1, -3, 0, 0}, "energy flux"},
	{"eint", types.Exponents{2, 0, -2, 0, 0}, "specific (internal) energy, energy per unit mass"},
	{"edot", types.Exponents{2, 0, -3, 0, 0}, "rate of change of specific internal energy density"},
	{"cool", types.Exponents{5, 1, -3, 0, 0}, "rate of change of internal energy per unit density squared"},
	{"mdot", types.Exponents{0, 1, -1, 0, 0}, "mass outflow/accretion/loading/etc rate"},
	{"area", types.Exponents{2, 0, 0, 0, 0}, "area"},
	{"volume", types.Exponents{3, 0, 0, 0, 0}, "volume"},
	{"newton", types.Exponents{3, -1, -2, 0, 0}, "Newtons gravitational constant"},
	{"none", types.Exponents{0, 0, 0, 0, 0}, "dimensionless quantity"},
}

var dimensionIndex = func() map[string]int {
	index := make(map[string]int, len(dimensions))
	for i, d := range dimensions {
		index[d.ID] = i
	}
	return index
}()

// Dimensions returns a copy of the registry in table order.
func Dimensions() []DimensionSpec {
	return append([]DimensionSpec(nil), dimensions...)
}

// Lookup finds a registered dimension.
func Lookup(id string) (DimensionSpec, bool) {
	i, ok := dimensionIndex[id]
	if !ok {
		return DimensionSpec{}, false
	}
	return dimensions[i], true
}

// baseIDs the registry entries for the five base dimensions, in exponent order.
var baseIDs = [types.NumBase]string{"x", "m", "t", "curr", "temp"}
