package eos

import (
	"outflow/types"
)

// Mode names the two known variables of the triple.
type Mode int

// Modes accepted by Ideal.Eos.
const (
	DensPres Mode = iota // temperature from density and pressure
	DensTemp             // pressure from density and temperature
	PresTemp             // density from pressure and temperature
)

var modeNames = []string{"dens_pres", "dens_temp", "pres_temp"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode parses "dens_pres", "dens_temp" or "pres_temp".
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if s == name {
			return Mode(i), nil
		}
	}
	return 0, &types.UnknownModeError{Kind: "eos", Mode: s, Accepted: append([]string(nil), modeNames...)}
}

// Eos computes the third variable of the triple from v1 and v2 (input units), ordered
// as in the mode name. The result is in output units.
func (e *Ideal) Eos(v1, v2 float64, mode Mode) (float64, error) {
	switch mode {
	case DensPres:
		return e.TempFromDensPres(v1, v2), nil
	case DensTemp:
		return e.PresFromDensTemp(v1, v2), nil
	case PresTemp:
		return e.DensFromPresTemp(v1, v2), nil
	}
	return 0, &types.UnknownModeError{Kind: "eos", Mode: mode.String(), Accepted: append([]string(nil), modeNames...)}
}
