package eos

import (
	"errors"
	"testing"

	"outflow/norm"
	"outflow/physconst"
	"outflow/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codeTable(t *testing.T) *norm.Table {
	t.Helper()
	table, err := norm.Build(map[string]float64{
		"x":    physconst.Kiloparsec,
		"t":    physconst.Kiloyear,
		"dens": 0.6165 * physconst.AtomicMass,
		"temp": (physconst.Kiloparsec / physconst.Kiloyear) * (physconst.Kiloparsec / physconst.Kiloyear) * physconst.AtomicMass / physconst.Boltzmann,
		"curr": 1,
	})
	require.NoError(t, err)
	return table
}

func TestTripleRoundTrip(t *testing.T) {
	e := NewIdeal(IonizedISM())
	dens, temp := 1.0e-24, 1.0e7

	pres := e.PresFromDensTemp(dens, temp)
	assert.InEpsilon(t, dens*temp*physconst.Boltzmann/(0.6165*physconst.AtomicMass), pres, 1e-12)
	assert.InEpsilon(t, dens, e.DensFromPresTemp(pres, temp), 1e-12)
	assert.InEpsilon(t, temp, e.TempFromDensPres(dens, pres), 1e-12)
}

func TestTripleRoundTripCodeUnits(t *testing.T) {
	table := codeTable(t)
	e := NewIdeal(AtomicISM(), WithInput(table), WithOutput(table))
	dens, temp := 2.5, 3.0e-4

	pres := e.PresFromDensTemp(dens, temp)
	assert.InEpsilon(t, dens, e.DensFromPresTemp(pres, temp), 1e-12)
	assert.InEpsilon(t, temp, e.TempFromDensPres(dens, pres), 1e-12)

	// identical physics regardless of units
	cgs := NewIdeal(AtomicISM())
	want := cgs.PresFromDensTemp(dens*table.MustLookup("dens"), temp*table.MustLookup("temp"))
	assert.InEpsilon(t, want, pres*table.MustLookup("pres"), 1e-12)
}

func TestEosModes(t *testing.T) {
	e := NewIdeal(IonizedISM())
	pres, err := e.Eos(1e-24, 1e7, DensTemp)
	require.NoError(t, err)

	testCases := []struct {
		mode   string
		v1, v2 float64
		want   float64
	}{
		{mode: "dens_temp", v1: 1e-24, v2: 1e7, want: pres},
		{mode: "dens_pres", v1: 1e-24, v2: pres, want: 1e7},
		{mode: "pres_temp", v1: pres, v2: 1e7, want: 1e-24},
	}
	for _, tc := range testCases {
		t.Run(tc.mode, func(t *testing.T) {
			mode, err := ParseMode(tc.mode)
			require.NoError(t, err)
			assert.Equal(t, tc.mode, mode.String())
			got, err := e.Eos(tc.v1, tc.v2, mode)
			require.NoError(t, err)
			assert.InEpsilon(t, tc.want, got, 1e-12)
		})
	}

	_, err = ParseMode("temp_entr")
	var unknown *types.UnknownModeError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "temp_entr", unknown.Mode)

	_, err = e.Eos(1, 1, Mode(7))
	assert.ErrorIs(t, err, types.ErrUnknownMode)
}

func TestAutoEOS(t *testing.T) {
	table := codeTable(t)

	e := NewIdeal(IonizedISM(), WithInput(table), WithOutput(table), WithDens(1), WithTemp(2e-4))
	pres, err := e.AutoEOS()
	require.NoError(t, err)
	assert.InEpsilon(t, e.PresFromDensTemp(1, 2e-4), pres, 1e-12)

	dens, ok := e.Dens()
	require.True(t, ok)
	assert.InEpsilon(t, 1.0, dens, 1e-12)
	temp, ok := e.Temp()
	require.True(t, ok)
	assert.InEpsilon(t, 2e-4, temp, 1e-12)
	stored, ok := e.Pres()
	require.True(t, ok)
	assert.Equal(t, pres, stored)

	// complete in the other directions
	d := NewIdeal(IonizedISM(), WithPres(1e-9), WithTemp(1e7))
	got, err := d.AutoEOS()
	require.NoError(t, err)
	assert.InEpsilon(t, DensCGS(1e-9, 1e7, 0.6165), got, 1e-12)

	tp := NewIdeal(IonizedISM(), WithDens(1e-24), WithPres(1e-9))
	got, err = tp.AutoEOS()
	require.NoError(t, err)
	assert.InEpsilon(t, TempCGS(1e-24, 1e-9, 0.6165), got, 1e-12)
}

func TestRelationsFallBackToStoredState(t *testing.T) {
	e := NewIdeal(IonizedISM(), WithDens(1e-24), WithTemp(1e7))

	pres, err := e.PresFrom()
	require.NoError(t, err)
	assert.InEpsilon(t, PresCGS(1e-24, 1e7, 0.6165), pres, 1e-12)

	// an explicit argument wins over the stored one
	pres, err = e.PresFrom(WithTemp(2e7))
	require.NoError(t, err)
	assert.InEpsilon(t, PresCGS(1e-24, 2e7, 0.6165), pres, 1e-12)

	pres, err = e.PresFrom(WithMu(1.21))
	require.NoError(t, err)
	assert.InEpsilon(t, PresCGS(1e-24, 1e7, 1.21), pres, 1e-12)
	assert.Equal(t, 0.6165, e.Composition().Mu)

	dens, err := e.DensFrom(WithPres(1e-9))
	require.NoError(t, err)
	assert.InEpsilon(t, DensCGS(1e-9, 1e7, 0.6165), dens, 1e-12)

	temp, err := e.TempFrom(WithPres(1e-9))
	require.NoError(t, err)
	assert.InEpsilon(t, TempCGS(1e-24, 1e-9, 0.6165), temp, 1e-12)

	_, err = e.DensFrom()
	var missing *types.MissingValueError
	require.True(t, errors.As(err, &missing), "got %v", err)
	assert.Equal(t, "pres", missing.Variable)
	assert.ErrorIs(t, err, types.ErrMissingValue)

	assert.Equal(t, 1.21, NewIdeal(IonizedISM(), WithMu(1.21)).Composition().Mu)
}

func TestRelationsCodeUnits(t *testing.T) {
	table := codeTable(t)
	e := NewIdeal(IonizedISM(), WithInput(table), WithOutput(table), WithDens(1))
	pres, err := e.PresFrom(WithTemp(2e-4))
	require.NoError(t, err)
	assert.InEpsilon(t, e.PresFromDensTemp(1, 2e-4), pres, 1e-12)
}

func TestAutoEOSAmbiguous(t *testing.T) {
	testCases := []struct {
		name string
		opts []Option
		have int
	}{
		{name: "nothing known", opts: nil, have: 0},
		{name: "one known", opts: []Option{WithDens(1)}, have: 1},
		{name: "all known", opts: []Option{WithDens(1), WithPres(1), WithTemp(1)}, have: 3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewIdeal(IonizedISM(), tc.opts...).AutoEOS()
			var ambiguous *types.AmbiguousInputError
			require.True(t, errors.As(err, &ambiguous), "got %v", err)
			assert.Len(t, ambiguous.Present, tc.have)
			assert.ErrorIs(t, err, types.ErrAmbiguousInput)
		})
	}
}
