package outflow

import (
	"os"
	"path/filepath"
	"testing"

	"outflow/physconst"
	"outflow/types"
	"outflow/ufo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	p := ufo.DefaultParams()
	m, err := Solve(p, nil)
	require.NoError(t, err)
	r := m.CGS()
	pres, _ := r.Get("pres")
	dens, _ := r.Get("dens")
	temp, _ := r.Get("temp")
	assert.InEpsilon(t, dens*temp*physconst.Boltzmann/(p.MuUfo*physconst.AtomicMass), pres, 1e-9)
	assert.Equal(t, ufo.DefaultAnchors(), DefaultAnchors())
}

func TestSweep(t *testing.T) {
	values, err := Span(0.01, 0.05, 5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.01, 0.02, 0.03, 0.04, 0.05}, values, 1e-15)

	s, err := Sweep(ufo.DefaultParams(), nil, "speed", values, []string{"speed", "pdot"})
	require.NoError(t, err)
	require.Equal(t, 5, s.Len())
	for j, v := range values {
		assert.InEpsilon(t, v*physconst.LightSpeed, s.Series[0][j], 1e-12)
	}
	// pdot = mdot v grows linearly with speed
	assert.InEpsilon(t, 5*s.Series[1][0], s.Series[1][4], 1e-9)

	_, err = Sweep(ufo.DefaultParams(), nil, "colour", values, []string{"pdot"})
	assert.ErrorIs(t, err, types.ErrConfig)

	_, err = Sweep(ufo.DefaultParams(), nil, "speed", []float64{0.01, -1}, []string{"pdot"})
	assert.ErrorIs(t, err, types.ErrDomain)

	_, err = Span(0, 1, 1)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ufo.deck")
	require.NoError(t, os.WriteFile(path, []byte(".value mdot 0.5\n.geometry annulus\n"), 0o644))
	p, anchors, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, p.Mdot)
	assert.Equal(t, "annulus", p.Geometry)
	_, err = Solve(p, anchors)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(".value mdot x\n"), 0o644))
	_, _, err = Load(path)
	assert.ErrorContains(t, err, "line 1")

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.deck"))
	assert.Error(t, err)
}
