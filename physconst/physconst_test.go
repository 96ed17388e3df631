package physconst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstantsCGS(t *testing.T) {
	assert.InEpsilon(t, 1.380649e-16, Boltzmann, 1e-9)
	assert.InEpsilon(t, 1.66053906660e-24, AtomicMass, 1e-8)
	assert.InEpsilon(t, 2.99792458e10, LightSpeed, 1e-12)
	assert.InEpsilon(t, 6.674e-8, Gravitational, 1e-3)
	assert.InEpsilon(t, 3.0857e21, Kiloparsec, 1e-4)
	assert.InEpsilon(t, 3.15576e10, Kiloyear, 1e-12)
	assert.InEpsilon(t, 6.3e25, SolarMassPerYear, 1e-2)
}
