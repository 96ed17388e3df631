// Package physconst physical constants in CGS units.
//
// Fundamental constants are taken from gonum's CODATA values (SI) and converted;
// astronomical lengths, times and masses follow IAU conventions.
package physconst

import "gonum.org/v1/gonum/unit/constant"

// SI to CGS conversion factors.
const (
	ergPerJoule = 1e7
	gramPerKg   = 1e3
	cmPerMetre  = 1e2
)

// Fundamental constants (CGS).
var (
	// erg K^-1
	Boltzmann = float64(constant.Boltzmann) * ergPerJoule

	// g, (1 g/mol) / N_A
	AtomicMass = 1 / float64(constant.Avogadro)

	// cm s^-1
	LightSpeed = float64(constant.LightSpeedInVacuum) * cmPerMetre

	// cm^3 g^-1 s^-2
	Gravitational = float64(constant.Gravitational) * cmPerMetre * cmPerMetre * cmPerMetre / gramPerKg
)

// Astronomical constants (CGS).
const (
	AstronomicalUnit = 1.495978707e13        // cm
	Parsec           = 3.0856775814913673e18 // cm
	Kiloparsec       = 1e3 * Parsec          // cm
	Day              = 86400.0               // s
	Year             = 365.25 * Day          // s, Julian year
	Kiloyear         = 1e3 * Year            // s
	SolarMass        = 1.98892e33            // g
	SolarMassPerYear = SolarMass / Year      // g s^-1
)
