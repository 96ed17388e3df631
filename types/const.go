package types

// Default tolerances shared by the solver packages.
var (
	ConsistencyTolerance = 1e-9  // relative mismatch allowed between a supplied anchor and its reconstruction
	RankTolerance        = 1e-10 // relative singular-value cutoff for the anchor exponent matrix
	ConeAngleEpsilon     = 1e-30 // below this half-opening angle (rad) a cone is treated as a cylinder
)
