package qubo

import "errors"

// Domain errors for QUBO construction.
var (
	// ErrNoBits indicates a fixed-point layout with no representable
	// bits (non-positive total width).
	ErrNoBits = errors.New("qubo: fixed-point layout has no representable bits")
)
