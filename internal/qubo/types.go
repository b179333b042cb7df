package qubo

import "gonum.org/v1/gonum/mat"

// Sample is one candidate assignment returned by a Sampler.
type Sample struct {
	// Bits holds the binary assignment, one entry per QUBO variable.
	Bits []int
	// Energy is the value of the bilinear form xᵀQx at this assignment.
	// The constant dropped during QUBO construction is not included.
	Energy float64
	// Occurrences counts how many times the engine produced this
	// assignment.
	Occurrences int
}

// SamplerOptions carries the knobs shared by sampling engines.
// Engines ignore fields that do not apply to them.
type SamplerOptions struct {
	// Reads is the number of independent sampling attempts.
	Reads int
	// Sweeps is the number of passes over all variables per read.
	Sweeps int
	// Seed fixes the random source; 0 means time-based.
	Seed int64
}

// Sampler minimizes a QUBO matrix and reports candidate assignments.
// The first sample is treated as the engine's best answer.
// Implementations are synchronous; callers wanting timeouts must wrap
// the engine themselves.
type Sampler interface {
	SampleQUBO(q mat.Symmetric, opts SamplerOptions) ([]Sample, error)
}
