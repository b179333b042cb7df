package sampler

import (
	"fmt"

	"github.com/IgorGayday/qde/internal/qubo"
	"gonum.org/v1/gonum/mat"
)

// maxExactBits caps exhaustive search; beyond this the 2^n sweep is
// no longer a reasonable fallback.
const maxExactBits = 24

// Exact enumerates every assignment and returns the global minimizer.
type Exact struct{}

// NewExact returns an exhaustive sampler.
func NewExact() *Exact { return &Exact{} }

// SampleQUBO scans all 2^n assignments of q and returns the single
// best one with occurrence count 1. Options are ignored; the search
// is deterministic.
func (*Exact) SampleQUBO(q mat.Symmetric, _ qubo.SamplerOptions) ([]qubo.Sample, error) {
	n := q.SymmetricDim()
	if n > maxExactBits {
		return nil, fmt.Errorf("sampler: %d bits exceeds exhaustive search limit %d", n, maxExactBits)
	}
	best := make([]int, n)
	bits := make([]int, n)
	bestEnergy := Energy(q, bits)
	for m := uint64(1); m < 1<<uint(n); m++ {
		for i := 0; i < n; i++ {
			bits[i] = int(m >> uint(i) & 1)
		}
		if e := Energy(q, bits); e < bestEnergy {
			bestEnergy = e
			copy(best, bits)
		}
	}
	return []qubo.Sample{{Bits: best, Energy: bestEnergy, Occurrences: 1}}, nil
}

// Energy evaluates the full bilinear form xᵀQx at a binary
// assignment.
func Energy(q mat.Symmetric, bits []int) float64 {
	n := q.SymmetricDim()
	e := 0.0
	for i := 0; i < n; i++ {
		if bits[i] == 0 {
			continue
		}
		e += q.At(i, i)
		for j := i + 1; j < n; j++ {
			if bits[j] != 0 {
				e += 2 * q.At(i, j)
			}
		}
	}
	return e
}
