package sampler

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/IgorGayday/qde/internal/qubo"
	"gonum.org/v1/gonum/mat"
)

const (
	defaultReads  = 20
	defaultSweeps = 200
)

// Anneal is a single-flip simulated annealing sampler. Each read
// starts from a random assignment and cools along a geometric
// schedule; identical final assignments aggregate into one sample
// with an occurrence count.
type Anneal struct {
	// BetaStart and BetaEnd bound the inverse-temperature schedule.
	BetaStart float64
	BetaEnd   float64
}

// NewAnneal returns an annealer with the default schedule.
func NewAnneal() *Anneal {
	return &Anneal{BetaStart: 0.1, BetaEnd: 10}
}

// SampleQUBO runs opts.Reads independent anneals of opts.Sweeps
// sweeps each and returns the distinct final assignments sorted by
// energy, best first.
func (a *Anneal) SampleQUBO(q mat.Symmetric, opts qubo.SamplerOptions) ([]qubo.Sample, error) {
	n := q.SymmetricDim()
	reads := opts.Reads
	if reads <= 0 {
		reads = defaultReads
	}
	sweeps := opts.Sweeps
	if sweeps <= 0 {
		sweeps = defaultSweeps
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	found := make(map[string]*qubo.Sample)
	bits := make([]int, n)
	for r := 0; r < reads; r++ {
		for i := range bits {
			bits[i] = rng.Intn(2)
		}
		a.anneal(q, bits, sweeps, rng)
		key := bitKey(bits)
		if s, ok := found[key]; ok {
			s.Occurrences++
			continue
		}
		final := make([]int, n)
		copy(final, bits)
		found[key] = &qubo.Sample{Bits: final, Energy: Energy(q, final), Occurrences: 1}
	}

	samples := make([]qubo.Sample, 0, len(found))
	for _, s := range found {
		samples = append(samples, *s)
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].Energy < samples[j].Energy })
	return samples, nil
}

func (a *Anneal) anneal(q mat.Symmetric, bits []int, sweeps int, rng *rand.Rand) {
	n := len(bits)
	ratio := math.Pow(a.BetaEnd/a.BetaStart, 1/math.Max(1, float64(sweeps-1)))
	beta := a.BetaStart
	for s := 0; s < sweeps; s++ {
		for i := 0; i < n; i++ {
			delta := flipDelta(q, bits, i)
			if delta <= 0 || rng.Float64() < math.Exp(-beta*delta) {
				bits[i] = 1 - bits[i]
			}
		}
		beta *= ratio
	}
}

// flipDelta is the energy change from flipping bit i under the full
// bilinear form: (1-2x_i)·(Q_ii + 2·Σ_{j≠i} Q_ij·x_j).
func flipDelta(q mat.Symmetric, bits []int, i int) float64 {
	field := q.At(i, i)
	for j := 0; j < len(bits); j++ {
		if j != i && bits[j] != 0 {
			field += 2 * q.At(i, j)
		}
	}
	return float64(1-2*bits[i]) * field
}

func bitKey(bits []int) string {
	b := make([]byte, len(bits))
	for i, v := range bits {
		b[i] = byte('0' + v)
	}
	return string(b)
}
