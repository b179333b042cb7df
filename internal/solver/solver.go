package solver

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/IgorGayday/qde/internal/qubo"
	"gonum.org/v1/gonum/mat"
)

// Domain errors for trajectory solves.
var (
	// ErrInvalidConfig indicates a non-positive grid step or block
	// size; raised before any matrix construction.
	ErrInvalidConfig = errors.New("solver: invalid configuration")

	// ErrNoSamples indicates the sampler returned an empty sample set.
	ErrNoSamples = errors.New("solver: sampler returned no samples")
)

// Options configures a trajectory solve.
type Options struct {
	// QbitsInteger and QbitsDecimal set the fixed-point resolution of
	// each solution value.
	QbitsInteger int
	QbitsDecimal int
	// Signed recentres the representable range from [0, L) to
	// [-L/2, L/2), L = 2^QbitsInteger.
	Signed bool
	// PointsPerQUBO is the number of grid points solved per block.
	PointsPerQUBO int
	// AverageSolutions weights all returned samples by occurrence
	// count instead of taking only the sampler's best answer.
	AverageSolutions bool
	// Sampler is passed through to the sampling engine unchanged.
	Sampler qubo.SamplerOptions
}

// Solver owns the sampling engine used for every block.
type Solver struct {
	sampler qubo.Sampler
}

// New returns a Solver backed by smp.
func New(smp qubo.Sampler) *Solver {
	return &Solver{sampler: smp}
}

// Solve runs a whole trajectory without cancellation.
func Solve(f []float64, dx, y1 float64, smp qubo.Sampler, opts Options) ([]float64, float64, error) {
	return New(smp).Run(context.Background(), f, dx, y1, opts)
}

// Run solves y' = f(x) over the grid and returns the trajectory plus
// the accumulated residual energy. The energy is a diagnostic: the
// achieved total squared discretization residual, not a correctness
// guarantee, since the sampler is heuristic. The context is checked
// between blocks; a sampler call itself is not interrupted.
func (s *Solver) Run(ctx context.Context, f []float64, dx, y1 float64, opts Options) ([]float64, float64, error) {
	st, err := s.Stepper(f, dx, y1, opts)
	if err != nil {
		return nil, 0, err
	}
	for {
		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		default:
		}
		done, err := st.Next()
		if err != nil {
			return nil, 0, err
		}
		if done {
			return st.Solution(), st.Energy(), nil
		}
	}
}

// Stepper validates the configuration, builds the discretization
// elements once, and returns an iterator that advances one block per
// Next call.
func (s *Solver) Stepper(f []float64, dx, y1 float64, opts Options) (*Stepper, error) {
	if dx <= 0 {
		return nil, fmt.Errorf("%w: dx must be positive, got %g", ErrInvalidConfig, dx)
	}
	if opts.PointsPerQUBO <= 0 {
		return nil, fmt.Errorf("%w: points per QUBO must be positive, got %d", ErrInvalidConfig, opts.PointsPerQUBO)
	}
	hDisc, err := qubo.DiscretizationMatrix(opts.QbitsInteger, opts.QbitsDecimal)
	if err != nil {
		return nil, err
	}
	dDisc, err := qubo.DiscretizationVector(opts.QbitsInteger, opts.QbitsDecimal)
	if err != nil {
		return nil, err
	}
	solution := make([]float64, len(f))
	solution[0] = y1
	return &Stepper{
		sampler:  s.sampler,
		f:        f,
		dx:       dx,
		opts:     opts,
		hDisc:    hDisc,
		dDisc:    dDisc,
		solution: solution,
		next:     1,
	}, nil
}

// Stepper walks the grid one block at a time. It is single-owner
// state: Solution and Energy reflect every block completed so far.
type Stepper struct {
	sampler  qubo.Sampler
	f        []float64
	dx       float64
	opts     Options
	hDisc    *mat.SymDense
	dDisc    *mat.VecDense
	solution []float64
	energy   float64
	next     int
}

// Solution returns the trajectory array; entries at or past the
// current block boundary are not yet decoded.
func (st *Stepper) Solution() []float64 { return st.solution }

// Energy returns the residual accumulated over completed blocks.
func (st *Stepper) Energy() float64 { return st.energy }

// Progress reports decoded and total point counts.
func (st *Stepper) Progress() (solved, total int) {
	return min(st.next, len(st.f)), len(st.f)
}

// Next solves one block: builds its QUBO, samples it, decodes the
// assignments, and folds the result into the trajectory and energy.
// It reports true once the trajectory is complete.
func (st *Stepper) Next() (bool, error) {
	if st.next >= len(st.f) {
		return true, nil
	}
	i := st.next
	y1 := st.solution[i-1]
	nextI := min(i+st.opts.PointsPerQUBO, len(st.f))
	blockF := st.f[i-1 : nextI]

	q := qubo.BuildMatrix(blockF, st.dx, y1, st.hDisc, st.dDisc, st.opts.Signed)
	samples, err := st.sampler.SampleQUBO(q, st.opts.Sampler)
	if err != nil {
		return false, err
	}
	if len(samples) == 0 {
		return false, ErrNoSamples
	}

	values, energy := st.aggregate(samples, nextI-i)
	copy(st.solution[i:nextI], values)
	st.energy += energy + st.errorShift(blockF, y1)
	st.next = nextI
	return st.next >= len(st.f), nil
}

// aggregate decodes the sample set into per-point values and an
// energy, either occurrence-weighted over all samples or from the
// first (best) sample alone.
func (st *Stepper) aggregate(samples []qubo.Sample, unknowns int) ([]float64, float64) {
	if !st.opts.AverageSolutions {
		return st.decode(samples[0].Bits, unknowns), samples[0].Energy
	}
	total := 0
	for _, s := range samples {
		total += occurrences(s)
	}
	values := make([]float64, unknowns)
	energy := 0.0
	for _, s := range samples {
		w := float64(occurrences(s)) / float64(total)
		for p, v := range st.decode(s.Bits, unknowns) {
			values[p] += w * v
		}
		energy += w * s.Energy
	}
	return values, energy
}

// decode splits a block assignment into per-point bit groups and maps
// each through the discretization weights.
func (st *Stepper) decode(bits []int, unknowns int) []float64 {
	nb := st.dDisc.Len()
	values := make([]float64, unknowns)
	for p := 0; p < unknowns; p++ {
		values[p] = qubo.Decode(bits[p*nb:(p+1)*nb], st.dDisc, st.opts.Signed, st.opts.QbitsInteger)
	}
	return values
}

// errorShift is the constant dropped from the block's QUBO form:
// the known·known and known·shift cross terms, plus the recentring
// offset term for signed layouts. Adding it to a sampler energy
// recovers the true least-squares residual of the block.
func (st *Stepper) errorShift(blockF []float64, y1 float64) float64 {
	dx2 := st.dx * st.dx
	shift := (y1*y1 + 2*y1*blockF[0]*st.dx) / dx2
	for _, v := range blockF[:len(blockF)-1] {
		shift += v * v
	}
	if st.opts.Signed {
		qi := float64(st.opts.QbitsInteger)
		shift += (math.Pow(4, qi-1) + math.Pow(2, qi)*(y1+blockF[0]*st.dx)) / dx2
	}
	return shift
}

func occurrences(s qubo.Sample) int {
	if s.Occurrences < 1 {
		return 1
	}
	return s.Occurrences
}
