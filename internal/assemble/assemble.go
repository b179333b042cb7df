package assemble

import (
	"errors"
	"fmt"
	"math"

	"github.com/IgorGayday/qde/internal/stencil"
	"gonum.org/v1/gonum/mat"
)

// ErrInvalidGrid indicates a non-positive grid step or block size.
var ErrInvalidGrid = errors.New("assemble: grid step and block size must be positive")

// Assembler builds minimization matrices using a stencil library for
// the finite-difference weights.
type Assembler struct {
	lib *stencil.Library
}

// New returns an Assembler backed by lib, or by the default stencil
// library when lib is nil.
func New(lib *stencil.Library) *Assembler {
	if lib == nil {
		lib = stencil.NewLibrary(nil)
	}
	return &Assembler{lib: lib}
}

// Matrices builds (H, d) for the next block of unknown points.
//
// funcs holds the sampled equation: row 0 is the shift function, row
// i ≥ 1 the multiplier of the (i-1)-th derivative, columns indexed by
// grid point. known holds the already-determined solution values,
// contiguous from the left boundary, so len(known) is the index of
// the first unknown. The block covers min(blockSize, remaining)
// points; H and d are freshly allocated and H is symmetric by
// construction.
func (a *Assembler) Matrices(funcs [][]float64, dx float64, known []float64, maxAccuracy, blockSize int) (*mat.Dense, *mat.VecDense, error) {
	if dx <= 0 || blockSize <= 0 {
		return nil, nil, fmt.Errorf("%w: dx=%g, blockSize=%d", ErrInvalidGrid, dx, blockSize)
	}
	npoints := len(funcs[0])
	firstUnknown := len(known)
	unknowns := min(blockSize, npoints-firstUnknown)
	lastUnknown := firstUnknown + unknowns - 1

	h := mat.NewDense(unknowns, unknowns, nil)
	d := mat.NewVecDense(unknowns, nil)
	for point := 0; point <= lastUnknown; point++ {
		if err := a.addLinearTerms(d, point, lastUnknown, funcs, dx, firstUnknown, maxAccuracy); err != nil {
			return nil, nil, err
		}
		if err := a.addQuadraticTerms(h, d, point, lastUnknown, funcs, dx, known, maxAccuracy); err != nil {
			return nil, nil, err
		}
	}
	return h, d, nil
}

// addLinearTerms accumulates the cross terms between the shift
// function and each derivative term at one grid point. Terms whose
// scheme lies wholly in the known region carry no new information and
// are skipped.
func (a *Assembler) addLinearTerms(d *mat.VecDense, point, lastUnknown int, funcs [][]float64, dx float64, firstUnknown, maxAccuracy int) error {
	for term := 1; term < len(funcs); term++ {
		r := stencil.SelectRange(term, point, lastUnknown, maxAccuracy)
		if r.LastIndex < firstUnknown || !r.Feasible() {
			continue
		}
		coeffs, err := a.lib.Coefficients(r.DerivOrder, r.Accuracy)
		if err != nil {
			return err
		}
		factor := 2 * funcs[0][point] * funcs[term][point] / math.Pow(dx, float64(r.DerivOrder))
		for s := 0; s < r.Length; s++ {
			unknown := point + s - firstUnknown
			if unknown < 0 {
				continue
			}
			d.SetVec(unknown, d.AtVec(unknown)+factor*coeffs[s])
		}
	}
	return nil
}

// addQuadraticTerms accumulates the products of every ordered pair of
// derivative terms at one grid point. Index pairs over two unknowns
// go to H; pairs with exactly one known index fold into d using the
// known value; pairs over two knowns are constants and are dropped.
func (a *Assembler) addQuadraticTerms(h *mat.Dense, d *mat.VecDense, point, lastUnknown int, funcs [][]float64, dx float64, known []float64, maxAccuracy int) error {
	firstUnknown := len(known)
	for term1 := 1; term1 < len(funcs); term1++ {
		r1 := stencil.SelectRange(term1, point, lastUnknown, maxAccuracy)
		if !r1.Feasible() {
			continue
		}
		coeffs1, err := a.lib.Coefficients(r1.DerivOrder, r1.Accuracy)
		if err != nil {
			return err
		}
		for term2 := 1; term2 < len(funcs); term2++ {
			r2 := stencil.SelectRange(term2, point, lastUnknown, maxAccuracy)
			if (r1.LastIndex < firstUnknown && r2.LastIndex < firstUnknown) || !r2.Feasible() {
				continue
			}
			coeffs2, err := a.lib.Coefficients(r2.DerivOrder, r2.Accuracy)
			if err != nil {
				return err
			}
			factor := funcs[term1][point] * funcs[term2][point] / math.Pow(dx, float64(r1.DerivOrder+r2.DerivOrder))
			for s1 := 0; s1 < r1.Length; s1++ {
				u1 := point + s1 - firstUnknown
				for s2 := 0; s2 < r2.Length; s2++ {
					u2 := point + s2 - firstUnknown
					if u1 < 0 && u2 < 0 {
						continue
					}
					w := factor * coeffs1[s1] * coeffs2[s2]
					if u1 >= 0 && u2 >= 0 {
						h.Set(u1, u2, h.At(u1, u2)+w)
					} else {
						unknown := max(u1, u2)
						knownIdx := min(u1, u2) + firstUnknown
						d.SetVec(unknown, d.AtVec(unknown)+w*known[knownIdx])
					}
				}
			}
		}
	}
	return nil
}
