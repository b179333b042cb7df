package qubo

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func discretization(t *testing.T, qi, qd int) (*mat.SymDense, *mat.VecDense) {
	t.Helper()
	h, err := DiscretizationMatrix(qi, qd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, err := DiscretizationVector(qi, qd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return h, d
}

func TestBuildMatrix_SizeAndSymmetry(t *testing.T) {
	const qi, qd = 2, 2
	h, d := discretization(t, qi, qd)

	f := []float64{0.5, -1, 2, 0.25}
	q := BuildMatrix(f, 0.5, 1.5, h, d, true)

	unknowns := len(f) - 1
	if q.SymmetricDim() != unknowns*(qi+qd) {
		t.Fatalf("expected size %d, got %d", unknowns*(qi+qd), q.SymmetricDim())
	}
	for i := 0; i < q.SymmetricDim(); i++ {
		for j := 0; j < q.SymmetricDim(); j++ {
			if q.At(i, j) != q.At(j, i) {
				t.Fatalf("asymmetry at (%d,%d)", i, j)
			}
		}
	}
}

func TestBuildMatrix_SingleUnknown(t *testing.T) {
	// One unknown, dx=1, y1=0, f=[1,1]: the continuous form is
	// x² - 2x, so Q = H~ + diag(-2·d~).
	h, d := discretization(t, 2, 2)

	q := BuildMatrix([]float64{1, 1}, 1, 0, h, d, false)
	if q.SymmetricDim() != 4 {
		t.Fatalf("expected size 4, got %d", q.SymmetricDim())
	}
	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			expected := h.At(a, b)
			if a == b {
				expected -= 2 * d.AtVec(a)
			}
			if math.Abs(q.At(a, b)-expected) > 1e-12 {
				t.Errorf("entry (%d,%d): expected %f, got %f", a, b, expected, q.At(a, b))
			}
		}
	}
}

func TestBuildMatrix_SignedAdjustment(t *testing.T) {
	// The signed layout only shifts the first unknown's linear term,
	// by -2·d~[0]/dx² spread over that bit group's diagonal.
	h, d := discretization(t, 2, 2)

	f := []float64{1, 1, 1}
	dx := 0.5
	unsigned := BuildMatrix(f, dx, 0, h, d, false)
	signed := BuildMatrix(f, dx, 0, h, d, true)

	n := unsigned.SymmetricDim()
	nb := d.Len()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			diff := signed.At(i, j) - unsigned.At(i, j)
			expected := 0.0
			if i == j && i < nb {
				expected = -2 * d.AtVec(0) / (dx * dx) * d.AtVec(i)
			}
			if math.Abs(diff-expected) > 1e-12 {
				t.Errorf("entry (%d,%d): expected difference %f, got %f", i, j, expected, diff)
			}
		}
	}
}
