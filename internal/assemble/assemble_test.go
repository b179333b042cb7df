package assemble

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// rampFuncs samples the equation y' = 1 as shift and multiplier rows:
// residual = -1 + y'.
func rampFuncs(npoints int) [][]float64 {
	shift := make([]float64, npoints)
	yCoeff := make([]float64, npoints)
	dCoeff := make([]float64, npoints)
	for i := 0; i < npoints; i++ {
		shift[i] = -1
		dCoeff[i] = 1
	}
	return [][]float64{shift, yCoeff, dCoeff}
}

// minimize solves the stationarity condition 2Hx = -d.
func minimize(t *testing.T, h *mat.Dense, d *mat.VecDense) []float64 {
	t.Helper()
	n := d.Len()
	b := mat.NewVecDense(n, nil)
	b.ScaleVec(-0.5, d)
	var x mat.VecDense
	if err := x.SolveVec(h, b); err != nil {
		t.Fatalf("singular minimization matrix: %v", err)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = x.AtVec(i)
	}
	return out
}

func TestMatrices_FirstOrderForm(t *testing.T) {
	// For y' = 1 with one known boundary point and first-order
	// schemes, the assembled form must match the closed-form block
	// matrix of the restricted path: [[2,-1],[-1,1]] and [0,-2].
	h, d, err := New(nil).Matrices(rampFuncs(3), 1, []float64{0}, 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectedH := [][]float64{{2, -1}, {-1, 1}}
	expectedD := []float64{0, -2}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(h.At(i, j)-expectedH[i][j]) > 1e-12 {
				t.Errorf("H(%d,%d): expected %f, got %f", i, j, expectedH[i][j], h.At(i, j))
			}
		}
		if math.Abs(d.AtVec(i)-expectedD[i]) > 1e-12 {
			t.Errorf("d(%d): expected %f, got %f", i, expectedD[i], d.AtVec(i))
		}
	}
}

func TestMatrices_RampMinimizer(t *testing.T) {
	h, d, err := New(nil).Matrices(rampFuncs(4), 1, []float64{0}, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x := minimize(t, h, d)
	for i, v := range x {
		expected := float64(i + 1)
		if math.Abs(v-expected) > 1e-9 {
			t.Errorf("point %d: expected %f, got %f", i+1, expected, v)
		}
	}
}

func TestMatrices_EvenAccuracy(t *testing.T) {
	// Accuracy 2 exercises the Vandermonde generator path; a linear
	// solution still zeroes every residual, so the minimizer is the
	// exact ramp.
	h, d, err := New(nil).Matrices(rampFuncs(4), 1, []float64{0}, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x := minimize(t, h, d)
	for i, v := range x {
		expected := float64(i + 1)
		if math.Abs(v-expected) > 1e-9 {
			t.Errorf("point %d: expected %f, got %f", i+1, expected, v)
		}
	}
}

func TestMatrices_Symmetric(t *testing.T) {
	// Second-order equation with varying multipliers: residual
	// -sin(x) + y + 0.5·y' + 0.1·y''.
	const npoints = 8
	funcs := make([][]float64, 4)
	for r := range funcs {
		funcs[r] = make([]float64, npoints)
	}
	for i := 0; i < npoints; i++ {
		x := float64(i) * 0.3
		funcs[0][i] = -math.Sin(x)
		funcs[1][i] = 1
		funcs[2][i] = 0.5
		funcs[3][i] = 0.1
	}

	h, _, err := New(nil).Matrices(funcs, 0.3, []float64{1, 1.1}, 1, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows, cols := h.Dims()
	if rows != 4 || cols != 4 {
		t.Fatalf("expected 4x4 block, got %dx%d", rows, cols)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if math.Abs(h.At(i, j)-h.At(j, i)) > 1e-12 {
				t.Errorf("asymmetry at (%d,%d): %g vs %g", i, j, h.At(i, j), h.At(j, i))
			}
		}
	}
}

func TestMatrices_BlockShrinksAtEnd(t *testing.T) {
	// Only two unknown points remain; a larger block request must
	// shrink instead of indexing past the grid.
	h, d, err := New(nil).Matrices(rampFuncs(5), 1, []float64{0, 1, 2}, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows, cols := h.Dims()
	if rows != 2 || cols != 2 || d.Len() != 2 {
		t.Fatalf("expected 2 unknowns, got H %dx%d, d %d", rows, cols, d.Len())
	}
	x := minimize(t, h, d)
	for i, v := range x {
		expected := float64(i + 3)
		if math.Abs(v-expected) > 1e-9 {
			t.Errorf("point %d: expected %f, got %f", i+3, expected, v)
		}
	}
}

func TestMatrices_UnsupportedScheme(t *testing.T) {
	// Odd accuracy 3 has no table entry for the second derivative.
	funcs := [][]float64{
		{-1, -1, -1, -1, -1, -1, -1, -1},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 1, 1},
	}
	_, _, err := New(nil).Matrices(funcs, 1, []float64{0}, 3, 4)
	if err == nil {
		t.Fatal("expected an unsupported-scheme error")
	}
}

func TestMatrices_InvalidGrid(t *testing.T) {
	if _, _, err := New(nil).Matrices(rampFuncs(3), 0, []float64{0}, 1, 2); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("expected ErrInvalidGrid for dx=0, got %v", err)
	}
	if _, _, err := New(nil).Matrices(rampFuncs(3), 1, []float64{0}, 1, 0); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("expected ErrInvalidGrid for blockSize=0, got %v", err)
	}
}
