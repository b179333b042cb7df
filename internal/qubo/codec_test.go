package qubo

import (
	"errors"
	"math"
	"testing"
)

func TestDiscretizationVector(t *testing.T) {
	d, err := DiscretizationVector(2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []float64{2, 1, 0.5, 0.25}
	if d.Len() != len(expected) {
		t.Fatalf("expected length %d, got %d", len(expected), d.Len())
	}
	for i, v := range expected {
		if d.AtVec(i) != v {
			t.Errorf("entry %d: expected %f, got %f", i, v, d.AtVec(i))
		}
	}
}

func TestDiscretizationMatrix_OuterProduct(t *testing.T) {
	d, err := DiscretizationVector(3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h, err := DiscretizationMatrix(3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.SymmetricDim() != d.Len() {
		t.Fatalf("expected dimension %d, got %d", d.Len(), h.SymmetricDim())
	}
	for a := 0; a < d.Len(); a++ {
		for b := 0; b < d.Len(); b++ {
			if h.At(a, b) != d.AtVec(a)*d.AtVec(b) {
				t.Errorf("entry (%d,%d): expected %f, got %f", a, b, d.AtVec(a)*d.AtVec(b), h.At(a, b))
			}
		}
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	const qi, qd = 3, 4
	d, err := DiscretizationVector(qi, qd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resolution := math.Pow(2, -qd)

	for _, signed := range []bool{false, true} {
		lo, hi := 0.0, math.Pow(2, qi)-resolution
		if signed {
			half := math.Pow(2, qi-1)
			lo, hi = -half, half-resolution
		}
		for x := lo; x <= hi; x += 0.37 {
			bits, err := Encode(x, signed, qi, qd)
			if err != nil {
				t.Fatalf("encode %f: %v", x, err)
			}
			got := Decode(bits, d, signed, qi)
			if math.Abs(got-x) > resolution {
				t.Errorf("signed=%v x=%f: decoded %f, off by more than %f", signed, x, got, resolution)
			}
		}
	}
}

func TestEncode_Clamps(t *testing.T) {
	const qi, qd = 2, 2
	d, err := DiscretizationVector(qi, qd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bits, err := Encode(100, false, qi, qd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Decode(bits, d, false, qi); got != 3.75 {
		t.Errorf("expected clamp to 3.75, got %f", got)
	}

	bits, err = Encode(-100, false, qi, qd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Decode(bits, d, false, qi); got != 0 {
		t.Errorf("expected clamp to 0, got %f", got)
	}
}

func TestDiscretization_NoBits(t *testing.T) {
	if _, err := DiscretizationVector(0, 0); !errors.Is(err, ErrNoBits) {
		t.Errorf("expected ErrNoBits for zero width, got %v", err)
	}
	if _, err := DiscretizationMatrix(-1, 2); !errors.Is(err, ErrNoBits) {
		t.Errorf("expected ErrNoBits for negative width, got %v", err)
	}
	if _, err := Encode(1, false, 0, 0); !errors.Is(err, ErrNoBits) {
		t.Errorf("expected ErrNoBits from Encode, got %v", err)
	}
}
