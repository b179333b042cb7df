package qubo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DiscretizationVector builds the place-value vector d~ for a
// fixed-point layout with qbitsInteger bits before and qbitsDecimal
// bits after the binary point. Entry k holds 2^{-j} for j running
// over [-qbitsInteger+1, qbitsDecimal], so weights descend from
// 2^{qbitsInteger-1} down to 2^{-qbitsDecimal}.
func DiscretizationVector(qbitsInteger, qbitsDecimal int) (*mat.VecDense, error) {
	if err := checkBits(qbitsInteger, qbitsDecimal); err != nil {
		return nil, err
	}
	n := qbitsInteger + qbitsDecimal
	d := mat.NewVecDense(n, nil)
	for k := 0; k < n; k++ {
		j := -qbitsInteger + 1 + k
		d.SetVec(k, math.Pow(2, -float64(j)))
	}
	return d, nil
}

// DiscretizationMatrix builds H~, the outer product of d~ with itself:
// H~[a][b] = 2^{-(j_a+j_b)}. It depends only on the bit widths, never
// on the equation, so callers build it once per solve.
func DiscretizationMatrix(qbitsInteger, qbitsDecimal int) (*mat.SymDense, error) {
	d, err := DiscretizationVector(qbitsInteger, qbitsDecimal)
	if err != nil {
		return nil, err
	}
	n := d.Len()
	h := mat.NewSymDense(n, nil)
	for a := 0; a < n; a++ {
		for b := a; b < n; b++ {
			h.SetSym(a, b, d.AtVec(a)*d.AtVec(b))
		}
	}
	return h, nil
}

// Decode maps a bit vector back to a real value: the dot product with
// the place-value weights, recentred by 2^{qbitsInteger-1} when the
// layout is signed.
func Decode(bits []int, dVec *mat.VecDense, signed bool, qbitsInteger int) float64 {
	v := 0.0
	for k := 0; k < dVec.Len() && k < len(bits); k++ {
		if bits[k] != 0 {
			v += dVec.AtVec(k)
		}
	}
	if signed {
		v -= math.Pow(2, float64(qbitsInteger-1))
	}
	return v
}

// Encode is the inverse of Decode: it rounds value to the nearest
// representable fixed-point number and returns its bit vector, most
// significant bit first. Values outside the representable range clamp
// to the nearest end.
func Encode(value float64, signed bool, qbitsInteger, qbitsDecimal int) ([]int, error) {
	if err := checkBits(qbitsInteger, qbitsDecimal); err != nil {
		return nil, err
	}
	if signed {
		value += math.Pow(2, float64(qbitsInteger-1))
	}
	n := qbitsInteger + qbitsDecimal
	scaled := int64(math.Round(value * math.Pow(2, float64(qbitsDecimal))))
	limit := int64(1)<<uint(n) - 1
	if scaled < 0 {
		scaled = 0
	}
	if scaled > limit {
		scaled = limit
	}
	bits := make([]int, n)
	for k := 0; k < n; k++ {
		if scaled&(1<<uint(n-1-k)) != 0 {
			bits[k] = 1
		}
	}
	return bits, nil
}

func checkBits(qbitsInteger, qbitsDecimal int) error {
	if qbitsInteger < 0 || qbitsDecimal < 0 || qbitsInteger+qbitsDecimal == 0 {
		return fmt.Errorf("%w: qbits %d+%d", ErrNoBits, qbitsInteger, qbitsDecimal)
	}
	return nil
}
