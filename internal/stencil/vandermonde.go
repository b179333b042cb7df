package stencil

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Vandermonde generates forward-difference coefficients of any
// derivative and accuracy order by solving the moment conditions
// Σ_j c_j·j^k = k!·δ_{k,d} over the stencil points 0..n-1. It is the
// default [CoefficientSource] for even accuracy orders.
type Vandermonde struct{}

// ForwardCoefficients solves the Vandermonde system for the requested
// scheme and returns the derivOrder + accuracyOrder weights.
func (Vandermonde) ForwardCoefficients(derivOrder, accuracyOrder int) ([]float64, error) {
	if derivOrder < 1 || accuracyOrder < 1 {
		return nil, fmt.Errorf("%w: derivative %d, accuracy %d", ErrUnsupportedScheme, derivOrder, accuracyOrder)
	}
	n := derivOrder + accuracyOrder
	v := mat.NewDense(n, n, nil)
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			v.Set(k, j, math.Pow(float64(j), float64(k)))
		}
	}
	b := mat.NewVecDense(n, nil)
	b.SetVec(derivOrder, factorial(derivOrder))

	var c mat.VecDense
	if err := c.SolveVec(v, b); err != nil {
		return nil, fmt.Errorf("stencil: moment system for derivative %d, accuracy %d: %w", derivOrder, accuracyOrder, err)
	}
	out := make([]float64, n)
	for j := 0; j < n; j++ {
		out[j] = c.AtVec(j)
	}
	return out, nil
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
