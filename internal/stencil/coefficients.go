package stencil

import (
	"errors"
	"fmt"
)

// ErrUnsupportedScheme indicates a (derivative order, accuracy order)
// combination with neither a table entry nor a generator path.
var ErrUnsupportedScheme = errors.New("stencil: unsupported derivative/accuracy combination")

// CoefficientSource generates forward-difference coefficients for
// even accuracy orders, where no closed-form table is kept.
type CoefficientSource interface {
	ForwardCoefficients(derivOrder, accuracyOrder int) ([]float64, error)
}

type scheme struct {
	deriv    int
	accuracy int
}

// Closed-form forward schemes for the odd accuracy orders in use.
var oddSchemes = map[scheme][]float64{
	{1, 1}: {-1, 1},
	{2, 1}: {1, -2, 1},
	{1, 3}: {-11.0 / 6, 3, -3.0 / 2, 1.0 / 3},
	{1, 5}: {-137.0 / 60, 5, -5, 10.0 / 3, -5.0 / 4, 1.0 / 5},
}

// Library resolves finite-difference coefficients, delegating even
// accuracy orders to a CoefficientSource.
type Library struct {
	source CoefficientSource
}

// NewLibrary returns a Library backed by source, or by [Vandermonde]
// when source is nil.
func NewLibrary(source CoefficientSource) *Library {
	if source == nil {
		source = Vandermonde{}
	}
	return &Library{source: source}
}

// Coefficients returns the weights of the forward scheme for the
// given derivative and accuracy orders. The result has length
// derivOrder + accuracyOrder and is freshly allocated.
func (l *Library) Coefficients(derivOrder, accuracyOrder int) ([]float64, error) {
	if derivOrder == 0 {
		return []float64{1}, nil
	}
	if accuracyOrder%2 == 0 {
		return l.source.ForwardCoefficients(derivOrder, accuracyOrder)
	}
	coeffs, ok := oddSchemes[scheme{derivOrder, accuracyOrder}]
	if !ok {
		return nil, fmt.Errorf("%w: derivative %d, accuracy %d", ErrUnsupportedScheme, derivOrder, accuracyOrder)
	}
	out := make([]float64, len(coeffs))
	copy(out, coeffs)
	return out, nil
}
