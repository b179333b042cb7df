package stencil

// Range describes the scheme selected for one derivative term at one
// grid point.
type Range struct {
	// DerivOrder is the derivative order of the term (term index - 1;
	// the first multiplier row scales y itself).
	DerivOrder int
	// Accuracy is the selected accuracy order. Below 1 the term is
	// infeasible at this point and the remaining fields are invalid.
	Accuracy int
	// Length is the number of points in the scheme.
	Length int
	// LastIndex is the global index of the scheme's last point.
	LastIndex int
}

// Feasible reports whether enough future points exist for the term.
func (r Range) Feasible() bool { return r.Accuracy >= 1 }

// SelectRange picks the scheme for term termIndex at grid point
// pointIndex. The accuracy order is capped by maxAccuracy and by the
// points remaining before lastUnknownIndex, so schemes shrink near
// the right edge of the solvable window. The zeroth-derivative term
// always uses a length-1 scheme.
func SelectRange(termIndex, pointIndex, lastUnknownIndex, maxAccuracy int) Range {
	derivOrder := termIndex - 1
	accuracy := 1
	if derivOrder != 0 {
		possible := lastUnknownIndex - pointIndex - derivOrder + 1
		accuracy = min(maxAccuracy, possible)
	}
	length := derivOrder + accuracy
	return Range{
		DerivOrder: derivOrder,
		Accuracy:   accuracy,
		Length:     length,
		LastIndex:  pointIndex + length - 1,
	}
}
