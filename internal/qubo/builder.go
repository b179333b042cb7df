package qubo

import "gonum.org/v1/gonum/mat"

// minimizationMatrix builds the continuous quadratic form H for one
// block of the first-order forward-difference functional: 2 on the
// diagonal, -1 on the first off-diagonals, 1 in the last diagonal
// entry (the rightmost point appears in only one residual), all over
// dx².
func minimizationMatrix(npoints int, dx float64) *mat.SymDense {
	n := npoints - 1
	h := mat.NewSymDense(n, nil)
	inv := 1 / (dx * dx)
	for i := 0; i < n; i++ {
		h.SetSym(i, i, 2*inv)
		if i+1 < n {
			h.SetSym(i, i+1, -inv)
		}
	}
	h.SetSym(n-1, n-1, inv)
	return h
}

// minimizationVector builds the linear part d from consecutive
// differences of the sampled derivative f and the boundary value y1.
func minimizationVector(f []float64, dx, y1 float64) *mat.VecDense {
	n := len(f) - 1
	d := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		v := -f[i]
		if i+1 < n {
			v += f[i+1]
		}
		d.SetVec(i, v)
	}
	d.SetVec(0, d.AtVec(0)-y1/dx)
	d.ScaleVec(2/dx, d)
	return d
}

// BuildMatrix assembles the QUBO matrix for one block of the equation
// y' = f(x). f holds the sampled derivative at the block's points
// (the first entry belongs to the last already-solved point), y1 is
// the boundary value at that point, and hDisc/dDisc are the
// fixed-point discretization elements. Every continuous unknown
// expands to one bit group: Q = (H ⊗ H~) + diag(d ⊗ d~), so the
// result has size (len(f)-1) * len(d~).
func BuildMatrix(f []float64, dx, y1 float64, hDisc *mat.SymDense, dDisc *mat.VecDense, signed bool) *mat.SymDense {
	hCont := minimizationMatrix(len(f), dx)
	dCont := minimizationVector(f, dx, y1)
	if signed {
		// Compensate for the recentring offset subtracted at decode
		// time; d~[0] is the largest place value, 2^{qbitsInteger-1}.
		dCont.SetVec(0, dCont.AtVec(0)-2*dDisc.AtVec(0)/(dx*dx))
	}

	n := hCont.SymmetricDim()
	nb := dDisc.Len()
	q := mat.NewSymDense(n*nb, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			scale := hCont.At(i, j)
			if scale == 0 {
				continue
			}
			for a := 0; a < nb; a++ {
				b := 0
				if i == j {
					b = a
				}
				for ; b < nb; b++ {
					q.SetSym(i*nb+a, j*nb+b, scale*hDisc.At(a, b))
				}
			}
		}
	}
	for i := 0; i < n; i++ {
		for a := 0; a < nb; a++ {
			k := i*nb + a
			q.SetSym(k, k, q.At(k, k)+dCont.AtVec(i)*dDisc.AtVec(a))
		}
	}
	return q
}
