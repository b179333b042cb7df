// Package qubo provides the binary side of the solver pipeline:
// fixed-point discretization of continuous unknowns and assembly of
// QUBO (Quadratic Unconstrained Binary Optimization) matrices.
//
//   - [DiscretizationMatrix], [DiscretizationVector]: place-value
//     weights mapping bit vectors to real values
//   - [Decode], [Encode]: conversion between bit vectors and reals
//   - [BuildMatrix]: QUBO matrix for one block of a first-order
//     equation y' = f(x)
//   - [Sampler]: the external engine that minimizes a QUBO
//
// The QUBO energy convention is the full bilinear form xᵀQx over a
// symmetric Q, with linear terms carried on the diagonal (x² = x for
// binary x).
package qubo
