// Package assemble builds the quadratic minimization form (H, d) for
// a block of unknown grid points of an arbitrary-order linear ODE.
//
// The equation is given as sampled functions: a shift row f plus one
// multiplier row per derivative order, so the residual at a point is
// f + Σ_k f_k·D_k[y] with D_k approximated by forward differences.
// Squaring the residual at every point and summing yields a quadratic
// functional over the block's unknowns; its minimizer is the discrete
// least-squares solution. Contributions touching only already-known
// points fold into d (one known index) or drop entirely (two known
// indices — a constant cannot move the minimizer).
package assemble
