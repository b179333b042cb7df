// Package stencil provides forward finite-difference schemes: the
// coefficient lookup for a (derivative order, accuracy order) pair
// and the range selection that shrinks a scheme near the right edge
// of the solvable window.
//
//   - [Library]: coefficient lookup with a pluggable even-order
//     generator
//   - [CoefficientSource]: the generator interface
//   - [Vandermonde]: default generator, solves the moment system
//   - [SelectRange]: feasible scheme for a term at a grid point
//
// Odd accuracy orders come from a fixed closed-form table; any odd
// combination outside it fails with [ErrUnsupportedScheme] rather
// than degrading silently.
package stencil
