// Package solver drives the block-by-block QUBO solve of y' = f(x).
//
// The grid is traversed left to right in blocks of PointsPerQUBO
// points. Each block's boundary value is the previous block's last
// decoded point, so blocks are inherently sequential and cannot run
// in parallel. Per block the solver builds a QUBO matrix, hands it to
// the configured [qubo.Sampler], decodes the returned assignments to
// continuous values, and accumulates the true least-squares residual
// by adding back the constant the QUBO formulation drops.
//
// [Solver.Run] solves a whole grid; [Stepper] exposes the same loop
// one block at a time for live views.
package solver
