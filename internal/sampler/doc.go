// Package sampler provides in-process [qubo.Sampler] engines.
//
//   - [Exact]: exhaustive search, guaranteed minimizer, usable up to
//     a few dozen bits; the reference backend for tests
//   - [Anneal]: single-flip simulated annealing, the stand-in for an
//     external heuristic engine
//
// Real annealing hardware or external heuristic solvers plug in
// behind the same interface.
package sampler
