// Package pheromone maintains the bounded trail matrix of the Beam-ACO
// solver.
//
// A Store is an n×n matrix of desirability values — cell (i,j) says how
// attractive it is to visit node j right after node i. The beam search
// reads it; only the trial driver writes it, through exactly two
// operations:
//
//   - ResetUniform  — erase learned structure (trial start, restart)
//   - Update        — evaporate every cell, deposit along the arcs of the
//     reference tours with a convergence-scheduled blend, then clamp every
//     cell back into [TauMin, TauMax]
//
// ConvergenceFactor summarizes how close the matrix is to collapsing onto
// a few dominant arcs: ≈0 right after a uniform reset, →1 once every cell
// sits on one of the bounds.
//
// Design:
//   - Invariant: every cell lies in [TauMin, TauMax] after any update.
//   - Strict sentinel errors; no logging, no panics on user input.
//   - Not goroutine-safe: the driver mutates strictly between beam
//     constructions (see the solver package).
package pheromone
