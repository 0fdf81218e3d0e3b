// Package solver drives the Beam-ACO metaheuristic over a TSPTW instance.
//
// Run executes a configurable number of independent trials. Each trial
// resets the pheromone matrix to its midpoint and iterates:
//
//  1. Construct Ants candidate tours with the beam engine and keep the
//     cheapest as the iteration best (optionally polished by 1-opt).
//  2. Fold the iteration best into the restart-best and best-so-far
//     bookkeeping. An iteration immediately after a restart clears the
//     restart best instead of updating it.
//  3. Recompute the convergence factor of the pheromone matrix.
//  4. If the best-so-far phase is active and the factor exceeds the
//     restart threshold, reset the matrix and flag a restart; otherwise
//     possibly enter the best-so-far phase and apply the scheduled
//     pheromone update.
//
// The two phases form an explicit machine: PhaseExploring deposits along
// iteration-best and restart-best tours under the convergence-factor
// schedule; PhaseBSActive deposits along the best-so-far tour only, until
// convergence forces a restart.
//
// The wall-clock budget is checked once per iteration boundary; a running
// construction is never preempted. Tours never compare by feasibility
// here: ranking is by travel cost with a lexicographic tie-break, and
// feasibility is reported on the final result.
//
// Design:
//   - Single-threaded and synchronous; one pheromone store, mutated only
//     between constructions.
//   - Deterministic for a fixed seed: trial k runs on a SplitMix64-derived
//     substream of the base seed.
//   - Strict sentinels only; no logging, no panics on user input.
package solver
