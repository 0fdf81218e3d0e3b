// Package beam implements the probabilistic beam construction at the core
// of the Beam-ACO solver.
//
// Construct grows a bounded-width forest of partial tours rooted at the
// depot. At every depth each frontier entry draws up to its child budget
// of distinct next customers by stochastic sampling over the product of
// pheromone trail and heuristic desirability; a drawn customer leaves the
// candidate set, so siblings are always distinct. The child budget starts
// at ⌊Mu·BeamWidth⌋ and shrinks by one per depth (floored at 1). Leaves
// are complete tours; Construct returns the cheapest one, closed with the
// depot, breaking cost ties by the lexicographically least node sequence.
//
// Sampling runs under two regimes, switched per draw by a uniform q
// against DeterminismRate: greedy argmax of τ·η, or roulette-wheel
// selection over the same products. Customers already in the partial tour
// carry zero mass in both regimes — a required correctness property; a
// zero-mass state signals a broken invariant via ErrInfeasibleBranch.
//
// True beam pruning ("Reduce" to the best BeamWidth partial tours per
// depth, ranked by accumulated travel cost) is available behind
// WithReduce. It changes running time, not result semantics, and is off
// by default to match the reference behavior.
//
// Design:
//   - Deterministic: seed routing per the package RNG policy; no
//     time-based randomness.
//   - Reentrant: every Construct call works on fresh scratch state; the
//     pheromone store and attribute cache are read-only here.
//   - Strict sentinels only; no logging, no panics on user input.
package beam
