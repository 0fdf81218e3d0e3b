// Package heuristic derives the greedy-desirability attributes used by the
// beam search's branching decisions.
//
// Three n×n matrices are computed once per instance and standardized into
// (0, 1]:
//
//   - c — normalized travel cost: the globally cheapest edge scores near 1,
//     the most expensive near 0; diagonal forced to 0
//   - l — latest-service urgency: how soon one must leave a node to still
//     make the tightest following deadline
//   - e — earliest-service urgency: the same gap on window openings
//
// At sampling time the three attributes are blended with random weights
// drawn once per beam construction from the unit simplex (SampleWeights),
// which randomizes the relative importance of cost versus urgency — a
// per-construction diversification mechanism.
//
// Design:
//   - Explicit one-time construction (NewCache), no lazy attribute checks.
//   - Immutable after construction; Desirability is a pure lookup blend.
//   - Standardized entries clamp to 1 and floor to a small positive
//     epsilon so no candidate is ever eliminated from sampling outright.
package heuristic
