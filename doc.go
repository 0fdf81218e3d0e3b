// Package tsptw solves the Traveling Salesman Problem with Time Windows
// using the Beam-ACO metaheuristic — a probabilistic beam search whose
// branching decisions are guided by an evolving pheromone matrix.
//
// 🚀 What is tsptw?
//
//	A pure-Go solver library built from small, composable packages:
//		• instance/  — TSPTW instances: distance matrix, time windows,
//		  tour cost, feasibility, JSON (de)serialization, synthesis
//		• pheromone/ — bounded trail matrix: uniform reset, evaporation
//		  + deposit updates, convergence factor
//		• heuristic/ — standardized greedy attributes (travel cost,
//		  latest/earliest service urgency) and random simplex weights
//		• beam/      — probabilistic beam construction with stochastic
//		  sampling and optional width reduction
//		• solver/    — the Beam-ACO trial driver: iteration loop, restart
//		  policy, best-so-far bookkeeping, optional 1-opt local search
//
// ✨ Design guarantees
//
//   - Deterministic — all randomness flows through seeded generators;
//     the same seed reproduces the same run on any platform
//   - Strict sentinels — library code returns sentinel errors only;
//     no logging, no panics on user input
//   - Hot-path discipline — dense row access, no hidden allocations in
//     sampling loops
//
// Command-line front ends live under cmd/: tsptw-solve runs the solver
// over a JSON instance file, tsptw-gen synthesizes random instances.
//
//	go get github.com/katalvlaran/tsptw
package tsptw
