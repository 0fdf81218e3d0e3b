// Package instance models TSPTW problem instances.
//
// An Instance couples a dense travel-time matrix with one service window
// per node and exposes the evaluators every solver layer consumes:
//
//   - NumNodes, EdgeWeight, TimeWindow — graph and window lookups
//   - DistanceMin / DistanceMax       — off-diagonal edge-weight extrema
//   - TourCost                        — total travel cost of a closed tour
//   - Violations / VerifySolution     — time-window feasibility
//
// Tours are closed Hamiltonian cycles over vertex indices: for n nodes,
// len(tour) == n+1 with tour[0] == tour[n] == 0 (the depot) and the
// interior a permutation of {1..n-1}. ValidateTour enforces exactly that.
//
// The package also carries the file format shared by the cmd/ front ends
// (a JSON document with the instance and an embedded solution record) and
// Synthesize, a deterministic random-instance generator used by tests and
// cmd/tsptw-gen.
//
// Design:
//   - Immutable after construction; evaluators are side-effect free.
//   - Strict sentinel errors only; no logging, no panics on user input.
//   - Costs are stabilized to 1e-9 to avoid cross-platform FP drift.
package instance
