// Package instance - deterministic random-instance synthesis.
//
// Synthesize builds symmetric Euclidean instances with time windows laid
// out along a random reference tour, so every generated instance admits at
// least one feasible solution. Used by cmd/tsptw-gen and by tests that
// need non-trivial but solvable inputs.
//
// Complexity: O(n²) time, O(n²) space.
package instance

import (
	"math"
	"math/rand"
)

// SynthesisConfig controls Synthesize.
//
// Span   – coordinate range: points are drawn uniformly from [0,Span)².
// Window – width of each node's service window around its reference
//          arrival time; 0 means unconstrained windows [0, +Inf).
// Seed   – RNG seed; 0 selects the fixed default stream.
type SynthesisConfig struct {
	Span   float64
	Window float64
	Seed   int64
}

// defaultSeed is the fixed "zero" seed used when callers pass Seed==0.
const defaultSeed int64 = 1

// Synthesize generates a random symmetric instance with n nodes.
//
// Steps:
//  1. Draw n points uniformly in [0,Span)²; distances are Euclidean.
//  2. Draw a random reference permutation starting at the depot and walk
//     it, recording each node's arrival time.
//  3. Center each node's window on its reference arrival, half-width
//     Window/2 (Earliest clamped at 0). Window==0 disables constraints.
//
// Contract: n ≥ 2, Span > 0, Window ≥ 0; ErrDimensionMismatch or
// ErrBadWindow otherwise.
func Synthesize(n int, cfg SynthesisConfig) (*Instance, error) {
	if n < 2 {
		return nil, ErrDimensionMismatch
	}
	if cfg.Span <= 0 {
		return nil, ErrDimensionMismatch
	}
	if cfg.Window < 0 {
		return nil, ErrBadWindow
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	// Random points and the symmetric distance matrix.
	var (
		xs   = make([]float64, n)
		ys   = make([]float64, n)
		dist = make([][]float64, n)
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		xs[i] = rng.Float64() * cfg.Span
		ys[i] = rng.Float64() * cfg.Span
		dist[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(xs[i]-xs[j], ys[i]-ys[j])
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	// Reference permutation: depot first, rest shuffled.
	perm := make([]int, n)
	for i = 0; i < n; i++ {
		perm[i] = i
	}
	for i = n - 1; i > 1; i-- {
		j = 1 + rng.Intn(i)
		perm[i], perm[j] = perm[j], perm[i]
	}

	// Windows centered on the reference schedule.
	windows := make([]Window, n)
	if cfg.Window == 0 {
		for i = 0; i < n; i++ {
			windows[i] = Window{Earliest: 0, Latest: math.MaxFloat64}
		}
	} else {
		var (
			clock float64
			half  = cfg.Window / 2
			early float64
		)
		windows[Depot] = Window{Earliest: 0, Latest: math.MaxFloat64}
		for i = 1; i < n; i++ {
			clock += dist[perm[i-1]][perm[i]]
			early = clock - half
			if early < 0 {
				early = 0
			}
			windows[perm[i]] = Window{Earliest: early, Latest: clock + half}
		}
	}

	return New(dist, windows)
}
