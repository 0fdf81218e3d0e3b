package beam

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/tsptw/heuristic"
	"github.com/katalvlaran/tsptw/instance"
	"github.com/katalvlaran/tsptw/pheromone"
)

// Sentinel errors returned by the beam engine.
var (
	// ErrNilDependency indicates a nil instance, cache, or store.
	ErrNilDependency = errors.New("beam: nil dependency")

	// ErrDimensionMismatch indicates that instance, cache, and store
	// disagree on the matrix order.
	ErrDimensionMismatch = errors.New("beam: dimension mismatch")

	// ErrBadBeamWidth indicates BeamWidth < 1.
	ErrBadBeamWidth = errors.New("beam: beam width must be at least 1")

	// ErrBadMu indicates Mu < 1.
	ErrBadMu = errors.New("beam: mu must be at least 1")

	// ErrBadRate indicates a determinism rate outside [0, 1].
	ErrBadRate = errors.New("beam: determinism rate must be in [0, 1]")

	// ErrInfeasibleBranch signals an internal invariant violation: every
	// remaining candidate was excluded, or the sampling mass summed to
	// zero. Correct visited-exclusion bookkeeping makes this unreachable.
	ErrInfeasibleBranch = errors.New("beam: infeasible branch")
)

// Default construction parameters, matching the reference configuration.
const (
	// DefaultBeamWidth is the target beam width k_bw.
	DefaultBeamWidth = 1

	// DefaultMu is the stochastic-sampling amplification factor.
	DefaultMu = 4.0

	// DefaultDeterminismRate is the probability of a greedy draw.
	DefaultDeterminismRate = 0.2
)

// Options configures a Search.
//
// BeamWidth       – target beam width k_bw (≥ 1).
// Mu              – child-budget amplification: the root budget is
//                   ⌊Mu·BeamWidth⌋ (Mu ≥ 1).
// DeterminismRate – probability of choosing the next customer greedily
//                   instead of by weighted sampling (in [0, 1]).
// Reduce          – enable top-k_bw pruning between depths (optional;
//                   the reference construction expands fully).
// Seed            – RNG seed; 0 selects the fixed default stream.
type Options struct {
	BeamWidth       int
	Mu              float64
	DeterminismRate float64
	Reduce          bool
	Seed            int64
}

// Option is a functional option for configuring a Search.
type Option func(*Options)

// WithBeamWidth sets the target beam width k_bw.
func WithBeamWidth(k int) Option {
	return func(o *Options) { o.BeamWidth = k }
}

// WithMu sets the stochastic-sampling amplification factor.
func WithMu(mu float64) Option {
	return func(o *Options) { o.Mu = mu }
}

// WithDeterminismRate sets the greedy-draw probability.
func WithDeterminismRate(rate float64) Option {
	return func(o *Options) { o.DeterminismRate = rate }
}

// WithReduce enables pruning of each depth's frontier to the best
// BeamWidth partial tours by accumulated travel cost.
func WithReduce() Option {
	return func(o *Options) { o.Reduce = true }
}

// WithSeed sets the RNG seed (0 ⇒ fixed default stream).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// DefaultOptions returns the reference configuration: beam width 1,
// mu 4.0, determinism rate 0.2, no pruning, deterministic default seed.
func DefaultOptions() Options {
	return Options{
		BeamWidth:       DefaultBeamWidth,
		Mu:              DefaultMu,
		DeterminismRate: DefaultDeterminismRate,
	}
}

// Search is a reusable beam-construction engine bound to one instance,
// one attribute cache, and one pheromone store. Construct via New.
type Search struct {
	inst  *instance.Instance
	cache *heuristic.Cache
	store *pheromone.Store
	opts  Options
	rng   *rand.Rand
}
