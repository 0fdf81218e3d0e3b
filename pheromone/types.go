package pheromone

import "errors"

// Sentinel errors returned by the pheromone store.
var (
	// ErrBadDimension indicates n < 2.
	ErrBadDimension = errors.New("pheromone: matrix order must be at least 2")

	// ErrBadBounds indicates TauMin/TauMax/Initial violating
	// 0 ≤ TauMin < TauMax and TauMin ≤ Initial ≤ TauMax.
	ErrBadBounds = errors.New("pheromone: invalid trail bounds")

	// ErrBadRate indicates a learning rate outside (0, 1].
	ErrBadRate = errors.New("pheromone: learning rate must be in (0, 1]")

	// ErrBadTour indicates a reference tour with out-of-range node ids or
	// fewer than two entries.
	ErrBadTour = errors.New("pheromone: invalid reference tour")

	// ErrBadFactor indicates a convergence factor outside [0, 1].
	ErrBadFactor = errors.New("pheromone: convergence factor out of range")
)

// Default trail parameters, matching the reference Beam-ACO configuration.
const (
	// DefaultTauMin is the lower trail bound.
	DefaultTauMin = 0.001

	// DefaultTauMax is the upper trail bound.
	DefaultTauMax = 0.999

	// DefaultInitial is the uniform mid-value set by ResetUniform.
	DefaultInitial = 0.5

	// DefaultLearningRate is the evaporation/deposit rate rho.
	DefaultLearningRate = 0.1
)

// Options configures a Store.
//
// TauMin/TauMax   – hard bounds every cell is clamped into after updates.
// Initial         – the uniform value written by ResetUniform.
// LearningRate    – rho: evaporation factor (1-rho) and deposit scale rho.
type Options struct {
	TauMin       float64
	TauMax       float64
	Initial      float64
	LearningRate float64
}

// Option is a functional option for configuring a Store.
type Option func(*Options)

// WithBounds sets the trail bounds [min, max].
func WithBounds(min, max float64) Option {
	return func(o *Options) {
		o.TauMin = min
		o.TauMax = max
	}
}

// WithInitial sets the uniform reset value.
func WithInitial(v float64) Option {
	return func(o *Options) {
		o.Initial = v
	}
}

// WithLearningRate sets rho.
func WithLearningRate(rho float64) Option {
	return func(o *Options) {
		o.LearningRate = rho
	}
}

// DefaultOptions returns the reference configuration:
// bounds [0.001, 0.999], mid-value 0.5, rho 0.1.
func DefaultOptions() Options {
	return Options{
		TauMin:       DefaultTauMin,
		TauMax:       DefaultTauMax,
		Initial:      DefaultInitial,
		LearningRate: DefaultLearningRate,
	}
}

// Store is the bounded n×n trail matrix. Construct via New.
type Store struct {
	n    int
	opts Options
	tau  [][]float64
}
