package solver

import (
	"errors"
	"time"

	"github.com/katalvlaran/tsptw/beam"
	"github.com/katalvlaran/tsptw/heuristic"
	"github.com/katalvlaran/tsptw/instance"
	"github.com/katalvlaran/tsptw/pheromone"
)

// Sentinel errors returned by the trial driver.
var (
	// ErrNilInstance indicates that New or OneOpt received a nil instance.
	ErrNilInstance = errors.New("solver: instance is nil")

	// ErrBadIterations indicates Iterations < 1.
	ErrBadIterations = errors.New("solver: iterations must be at least 1")

	// ErrBadTrials indicates Trials < 1.
	ErrBadTrials = errors.New("solver: trials must be at least 1")

	// ErrBadAnts indicates Ants < 1.
	ErrBadAnts = errors.New("solver: ants must be at least 1")

	// ErrBadTimeLimit indicates a negative wall-clock budget.
	ErrBadTimeLimit = errors.New("solver: time limit must not be negative")

	// ErrBadThreshold indicates a restart threshold outside (0, 1].
	ErrBadThreshold = errors.New("solver: restart threshold must be in (0, 1]")

	// ErrNoSolution indicates that the time budget expired before a single
	// iteration completed.
	ErrNoSolution = errors.New("solver: no solution constructed")
)

// Default driver parameters, matching the reference configuration.
const (
	DefaultIterations       = 100
	DefaultTrials           = 1
	DefaultAnts             = 1
	DefaultRestartThreshold = 0.99
)

// Phase is the state of the pheromone-update machine.
type Phase int

const (
	// PhaseExploring deposits along iteration-best and restart-best tours
	// under the convergence-factor schedule.
	PhaseExploring Phase = iota

	// PhaseBSActive deposits along the best-so-far tour only.
	PhaseBSActive
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	if p == PhaseBSActive {
		return "bs-active"
	}

	return "exploring"
}

// Options configures an Engine. Beam and pheromone parameters pass
// through to the respective packages and are validated there.
type Options struct {
	Iterations       int
	Trials           int
	Ants             int
	TimeLimit        time.Duration // per trial; 0 means unlimited
	RestartThreshold float64
	LocalSearch      bool
	Seed             int64

	BeamWidth       int
	Mu              float64
	DeterminismRate float64
	Reduce          bool

	LearningRate float64
	TauMin       float64
	TauMax       float64

	Progress func(Snapshot)
}

// Option is a functional option for configuring an Engine.
type Option func(*Options)

// WithIterations sets the per-trial iteration count.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithTrials sets the number of independent trials.
func WithTrials(n int) Option {
	return func(o *Options) { o.Trials = n }
}

// WithAnts sets the number of constructions per iteration.
func WithAnts(n int) Option {
	return func(o *Options) { o.Ants = n }
}

// WithTimeLimit sets the per-trial wall-clock budget (0 ⇒ unlimited).
// The budget is checked once per iteration boundary.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithRestartThreshold sets the convergence factor above which the
// best-so-far phase engages and, once engaged, a restart triggers.
func WithRestartThreshold(t float64) Option {
	return func(o *Options) { o.RestartThreshold = t }
}

// WithLocalSearch enables 1-opt polishing of each iteration best.
func WithLocalSearch() Option {
	return func(o *Options) { o.LocalSearch = true }
}

// WithSeed sets the base RNG seed (0 ⇒ fixed default stream).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithBeamWidth sets the beam width k_bw.
func WithBeamWidth(k int) Option {
	return func(o *Options) { o.BeamWidth = k }
}

// WithMu sets the beam child-budget amplification factor.
func WithMu(mu float64) Option {
	return func(o *Options) { o.Mu = mu }
}

// WithDeterminismRate sets the greedy-draw probability of the beam.
func WithDeterminismRate(rate float64) Option {
	return func(o *Options) { o.DeterminismRate = rate }
}

// WithReduce enables top-k_bw beam pruning between depths.
func WithReduce() Option {
	return func(o *Options) { o.Reduce = true }
}

// WithLearningRate sets the pheromone learning rate rho.
func WithLearningRate(rho float64) Option {
	return func(o *Options) { o.LearningRate = rho }
}

// WithTauBounds sets the pheromone trail bounds.
func WithTauBounds(min, max float64) Option {
	return func(o *Options) {
		o.TauMin = min
		o.TauMax = max
	}
}

// WithProgress installs a per-iteration callback. The callback runs
// synchronously on the driving goroutine; keep it cheap.
func WithProgress(fn func(Snapshot)) Option {
	return func(o *Options) { o.Progress = fn }
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		Iterations:       DefaultIterations,
		Trials:           DefaultTrials,
		Ants:             DefaultAnts,
		RestartThreshold: DefaultRestartThreshold,
		BeamWidth:        beam.DefaultBeamWidth,
		Mu:               beam.DefaultMu,
		DeterminismRate:  beam.DefaultDeterminismRate,
		LearningRate:     pheromone.DefaultLearningRate,
		TauMin:           pheromone.DefaultTauMin,
		TauMax:           pheromone.DefaultTauMax,
	}
}

// Snapshot is the per-iteration progress report.
type Snapshot struct {
	Trial             int
	Iteration         int
	Phase             Phase
	ConvergenceFactor float64
	BestCost          float64
	Elapsed           time.Duration
}

// Result is the outcome of a full Run.
type Result struct {
	Tour       []int
	Cost       float64
	Violations int
	Feasible   bool
	Iterations int // total across trials
	Duration   time.Duration
}

// Engine is a reusable Beam-ACO driver bound to one instance. Construct
// via New; Run is not safe for concurrent use.
type Engine struct {
	inst  *instance.Instance
	cache *heuristic.Cache
	store *pheromone.Store
	opts  Options
}
