// Package solver - Beam-ACO trial driver.
//
// This file implements the outer loop of the metaheuristic: trials,
// iteration/restart/best-so-far bookkeeping, the convergence-driven phase
// machine, and the scheduled pheromone update.
//
// Contracts:
//   - Deterministic for a fixed seed; trial k uses a derived substream.
//   - The time budget is a per-trial bound checked at iteration
//     boundaries; constructions are never preempted.
//   - Tours rank by travel cost, ties by the lexicographically least node
//     sequence. Feasibility is reported, not optimized for.
//
// Complexity: O(Trials·Iterations·Ants·B·n²) with B the number of partial
// tours expanded per construction.
package solver

import (
	"math"
	"time"

	"github.com/katalvlaran/tsptw/beam"
	"github.com/katalvlaran/tsptw/heuristic"
	"github.com/katalvlaran/tsptw/instance"
	"github.com/katalvlaran/tsptw/pheromone"
)

// New builds an Engine for inst. The attribute cache and the pheromone
// store are created here; beam parameters are validated by constructing a
// probe search so that bad options fail fast instead of on first Run.
func New(inst *instance.Instance, opts ...Option) (*Engine, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}

	var (
		o  = DefaultOptions()
		fn Option
	)
	for _, fn = range opts {
		fn(&o)
	}
	if o.Iterations < 1 {
		return nil, ErrBadIterations
	}
	if o.Trials < 1 {
		return nil, ErrBadTrials
	}
	if o.Ants < 1 {
		return nil, ErrBadAnts
	}
	if o.TimeLimit < 0 {
		return nil, ErrBadTimeLimit
	}
	if o.RestartThreshold <= 0 || o.RestartThreshold > 1 {
		return nil, ErrBadThreshold
	}

	cache, err := heuristic.NewCache(inst)
	if err != nil {
		return nil, err
	}
	store, err := pheromone.New(inst.NumNodes(),
		pheromone.WithBounds(o.TauMin, o.TauMax),
		pheromone.WithInitial((o.TauMin+o.TauMax)/2),
		pheromone.WithLearningRate(o.LearningRate),
	)
	if err != nil {
		return nil, err
	}

	e := &Engine{inst: inst, cache: cache, store: store, opts: o}
	if _, err = e.newSearch(0); err != nil {
		return nil, err
	}

	return e, nil
}

// newSearch builds the beam engine for one trial. Trial 0 runs on the
// base seed verbatim; later trials on SplitMix64-derived substreams.
func (e *Engine) newSearch(trial int) (*beam.Search, error) {
	var seed int64
	seed = e.opts.Seed
	if trial > 0 {
		seed = beam.DeriveSeed(e.opts.Seed, uint64(trial))
	}

	beamOpts := []beam.Option{
		beam.WithBeamWidth(e.opts.BeamWidth),
		beam.WithMu(e.opts.Mu),
		beam.WithDeterminismRate(e.opts.DeterminismRate),
		beam.WithSeed(seed),
	}
	if e.opts.Reduce {
		beamOpts = append(beamOpts, beam.WithReduce())
	}

	return beam.New(e.inst, e.cache, e.store, beamOpts...)
}

// Run executes all trials and returns the best tour found overall.
func (e *Engine) Run() (Result, error) {
	var (
		start = time.Now()
		best  []int
		done  int
		trial int
		err   error
	)

	for trial = 0; trial < e.opts.Trials; trial++ {
		best, done, err = e.runTrial(trial, start, best, done)
		if err != nil {
			return Result{}, err
		}
	}

	if best == nil {
		return Result{}, ErrNoSolution
	}

	var (
		cost, _ = e.inst.TourCost(best)
		viol, _ = e.inst.Violations(best)
	)

	return Result{
		Tour:       best,
		Cost:       cost,
		Violations: viol,
		Feasible:   viol == 0,
		Iterations: done,
		Duration:   time.Since(start),
	}, nil
}

// runTrial executes one trial against the shared pheromone store and
// folds its best-so-far tour into the running overall best.
func (e *Engine) runTrial(trial int, start time.Time, best []int, done int) ([]int, int, error) {
	e.store.ResetUniform()
	search, err := e.newSearch(trial)
	if err != nil {
		return nil, 0, err
	}

	var (
		bestSoFar     []int
		restartBest   []int
		iterationBest []int
		tour          []int
		phase         = PhaseExploring
		restart       bool
		cf            float64
		trialStart    = time.Now()
		iter, ant     int
	)

	for iter = 0; iter < e.opts.Iterations; iter++ {
		if e.opts.TimeLimit > 0 && time.Since(trialStart) > e.opts.TimeLimit {
			break
		}

		iterationBest = nil
		for ant = 0; ant < e.opts.Ants; ant++ {
			tour, err = search.Construct()
			if err != nil {
				return nil, 0, err
			}
			iterationBest = e.better(tour, iterationBest)
		}
		if e.opts.LocalSearch {
			tour, _, err = OneOpt(e.inst, iterationBest)
			if err != nil {
				return nil, 0, err
			}
			iterationBest = e.better(tour, iterationBest)
		}

		// The iteration right after a restart clears the restart best
		// instead of seeding it with the fresh construction.
		if restart {
			restart = false
			restartBest = nil
			bestSoFar = e.better(bestSoFar, iterationBest)
		} else {
			restartBest = e.better(iterationBest, restartBest)
			bestSoFar = e.better(bestSoFar, iterationBest)
		}
		best = e.better(best, bestSoFar)

		cf = e.store.ConvergenceFactor()
		if phase == PhaseBSActive && cf > e.opts.RestartThreshold {
			e.store.ResetUniform()
			phase = PhaseExploring
			restart = true
		} else {
			if cf > e.opts.RestartThreshold {
				phase = PhaseBSActive
			}
			err = e.store.Update(phase == PhaseBSActive, cf, iterationBest, restartBest, bestSoFar)
			if err != nil {
				return nil, 0, err
			}
		}

		done++
		if e.opts.Progress != nil {
			e.opts.Progress(Snapshot{
				Trial:             trial,
				Iteration:         iter,
				Phase:             phase,
				ConvergenceFactor: cf,
				BestCost:          e.cost(best),
				Elapsed:           time.Since(start),
			})
		}
	}

	return best, done, nil
}

// better returns the cheaper of two tours, the lexicographically least on
// equal cost, and the non-nil one when the other is nil. Tours are never
// mutated after construction, so no copy is taken.
func (e *Engine) better(a, b []int) []int {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	var (
		ca = e.cost(a)
		cb = e.cost(b)
	)
	if ca < cb || (ca == cb && instance.LessTours(a, b)) {
		return a
	}

	return b
}

// cost returns the travel cost of an internally produced tour.
func (e *Engine) cost(tour []int) float64 {
	if tour == nil {
		return math.Inf(1)
	}
	c, _ := e.inst.TourCost(tour)

	return c
}
