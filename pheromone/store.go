// Package pheromone - the trail matrix engine.
//
// This file implements the Store operations: construction, uniform reset,
// read access for samplers, the convergence factor, and the evaporation +
// deposit update with its convergence-scheduled weight blend.
//
// Update rule (per cell):
//
//	τ ← clamp( τ·(1−ρ) + ρ·ξ , TauMin, TauMax )
//
// where ξ(i,j) is the weighted arc indicator over the reference tours.
// The weight schedule shifts emphasis from the iteration-best tour toward
// the restart-best and best-so-far tours as the convergence factor grows;
// once the driver switches to best-so-far updates, only that tour
// reinforces.
//
// Complexity: every operation is O(n²) except Row/At which are O(1).
package pheromone

// New allocates a Store of order n initialized to the uniform mid-value.
//
// Errors: ErrBadDimension, ErrBadBounds, ErrBadRate.
//
// Complexity: O(n²).
func New(n int, opts ...Option) (*Store, error) {
	if n < 2 {
		return nil, ErrBadDimension
	}

	o := DefaultOptions()
	var apply Option
	for _, apply = range opts {
		apply(&o)
	}
	if o.TauMin < 0 || o.TauMax <= o.TauMin {
		return nil, ErrBadBounds
	}
	if o.Initial < o.TauMin || o.Initial > o.TauMax {
		return nil, ErrBadBounds
	}
	if o.LearningRate <= 0 || o.LearningRate > 1 {
		return nil, ErrBadRate
	}

	s := &Store{n: n, opts: o, tau: make([][]float64, n)}
	var i int
	for i = 0; i < n; i++ {
		s.tau[i] = make([]float64, n)
	}
	s.ResetUniform()

	return s, nil
}

// Order returns n, the matrix order.
func (s *Store) Order() int { return s.n }

// Bounds returns the configured [TauMin, TauMax].
func (s *Store) Bounds() (float64, float64) { return s.opts.TauMin, s.opts.TauMax }

// ResetUniform sets every cell to the configured mid-value, erasing all
// learned structure. Used at trial start and on convergence restarts.
//
// Complexity: O(n²).
func (s *Store) ResetUniform() {
	var i, j int
	for i = 0; i < s.n; i++ {
		for j = 0; j < s.n; j++ {
			s.tau[i][j] = s.opts.Initial
		}
	}
}

// At returns τ(i,j). Indices are the caller's responsibility; the beam
// engine always passes in-range values.
func (s *Store) At(i, j int) float64 { return s.tau[i][j] }

// Row returns row i of the matrix. The slice is a live read-only view —
// callers must not mutate it. Samplers use it to avoid per-cell calls.
func (s *Store) Row(i int) []float64 { return s.tau[i] }

// ConvergenceFactor measures how close the matrix is to having collapsed
// onto a small set of strongly preferred arcs:
//
//	cf = 2·( Σ max(τmax−τ, τ−τmin) / (cells·(τmax−τmin)) − 0.5 )
//
// summed over off-diagonal cells and clamped into [0,1]. A freshly reset
// matrix at the mid-value yields ≈0; a matrix with every cell on a bound
// yields 1.
//
// Complexity: O(n²).
func (s *Store) ConvergenceFactor() float64 {
	var (
		sum   float64
		span  = s.opts.TauMax - s.opts.TauMin
		cells = float64(s.n * (s.n - 1))
		i, j  int
		hi    float64
		lo    float64
	)
	for i = 0; i < s.n; i++ {
		for j = 0; j < s.n; j++ {
			if i == j {
				continue
			}
			hi = s.opts.TauMax - s.tau[i][j]
			lo = s.tau[i][j] - s.opts.TauMin
			if hi > lo {
				sum += hi
			} else {
				sum += lo
			}
		}
	}

	cf := 2 * (sum/(cells*span) - 0.5)
	if cf < 0 {
		return 0
	}
	if cf > 1 {
		return 1
	}

	return cf
}

// Update evaporates every cell and deposits reinforcement along the arcs
// of the reference tours.
//
// Weight schedule (iteration-best, restart-best, best-so-far):
//
//	useBestSoFar:        0,   0,   1
//	cf < 0.4:            1,   0,   0
//	0.4 ≤ cf < 0.6:      2/3, 1/3, 0
//	0.6 ≤ cf < 0.8:      1/3, 2/3, 0
//	cf ≥ 0.8:            0,   1,   0
//
// A nil tour contributes nothing; its weight is redistributed
// proportionally over the remaining non-nil tours. If every tour is nil
// the call is a no-op. Every cell is clamped into [TauMin, TauMax] before
// returning.
//
// Errors: ErrBadFactor for cf outside [0,1]; ErrBadTour for a non-nil
// tour with fewer than two entries or out-of-range ids.
//
// Complexity: O(n²).
func (s *Store) Update(useBestSoFar bool, cf float64, iterationBest, restartBest, bestSoFar []int) error {
	if cf < 0 || cf > 1 {
		return ErrBadFactor
	}

	var wIB, wRB, wBS float64
	switch {
	case useBestSoFar:
		wBS = 1
	case cf < 0.4:
		wIB = 1
	case cf < 0.6:
		wIB, wRB = 2.0/3.0, 1.0/3.0
	case cf < 0.8:
		wIB, wRB = 1.0/3.0, 2.0/3.0
	default:
		wRB = 1
	}

	// Nil tours forfeit their share; renormalize over the rest.
	if iterationBest == nil {
		wIB = 0
	}
	if restartBest == nil {
		wRB = 0
	}
	if bestSoFar == nil {
		wBS = 0
	}
	total := wIB + wRB + wBS
	if total == 0 {
		return nil
	}
	wIB /= total
	wRB /= total
	wBS /= total

	// Validate tours before mutating anything.
	var err error
	if err = s.checkTour(iterationBest); err != nil {
		return err
	}
	if err = s.checkTour(restartBest); err != nil {
		return err
	}
	if err = s.checkTour(bestSoFar); err != nil {
		return err
	}

	// Evaporation across the whole matrix.
	var (
		rho  = s.opts.LearningRate
		keep = 1 - rho
		i, j int
	)
	for i = 0; i < s.n; i++ {
		for j = 0; j < s.n; j++ {
			s.tau[i][j] *= keep
		}
	}

	// Deposit along each reference tour's arcs.
	s.deposit(iterationBest, rho*wIB)
	s.deposit(restartBest, rho*wRB)
	s.deposit(bestSoFar, rho*wBS)

	// Clamp back into bounds.
	var (
		lo = s.opts.TauMin
		hi = s.opts.TauMax
	)
	for i = 0; i < s.n; i++ {
		for j = 0; j < s.n; j++ {
			if s.tau[i][j] < lo {
				s.tau[i][j] = lo
			} else if s.tau[i][j] > hi {
				s.tau[i][j] = hi
			}
		}
	}

	return nil
}

// checkTour validates a reference tour's shape. Nil is allowed.
func (s *Store) checkTour(tour []int) error {
	if tour == nil {
		return nil
	}
	if len(tour) < 2 {
		return ErrBadTour
	}
	var v int
	for _, v = range tour {
		if v < 0 || v >= s.n {
			return ErrBadTour
		}
	}

	return nil
}

// deposit adds amount along every arc of the tour. Nil or zero-weight
// tours are skipped.
func (s *Store) deposit(tour []int, amount float64) {
	if tour == nil || amount == 0 {
		return
	}
	var i int
	for i = 0; i+1 < len(tour); i++ {
		s.tau[tour[i]][tour[i+1]] += amount
	}
}
