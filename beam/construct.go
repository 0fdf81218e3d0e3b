// Package beam - probabilistic beam construction.
//
// Construct implements one full tour construction: a depth-synchronous
// expansion of partial tours from the depot, with the child budget
// ⌊Mu·BeamWidth⌋ shrinking by one per depth (floored at 1), stochastic
// sampling without replacement among the unvisited customers, optional
// top-k_bw pruning, and minimum-cost leaf selection with a lexicographic
// tie-break.
//
// Contracts:
//   - The returned tour always starts and ends at the depot and visits
//     every customer exactly once.
//   - The pheromone store and the attribute cache are only read.
//   - ErrInfeasibleBranch is returned (never panicked) if sampling mass
//     vanishes, which indicates corrupted exclusion bookkeeping.
//
// Complexity: O(F·n) per depth where F is the frontier size; frontier
// growth is bounded by the decrementing child budget (and by BeamWidth
// when pruning is enabled).
package beam

import (
	"math"
	"sort"

	"github.com/katalvlaran/tsptw/heuristic"
	"github.com/katalvlaran/tsptw/instance"
	"github.com/katalvlaran/tsptw/pheromone"
)

// partial is one node of the construction forest: a depot-rooted prefix
// of a tour plus its accumulated travel cost.
type partial struct {
	path    []int
	visited []bool
	cost    float64
}

// New builds a Search bound to the given instance, attribute cache, and
// pheromone store. All three must agree on the matrix order.
//
// Complexity: O(1) beyond option validation.
func New(inst *instance.Instance, cache *heuristic.Cache, store *pheromone.Store, opts ...Option) (*Search, error) {
	if inst == nil || cache == nil || store == nil {
		return nil, ErrNilDependency
	}

	var (
		o  = DefaultOptions()
		fn Option
	)
	for _, fn = range opts {
		fn(&o)
	}

	n := inst.NumNodes()
	if cache.Order() != n || store.Order() != n {
		return nil, ErrDimensionMismatch
	}
	if o.BeamWidth < 1 {
		return nil, ErrBadBeamWidth
	}
	if o.Mu < 1 {
		return nil, ErrBadMu
	}
	if o.DeterminismRate < 0 || o.DeterminismRate > 1 {
		return nil, ErrBadRate
	}

	return &Search{
		inst:  inst,
		cache: cache,
		store: store,
		opts:  o,
		rng:   rngFromSeed(o.Seed),
	}, nil
}

// Construct performs one beam construction and returns the cheapest
// complete tour found, closed with the depot. Ties on cost resolve to
// the lexicographically least node sequence. The attribute blend weights
// are resampled from the unit simplex on every call.
//
// Complexity: O(B·n²) time with B the total number of partial tours
// expanded; O(B·n) space.
func (s *Search) Construct() ([]int, error) {
	var (
		n       = s.inst.NumNodes()
		w       = heuristic.SampleWeights(s.rng)
		budget  = int(s.opts.Mu * float64(s.opts.BeamWidth))
		root    = &partial{path: []int{instance.Depot}, visited: make([]bool, n)}
		next    []*partial
		p       *partial
		k, c, j int
		err     error
	)
	root.visited[instance.Depot] = true
	frontier := []*partial{root}

	var remaining int
	for remaining = n - 1; remaining > 0; remaining-- {
		next = make([]*partial, 0, len(frontier)*budget)
		for _, p = range frontier {
			k = budget
			if remaining < k {
				k = remaining
			}

			// Siblings draw without replacement: a chosen customer is
			// excluded for the remaining draws of this frontier entry.
			excluded := make([]bool, n)
			copy(excluded, p.visited)
			for c = 0; c < k; c++ {
				j, err = s.sample(w, p.path[len(p.path)-1], excluded)
				if err != nil {
					return nil, err
				}
				excluded[j] = true
				next = append(next, s.extend(p, j))
			}
		}

		if s.opts.Reduce && len(next) > s.opts.BeamWidth {
			sort.Slice(next, func(a, b int) bool {
				if next[a].cost != next[b].cost {
					return next[a].cost < next[b].cost
				}
				return instance.LessTours(next[a].path, next[b].path)
			})
			next = next[:s.opts.BeamWidth]
		}

		frontier = next
		if budget > 1 {
			budget--
		}
	}

	// Close every leaf with the depot and keep the cheapest tour.
	var (
		bestTour []int
		bestCost = math.Inf(1)
		tour     []int
		cost     float64
	)
	for _, p = range frontier {
		tour = make([]int, 0, n+1)
		tour = append(tour, p.path...)
		tour = append(tour, instance.Depot)
		cost, err = s.inst.TourCost(tour)
		if err != nil {
			return nil, err
		}
		if cost < bestCost || (cost == bestCost && instance.LessTours(tour, bestTour)) {
			bestCost = cost
			bestTour = tour
		}
	}

	return bestTour, nil
}

// extend returns a new partial with customer j appended to p. The parent
// is not mutated; path and visited are copied.
func (s *Search) extend(p *partial, j int) *partial {
	var (
		last  = p.path[len(p.path)-1]
		child = &partial{
			path:    make([]int, len(p.path), len(p.path)+1),
			visited: make([]bool, len(p.visited)),
		}
		w float64
	)
	copy(child.path, p.path)
	copy(child.visited, p.visited)
	child.path = append(child.path, j)
	child.visited[j] = true
	w, _ = s.inst.EdgeWeight(last, j)
	child.cost = p.cost + w

	return child
}

// sample draws one unexcluded customer to follow last. With probability
// DeterminismRate the draw is greedy (argmax of τ·η, first index on
// ties); otherwise it is roulette-wheel over the same products. Excluded
// customers carry zero mass in both regimes.
//
// Complexity: O(n).
func (s *Search) sample(w heuristic.Weights, last int, excluded []bool) (int, error) {
	var (
		row = s.store.Row(last)
		n   = len(row)
		j   int
		v   float64
	)

	if s.rng.Float64() <= s.opts.DeterminismRate {
		var (
			best  = -1
			bestV float64
		)
		for j = 0; j < n; j++ {
			if excluded[j] {
				continue
			}
			v = row[j] * s.cache.Desirability(w, last, j)
			if v > bestV {
				bestV = v
				best = j
			}
		}
		if best < 0 {
			return 0, ErrInfeasibleBranch
		}

		return best, nil
	}

	var (
		mass  = make([]float64, n)
		total float64
	)
	for j = 0; j < n; j++ {
		if excluded[j] {
			continue
		}
		v = row[j] * s.cache.Desirability(w, last, j)
		mass[j] = v
		total += v
	}
	if total <= 0 {
		return 0, ErrInfeasibleBranch
	}

	var (
		r    = s.rng.Float64() * total
		pick = -1
	)
	for j = 0; j < n; j++ {
		if excluded[j] {
			continue
		}
		pick = j // fallback for accumulated rounding at the tail
		r -= mass[j]
		if r < 0 {
			break
		}
	}

	return pick, nil
}
