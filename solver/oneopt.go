// Package solver - 1-opt local search.
//
// OneOpt polishes a tour in the remove-and-reinsert neighborhood: one
// customer leaves the tour and reenters at a different interior position.
// A move is accepted only when it strictly reduces travel cost without
// increasing the violation count, so a feasible tour stays feasible. The
// sweep restarts after every accepted move (first improvement) until no
// move qualifies.
//
// Complexity: O(n³) per sweep in the worst case (n² moves, O(n)
// evaluation each); bounded in practice by the number of improvements.
package solver

import "github.com/katalvlaran/tsptw/instance"

// OneOpt runs the remove-and-reinsert local search on tour and returns
// the improved tour and its cost. The input tour is not mutated.
func OneOpt(inst *instance.Instance, tour []int) ([]int, float64, error) {
	if inst == nil {
		return nil, 0, ErrNilInstance
	}
	if err := inst.ValidateTour(tour); err != nil {
		return nil, 0, err
	}

	var (
		n        = inst.NumNodes()
		best     = instance.CopyTour(tour)
		bestCost float64
		bestViol int
		cand     []int
		cost     float64
		viol     int
		from, to int
		improved = true
	)
	bestCost, _ = inst.TourCost(best)
	bestViol, _ = inst.Violations(best)

	for improved {
		improved = false
		for from = 1; from < n && !improved; from++ {
			for to = 1; to < n && !improved; to++ {
				if to == from {
					continue
				}
				cand = reinsert(best, from, to)
				cost, _ = inst.TourCost(cand)
				viol, _ = inst.Violations(cand)
				if cost < bestCost && viol <= bestViol {
					best = cand
					bestCost = cost
					bestViol = viol
					improved = true
				}
			}
		}
	}

	return best, bestCost, nil
}

// reinsert removes the customer at interior position from and reinserts
// it so that it lands at interior position to of the shortened sequence.
// Returns a fresh closed tour.
func reinsert(tour []int, from, to int) []int {
	var (
		n    = len(tour) - 1
		cust = tour[from]
		seq  = make([]int, 0, n)
		out  = make([]int, 0, n+1)
	)
	seq = append(seq, tour[:from]...)
	seq = append(seq, tour[from+1:n]...)

	out = append(out, seq[:to]...)
	out = append(out, cust)
	out = append(out, seq[to:]...)
	out = append(out, instance.Depot)

	return out
}
