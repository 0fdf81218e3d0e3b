// Package instance - cost and feasibility evaluators.
//
// TourCost sums travel times along a closed tour; Violations simulates the
// schedule (waiting at early arrivals) and counts missed deadlines;
// VerifySolution combines structural validity with zero violations.
//
// Design:
//   - Side-effect free; strict sentinels from types.go on invalid input.
//   - Stable summation: costs rounded to 1e-9 (see round1e9) so results
//     compare equal across platforms and optimization levels.
//
// Complexity: all evaluators are O(n) time, O(n) space (ValidateTour marker).
package instance

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost returns the total travel time of a closed tour.
//
// Contract: tour must satisfy ValidateTour (len n+1, depot-closed,
// interior permutation).
//
// Complexity: O(n).
func (in *Instance) TourCost(tour []int) (float64, error) {
	if err := in.ValidateTour(tour); err != nil {
		return 0, err
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < in.n; i++ {
		sum += in.dist[tour[i]][tour[i+1]]
	}

	return round1e9(sum), nil
}

// Violations walks the tour accumulating travel time and counts nodes whose
// window deadline is missed. Arriving before a window opens means waiting
// until Earliest; arriving after Latest counts one violation and the walk
// continues (late service still takes place).
//
// Complexity: O(n).
func (in *Instance) Violations(tour []int) (int, error) {
	if err := in.ValidateTour(tour); err != nil {
		return 0, err
	}

	var (
		count int
		clock float64
		i     int
		next  int
		win   Window
	)
	for i = 1; i < len(tour); i++ {
		next = tour[i]
		clock += in.dist[tour[i-1]][next]
		win = in.windows[next]
		if clock < win.Earliest {
			clock = win.Earliest // wait for the window to open
		}
		if clock > win.Latest {
			count++
		}
	}

	return count, nil
}

// VerifySolution reports whether tour is a structurally valid depot-closed
// Hamiltonian cycle that meets every time window.
//
// Complexity: O(n).
func (in *Instance) VerifySolution(tour []int) bool {
	v, err := in.Violations(tour)

	return err == nil && v == 0
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
