// Package instance - construction and read-only accessors.
//
// New performs the full validation pass once (shape, diagonal, negativity,
// NaN, window sanity) so that every later evaluator can assume a
// well-formed instance and stay allocation-free.
//
// Complexity: New is O(n²); all accessors are O(1).
package instance

import "math"

// New validates dist and windows and returns an immutable Instance.
//
// Contracts:
//   - dist must be non-nil, square, n ≥ 2, zero diagonal, finite and
//     non-negative everywhere.
//   - windows must hold exactly n entries with 0 ≤ Earliest ≤ Latest.
//
// Errors: ErrNonSquare, ErrDimensionMismatch, ErrNegativeWeight,
// ErrNonZeroDiagonal, ErrBadWindow.
//
// Complexity: O(n²) time, O(n²) space (defensive deep copy).
func New(dist [][]float64, windows []Window) (*Instance, error) {
	if dist == nil {
		return nil, ErrDimensionMismatch
	}
	n := len(dist)
	if n < 2 {
		return nil, ErrDimensionMismatch
	}
	if len(windows) != n {
		return nil, ErrDimensionMismatch
	}

	// Copy and validate the matrix in one pass; extrema tracked inline.
	var (
		cp   = make([][]float64, n)
		dMin = math.Inf(1)
		dMax = math.Inf(-1)
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return nil, ErrNonSquare
		}
		cp[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			w = dist[i][j]
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, ErrDimensionMismatch
			}
			if w < 0 {
				return nil, ErrNegativeWeight
			}
			if i == j {
				if w != 0 {
					return nil, ErrNonZeroDiagonal
				}
			} else {
				if w < dMin {
					dMin = w
				}
				if w > dMax {
					dMax = w
				}
			}
			cp[i][j] = w
		}
	}

	// Windows: non-negative, ordered. +Inf Latest is allowed ("no deadline").
	var (
		wins = make([]Window, n)
		win  Window
	)
	for i = 0; i < n; i++ {
		win = windows[i]
		if math.IsNaN(win.Earliest) || math.IsNaN(win.Latest) {
			return nil, ErrBadWindow
		}
		if win.Earliest < 0 || win.Latest < win.Earliest {
			return nil, ErrBadWindow
		}
		wins[i] = win
	}

	return &Instance{n: n, dist: cp, windows: wins, distMin: dMin, distMax: dMax}, nil
}

// NumNodes returns n, the number of nodes including the depot.
func (in *Instance) NumNodes() int { return in.n }

// EdgeWeight returns the travel time of the directed edge i→j.
// Out-of-range indices yield ErrDimensionMismatch.
func (in *Instance) EdgeWeight(i, j int) (float64, error) {
	if i < 0 || i >= in.n || j < 0 || j >= in.n {
		return 0, ErrDimensionMismatch
	}

	return in.dist[i][j], nil
}

// TimeWindow returns node i's service window.
// Out-of-range indices yield ErrDimensionMismatch.
func (in *Instance) TimeWindow(i int) (Window, error) {
	if i < 0 || i >= in.n {
		return Window{}, ErrDimensionMismatch
	}

	return in.windows[i], nil
}

// DistanceMin returns the smallest off-diagonal edge weight.
func (in *Instance) DistanceMin() float64 { return in.distMin }

// DistanceMax returns the largest off-diagonal edge weight.
func (in *Instance) DistanceMax() float64 { return in.distMax }
