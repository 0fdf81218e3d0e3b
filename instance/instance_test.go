// Package instance_test exercises construction, cost evaluation, schedule
// simulation, and the tour utilities via the public API.
package instance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsptw/instance"
)

// unconstrained is a window that never binds.
var unconstrained = instance.Window{Earliest: 0, Latest: math.MaxFloat64}

// freeWindows returns n unconstrained windows.
func freeWindows(n int) []instance.Window {
	wins := make([]instance.Window, n)
	for i := range wins {
		wins[i] = unconstrained
	}

	return wins
}

// unitSquare builds the 4-node unit square: the perimeter tour
// 0→1→2→3→0 costs 4, every diagonal-crossing tour costs 2+2·√2.
func unitSquare(t *testing.T, windows []instance.Window) *instance.Instance {
	t.Helper()
	pts := [][2]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	n := len(pts)
	dist := make([][]float64, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			dist[i][j] = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
		}
	}
	if windows == nil {
		windows = freeWindows(n)
	}
	in, err := instance.New(dist, windows)
	require.NoError(t, err)

	return in
}

// TestNew_RejectsBadInput walks the validation sentinels one by one.
func TestNew_RejectsBadInput(t *testing.T) {
	wins2 := freeWindows(2)

	_, err := instance.New(nil, nil)
	require.ErrorIs(t, err, instance.ErrDimensionMismatch, "nil matrix")

	_, err = instance.New([][]float64{{0}}, freeWindows(1))
	require.ErrorIs(t, err, instance.ErrDimensionMismatch, "n < 2")

	_, err = instance.New([][]float64{{0, 1}, {1}}, wins2)
	require.ErrorIs(t, err, instance.ErrNonSquare, "ragged row")

	_, err = instance.New([][]float64{{0, 1}, {1, 0}}, freeWindows(3))
	require.ErrorIs(t, err, instance.ErrDimensionMismatch, "window count")

	_, err = instance.New([][]float64{{0, -1}, {1, 0}}, wins2)
	require.ErrorIs(t, err, instance.ErrNegativeWeight, "negative weight")

	_, err = instance.New([][]float64{{0, math.NaN()}, {1, 0}}, wins2)
	require.ErrorIs(t, err, instance.ErrDimensionMismatch, "NaN weight")

	_, err = instance.New([][]float64{{0.5, 1}, {1, 0}}, wins2)
	require.ErrorIs(t, err, instance.ErrNonZeroDiagonal, "diagonal")

	_, err = instance.New([][]float64{{0, 1}, {1, 0}},
		[]instance.Window{{Earliest: 5, Latest: 1}, unconstrained})
	require.ErrorIs(t, err, instance.ErrBadWindow, "inverted window")

	_, err = instance.New([][]float64{{0, 1}, {1, 0}},
		[]instance.Window{{Earliest: -1, Latest: 1}, unconstrained})
	require.ErrorIs(t, err, instance.ErrBadWindow, "negative earliest")
}

// TestNew_DefensiveCopyAndExtrema checks that the instance owns its data
// and tracks off-diagonal extrema.
func TestNew_DefensiveCopyAndExtrema(t *testing.T) {
	dist := [][]float64{
		{0, 2, 9},
		{2, 0, 4},
		{9, 4, 0},
	}
	in, err := instance.New(dist, freeWindows(3))
	require.NoError(t, err)

	dist[0][1] = 777 // mutate the caller's matrix after construction
	w, err := in.EdgeWeight(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, w, "instance must deep-copy the matrix")

	require.Equal(t, 3, in.NumNodes())
	require.Equal(t, 2.0, in.DistanceMin())
	require.Equal(t, 9.0, in.DistanceMax())

	_, err = in.EdgeWeight(0, 3)
	require.ErrorIs(t, err, instance.ErrDimensionMismatch)
	_, err = in.TimeWindow(-1)
	require.ErrorIs(t, err, instance.ErrDimensionMismatch)
}

// TestTourCost_SquarePerimeter pins down costs on the unit square.
func TestTourCost_SquarePerimeter(t *testing.T) {
	in := unitSquare(t, nil)

	cost, err := in.TourCost([]int{0, 1, 2, 3, 0})
	require.NoError(t, err)
	require.Equal(t, 4.0, cost, "perimeter tour")

	cost, err = in.TourCost([]int{0, 2, 1, 3, 0})
	require.NoError(t, err)
	require.InDelta(t, 2+2*math.Sqrt2, cost, 1e-9, "diagonal-crossing tour")

	_, err = in.TourCost([]int{0, 1, 2, 3}) // not closed
	require.ErrorIs(t, err, instance.ErrDimensionMismatch)
	_, err = in.TourCost([]int{0, 1, 1, 3, 0}) // duplicate
	require.ErrorIs(t, err, instance.ErrDimensionMismatch)
}

// TestViolations_HandWalkedSchedule follows the clock by hand:
// travel 0→1 (1.0), wait until 2.0; travel 1→2 (1.0), arrive 3.0 after
// the 2.5 deadline (one violation); travel 2→3 (1.0), arrive 4.0 in time.
func TestViolations_HandWalkedSchedule(t *testing.T) {
	wins := []instance.Window{
		unconstrained,
		{Earliest: 2, Latest: 10},
		{Earliest: 0, Latest: 2.5},
		{Earliest: 0, Latest: 5},
	}
	in := unitSquare(t, wins)

	v, err := in.Violations([]int{0, 1, 2, 3, 0})
	require.NoError(t, err)
	require.Equal(t, 1, v)

	require.False(t, in.VerifySolution([]int{0, 1, 2, 3, 0}))

	alt, err := in.Violations([]int{0, 2, 1, 3, 0})
	require.NoError(t, err)
	require.Equal(t, alt == 0, in.VerifySolution([]int{0, 2, 1, 3, 0}),
		"VerifySolution must agree with Violations")
}

// TestViolations_WaitingIsFree confirms that early arrivals wait without
// penalty and tight-but-reachable deadlines pass.
func TestViolations_WaitingIsFree(t *testing.T) {
	wins := []instance.Window{
		unconstrained,
		{Earliest: 5, Latest: 6},  // forces a 4-unit wait
		{Earliest: 0, Latest: 6},  // reached at 6 exactly after the wait
		{Earliest: 0, Latest: 10},
	}
	in := unitSquare(t, wins)

	v, err := in.Violations([]int{0, 1, 2, 3, 0})
	require.NoError(t, err)
	require.Equal(t, 0, v)
	require.True(t, in.VerifySolution([]int{0, 1, 2, 3, 0}))
}

// TestTourUtilities covers validation, permutation closing, and ordering.
func TestTourUtilities(t *testing.T) {
	require.NoError(t, instance.ValidateTour([]int{0, 2, 1, 0}, 3))
	require.ErrorIs(t, instance.ValidateTour([]int{1, 2, 0, 1}, 3), instance.ErrDimensionMismatch, "must start at depot")
	require.ErrorIs(t, instance.ValidateTour([]int{0, 2, 1}, 3), instance.ErrDimensionMismatch, "must be closed")

	tour, err := instance.MakeTourFromPermutation([]int{2, 0, 1}, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 0}, tour, "depot rotates to the front")

	_, err = instance.MakeTourFromPermutation([]int{2, 2, 1}, 3)
	require.ErrorIs(t, err, instance.ErrDimensionMismatch)

	cp := instance.CopyTour(tour)
	cp[1] = 9
	require.Equal(t, []int{0, 1, 2, 0}, tour, "CopyTour must not alias")
	require.True(t, instance.EqualTours(tour, []int{0, 1, 2, 0}))
	require.False(t, instance.EqualTours(tour, cp))

	require.True(t, instance.LessTours([]int{0, 1, 3, 2, 0}, []int{0, 2, 1, 3, 0}))
	require.False(t, instance.LessTours([]int{0, 2, 1, 3, 0}, []int{0, 1, 3, 2, 0}))
	require.False(t, instance.LessTours([]int{0, 1, 2, 0}, []int{0, 1, 2, 0}), "equal tours are not less")
}
