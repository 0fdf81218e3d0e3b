// Package pheromone_test exercises the trail matrix: option validation,
// reset/convergence behavior, the scheduled update, and the bounds
// invariant under randomized update sequences.
package pheromone_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsptw/pheromone"
)

// mustStore builds a default 4-node store.
func mustStore(t *testing.T, opts ...pheromone.Option) *pheromone.Store {
	t.Helper()
	s, err := pheromone.New(4, opts...)
	require.NoError(t, err)

	return s
}

// randomTour returns a random closed 4-node tour for update fuzzing.
func randomTour(rng *rand.Rand) []int {
	perm := []int{1, 2, 3}
	rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
	tour := append([]int{0}, perm...)

	return append(tour, 0)
}

// TestNew_Validation walks the constructor sentinels.
func TestNew_Validation(t *testing.T) {
	_, err := pheromone.New(1)
	require.ErrorIs(t, err, pheromone.ErrBadDimension)

	_, err = pheromone.New(4, pheromone.WithBounds(0.5, 0.5))
	require.ErrorIs(t, err, pheromone.ErrBadBounds, "empty interval")

	_, err = pheromone.New(4, pheromone.WithBounds(-0.1, 0.9))
	require.ErrorIs(t, err, pheromone.ErrBadBounds, "negative lower bound")

	_, err = pheromone.New(4, pheromone.WithInitial(2))
	require.ErrorIs(t, err, pheromone.ErrBadBounds, "initial outside bounds")

	_, err = pheromone.New(4, pheromone.WithLearningRate(0))
	require.ErrorIs(t, err, pheromone.ErrBadRate)
	_, err = pheromone.New(4, pheromone.WithLearningRate(1.5))
	require.ErrorIs(t, err, pheromone.ErrBadRate)
}

// TestResetUniform_ConvergenceNearZero: a freshly reset matrix sits at the
// mid-value, so the convergence factor must be well below the restart
// region.
func TestResetUniform_ConvergenceNearZero(t *testing.T) {
	s := mustStore(t)
	require.Less(t, s.ConvergenceFactor(), 0.1)

	// Drive the matrix toward a bound, then reset and re-check.
	tour := []int{0, 1, 2, 3, 0}
	for i := 0; i < 200; i++ {
		require.NoError(t, s.Update(true, 0.5, nil, nil, tour))
	}
	require.Greater(t, s.ConvergenceFactor(), 0.9, "repeated best-so-far updates must converge")

	s.ResetUniform()
	require.Less(t, s.ConvergenceFactor(), 0.1)
}

// TestUpdate_BoundsInvariant fuzzes update sequences and asserts every
// cell stays inside [TauMin, TauMax] throughout.
func TestUpdate_BoundsInvariant(t *testing.T) {
	var (
		s    = mustStore(t)
		rng  = rand.New(rand.NewSource(42))
		lo   float64
		hi   float64
		i, r int
		c    int
	)
	lo, hi = s.Bounds()

	for i = 0; i < 500; i++ {
		err := s.Update(rng.Intn(2) == 0, rng.Float64(), randomTour(rng), randomTour(rng), randomTour(rng))
		require.NoError(t, err)
		for r = 0; r < s.Order(); r++ {
			for c = 0; c < s.Order(); c++ {
				v := s.At(r, c)
				require.GreaterOrEqual(t, v, lo)
				require.LessOrEqual(t, v, hi)
			}
		}
	}
}

// TestUpdate_DepositFollowsTour: after one update the reinforced arcs must
// exceed the untouched ones.
func TestUpdate_DepositFollowsTour(t *testing.T) {
	s := mustStore(t)
	tour := []int{0, 1, 2, 3, 0}
	require.NoError(t, s.Update(false, 0.0, tour, nil, nil)) // pure iteration-best regime

	require.Greater(t, s.At(0, 1), s.At(1, 0), "arc on the tour vs. its reverse")
	require.Greater(t, s.At(1, 2), s.At(2, 1))
	require.Greater(t, s.At(3, 0), s.At(0, 3))
}

// TestUpdate_NilRedistribution: with only one non-nil tour its share is
// the full deposit, and an all-nil call leaves the matrix untouched.
func TestUpdate_NilRedistribution(t *testing.T) {
	a := mustStore(t)
	b := mustStore(t)
	tour := []int{0, 1, 2, 3, 0}

	// cf in [0.4,0.6) would split 2/3 : 1/3 between ib and rb. With rb nil
	// the full weight must land on ib, matching a pure ib update.
	require.NoError(t, a.Update(false, 0.5, tour, nil, nil))
	require.NoError(t, b.Update(false, 0.0, tour, nil, nil))
	for i := 0; i < a.Order(); i++ {
		for j := 0; j < a.Order(); j++ {
			require.InDelta(t, b.At(i, j), a.At(i, j), 1e-12)
		}
	}

	// All nil: no evaporation, no deposit.
	before := a.At(0, 1)
	require.NoError(t, a.Update(false, 0.5, nil, nil, nil))
	require.Equal(t, before, a.At(0, 1))
}

// TestUpdate_Validation covers the factor and tour sentinels.
func TestUpdate_Validation(t *testing.T) {
	s := mustStore(t)

	require.ErrorIs(t, s.Update(false, -0.1, nil, nil, nil), pheromone.ErrBadFactor)
	require.ErrorIs(t, s.Update(false, 1.1, nil, nil, nil), pheromone.ErrBadFactor)
	require.ErrorIs(t, s.Update(false, 0.0, []int{0}, nil, nil), pheromone.ErrBadTour, "single node")
	require.ErrorIs(t, s.Update(false, 0.0, []int{0, 7, 0}, nil, nil), pheromone.ErrBadTour, "out of range")
}

// TestRow_IsLiveView: Row exposes the underlying storage for samplers.
func TestRow_IsLiveView(t *testing.T) {
	s := mustStore(t)
	row := s.Row(0)
	require.Len(t, row, s.Order())
	require.Equal(t, pheromone.DefaultInitial, row[1])

	require.NoError(t, s.Update(true, 0.0, nil, nil, []int{0, 1, 2, 3, 0}))
	require.Equal(t, s.At(0, 1), row[1], "view must reflect updates without re-fetching")
}
