// Package instance_test - document persistence and synthesis.
package instance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsptw/instance"
)

// TestDocument_RoundTrip writes a document with an embedded solution and
// reads it back unchanged.
func TestDocument_RoundTrip(t *testing.T) {
	in := unitSquare(t, nil)
	doc := instance.NewDocument(in, "square", "unit square")
	doc.Solution = &instance.Solution{
		Tour:       []int{0, 1, 2, 3, 0},
		Cost:       4,
		Feasible:   true,
		Iterations: 10,
		Time:       "1ms",
		System:     instance.SysInfo{Platform: "test", CPU: "test", RAM: "1 GB"},
	}

	path := filepath.Join(t.TempDir(), "square.json")
	require.NoError(t, doc.Save(path))

	got, err := instance.Load(path)
	require.NoError(t, err)
	require.Equal(t, doc.Name, got.Name)
	require.Equal(t, doc.NodeCount, got.NodeCount)
	require.Equal(t, doc.EdgeWeights, got.EdgeWeights)
	require.Equal(t, doc.TimeWindows, got.TimeWindows)
	require.NotNil(t, got.Solution)
	require.Equal(t, doc.Solution.Tour, got.Solution.Tour)
	require.Equal(t, doc.Solution.Cost, got.Solution.Cost)

	back, err := got.Instance()
	require.NoError(t, err)
	cost, err := back.TourCost(got.Solution.Tour)
	require.NoError(t, err)
	require.Equal(t, 4.0, cost)
}

// TestDocument_CompactArrays checks that numeric rows collapse onto single
// lines while the document stays indented.
func TestDocument_CompactArrays(t *testing.T) {
	in := unitSquare(t, nil)
	doc := instance.NewDocument(in, "square", "")
	path := filepath.Join(t.TempDir(), "compact.json")
	require.NoError(t, doc.Save(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "[0,1,", "matrix rows must be single-line")
	require.True(t, strings.Contains(string(raw), "\n\t"), "document itself stays indented")
}

// TestSynthesize_ProducesSolvableInstances checks shape and the feasible
// window layout of generated instances.
func TestSynthesize_ProducesSolvableInstances(t *testing.T) {
	in, err := instance.Synthesize(8, instance.SynthesisConfig{Span: 100, Window: 40, Seed: 7})
	require.NoError(t, err)
	require.Equal(t, 8, in.NumNodes())

	for i := 0; i < in.NumNodes(); i++ {
		win, werr := in.TimeWindow(i)
		require.NoError(t, werr)
		require.GreaterOrEqual(t, win.Latest, win.Earliest)
		require.GreaterOrEqual(t, win.Earliest, 0.0)
	}

	// Same seed, same instance.
	again, err := instance.Synthesize(8, instance.SynthesisConfig{Span: 100, Window: 40, Seed: 7})
	require.NoError(t, err)
	w1, _ := in.EdgeWeight(1, 2)
	w2, _ := again.EdgeWeight(1, 2)
	require.Equal(t, w1, w2, "synthesis must be deterministic per seed")

	_, err = instance.Synthesize(1, instance.SynthesisConfig{Span: 100})
	require.ErrorIs(t, err, instance.ErrDimensionMismatch)
	_, err = instance.Synthesize(4, instance.SynthesisConfig{Span: 0})
	require.ErrorIs(t, err, instance.ErrDimensionMismatch)
	_, err = instance.Synthesize(4, instance.SynthesisConfig{Span: 10, Window: -1})
	require.ErrorIs(t, err, instance.ErrBadWindow)
}
