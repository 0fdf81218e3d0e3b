package heuristic

import "errors"

// ErrNilInstance indicates that NewCache received a nil instance.
var ErrNilInstance = errors.New("heuristic: instance is nil")

// Epsilon is the floor applied to standardized attribute values that would
// otherwise be exactly 0. Keeping every entry strictly positive guarantees
// that no candidate's sampling mass vanishes through the heuristic term
// alone.
const Epsilon = 0.001

// Weights is a point on the unit simplex blending the three attributes:
// Cost·c + Latest·l + Earliest·e. Non-negative, summing to 1 by
// construction (SampleWeights); no validation is needed.
type Weights struct {
	Cost     float64
	Latest   float64
	Earliest float64
}

// Cache holds the standardized attribute matrices for one instance.
// Immutable after NewCache.
type Cache struct {
	n int
	c [][]float64 // travel cost, diagonal 0
	l [][]float64 // latest-service urgency, broadcast per column
	e [][]float64 // earliest-service urgency, broadcast per column
}
