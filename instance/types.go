package instance

import "errors"

// Sentinel errors returned by instance constructors and evaluators.
var (
	// ErrNonSquare indicates a distance matrix whose row count and column
	// count disagree, or a ragged row.
	ErrNonSquare = errors.New("instance: distance matrix is not square")

	// ErrDimensionMismatch indicates an input whose shape violates the
	// documented contract (nil matrix, n < 2, window count != n, tour of
	// wrong length, index out of range, NaN weight).
	ErrDimensionMismatch = errors.New("instance: dimension mismatch")

	// ErrNegativeWeight indicates a negative travel time in the matrix.
	ErrNegativeWeight = errors.New("instance: negative edge weight")

	// ErrNonZeroDiagonal indicates a self-loop weight other than zero.
	ErrNonZeroDiagonal = errors.New("instance: non-zero diagonal entry")

	// ErrBadWindow indicates a service window with Latest < Earliest or a
	// negative Earliest.
	ErrBadWindow = errors.New("instance: invalid time window")
)

// Depot is the fixed start/end vertex of every tour.
const Depot = 0

// Window is one node's service interval. A visit arriving before Earliest
// waits until Earliest; arriving after Latest violates the window.
type Window struct {
	Earliest float64 `json:"earliest"`
	Latest   float64 `json:"latest"`
}

// Instance is an immutable TSPTW problem: a dense travel-time matrix plus
// one Window per node. Construct via New; zero value is not usable.
type Instance struct {
	n       int
	dist    [][]float64
	windows []Window

	// Off-diagonal extrema, fixed at construction time. Degenerate
	// instances (all off-diagonal weights equal) keep distMin == distMax.
	distMin float64
	distMax float64
}
