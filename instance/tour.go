// Package instance - tour structure utilities.
//
// Helpers here operate purely on index sequences, without touching the
// distance matrix. Provided:
//   - ValidateTour: enforce depot-closed Hamiltonian-cycle invariants.
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - MakeTourFromPermutation: close a permutation into a depot tour.
//   - CopyTour: independent copy of a tour slice.
//   - EqualTours: exact sequence equality.
//   - LessTours: lexicographic order on node sequences (tie-breaking).
//
// Design:
//   - No logging, no panics on user input — only sentinel errors.
//   - O(n) time for every helper; in-place where possible.
package instance

// ValidateTour enforces the tour invariants:
//
//	len(tour) == n+1, tour[0] == tour[n] == Depot,
//	positions [0..n-1] form a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func (in *Instance) ValidateTour(tour []int) error {
	return ValidateTour(tour, in.n)
}

// ValidateTour is the instance-free form used by callers that only know n.
func ValidateTour(tour []int, n int) error {
	if n < 2 {
		return ErrDimensionMismatch
	}
	if len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if tour[0] != Depot || tour[n] != Depot {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// MakeTourFromPermutation rotates perm so the depot leads and closes the
// cycle: the result has length n+1 with Depot at both ends.
//
// Complexity: O(n) time, O(n) space.
func MakeTourFromPermutation(perm []int, n int) ([]int, error) {
	if err := ValidatePermutation(perm, n); err != nil {
		return nil, err
	}

	// Locate the depot inside perm.
	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if perm[i] == Depot {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrDimensionMismatch
	}

	tour := make([]int, n+1)
	for i = 0; i < n; i++ {
		tour[i] = perm[(pivot+i)%n]
	}
	tour[n] = Depot

	return tour, nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// EqualTours reports exact element-wise equality of two tours.
//
// Complexity: O(n).
func EqualTours(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	var i int
	for i = range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// LessTours reports whether a precedes b lexicographically on node ids.
// Used as the deterministic tie-breaker between equal-cost tours.
//
// Complexity: O(n).
func LessTours(a, b []int) bool {
	var (
		i int
		m = len(a)
	)
	if len(b) < m {
		m = len(b)
	}
	for i = 0; i < m; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
