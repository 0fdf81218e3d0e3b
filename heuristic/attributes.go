// Package heuristic - attribute computation and standardization.
//
// NewCache derives the three matrices in one pass over the instance:
//
//	c[i][j] = (dmax − w(i,j)) / (dmax − dmin)   (diagonal 0, zeros floored)
//
// and, for the urgency attributes, the per-node minimum positive gap
// between another node's window bound and this node's corresponding bound
// — an approximation of "how soon must we leave to still make j's
// window". Per-node scalars are broadcast down their column, min–max
// standardized so smaller gaps map near 1 (more urgent), clamped to 1.0,
// and floored to Epsilon when exactly 0.
//
// Contracts:
//   - Degenerate instances (dmax == dmin, or all gaps equal) fall back to
//     divisor 1 instead of failing.
//
// Complexity: O(n²) time, O(n²) space; Desirability is O(1).
package heuristic

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/tsptw/instance"
)

// NewCache computes the standardized attribute matrices for inst.
//
// Complexity: O(n²).
func NewCache(inst *instance.Instance) (*Cache, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}

	var (
		n     = inst.NumNodes()
		cache = &Cache{
			n: n,
			c: make([][]float64, n),
			l: make([][]float64, n),
			e: make([][]float64, n),
		}
		i, j int
	)
	for i = 0; i < n; i++ {
		cache.c[i] = make([]float64, n)
		cache.l[i] = make([]float64, n)
		cache.e[i] = make([]float64, n)
	}

	// Travel cost: cheapest edge near 1, most expensive near 0.
	var (
		dMin = inst.DistanceMin()
		dMax = inst.DistanceMax()
		span = dMax - dMin
		w    float64
	)
	if span <= 0 {
		span = 1 // degenerate instance: all off-diagonal weights equal
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal stays 0
			}
			w, _ = inst.EdgeWeight(i, j)
			cache.c[i][j] = (dMax - w) / span
			if cache.c[i][j] == 0 {
				cache.c[i][j] = Epsilon // the most expensive edge keeps sampling mass
			}
		}
	}

	// Per-node minimum positive window gaps.
	var (
		gapE = make([]float64, n)
		gapL = make([]float64, n)
		wi   instance.Window
		wj   instance.Window
		gE   float64
		gL   float64
		d    float64
	)
	for i = 0; i < n; i++ {
		wi, _ = inst.TimeWindow(i)
		gE, gL = math.Inf(1), math.Inf(1)
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			wj, _ = inst.TimeWindow(j)
			d = wj.Earliest - wi.Earliest
			if d > 0 && d < gE {
				gE = d
			}
			d = wj.Latest - wi.Latest
			if d > 0 && d < gL {
				gL = d
			}
		}
		// No positive gap defaults to 0 before standardization.
		if math.IsInf(gE, 1) {
			gE = 0
		}
		if math.IsInf(gL, 1) {
			gL = 0
		}
		gapE[i] = gE
		gapL[i] = gL
	}

	standardizeColumns(cache.e, gapE)
	standardizeColumns(cache.l, gapL)

	return cache, nil
}

// standardizeColumns broadcasts each per-node scalar down its column and
// min–max standardizes across nodes: (max − v) / (max − min), divisor 1
// when degenerate. Values above 1 clamp to 1; exact zeros floor to
// Epsilon so no candidate loses all sampling mass.
func standardizeColumns(dst [][]float64, vals []float64) {
	var (
		n    = len(vals)
		vMin = math.Inf(1)
		vMax = math.Inf(-1)
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		if vals[i] < vMin {
			vMin = vals[i]
		}
		if vals[i] > vMax {
			vMax = vals[i]
		}
	}
	span := vMax - vMin
	if span <= 0 {
		span = 1
	}

	for j = 0; j < n; j++ {
		v = (vMax - vals[j]) / span
		if v > 1 {
			v = 1
		}
		if v == 0 {
			v = Epsilon
		}
		for i = 0; i < n; i++ {
			dst[i][j] = v
		}
	}
}

// Order returns n, the matrix order.
func (c *Cache) Order() int { return c.n }

// TravelCost returns c[i][j].
func (c *Cache) TravelCost(i, j int) float64 { return c.c[i][j] }

// LatestUrgency returns l[i][j].
func (c *Cache) LatestUrgency(i, j int) float64 { return c.l[i][j] }

// EarliestUrgency returns e[i][j].
func (c *Cache) EarliestUrgency(i, j int) float64 { return c.e[i][j] }

// Desirability blends the three attributes for the arc i→j under the
// given simplex weights.
//
// Complexity: O(1).
func (c *Cache) Desirability(w Weights, i, j int) float64 {
	return w.Cost*c.c[i][j] + w.Latest*c.l[i][j] + w.Earliest*c.e[i][j]
}

// SampleWeights draws a random point on the unit simplex:
// λc ~ U[0,1], λl ~ U[0, 1−λc], λe = 1−λc−λl. Resampled once per beam
// construction; correct by construction, no validation needed.
//
// Complexity: O(1).
func SampleWeights(rng *rand.Rand) Weights {
	lc := rng.Float64()
	ll := rng.Float64() * (1 - lc)

	return Weights{Cost: lc, Latest: ll, Earliest: 1 - lc - ll}
}
