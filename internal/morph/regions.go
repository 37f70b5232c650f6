package morph

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// xRange, yRange, zRange, and percentile are the shared geometric
// primitives every §4.M region predicate is built from.

func xRange(v [][3]float64) float64 { return column(v, 0) }
func yRange(v [][3]float64) float64 { return column(v, 1) }
func zRange(v [][3]float64) float64 { return column(v, 2) }

// column returns the max-min extent of the given axis (0=x, 1=y, 2=z).
func column(v [][3]float64, axis int) float64 {
	if len(v) == 0 {
		return 0
	}
	min, max := v[0][axis], v[0][axis]
	for _, p := range v[1:] {
		if p[axis] < min {
			min = p[axis]
		}
		if p[axis] > max {
			max = p[axis]
		}
	}
	return max - min
}

func bounds(v [][3]float64, axis int) (min, max float64) {
	if len(v) == 0 {
		return 0, 0
	}
	min, max = v[0][axis], v[0][axis]
	for _, p := range v[1:] {
		if p[axis] < min {
			min = p[axis]
		}
		if p[axis] > max {
			max = p[axis]
		}
	}
	return min, max
}

// percentile returns the p-th percentile (0..100) of vals using the
// empirical quantile estimator, matching the teacher's own
// stat.Quantile(p, stat.Empirical, sorted, nil) call in internal/db/db.go.
func percentile(vals []float64, p float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	return stat.Quantile(p/100, stat.Empirical, sorted, nil)
}

// buttSlab selects vertices in the butt 10% (or configured fraction) slab:
// x >= xMax - fraction*(xMax-xMin).
func buttSlab(v [][3]float64, fraction float64) [][3]float64 {
	xMin, xMax := bounds(v, 0)
	span := xMax - xMin
	threshold := xMax - fraction*span
	var out [][3]float64
	for _, p := range v {
		if p[0] >= threshold {
			out = append(out, p)
		}
	}
	return out
}

// bladeSlab selects vertices in the blade tip slab: x <= xMin + fraction*span.
func bladeSlab(v [][3]float64, fraction float64) [][3]float64 {
	xMin, xMax := bounds(v, 0)
	span := xMax - xMin
	threshold := xMin + fraction*span
	var out [][3]float64
	for _, p := range v {
		if p[0] <= threshold {
			out = append(out, p)
		}
	}
	return out
}

// bodySlab selects the central body region, excluding the outer margin
// fraction on each end.
func bodySlab(v [][3]float64, margin float64) [][3]float64 {
	xMin, xMax := bounds(v, 0)
	span := xMax - xMin
	lo := xMin + margin*span
	hi := xMax - margin*span
	var out [][3]float64
	for _, p := range v {
		if p[0] >= lo && p[0] <= hi {
			out = append(out, p)
		}
	}
	return out
}

// centralBodyStrip selects the body slab vertices whose y lies between the
// loPct and hiPct percentiles of y within the body slab (the flange-free
// central strip used for thickness-without-margins and median comparisons).
func centralBodyStrip(body [][3]float64, loPct, hiPct float64) [][3]float64 {
	if len(body) == 0 {
		return nil
	}
	ys := make([]float64, len(body))
	for i, p := range body {
		ys[i] = p[1]
	}
	lo := percentile(ys, loPct)
	hi := percentile(ys, hiPct)
	var out [][3]float64
	for _, p := range body {
		if p[1] >= lo && p[1] <= hi {
			out = append(out, p)
		}
	}
	return out
}

// median returns the median of vals (p=50 empirical quantile), or 0 if empty.
func median(vals []float64) float64 {
	return percentile(vals, 50)
}
