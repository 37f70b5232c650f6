package matrix

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// silhouetteScore computes the mean silhouette coefficient (§4.C.2) over a
// clustering given by assignments (cluster index per row). Points in a
// singleton cluster contribute 0, the standard convention.
func silhouetteScore(m *mat.Dense, assignments []int, k int) float64 {
	n, _ := m.Dims()
	if n == 0 {
		return 0
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = rowSlice(m, i)
	}

	byCluster := make([][]int, k)
	for i, c := range assignments {
		byCluster[c] = append(byCluster[c], i)
	}

	var total float64
	for i := 0; i < n; i++ {
		own := byCluster[assignments[i]]
		if len(own) <= 1 {
			continue
		}

		a := meanDistanceTo(rows[i], rows, own, i)

		b := -1.0
		for c := 0; c < k; c++ {
			if c == assignments[i] || len(byCluster[c]) == 0 {
				continue
			}
			d := meanDistanceTo(rows[i], rows, byCluster[c], -1)
			if b < 0 || d < b {
				b = d
			}
		}
		if b < 0 {
			continue
		}

		denom := a
		if b > denom {
			denom = b
		}
		if denom == 0 {
			continue
		}
		total += (b - a) / denom
	}

	return total / float64(n)
}

// meanDistanceTo averages the Euclidean distance from point to every row
// index in group, excluding excludeIdx (used to skip self-distance within
// a point's own cluster).
func meanDistanceTo(point []float64, rows [][]float64, group []int, excludeIdx int) float64 {
	var sum float64
	var count int
	for _, idx := range group {
		if idx == excludeIdx {
			continue
		}
		sum += floats.Distance(point, rows[idx], 2)
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
