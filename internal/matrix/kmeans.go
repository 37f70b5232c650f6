package matrix

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// kmeansRestarts is the fixed restart count of §4.C.2.
const kmeansRestarts = 10

// kmeansMaxIterations bounds Lloyd's algorithm per restart.
const kmeansMaxIterations = 100

// kmeansResult is one restart's converged fit.
type kmeansResult struct {
	assignments []int
	centroids   [][]float64
	inertia     float64
}

// kmeans implements §4.C.2's k-means mode: Lloyd's algorithm with 10 fixed
// seeded restarts, keeping the lowest-inertia run. Seed determinism uses a
// dedicated *rand.Rand per restart rather than the global math/rand source,
// so that identical (population, seed) inputs reproduce identical
// assignments across processes (§4.C.4, seed scenario 6).
func kmeans(m *mat.Dense, k int, seed int64) []int {
	n, d := m.Dims()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = rowSlice(m, i)
	}

	var best *kmeansResult
	for restart := 0; restart < kmeansRestarts; restart++ {
		rng := rand.New(rand.NewSource(seed + int64(restart)))
		centroids := forgyInit(rows, k, rng)

		assignments := make([]int, n)
		for iter := 0; iter < kmeansMaxIterations; iter++ {
			changed := false
			for i, row := range rows {
				nearest := nearestCentroid(row, centroids)
				if assignments[i] != nearest {
					assignments[i] = nearest
					changed = true
				}
			}

			newCentroids := make([][]float64, k)
			counts := make([]int, k)
			for c := range newCentroids {
				newCentroids[c] = make([]float64, d)
			}
			for i, row := range rows {
				c := assignments[i]
				floats.Add(newCentroids[c], row)
				counts[c]++
			}
			for c := range newCentroids {
				if counts[c] > 0 {
					floats.Scale(1/float64(counts[c]), newCentroids[c])
				} else {
					newCentroids[c] = centroids[c]
				}
			}
			centroids = newCentroids

			if !changed && iter > 0 {
				break
			}
		}

		inertia := 0.0
		for i, row := range rows {
			d := floats.Distance(row, centroids[assignments[i]], 2)
			inertia += d * d
		}

		if best == nil || inertia < best.inertia {
			best = &kmeansResult{assignments: assignments, centroids: centroids, inertia: inertia}
		}
	}

	return best.assignments
}

// forgyInit picks k distinct rows as initial centroids (Forgy
// initialisation), using rng for reproducible sampling without replacement.
func forgyInit(rows [][]float64, k int, rng *rand.Rand) [][]float64 {
	perm := rng.Perm(len(rows))
	centroids := make([][]float64, k)
	for i := 0; i < k; i++ {
		centroids[i] = append([]float64(nil), rows[perm[i%len(perm)]]...)
	}
	return centroids
}

func nearestCentroid(row []float64, centroids [][]float64) int {
	best := 0
	bestDist := floats.Distance(row, centroids[0], 2)
	for c := 1; c < len(centroids); c++ {
		d := floats.Distance(row, centroids[c], 2)
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}
