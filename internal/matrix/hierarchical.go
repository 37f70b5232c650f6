package matrix

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// wardCluster tracks a single active cluster during agglomeration: the row
// indices of its members and their centroid.
type wardCluster struct {
	members  []int
	centroid []float64
}

// rowSlice copies row i of m into a fresh []float64.
func rowSlice(m *mat.Dense, i int) []float64 {
	_, d := m.Dims()
	out := make([]float64, d)
	mat.Row(out, i, m)
	return out
}

func minIndex(members []int) int {
	min := members[0]
	for _, v := range members[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// hierarchicalWard implements §4.C.2's hierarchical mode: agglomerative
// clustering with Ward linkage on Euclidean distance, merging the pair
// whose union minimises the increase in within-cluster sum of squares
// (the standard centroid-based Ward criterion, recomputing centroids after
// every merge rather than Lance-Williams update, since population sizes
// here are small), down to exactly k clusters.
//
// Ties in merge cost are broken by the smallest (earliest-member-index)
// pair, grounded on the teacher corpus's own preference for stable,
// deterministic sort tie-breaking (`sort.SliceStable` in the lvlath
// Kruskal implementation) so that successive runs are byte-identical
// (§4.C.4).
func hierarchicalWard(m *mat.Dense, k int) [][]int {
	n, _ := m.Dims()
	clusters := make([]*wardCluster, n)
	for i := 0; i < n; i++ {
		clusters[i] = &wardCluster{members: []int{i}, centroid: rowSlice(m, i)}
	}

	for len(clusters) > k {
		bestI, bestJ := -1, -1
		bestCost := 0.0
		bestKey := [2]int{}
		for i := 0; i < len(clusters); i++ {
			for j := i + 1; j < len(clusters); j++ {
				ni, nj := float64(len(clusters[i].members)), float64(len(clusters[j].members))
				d := floats.Distance(clusters[i].centroid, clusters[j].centroid, 2)
				cost := (ni * nj / (ni + nj)) * d * d
				key := [2]int{minIndex(clusters[i].members), minIndex(clusters[j].members)}
				if bestI == -1 || cost < bestCost || (cost == bestCost && lessKey(key, bestKey)) {
					bestI, bestJ, bestCost, bestKey = i, j, cost, key
				}
			}
		}

		merged := mergeClusters(clusters[bestI], clusters[bestJ], m)
		next := make([]*wardCluster, 0, len(clusters)-1)
		for idx, c := range clusters {
			if idx != bestI && idx != bestJ {
				next = append(next, c)
			}
		}
		next = append(next, merged)
		clusters = next
	}

	out := make([][]int, len(clusters))
	for i, c := range clusters {
		out[i] = c.members
	}
	return out
}

func lessKey(a, b [2]int) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}

func mergeClusters(a, b *wardCluster, m *mat.Dense) *wardCluster {
	members := append(append([]int(nil), a.members...), b.members...)
	_, d := m.Dims()
	centroid := make([]float64, d)
	for _, idx := range members {
		row := rowSlice(m, idx)
		floats.Add(centroid, row)
	}
	floats.Scale(1/float64(len(members)), centroid)
	return &wardCluster{members: members, centroid: centroid}
}
