package morph

import (
	"math"

	"github.com/savignano-axe/morphocore/internal/config"
	"github.com/savignano-axe/morphocore/internal/monitoring"
)

// spatialIndex3D is a uniform-grid nearest-neighbour index over 3D points,
// generalising the teacher's 2D SpatialIndex (internal/lidar/clustering.go,
// Szudzik pairing over (x, y) cells) to (x, y, z) cells for the socket
// concavity radius query.
type spatialIndex3D struct {
	cellSize float64
	grid     map[[3]int64][]int
	pts      [][3]float64
}

func newSpatialIndex3D(pts [][3]float64, cellSize float64) *spatialIndex3D {
	idx := &spatialIndex3D{cellSize: cellSize, grid: make(map[[3]int64][]int, len(pts)), pts: pts}
	for i, p := range pts {
		key := idx.cellKey(p)
		idx.grid[key] = append(idx.grid[key], i)
	}
	return idx
}

func (idx *spatialIndex3D) cellKey(p [3]float64) [3]int64 {
	return [3]int64{
		int64(math.Floor(p[0] / idx.cellSize)),
		int64(math.Floor(p[1] / idx.cellSize)),
		int64(math.Floor(p[2] / idx.cellSize)),
	}
}

// withinRadius returns the indices of points within radius of pts[i],
// including i itself, searching the 3×3×3 neighbourhood of grid cells.
func (idx *spatialIndex3D) withinRadius(i int, radius float64) []int {
	p := idx.pts[i]
	cx := int64(math.Floor(p[0] / idx.cellSize))
	cy := int64(math.Floor(p[1] / idx.cellSize))
	cz := int64(math.Floor(p[2] / idx.cellSize))
	r2 := radius * radius

	var out []int
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				key := [3]int64{cx + dx, cy + dy, cz + dz}
				for _, j := range idx.grid[key] {
					q := idx.pts[j]
					ddx := q[0] - p[0]
					ddy := q[1] - p[1]
					ddz := q[2] - p[2]
					if ddx*ddx+ddy*ddy+ddz*ddz <= r2 {
						out = append(out, j)
					}
				}
			}
		}
	}
	return out
}

// socketResult holds the raw outputs of §4.M.4 before assembly into the
// Feature Record.
type socketResult struct {
	Present    bool
	Larghezza  float64
	Profondita float64
	Profilo    Profile
}

// detectSocket implements §4.M.4: restrict to the butt slab, find the
// top-surface candidates, locate concavity candidates via a local-centroid
// comparison, cluster them, and classify the opening shape.
func detectSocket(butt [][3]float64, cfg *config.ExtractorConfig, artifactID string) socketResult {
	if len(butt) == 0 {
		return socketResult{Profilo: ProfileAssente}
	}

	zs := make([]float64, len(butt))
	for i, p := range butt {
		zs[i] = p[2]
	}
	topThreshold := percentile(zs, cfg.GetSocketTopSurfacePercentile())

	var top [][3]float64
	for _, p := range butt {
		if p[2] > topThreshold {
			top = append(top, p)
		}
	}
	if len(top) == 0 {
		return socketResult{Profilo: ProfileAssente}
	}

	zRangeTop := zRange(top)
	if zRangeTop <= 0 {
		return socketResult{Profilo: ProfileAssente}
	}

	idx := newSpatialIndex3D(top, cfg.GetSocketNeighborRadiusMM())
	relThreshold := cfg.GetSocketConcavityRelativeThreshold() * zRangeTop

	var concavity [][3]float64
	var deepestDepth float64
	var deepestLocalCentroidZ, deepestZ float64
	for i, p := range top {
		neighbors := idx.withinRadius(i, cfg.GetSocketNeighborRadiusMM())
		if len(neighbors) == 0 {
			continue
		}
		var sumZ float64
		for _, n := range neighbors {
			sumZ += top[n][2]
		}
		localCentroidZ := sumZ / float64(len(neighbors))

		if localCentroidZ-p[2] > relThreshold {
			concavity = append(concavity, p)
			depth := localCentroidZ - p[2]
			if depth > deepestDepth {
				deepestDepth = depth
				deepestLocalCentroidZ = localCentroidZ
				deepestZ = p[2]
			}
		}
	}

	qualifyingFraction := float64(len(concavity)) / float64(len(top))
	if qualifyingFraction < cfg.GetSocketMinQualifyingFraction() {
		return socketResult{Profilo: ProfileAssente}
	}

	profondita := deepestLocalCentroidZ - deepestZ
	if profondita < 0 {
		profondita = 0
	}

	clusters := singleLinkageClusterXY(concavity, cfg.GetSocketClusterLinkDistanceMM())
	largest := largestCluster(clusters)
	if len(largest) == 0 {
		monitoring.Logf("WARNING morph artifact_id=%s feature=incavo: no clusterable concavity points", artifactID)
		return socketResult{Profilo: ProfileAssente}
	}

	xr := xRange(largest)
	yr := yRange(largest)
	larghezza := math.Max(xr, yr)

	minRange, maxRange := math.Min(xr, yr), math.Max(xr, yr)
	var eccentricity float64
	if maxRange > 0 {
		eccentricity = minRange / maxRange
	}

	profilo := ProfileRettangolare
	if eccentricity > cfg.GetSocketEccentricityCircular() {
		profilo = ProfileCircolare
	}

	return socketResult{
		Present:    true,
		Larghezza:  larghezza,
		Profondita: profondita,
		Profilo:    profilo,
	}
}

// singleLinkageClusterXY groups points by single-linkage XY proximity using
// a disjoint-set union-find, grounded on the lvlath graph library's
// prim_kruskal.Kruskal (path compression + union by rank over edges within
// the link threshold, adapted from string vertex IDs to point indices).
func singleLinkageClusterXY(pts [][3]float64, linkDistance float64) [][][3]float64 {
	n := len(pts)
	if n == 0 {
		return nil
	}
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if rank[ra] < rank[rb] {
			parent[ra] = rb
		} else {
			parent[rb] = ra
			if rank[ra] == rank[rb] {
				rank[ra]++
			}
		}
	}

	link2 := linkDistance * linkDistance
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := pts[i][0] - pts[j][0]
			dy := pts[i][1] - pts[j][1]
			if dx*dx+dy*dy <= link2 {
				union(i, j)
			}
		}
	}

	groups := make(map[int][][3]float64)
	for i, p := range pts {
		root := find(i)
		groups[root] = append(groups[root], p)
	}
	out := make([][][3]float64, 0, len(groups))
	for _, g := range groups {
		out = append(out, g)
	}
	return out
}

func largestCluster(clusters [][][3]float64) [][3]float64 {
	var best [][3]float64
	for _, c := range clusters {
		if len(c) > len(best) {
			best = c
		}
	}
	return best
}
