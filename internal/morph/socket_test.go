package morph

import (
	"math"
	"testing"

	"github.com/savignano-axe/morphocore/internal/config"
)

// syntheticButtWithSocket builds a butt-slab point cloud shaped like a real
// scan cross-section: a dense, low flat underside (the bulk of the casting,
// well below the 75th-percentile cut) plus a sparser top face pierced by a
// circular depression of the given radius and depth. Because the top face
// is a minority of the total point count, the whole of it — rim and
// depression alike — clears the top-surface percentile cut, exactly as it
// would for a real mesh where the butt slab spans the full thickness of the
// casting.
func syntheticButtWithSocket(radius, depth float64) [][3]float64 {
	var pts [][3]float64
	for ix := -200; ix <= 200; ix++ {
		for iy := -200; iy <= 200; iy++ {
			x, y := float64(ix)/10, float64(iy)/10
			pts = append(pts, [3]float64{90 + x, y, 0})
		}
	}
	for ix := -200; ix <= 200; ix += 3 {
		for iy := -200; iy <= 200; iy += 3 {
			x, y := float64(ix)/10, float64(iy)/10
			z := 10.0
			if x*x+y*y <= radius*radius {
				z -= depth
			}
			pts = append(pts, [3]float64{90 + x, y, z})
		}
	}
	return pts
}

func TestDetectSocket_CircularPresent(t *testing.T) {
	cfg := config.EmptyExtractorConfig()
	butt := syntheticButtWithSocket(6, 3)
	result := detectSocket(butt, cfg, "test-artifact")
	if !result.Present {
		t.Fatal("expected a socket to be detected")
	}
	if result.Profilo != ProfileCircolare {
		t.Errorf("expected circolare profile, got %s", result.Profilo)
	}
	if result.Profondita <= 0 {
		t.Errorf("expected positive depth, got %f", result.Profondita)
	}
	if result.Larghezza <= 0 {
		t.Errorf("expected positive width, got %f", result.Larghezza)
	}
}

func TestDetectSocket_AbsentOnFlatTop(t *testing.T) {
	cfg := config.EmptyExtractorConfig()
	butt := syntheticButtWithSocket(6, 0) // depth 0: flat top, no depression
	result := detectSocket(butt, cfg, "test-artifact")
	if result.Present {
		t.Error("expected no socket on a flat top surface")
	}
	if result.Profilo != ProfileAssente {
		t.Errorf("expected assente profile, got %s", result.Profilo)
	}
}

func TestDetectSocket_EmptyButt(t *testing.T) {
	cfg := config.EmptyExtractorConfig()
	result := detectSocket(nil, cfg, "test-artifact")
	if result.Present || result.Profilo != ProfileAssente {
		t.Error("expected assente/not-present for an empty butt slab")
	}
}

func TestSpatialIndex3D_WithinRadius(t *testing.T) {
	pts := [][3]float64{{0, 0, 0}, {1, 0, 0}, {10, 0, 0}}
	idx := newSpatialIndex3D(pts, 2.0)
	neighbors := idx.withinRadius(0, 2.0)
	found := map[int]bool{}
	for _, n := range neighbors {
		found[n] = true
	}
	if !found[0] || !found[1] {
		t.Errorf("expected points 0 and 1 within radius, got %v", neighbors)
	}
	if found[2] {
		t.Error("expected point 2 to be outside the radius")
	}
}

func TestSingleLinkageClusterXY(t *testing.T) {
	pts := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, // one tight cluster
		{50, 50, 0}, // isolated point
	}
	clusters := singleLinkageClusterXY(pts, 1.5)
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}
	largest := largestCluster(clusters)
	if len(largest) != 3 {
		t.Errorf("expected the largest cluster to have 3 points, got %d", len(largest))
	}
}

func TestDetectSocket_EccentricityNoDivideByZero(t *testing.T) {
	largest := [][3]float64{{0, 0, 0}}
	xr := xRange(largest)
	yr := yRange(largest)
	maxRange := math.Max(xr, yr)
	if maxRange != 0 {
		t.Fatalf("expected zero range for a single point, got %f", maxRange)
	}
}
