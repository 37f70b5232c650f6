package morph

import (
	"math"
	"sort"

	"github.com/savignano-axe/morphocore/internal/monitoring"
)

// buttMeasurements computes tallone_larghezza and tallone_spessore (§4.M.3):
// the y-range and z-range of the butt slab.
func buttMeasurements(butt [][3]float64) (larghezza, spessore float64) {
	return yRange(butt), zRange(butt)
}

// bladeWidth computes tagliente_larghezza: the y-range of the blade slab.
func bladeWidth(blade [][3]float64) float64 {
	return yRange(blade)
}

// bladeExpanded reports whether the blade width exceeds the body's minimum
// width by more than the configured ratio.
func bladeExpanded(taglienteLarghezza, larghezzaMinima, ratio float64) bool {
	if larghezzaMinima <= 0 {
		return false
	}
	return taglienteLarghezza > larghezzaMinima*ratio
}

// bladeProfile computes the cutting-edge shape classification, arc length,
// and chord of §4.M.3: project the cutting-edge subset (x <= xMin +
// cuttingEdgeFraction*range of the whole aligned mesh) into the (y, z)
// plane, sort by y, then measure chord (endpoint distance) and arc (sum of
// consecutive distances).
func bladeProfile(whole [][3]float64, cuttingEdgeFraction, arcLow, arcHigh float64, artifactID string) (BladeShape, float64, float64) {
	xMin, xMax := bounds(whole, 0)
	span := xMax - xMin
	threshold := xMin + cuttingEdgeFraction*span

	var edge [][2]float64 // (y, z)
	for _, p := range whole {
		if p[0] <= threshold {
			edge = append(edge, [2]float64{p[1], p[2]})
		}
	}
	if len(edge) < 2 {
		monitoring.Logf("WARNING morph artifact_id=%s feature=tagliente_forma: insufficient cutting-edge vertices", artifactID)
		return ShapeAssente, 0, 0
	}

	sort.Slice(edge, func(i, j int) bool { return edge[i][0] < edge[j][0] })

	chord := dist2D(edge[0], edge[len(edge)-1])
	var arc float64
	for i := 1; i < len(edge); i++ {
		arc += dist2D(edge[i-1], edge[i])
	}

	if chord <= 0 || math.IsNaN(chord) || math.IsNaN(arc) {
		monitoring.Logf("WARNING morph artifact_id=%s feature=tagliente_forma: degenerate chord", artifactID)
		return ShapeAssente, arc, chord
	}

	ratio := arc / chord
	var shape BladeShape
	switch {
	case ratio < arcLow:
		shape = ShapeArcoRibassato
	case ratio <= arcHigh:
		shape = ShapeSemicircolare
	default:
		shape = ShapeLunato
	}
	return shape, arc, chord
}

func dist2D(a, b [2]float64) float64 {
	dy := a[0] - b[0]
	dz := a[1] - b[1]
	return math.Sqrt(dy*dy + dz*dz)
}
