package morph

import "github.com/savignano-axe/morphocore/internal/config"

// flangeResult holds the raw outputs of §4.M.5 before assembly into the
// Feature Record.
type flangeResult struct {
	Present     bool
	Lunghezza   float64
	SpessoreMax float64
}

// detectFlanges implements §4.M.5: the left strip is the body slab's y
// values below its 5th percentile (configurable), the right strip is y
// above its 95th percentile. A strip is raised iff its median z exceeds the
// central body strip's median z by at least the configured threshold;
// margini_rialzati_presenti requires BOTH strips to be raised.
func detectFlanges(body [][3]float64, cfg *config.ExtractorConfig) flangeResult {
	if len(body) == 0 {
		return flangeResult{}
	}

	ys := make([]float64, len(body))
	for i, p := range body {
		ys[i] = p[1]
	}
	loThresh := percentile(ys, cfg.GetFlangeLowPercentile())
	hiThresh := percentile(ys, cfg.GetFlangeHighPercentile())

	central := centralBodyStrip(body, cfg.GetCentralStripLowPercentile(), cfg.GetCentralStripHighPercentile())
	if len(central) == 0 {
		return flangeResult{}
	}
	centralZs := make([]float64, len(central))
	for i, p := range central {
		centralZs[i] = p[2]
	}
	centralMedianZ := median(centralZs)

	var left, right [][3]float64
	for _, p := range body {
		if p[1] < loThresh {
			left = append(left, p)
		} else if p[1] > hiThresh {
			right = append(right, p)
		}
	}

	leftRaised := stripRaised(left, centralMedianZ, cfg.GetFlangeRaisedThresholdMM())
	rightRaised := stripRaised(right, centralMedianZ, cfg.GetFlangeRaisedThresholdMM())

	if !leftRaised || !rightRaised {
		return flangeResult{}
	}

	union := append(append([][3]float64{}, left...), right...)

	var spessoreMax float64
	for _, p := range union {
		h := p[2] - centralMedianZ
		if h > spessoreMax {
			spessoreMax = h
		}
	}

	return flangeResult{
		Present:     true,
		Lunghezza:   xRange(union),
		SpessoreMax: spessoreMax,
	}
}

// stripRaised reports whether strip's median z exceeds centralMedianZ by at
// least threshold.
func stripRaised(strip [][3]float64, centralMedianZ, threshold float64) bool {
	if len(strip) == 0 {
		return false
	}
	zs := make([]float64, len(strip))
	for i, p := range strip {
		zs[i] = p[2]
	}
	return median(zs)-centralMedianZ >= threshold
}
