package morph

import "math"

// bodyMeasurements implements §4.M.6: the body slab is divided into binCount
// equal-width x bins, and larghezza_minima is the minimum y-range across the
// non-empty bins. spessore_massimo_con_margini is the z-range of the whole
// body slab; spessore_massimo_senza_margini is the z-range of the central
// body strip (the flange-free y-band between loPct and hiPct).
func bodyMeasurements(body [][3]float64, loPct, hiPct float64, binCount int) (larghezzaMinima, spessoreConMargini, spessoreSenzaMargini float64) {
	if len(body) == 0 || binCount < 1 {
		return 0, 0, 0
	}

	xMin, xMax := bounds(body, 0)
	span := xMax - xMin

	larghezzaMinima = math.Inf(1)
	if span <= 0 {
		larghezzaMinima = yRange(body)
	} else {
		binWidth := span / float64(binCount)
		bins := make([][][3]float64, binCount)
		for _, p := range body {
			bin := int((p[0] - xMin) / binWidth)
			if bin >= binCount {
				bin = binCount - 1
			}
			if bin < 0 {
				bin = 0
			}
			bins[bin] = append(bins[bin], p)
		}
		for _, b := range bins {
			if len(b) == 0 {
				continue
			}
			w := yRange(b)
			if w < larghezzaMinima {
				larghezzaMinima = w
			}
		}
		if math.IsInf(larghezzaMinima, 1) {
			larghezzaMinima = 0
		}
	}

	spessoreConMargini = zRange(body)
	central := centralBodyStrip(body, loPct, hiPct)
	spessoreSenzaMargini = zRange(central)

	return larghezzaMinima, spessoreConMargini, spessoreSenzaMargini
}
