package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/savignano-axe/morphocore/internal/morph"
)

// primaryDimensions are the features whose mean coefficient of variation
// drives the quality grade of §4.C.3.
var primaryDimensions = []string{"length", "width", "thickness", "peso"}

// buildSummary implements §4.C.3 for one cluster: raw-scale centroid and
// per-feature coefficient of variation, plus the derived quality grade and
// bivalva/monovalva mould-type inference.
func buildSummary(matrixID string, members []morph.FeatureRecord) MatrixSummary {
	names := requiredColumnNames()
	centroid := make(map[string]float64, len(names))
	cv := make(map[string]float64, len(names))

	for _, name := range names {
		vals := make([]float64, len(members))
		for i, rec := range members {
			v, _ := rec.Numeric(name)
			vals[i] = v
		}
		mean := stat.Mean(vals, nil)
		var std float64
		if len(vals) >= 2 {
			std = stat.StdDev(vals, nil)
		}
		centroid[name] = mean
		cv[name] = std / (abs(mean) + 1e-12)
	}

	var primaryCVSum float64
	for _, name := range primaryDimensions {
		primaryCVSum += cv[name]
	}
	meanPrimaryCV := primaryCVSum / float64(len(primaryDimensions))

	quality := QualityBassa
	switch {
	case meanPrimaryCV < 0.03:
		quality = QualityAlta
	case meanPrimaryCV < 0.07:
		quality = QualityMedia
	}

	var bivalvaCount int
	for _, rec := range members {
		if rec.IncavoPresente && rec.MarginiRialzatiPresenti {
			bivalvaCount++
		}
	}
	matrixType := TypeMonovalva
	if len(members) > 0 && bivalvaCount*2 > len(members) {
		matrixType = TypeBivalva
	}

	return MatrixSummary{
		MatrixID: matrixID,
		Size:     len(members),
		Centroid: centroid,
		CV:       cv,
		Quality:  quality,
		Type:     matrixType,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func matrixIDFor(index int) string {
	return fmt.Sprintf("MATRIX_%02d", index+1)
}
