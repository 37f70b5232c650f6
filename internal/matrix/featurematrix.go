package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/savignano-axe/morphocore/internal/morph"
)

// requiredColumnNames returns the canonical, fixed feature column order for
// clustering (§4.C.1): the full numeric subset of the Feature Record plus
// the boolean features encoded 0/1, in the order morph.FeatureRecord.ToVector
// produces them.
func requiredColumnNames() []string {
	names := append([]string(nil), morph.SortedFeatureNames()...)
	return append(names, morph.BooleanFeatureNames()...)
}

// buildFeatureMatrix implements §4.C.1: assemble the n×d raw matrix, then
// z-score each column (subtract mean, divide by std with a 1e-12 floor),
// dropping any column whose raw std is exactly zero. A non-finite value in
// any required column of any record is treated as a missing column.
func buildFeatureMatrix(population []morph.FeatureRecord) ([]string, *mat.Dense, error) {
	if len(population) < 3 {
		return nil, nil, ErrInsufficientPopulation
	}

	allNames := requiredColumnNames()
	n := len(population)
	raw := make([][]float64, len(allNames))
	for col := range raw {
		raw[col] = make([]float64, n)
	}

	for row, rec := range population {
		for col, name := range allNames {
			v, _ := rec.Numeric(name)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, nil, ErrMissingColumns
			}
			raw[col][row] = v
		}
	}

	var keptNames []string
	var keptCols [][]float64
	for col, name := range allNames {
		mean, std := stat.MeanStdDev(raw[col], nil)
		if std == 0 {
			continue
		}
		floor := std
		if floor < 1e-12 {
			floor = 1e-12
		}
		z := make([]float64, n)
		for row, v := range raw[col] {
			z[row] = (v - mean) / floor
		}
		keptNames = append(keptNames, name)
		keptCols = append(keptCols, z)
	}

	d := len(keptCols)
	dense := mat.NewDense(n, d, nil)
	for col, z := range keptCols {
		for row, v := range z {
			dense.Set(row, col, v)
		}
	}

	return keptNames, dense, nil
}
