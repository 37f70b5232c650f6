package mesh

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Align computes the centroid, covariance eigendecomposition, and sign
// convention described in §4.M.1: the mesh is translated to its centroid
// and rotated so that its axes are ordered by decreasing variance (column 0
// = largest variance = length, column 1 = width, column 2 = thickness).
//
// The 3×3 covariance eigendecomposition uses gonum's symmetric eigensolver
// rather than a hand-rolled closed-form formula, generalising the teacher's
// 2×2 closed-form PCA (internal/lidar/obb.go, EstimateOBBFromCluster) to
// three dimensions.
func Align(m Mesh) (AlignedMesh, error) {
	if len(m.V) == 0 {
		return AlignedMesh{}, ErrEmptyMesh
	}
	if !IsFinite(m.V) {
		return AlignedMesh{}, ErrDegenerateAlignment
	}

	n := float64(len(m.V))
	var centroid [3]float64
	for _, p := range m.V {
		centroid[0] += p[0]
		centroid[1] += p[1]
		centroid[2] += p[2]
	}
	centroid[0] /= n
	centroid[1] /= n
	centroid[2] /= n

	centered := make([][3]float64, len(m.V))
	for i, p := range m.V {
		centered[i] = [3]float64{p[0] - centroid[0], p[1] - centroid[1], p[2] - centroid[2]}
	}

	var cov [3][3]float64
	for _, p := range centered {
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				cov[a][b] += p[a] * p[b]
			}
		}
	}
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			cov[a][b] /= n
		}
	}

	sym := mat.NewSymDense(3, nil)
	for a := 0; a < 3; a++ {
		for b := a; b < 3; b++ {
			sym.SetSym(a, b, cov[a][b])
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return AlignedMesh{}, ErrDegenerateAlignment
	}
	values := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// eig.Values returns ascending order; we want descending (largest
	// variance first). order[0] is the index of the largest eigenvalue.
	order := []int{0, 1, 2}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if values[order[j]] > values[order[i]] {
				order[i], order[j] = order[j], order[i]
			}
		}
	}

	var rot [3][3]float64 // rot[row][col]: column `col` is the col-th ranked eigenvector
	for col, srcCol := range order {
		for row := 0; row < 3; row++ {
			v := vecs.At(row, srcCol)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return AlignedMesh{}, ErrDegenerateAlignment
			}
			rot[row][col] = v
		}
	}
	for _, lambda := range values {
		if math.IsNaN(lambda) || math.IsInf(lambda, 0) {
			return AlignedMesh{}, ErrDegenerateAlignment
		}
	}

	rotated := make([][3]float64, len(centered))
	for i, p := range centered {
		var out [3]float64
		for col := 0; col < 3; col++ {
			out[col] = p[0]*rot[0][col] + p[1]*rot[1][col] + p[2]*rot[2][col]
		}
		rotated[i] = out
	}

	applySignConvention(rotated)

	if !IsFinite(rotated) {
		return AlignedMesh{}, ErrDegenerateAlignment
	}

	return AlignedMesh{V: rotated, F: m.F}, nil
}

// applySignConvention imposes the reproducibility rule of §4.M.1: for each
// axis, if the mean absolute coordinate of the positive side exceeds that
// of the negative side by more than 1e-9, the axis is flipped in place.
func applySignConvention(v [][3]float64) {
	for axis := 0; axis < 3; axis++ {
		var posSum, negSum float64
		var posN, negN int
		for _, p := range v {
			c := p[axis]
			if c > 0 {
				posSum += c
				posN++
			} else if c < 0 {
				negSum += -c
				negN++
			}
		}
		if posN == 0 || negN == 0 {
			continue
		}
		posMean := posSum / float64(posN)
		negMean := negSum / float64(negN)
		if posMean-negMean > 1e-9 {
			for i := range v {
				v[i][axis] = -v[i][axis]
			}
		}
	}
}
