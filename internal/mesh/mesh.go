// Package mesh defines the triangulated-surface input contract for the
// morphometric extractor and the principal-axis alignment that precedes
// every measurement.
package mesh

import "math"

// Mesh is a triangulated surface supplied by an external mesh loader.
// V is the vertex array in millimetres, F is the face index array.
// Volume, SurfaceArea and Watertight are pre-computed by the loader; the
// core never recomputes them.
type Mesh struct {
	V           [][3]float64
	F           [][3]int
	Volume      float64
	SurfaceArea float64
	Watertight  bool
}

// AlignedMesh is a Mesh whose vertices have been translated to the
// centroid and rotated into the principal-axis frame (see Align). Column 0
// is length (X), column 1 is width (Y), column 2 is thickness (Z); PCA
// orders axes by variance, not semantics, so callers MUST NOT assume any
// other mapping.
type AlignedMesh struct {
	V [][3]float64
	F [][3]int
}

// boundingBoxLongestSide returns the longest side of the mesh's axis-aligned
// bounding box.
func boundingBoxLongestSide(v [][3]float64) float64 {
	if len(v) == 0 {
		return 0
	}
	min, max := v[0], v[0]
	for _, p := range v[1:] {
		for k := 0; k < 3; k++ {
			if p[k] < min[k] {
				min[k] = p[k]
			}
			if p[k] > max[k] {
				max[k] = p[k]
			}
		}
	}
	longest := 0.0
	for k := 0; k < 3; k++ {
		if d := max[k] - min[k]; d > longest {
			longest = d
		}
	}
	return longest
}

// Normalize rescales the mesh by ×1000 when its longest bounding-box side
// is below 1.0, per §2.1: the core assumes millimetre units, but some
// loaders hand off metre-scale meshes.
func Normalize(m Mesh) Mesh {
	if boundingBoxLongestSide(m.V) >= 1.0 {
		return m
	}
	out := m
	out.V = make([][3]float64, len(m.V))
	for i, p := range m.V {
		out.V[i] = [3]float64{p[0] * 1000, p[1] * 1000, p[2] * 1000}
	}
	out.Volume *= 1000 * 1000 * 1000
	out.SurfaceArea *= 1000 * 1000
	return out
}

// IsFinite reports whether every coordinate of every vertex is finite.
func IsFinite(v [][3]float64) bool {
	for _, p := range v {
		for _, c := range p {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return false
			}
		}
	}
	return true
}
