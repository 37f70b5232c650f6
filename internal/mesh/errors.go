package mesh

import "errors"

// Sentinel errors, one per failure kind, following the lvlath graph
// library's convention (core.ErrEmptyVertexID et al.) of a distinct
// exported error value per failure mode rather than a single generic
// error type carrying a string kind.
var (
	// ErrEmptyMesh is returned when the vertex array is empty.
	ErrEmptyMesh = errors.New("mesh: empty vertex array")

	// ErrDegenerateAlignment is returned when principal-axis analysis
	// yields non-finite eigenvalues, eigenvectors, or centroid.
	ErrDegenerateAlignment = errors.New("mesh: degenerate principal-axis alignment")
)
