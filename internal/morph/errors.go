package morph

import "errors"

// Sentinel errors for the Morphometric Extractor, one per failure kind
// (§7), following the lvlath-style per-kind sentinel convention.
var (
	// ErrEmptyMesh is returned when the input mesh has no vertices.
	ErrEmptyMesh = errors.New("morph: empty mesh")

	// ErrDegenerateAlignment is returned when principal-axis analysis
	// yields non-finite values.
	ErrDegenerateAlignment = errors.New("morph: degenerate principal-axis alignment")
)
