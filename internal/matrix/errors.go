package matrix

import "errors"

// Sentinel errors for the Matrix Analyser, one per failure kind (§7),
// following the lvlath-style per-kind sentinel convention.
var (
	// ErrInsufficientPopulation is returned when fewer than 3 records are
	// supplied for clustering.
	ErrInsufficientPopulation = errors.New("matrix: population has fewer than 3 records")

	// ErrMissingColumns is returned when the required numeric feature
	// subset is not present (finite) in every record.
	ErrMissingColumns = errors.New("matrix: required feature columns missing or non-finite")
)
