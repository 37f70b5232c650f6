package taxonomy

import "errors"

// Sentinel errors for the Formal Parametric Taxonomy, one per failure kind
// (§7), following the lvlath-style per-kind sentinel convention.
var (
	ErrInsufficientReferences = errors.New("taxonomy: fewer than 2 reference records")
	ErrEmptyParameters        = errors.New("taxonomy: no numeric parameters after exclusions")
	ErrEmptyJustification     = errors.New("taxonomy: justification is whitespace-only")
	ErrUnknownClass           = errors.New("taxonomy: unknown class_id")
	ErrSchemaVersionMismatch  = errors.New("taxonomy: export schema version mismatch")
	ErrCorruptedExport        = errors.New("taxonomy: export hash mismatch")
)
