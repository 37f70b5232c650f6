// Package taxonomy implements the Formal Parametric Taxonomy (§4.T): a
// versioned Class Registry over numeric parameter bands derived from
// reference Feature Records, and a pure classifier scoring new specimens
// against those bands.
package taxonomy

import "time"

// Status is the tagged variant for a class's position in its per-class
// state machine (§4.T.4), with no "absent" member since every Class Record
// always occupies exactly one of these three states.
type Status string

const (
	StatusDraft      Status = "Draft"
	StatusActive     Status = "Active"
	StatusSuperseded Status = "Superseded"
)

// Parameter is one named numeric band of a Class Record (§4.T.1).
type Parameter struct {
	Mean         float64
	Std          float64
	MinThreshold float64
	MaxThreshold float64
	Weight       float64
}

// VersionHistoryEntry records one modify_class transition (§4.T.3).
type VersionHistoryEntry struct {
	FromClassID   string
	Changes       map[string]Parameter
	Justification string
	Operator      string
	Timestamp     time.Time
}

// ClassRecord is the taxonomy's unit of classification (§4.T.1, §4.T.3,
// §4.T.4).
type ClassRecord struct {
	ClassID             string
	Name                string
	Parameters          map[string]Parameter
	NReferenceSamples   int
	ConfidenceThreshold float64
	ToleranceFactor     float64
	Version             int
	ParentClassID       string
	VersionHistory      []VersionHistoryEntry
	Status              Status
	ParameterHash       string
	CreatedAt           time.Time
}

// ParameterStatus is the per-parameter PASS/FAIL/SKIP verdict of §4.T.2.
type ParameterStatus string

const (
	StatusPass ParameterStatus = "PASS"
	StatusFail ParameterStatus = "FAIL"
	StatusSkip ParameterStatus = "SKIP"
)

// ParameterDiagnostic is one entry of a ClassificationResult's diagnostic
// map: always present for every parameter in the class (§4.T.2). Measured is
// the record's value for this parameter (NaN if the record didn't carry it);
// Ideal is the class's expected value (Mean) for this parameter.
type ParameterDiagnostic struct {
	Status   ParameterStatus
	Measured float64
	Ideal    float64
	Distance float64
	Score    float64
}

// ClassificationResult is the output of Classify (§3, §4.T.2).
type ClassificationResult struct {
	ClassID    string
	Confidence float64
	IsMember   bool
	Diagnostic map[string]ParameterDiagnostic
}
