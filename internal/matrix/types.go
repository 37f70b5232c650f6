// Package matrix implements the Matrix Analyser (§4.C): unsupervised
// clustering of a population of Feature Records into putative casting-matrix
// groups, with per-cluster quality and type summaries.
package matrix

// Quality is the tagged variant for a matrix summary's homogeneity grade,
// with an explicit "assente" member so callers never compare bare strings
// (per the design note in spec §9 on named-category values).
type Quality string

const (
	QualityAssente Quality = "assente"
	QualityAlta    Quality = "ALTA"
	QualityMedia   Quality = "MEDIA"
	QualityBassa   Quality = "BASSA"
)

// Type is the tagged variant for a matrix's mould-type inference.
type Type string

const (
	TypeAssente   Type = "assente"
	TypeBivalva   Type = "bivalva"
	TypeMonovalva Type = "monovalva"
)

// MatrixSummary is the per-cluster description of §4.C.3: raw-scale
// centroid and coefficient-of-variation maps (keyed by the canonical
// feature name), plus the derived quality grade and mould-type inference.
type MatrixSummary struct {
	MatrixID string
	Size     int
	Centroid map[string]float64
	CV       map[string]float64
	Quality  Quality
	Type     Type
}

// Result is the return value of IdentifyMatrices.
type Result struct {
	NMatrices       int
	SilhouetteScore float64
	LowSeparation   bool
	Assignments     map[string]string // artifact_id -> matrix_id
	Summaries       map[string]MatrixSummary
}

// Method selects the clustering algorithm of §4.C.2.
type Method string

const (
	MethodHierarchical Method = "hierarchical"
	MethodKMeans       Method = "kmeans"
)
