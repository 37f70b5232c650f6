package matrix

import (
	"testing"

	"github.com/savignano-axe/morphocore/internal/morph"
	"github.com/savignano-axe/morphocore/internal/testutil"
)

func TestBuildSummary_QualityAltaOnLowVariance(t *testing.T) {
	members := []morph.FeatureRecord{
		sampleRecord("a", 100, 50, 10, 500),
		sampleRecord("b", 100.2, 50.1, 10.0, 500.5),
		sampleRecord("c", 99.9, 49.9, 10.1, 499.8),
	}
	summary := buildSummary("MATRIX_01", members)
	if summary.Quality != QualityAlta {
		t.Errorf("expected ALTA quality for near-identical members, got %s", summary.Quality)
	}
	testutil.AssertClose(t, summary.Centroid["length"], 100.0333333, 1e-3)
}

func TestBuildSummary_QualityBassaOnHighVariance(t *testing.T) {
	members := []morph.FeatureRecord{
		sampleRecord("a", 80, 30, 6, 300),
		sampleRecord("b", 140, 70, 18, 900),
		sampleRecord("c", 100, 50, 10, 500),
	}
	summary := buildSummary("MATRIX_01", members)
	if summary.Quality != QualityBassa {
		t.Errorf("expected BASSA quality for widely varying members, got %s", summary.Quality)
	}
}

func TestBuildSummary_TypeBivalvaOnMajority(t *testing.T) {
	members := []morph.FeatureRecord{
		{ArtifactID: "a", IncavoPresente: true, MarginiRialzatiPresenti: true},
		{ArtifactID: "b", IncavoPresente: true, MarginiRialzatiPresenti: true},
		{ArtifactID: "c", IncavoPresente: false, MarginiRialzatiPresenti: false},
	}
	summary := buildSummary("MATRIX_01", members)
	if summary.Type != TypeBivalva {
		t.Errorf("expected bivalva for a 2-of-3 majority, got %s", summary.Type)
	}
}

func TestBuildSummary_TypeMonovalvaOnMinority(t *testing.T) {
	members := []morph.FeatureRecord{
		{ArtifactID: "a", IncavoPresente: true, MarginiRialzatiPresenti: true},
		{ArtifactID: "b", IncavoPresente: false, MarginiRialzatiPresenti: false},
		{ArtifactID: "c", IncavoPresente: false, MarginiRialzatiPresenti: false},
	}
	summary := buildSummary("MATRIX_01", members)
	if summary.Type != TypeMonovalva {
		t.Errorf("expected monovalva for a 1-of-3 minority, got %s", summary.Type)
	}
}
