package morph

import "testing"

func TestShouldExtract_AllGroupsMatch(t *testing.T) {
	result := ShouldExtract("AX-001", "Bronze Socketed Axe", "bronzo", "Savignano-type specimen")
	if !result.Decision {
		t.Fatalf("expected decision=true for a full match, got confidence=%f signals=%v", result.Confidence, result.Signals)
	}
	if result.Confidence < 0.999 {
		t.Errorf("expected confidence ~1.0 for all three groups matching, got %f", result.Confidence)
	}
	if len(result.Signals) != 3 {
		t.Errorf("expected 3 signals, got %v", result.Signals)
	}
}

func TestShouldExtract_AxeAndBronzeOnly(t *testing.T) {
	// axe-class (0.4) + bronze (0.2) = 0.6 >= 0.5 cutoff.
	result := ShouldExtract("id", "axe", "bronze", "")
	if !result.Decision {
		t.Errorf("expected decision=true at score 0.6, got %f", result.Confidence)
	}
}

func TestShouldExtract_BronzeOnlyBelowCutoff(t *testing.T) {
	result := ShouldExtract("id", "", "bronze", "unrelated description")
	if result.Decision {
		t.Errorf("expected decision=false at score 0.2, got %f", result.Confidence)
	}
}

func TestShouldExtract_CaseInsensitive(t *testing.T) {
	result := ShouldExtract("ID", "BRONZE SOCKETED AXE", "", "SAVIGNANO")
	if !result.Decision {
		t.Error("expected case-insensitive matching to still decide true")
	}
}

func TestShouldExtract_NoMatch(t *testing.T) {
	result := ShouldExtract("id", "pottery", "clay", "a neolithic vessel")
	if result.Decision || result.Confidence != 0 || len(result.Signals) != 0 {
		t.Errorf("expected no signals and decision=false, got %+v", result)
	}
}
