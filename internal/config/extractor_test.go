package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractorConfig_DefaultsWhenEmpty(t *testing.T) {
	cfg := EmptyExtractorConfig()
	if got, want := cfg.GetButtSlabFraction(), 0.10; got != want {
		t.Errorf("GetButtSlabFraction() = %v, want %v", got, want)
	}
	if got, want := cfg.GetSocketTopSurfacePercentile(), 75.0; got != want {
		t.Errorf("GetSocketTopSurfacePercentile() = %v, want %v", got, want)
	}
	if got, want := cfg.GetBodyBinCount(), 20; got != want {
		t.Errorf("GetBodyBinCount() = %v, want %v", got, want)
	}
}

func TestExtractorConfig_NilReceiverUsesDefaults(t *testing.T) {
	var cfg *ExtractorConfig
	if got, want := cfg.GetSocketNeighborRadiusMM(), 5.0; got != want {
		t.Errorf("GetSocketNeighborRadiusMM() = %v, want %v", got, want)
	}
}

func TestLoadExtractorConfig_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extractor.json")
	if err := os.WriteFile(path, []byte(`{"socket_neighbor_radius_mm": 7.5}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadExtractorConfig(path)
	if err != nil {
		t.Fatalf("LoadExtractorConfig: %v", err)
	}
	if got, want := cfg.GetSocketNeighborRadiusMM(), 7.5; got != want {
		t.Errorf("GetSocketNeighborRadiusMM() = %v, want %v", got, want)
	}
	if got, want := cfg.GetBodyBinCount(), 20; got != want {
		t.Errorf("unrelated default GetBodyBinCount() = %v, want %v", got, want)
	}
}

func TestLoadExtractorConfig_RejectsNonJSONExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extractor.yaml")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadExtractorConfig(path); err == nil {
		t.Fatal("expected error for non-.json extension")
	}
}

func TestExtractorConfig_ValidateRejectsOutOfRangeFraction(t *testing.T) {
	cfg := &ExtractorConfig{ButtSlabFraction: ptrFloat64(1.5)}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for fraction > 1")
	}
}
