// Package config provides the tunable, JSON-loadable thresholds used by the
// morphometric extractor (ExtractorConfig), plus the LiDAR-style
// TuningConfig in tuning.go, which no other package uses. It follows the
// teacher's own tuning-config pattern: optional pointer fields with Get*
// accessors that fall back to documented defaults, so a partial JSON file
// only overrides the knobs it mentions.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath is the canonical location for extractor tuning overrides.
const DefaultConfigPath = "config/extractor.defaults.json"

// ExtractorConfig holds every empirically-tuned threshold named in §4.M of
// the specification. All of them were "tuned empirically on one specimen"
// per the spec's own open question, so every one MUST be configurable
// rather than hard-coded; nil means "use the documented default".
type ExtractorConfig struct {
	// Longitudinal slab fractions (§4.M.2).
	ButtSlabFraction  *float64 `json:"butt_slab_fraction,omitempty"`
	BladeSlabFraction *float64 `json:"blade_slab_fraction,omitempty"`
	BodySlabMargin    *float64 `json:"body_slab_margin,omitempty"`

	// Central body strip percentiles (§4.M.2).
	CentralStripLowPercentile  *float64 `json:"central_strip_low_percentile,omitempty"`
	CentralStripHighPercentile *float64 `json:"central_strip_high_percentile,omitempty"`

	// Blade profile (§4.M.3).
	CuttingEdgeFraction *float64 `json:"cutting_edge_fraction,omitempty"`
	ArcChordRatioLow    *float64 `json:"arc_chord_ratio_low,omitempty"`
	ArcChordRatioHigh   *float64 `json:"arc_chord_ratio_high,omitempty"`
	BladeExpansionRatio *float64 `json:"blade_expansion_ratio,omitempty"`

	// Socket detection (§4.M.4).
	SocketTopSurfacePercentile       *float64 `json:"socket_top_surface_percentile,omitempty"`
	SocketConcavityRelativeThreshold *float64 `json:"socket_concavity_relative_threshold,omitempty"`
	SocketNeighborRadiusMM           *float64 `json:"socket_neighbor_radius_mm,omitempty"`
	SocketMinQualifyingFraction      *float64 `json:"socket_min_qualifying_fraction,omitempty"`
	SocketClusterLinkDistanceMM      *float64 `json:"socket_cluster_link_distance_mm,omitempty"`
	SocketEccentricityCircular       *float64 `json:"socket_eccentricity_circular,omitempty"`

	// Raised flanges (§4.M.5).
	FlangeLowPercentile     *float64 `json:"flange_low_percentile,omitempty"`
	FlangeHighPercentile    *float64 `json:"flange_high_percentile,omitempty"`
	FlangeRaisedThresholdMM *float64 `json:"flange_raised_threshold_mm,omitempty"`

	// Body width/thickness (§4.M.6).
	BodyBinCount *int `json:"body_bin_count,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }

// EmptyExtractorConfig returns a config with all fields nil; every Get*
// accessor then returns its documented default.
func EmptyExtractorConfig() *ExtractorConfig {
	return &ExtractorConfig{}
}

// LoadExtractorConfig loads an ExtractorConfig from a JSON file, matching
// the teacher's LoadTuningConfig guardrails: the extension must be .json
// and the file must be under 1MB.
func LoadExtractorConfig(path string) (*ExtractorConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyExtractorConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that any set fields are within sane bounds.
func (c *ExtractorConfig) Validate() error {
	fractions := map[string]*float64{
		"butt_slab_fraction":                  c.ButtSlabFraction,
		"blade_slab_fraction":                 c.BladeSlabFraction,
		"body_slab_margin":                    c.BodySlabMargin,
		"cutting_edge_fraction":               c.CuttingEdgeFraction,
		"socket_concavity_relative_threshold": c.SocketConcavityRelativeThreshold,
		"socket_min_qualifying_fraction":      c.SocketMinQualifyingFraction,
		"socket_eccentricity_circular":        c.SocketEccentricityCircular,
	}
	for name, v := range fractions {
		if v != nil && (*v < 0 || *v > 1) {
			return fmt.Errorf("%s must be between 0 and 1, got %f", name, *v)
		}
	}
	percentiles := map[string]*float64{
		"central_strip_low_percentile":  c.CentralStripLowPercentile,
		"central_strip_high_percentile": c.CentralStripHighPercentile,
		"socket_top_surface_percentile": c.SocketTopSurfacePercentile,
		"flange_low_percentile":         c.FlangeLowPercentile,
		"flange_high_percentile":        c.FlangeHighPercentile,
	}
	for name, v := range percentiles {
		if v != nil && (*v < 0 || *v > 100) {
			return fmt.Errorf("%s must be between 0 and 100, got %f", name, *v)
		}
	}
	if c.BodyBinCount != nil && *c.BodyBinCount < 1 {
		return fmt.Errorf("body_bin_count must be positive, got %d", *c.BodyBinCount)
	}
	return nil
}

// Get* accessors return the configured value or the documented default.

func (c *ExtractorConfig) GetButtSlabFraction() float64 {
	if c == nil || c.ButtSlabFraction == nil {
		return 0.10
	}
	return *c.ButtSlabFraction
}

func (c *ExtractorConfig) GetBladeSlabFraction() float64 {
	if c == nil || c.BladeSlabFraction == nil {
		return 0.10
	}
	return *c.BladeSlabFraction
}

func (c *ExtractorConfig) GetBodySlabMargin() float64 {
	if c == nil || c.BodySlabMargin == nil {
		return 0.15
	}
	return *c.BodySlabMargin
}

func (c *ExtractorConfig) GetCentralStripLowPercentile() float64 {
	if c == nil || c.CentralStripLowPercentile == nil {
		return 25
	}
	return *c.CentralStripLowPercentile
}

func (c *ExtractorConfig) GetCentralStripHighPercentile() float64 {
	if c == nil || c.CentralStripHighPercentile == nil {
		return 75
	}
	return *c.CentralStripHighPercentile
}

func (c *ExtractorConfig) GetCuttingEdgeFraction() float64 {
	if c == nil || c.CuttingEdgeFraction == nil {
		return 0.05
	}
	return *c.CuttingEdgeFraction
}

func (c *ExtractorConfig) GetArcChordRatioLow() float64 {
	if c == nil || c.ArcChordRatioLow == nil {
		return 1.02
	}
	return *c.ArcChordRatioLow
}

func (c *ExtractorConfig) GetArcChordRatioHigh() float64 {
	if c == nil || c.ArcChordRatioHigh == nil {
		return 1.15
	}
	return *c.ArcChordRatioHigh
}

func (c *ExtractorConfig) GetBladeExpansionRatio() float64 {
	if c == nil || c.BladeExpansionRatio == nil {
		return 1.10
	}
	return *c.BladeExpansionRatio
}

func (c *ExtractorConfig) GetSocketTopSurfacePercentile() float64 {
	if c == nil || c.SocketTopSurfacePercentile == nil {
		return 75
	}
	return *c.SocketTopSurfacePercentile
}

func (c *ExtractorConfig) GetSocketConcavityRelativeThreshold() float64 {
	if c == nil || c.SocketConcavityRelativeThreshold == nil {
		return 0.3
	}
	return *c.SocketConcavityRelativeThreshold
}

func (c *ExtractorConfig) GetSocketNeighborRadiusMM() float64 {
	if c == nil || c.SocketNeighborRadiusMM == nil {
		return 5.0
	}
	return *c.SocketNeighborRadiusMM
}

func (c *ExtractorConfig) GetSocketMinQualifyingFraction() float64 {
	if c == nil || c.SocketMinQualifyingFraction == nil {
		return 0.01
	}
	return *c.SocketMinQualifyingFraction
}

func (c *ExtractorConfig) GetSocketClusterLinkDistanceMM() float64 {
	if c == nil || c.SocketClusterLinkDistanceMM == nil {
		return 2.0
	}
	return *c.SocketClusterLinkDistanceMM
}

func (c *ExtractorConfig) GetSocketEccentricityCircular() float64 {
	if c == nil || c.SocketEccentricityCircular == nil {
		return 0.8
	}
	return *c.SocketEccentricityCircular
}

func (c *ExtractorConfig) GetFlangeLowPercentile() float64 {
	if c == nil || c.FlangeLowPercentile == nil {
		return 5
	}
	return *c.FlangeLowPercentile
}

func (c *ExtractorConfig) GetFlangeHighPercentile() float64 {
	if c == nil || c.FlangeHighPercentile == nil {
		return 95
	}
	return *c.FlangeHighPercentile
}

func (c *ExtractorConfig) GetFlangeRaisedThresholdMM() float64 {
	if c == nil || c.FlangeRaisedThresholdMM == nil {
		return 0.5
	}
	return *c.FlangeRaisedThresholdMM
}

func (c *ExtractorConfig) GetBodyBinCount() int {
	if c == nil || c.BodyBinCount == nil {
		return 20
	}
	return *c.BodyBinCount
}
