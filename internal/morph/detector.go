package morph

import "strings"

// DetectionResult is the output of ShouldExtract (§4.M.8): whether the
// catalogue metadata for a candidate specimen looks enough like a
// Savignano-type socketed axe to warrant running the extractor at all.
type DetectionResult struct {
	Decision   bool
	Confidence float64
	Signals    []string
}

var axeClassTerms = []string{"axe", "ascia", "socketed"}
var bronzeTerms = []string{"bronze", "bronzo"}
var savignanoTerms = []string{"savignano", "incavo", "tallone", "margini rialzati"}

const (
	axeClassWeight  = 0.4
	bronzeWeight    = 0.2
	savignanoWeight = 0.4
	decisionCutoff  = 0.5
)

// ShouldExtract implements the Feature Detector of §4.M.8: a pure,
// catalogue-metadata prescreen over id/category/material/description,
// independent of the mesh itself. Each of the three term groups that finds
// at least one case-insensitive substring match in the concatenated input
// contributes its fixed weight to the score; the decision fires at
// score >= 0.5.
func ShouldExtract(id, category, material, description string) DetectionResult {
	haystack := strings.ToLower(strings.Join([]string{id, category, material, description}, " "))

	var signals []string
	var score float64

	if matched, hit := anyMatch(haystack, axeClassTerms); matched {
		score += axeClassWeight
		signals = append(signals, hit)
	}
	if matched, hit := anyMatch(haystack, bronzeTerms); matched {
		score += bronzeWeight
		signals = append(signals, hit)
	}
	if matched, hit := anyMatch(haystack, savignanoTerms); matched {
		score += savignanoWeight
		signals = append(signals, hit)
	}

	return DetectionResult{
		Decision:   score >= decisionCutoff,
		Confidence: score,
		Signals:    signals,
	}
}

// anyMatch reports whether any term occurs as a substring of haystack,
// returning the first term that matched.
func anyMatch(haystack string, terms []string) (bool, string) {
	for _, term := range terms {
		if strings.Contains(haystack, term) {
			return true, term
		}
	}
	return false, ""
}
