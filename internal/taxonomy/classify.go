package taxonomy

import (
	"math"

	"github.com/savignano-axe/morphocore/internal/morph"
)

// Classify implements §4.T.2: a pure, idempotent scoring of record against
// class's parameter bands. Every parameter in the class gets a diagnostic
// entry, whether or not record carries that feature.
func Classify(class ClassRecord, record morph.FeatureRecord) ClassificationResult {
	diagnostic := make(map[string]ParameterDiagnostic, len(class.Parameters))

	var scoreSum, weightSum float64
	var passCount, failCount int

	for name, p := range class.Parameters {
		x, ok := record.Numeric(name)
		if !ok || math.IsNaN(x) || math.IsInf(x, 0) {
			diagnostic[name] = ParameterDiagnostic{Status: StatusSkip, Measured: math.NaN(), Ideal: p.Mean, Distance: 0, Score: 0}
			continue
		}

		distance := math.Abs(x-p.Mean) / (p.Std + 1e-12)

		var status ParameterStatus
		var score float64
		if x >= p.MinThreshold && x <= p.MaxThreshold {
			status = StatusPass
			score = p.Weight * math.Max(0, 1-distance/2)
			passCount++
		} else {
			status = StatusFail
			score = p.Weight * math.Max(0, 0.5-distance/4)
			failCount++
		}

		diagnostic[name] = ParameterDiagnostic{Status: status, Measured: x, Ideal: p.Mean, Distance: distance, Score: score}
		scoreSum += score
		weightSum += p.Weight
	}

	var confidence float64
	if weightSum > 0 {
		confidence = scoreSum / weightSum
	}

	requiredPasses := int(math.Ceil(0.6 * float64(passCount+failCount)))
	isMember := confidence >= class.ConfidenceThreshold && passCount >= requiredPasses

	return ClassificationResult{
		ClassID:    class.ClassID,
		Confidence: confidence,
		IsMember:   isMember,
		Diagnostic: diagnostic,
	}
}
