package taxonomy

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/savignano-axe/morphocore/internal/morph"
	"github.com/savignano-axe/morphocore/internal/timeutil"
)

// defaultConfidenceThreshold and defaultToleranceFactor are the §4.T.1
// defaults.
const (
	defaultConfidenceThreshold = 0.65
	defaultToleranceFactor     = 0.15
	defaultToleranceK          = 2.0
)

// exportSchemaVersion is the current Registry export format version
// (§6's "version: integer schema version, currently 1").
const exportSchemaVersion = 1

// Registry is the process-wide Class Registry of §5 and §9: a value
// guarded by one mutex owned by the caller's process, never an implicit
// module-level singleton. Mutating operations (DefineClass, ModifyClass,
// Import) take the write lock; reads take the read lock, matching the
// concurrency contract of §5.
type Registry struct {
	mu      sync.RWMutex
	clock   timeutil.Clock
	classes map[string]*ClassRecord
	order   []string // insertion order, for deterministic ListClasses/Export
}

// NewRegistry constructs an empty Registry using clock for timestamps.
// Pass a *timeutil.MockClock in tests for reproducible, monotonically
// increasing timestamps.
func NewRegistry(clock timeutil.Clock) *Registry {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	return &Registry{clock: clock, classes: make(map[string]*ClassRecord)}
}

// DefineClass implements §4.T.1: derive mean/std/threshold bands for every
// numeric feature name present across all reference records, then register
// a new Active class.
func (r *Registry) DefineClass(name string, references []morph.FeatureRecord, parameterWeights map[string]float64, toleranceFactor float64) (ClassRecord, error) {
	if len(references) < 2 {
		return ClassRecord{}, ErrInsufficientReferences
	}
	if toleranceFactor <= 0 {
		toleranceFactor = defaultToleranceFactor
	}

	names := requiredFeatureNames(references)
	if len(names) == 0 {
		return ClassRecord{}, ErrEmptyParameters
	}

	params := make(map[string]Parameter, len(names))
	for _, featureName := range names {
		vals := make([]float64, len(references))
		for i, rec := range references {
			v, _ := rec.Numeric(featureName)
			vals[i] = v
		}
		mean := meanOf(vals)
		std := sampleStdDev(vals, mean)

		var minT, maxT float64
		if std == 0 {
			minT = mean * (1 - toleranceFactor)
			maxT = mean * (1 + toleranceFactor)
		} else {
			minT = mean - defaultToleranceK*std
			maxT = mean + defaultToleranceK*std
		}

		weight := 1.0
		if w, ok := parameterWeights[featureName]; ok {
			weight = w
		}

		params[featureName] = Parameter{Mean: mean, Std: std, MinThreshold: minT, MaxThreshold: maxT, Weight: weight}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	classID := r.nextClassID(name, now)

	class := ClassRecord{
		ClassID:             classID,
		Name:                name,
		Parameters:          params,
		NReferenceSamples:   len(references),
		ConfidenceThreshold: defaultConfidenceThreshold,
		ToleranceFactor:     toleranceFactor,
		Version:             1,
		Status:              StatusActive,
		ParameterHash:       parameterHash(params),
		CreatedAt:           now,
	}

	r.classes[classID] = &class
	r.order = append(r.order, classID)

	return class, nil
}

// nextClassID builds the CLASS_<NAME>_<timestamp> id of §4.T.1, extending
// the id with an incrementing _1, _2, ... suffix on collision. Must be
// called with the write lock held.
func (r *Registry) nextClassID(name string, now time.Time) string {
	base := fmt.Sprintf("CLASS_%s_%d", normalizeName(name), now.UnixNano())
	if _, exists := r.classes[base]; !exists {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d", base, i)
		if _, exists := r.classes[candidate]; !exists {
			return candidate
		}
	}
}

func normalizeName(name string) string {
	upper := strings.ToUpper(strings.TrimSpace(name))
	var b strings.Builder
	for _, c := range upper {
		switch {
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteRune(c)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// ModifyClass implements §4.T.3: produce a new, incremented-version Class
// Record carrying parameterChanges applied over the predecessor's
// parameters, transition the predecessor to Superseded, and record the
// change in version_history.
func (r *Registry) ModifyClass(classID string, parameterChanges map[string]Parameter, justification, operator string) (ClassRecord, error) {
	if strings.TrimSpace(justification) == "" {
		return ClassRecord{}, ErrEmptyJustification
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	predecessor, ok := r.classes[classID]
	if !ok {
		return ClassRecord{}, ErrUnknownClass
	}

	newParams := make(map[string]Parameter, len(predecessor.Parameters))
	for name, p := range predecessor.Parameters {
		newParams[name] = p
	}
	for name, change := range parameterChanges {
		newParams[name] = change
	}

	now := r.clock.Now()
	newClassID := r.nextClassID(predecessor.Name, now)

	newClass := ClassRecord{
		ClassID:             newClassID,
		Name:                predecessor.Name,
		Parameters:          newParams,
		NReferenceSamples:   predecessor.NReferenceSamples,
		ConfidenceThreshold: predecessor.ConfidenceThreshold,
		ToleranceFactor:     predecessor.ToleranceFactor,
		Version:             predecessor.Version + 1,
		ParentClassID:       predecessor.ClassID,
		VersionHistory: append(append([]VersionHistoryEntry(nil), predecessor.VersionHistory...), VersionHistoryEntry{
			FromClassID:   predecessor.ClassID,
			Changes:       parameterChanges,
			Justification: justification,
			Operator:      operator,
			Timestamp:     now,
		}),
		Status:        StatusActive,
		ParameterHash: parameterHash(newParams),
		CreatedAt:     now,
	}

	predecessor.Status = StatusSuperseded
	r.classes[newClassID] = &newClass
	r.order = append(r.order, newClassID)

	return newClass, nil
}

// ListClasses implements list_classes(): every registered class, in
// definition order.
func (r *Registry) ListClasses() []ClassRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ClassRecord, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.classes[id])
	}
	return out
}

// GetClass implements get_class(class_id).
func (r *Registry) GetClass(classID string) (ClassRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.classes[classID]
	if !ok {
		return ClassRecord{}, ErrUnknownClass
	}
	return *c, nil
}

// Classify implements the registry-aware half of the classify() contract:
// if classID is non-nil, classify against exactly that class (any status);
// otherwise classify against every Active class and return the
// best-scoring result, ties broken by higher confidence then
// lexicographic class_id.
func (r *Registry) Classify(record morph.FeatureRecord, classID *string) (ClassificationResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if classID != nil {
		c, ok := r.classes[*classID]
		if !ok {
			return ClassificationResult{}, ErrUnknownClass
		}
		return Classify(*c, record), nil
	}

	var best *ClassificationResult
	var bestID string
	for _, id := range r.order {
		c := r.classes[id]
		if c.Status != StatusActive {
			continue
		}
		result := Classify(*c, record)
		if best == nil ||
			result.Confidence > best.Confidence ||
			(result.Confidence == best.Confidence && c.ClassID < bestID) {
			resultCopy := result
			best = &resultCopy
			bestID = c.ClassID
		}
	}
	if best == nil {
		return ClassificationResult{}, ErrUnknownClass
	}
	return *best, nil
}

// exportEnvelope is the wire shape of §6's Registry export format.
type exportEnvelope struct {
	Version    int           `json:"version"`
	Classes    []ClassRecord `json:"classes"`
	ExportedAt string        `json:"exported_at"`
	Hash       string        `json:"hash"`
}

// Export implements export(): a structured, tamper-detectable byte
// serialisation of every class in definition order, including full version
// history.
func (r *Registry) Export() ([]byte, error) {
	r.mu.RLock()
	classes := make([]ClassRecord, 0, len(r.order))
	for _, id := range r.order {
		classes = append(classes, *r.classes[id])
	}
	now := r.clock.Now()
	r.mu.RUnlock()

	envelope := exportEnvelope{
		Version:    exportSchemaVersion,
		Classes:    classes,
		ExportedAt: now.UTC().Format(time.RFC3339Nano),
		Hash:       classesHash(classes),
	}
	return json.Marshal(envelope)
}

// Import implements import(): replaces the current registry atomically
// after verifying the schema version and tamper-detection hash.
func (r *Registry) Import(data []byte) error {
	var envelope exportEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("taxonomy: malformed export: %w", err)
	}
	if envelope.Version != exportSchemaVersion {
		return ErrSchemaVersionMismatch
	}
	if classesHash(envelope.Classes) != envelope.Hash {
		return ErrCorruptedExport
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	classes := make(map[string]*ClassRecord, len(envelope.Classes))
	order := make([]string, 0, len(envelope.Classes))
	for i := range envelope.Classes {
		c := envelope.Classes[i]
		classes[c.ClassID] = &c
		order = append(order, c.ClassID)
	}
	r.classes = classes
	r.order = order
	return nil
}

// classesHash hashes the canonical serialisation of the class slice for
// the export tamper-detection field (§6): every class's identity, state,
// version lineage and parameter_hash, in export order, so that a tampered
// re-import of anything but the class's own parameters (status, version
// history, lineage) is also detected. It folds in the stored parameter_hash
// and a parameterHash recomputed from the Parameters rather than
// re-serialising every Parameter, so the parameter bands are covered too.
func classesHash(classes []ClassRecord) string {
	var b strings.Builder
	for _, c := range classes {
		fmt.Fprintf(&b, "%s|%s|%d|%d|%s|%s|%s|%s;", c.ClassID, c.Name, c.Version, c.NReferenceSamples, c.Status, c.ParentClassID, c.ParameterHash, parameterHash(c.Parameters))
		for _, entry := range c.VersionHistory {
			fmt.Fprintf(&b, "  %s|%s|%s|%d;", entry.FromClassID, entry.Operator, entry.Justification, entry.Timestamp.UnixNano())
		}
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// requiredFeatureNames returns the union of numeric keys present (finite)
// in every reference record, in canonical order.
func requiredFeatureNames(references []morph.FeatureRecord) []string {
	var out []string
	for _, name := range append(append([]string(nil), morph.SortedFeatureNames()...), morph.BooleanFeatureNames()...) {
		allFinite := true
		for _, rec := range references {
			v, ok := rec.Numeric(name)
			if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
				allFinite = false
				break
			}
		}
		if allFinite {
			out = append(out, name)
		}
	}
	return out
}

func meanOf(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// sampleStdDev is the R-1 denominator sample standard deviation of §4.T.1,
// 0.0 if fewer than 2 values.
func sampleStdDev(vals []float64, mean float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	var ss float64
	for _, v := range vals {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(vals)-1))
}
