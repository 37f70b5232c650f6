// Command axecli is a small demonstration CLI that wires the Morphometric
// Extractor's output through the Matrix Analyser and the Formal Parametric
// Taxonomy. It reads a directory of pre-extracted feature JSON files; mesh
// loading and extraction are out of scope for this binary (see SPEC_FULL.md
// Non-goals).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/savignano-axe/morphocore/internal/matrix"
	"github.com/savignano-axe/morphocore/internal/morph"
	"github.com/savignano-axe/morphocore/internal/taxonomy"
	"github.com/savignano-axe/morphocore/internal/timeutil"
	"github.com/savignano-axe/morphocore/internal/version"
)

var (
	featuresDir    = flag.String("features-dir", "", "directory of pre-extracted feature JSON files (one FeatureRecord per file)")
	method         = flag.String("method", "hierarchical", "clustering method: hierarchical or kmeans")
	maxClusters    = flag.Int("max-clusters", 8, "maximum candidate cluster count for matrix identification")
	fixedClusters  = flag.Int("fixed-k", 0, "force this many clusters instead of selecting by silhouette score (0 = auto)")
	referenceClass = flag.String("reference-class", "Savignano", "name for the taxonomy class defined from the largest matrix")
	versionFlag    = flag.Bool("version", false, "print version information and exit")
)

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Printf("axecli %s (commit %s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}

	if *featuresDir == "" {
		log.Fatal("axecli: -features-dir is required")
	}

	population, err := loadFeatureRecords(*featuresDir)
	if err != nil {
		log.Fatalf("axecli: %v", err)
	}
	if len(population) == 0 {
		log.Fatalf("axecli: no feature records found in %s", *featuresDir)
	}

	clusterMethod := matrix.MethodHierarchical
	if strings.EqualFold(*method, "kmeans") {
		clusterMethod = matrix.MethodKMeans
	}

	result, err := matrix.IdentifyMatrices(population, clusterMethod, *maxClusters, *fixedClusters)
	if err != nil {
		log.Fatalf("axecli: matrix identification: %v", err)
	}

	fmt.Printf("identified %d matrices, silhouette=%.3f, low_separation=%v\n",
		result.NMatrices, result.SilhouetteScore, result.LowSeparation)
	for matrixID, summary := range result.Summaries {
		fmt.Printf("  %s: size=%d quality=%s type=%s\n", matrixID, summary.Size, summary.Quality, summary.Type)
	}

	largest := largestMatrixID(result)
	if largest == "" {
		return
	}

	members := membersOf(population, result, largest)
	if len(members) < 2 {
		fmt.Println("largest matrix has fewer than 2 members; skipping class definition")
		return
	}

	registry := taxonomy.NewRegistry(timeutil.RealClock{})
	class, err := registry.DefineClass(*referenceClass, members, nil, 0)
	if err != nil {
		log.Fatalf("axecli: define class: %v", err)
	}
	fmt.Printf("defined class %s (version %d, hash %s)\n", class.ClassID, class.Version, class.ParameterHash[:12])

	for _, rec := range population {
		classification, err := registry.Classify(rec, nil)
		if err != nil {
			continue
		}
		fmt.Printf("  %s -> %s confidence=%.3f member=%v\n",
			rec.ArtifactID, classification.ClassID, classification.Confidence, classification.IsMember)
	}
}

func largestMatrixID(result matrix.Result) string {
	var best string
	bestSize := -1
	for id, summary := range result.Summaries {
		if summary.Size > bestSize {
			best, bestSize = id, summary.Size
		}
	}
	return best
}

func membersOf(population []morph.FeatureRecord, result matrix.Result, matrixID string) []morph.FeatureRecord {
	var out []morph.FeatureRecord
	for _, rec := range population {
		if result.Assignments[rec.ArtifactID] == matrixID {
			out = append(out, rec)
		}
	}
	return out
}

func loadFeatureRecords(dir string) ([]morph.FeatureRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var out []morph.FeatureRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var rec morph.FeatureRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if rec.ArtifactID == "" {
			rec.ArtifactID = strings.TrimSuffix(entry.Name(), ".json")
		}
		out = append(out, rec)
	}
	return out, nil
}
