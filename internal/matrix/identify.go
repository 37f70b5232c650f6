package matrix

import (
	"github.com/savignano-axe/morphocore/internal/morph"
)

// lowSeparationThreshold is the silhouette floor below which a clustering
// is still reported but flagged low_separation (§4.C.2).
const lowSeparationThreshold = 0.15

// kmeansSeed is the fixed seed required for k-means reproducibility
// (§4.C.4, seed scenario 6).
const kmeansSeed = 0

// IdentifyMatrices implements the Matrix Analyser's public contract
// (§4.C): cluster a population of Feature Records into putative
// casting-matrix groups using the requested method, choosing the cluster
// count that maximises the silhouette score unless fixedK is supplied
// (fixedK <= 0 means "not supplied").
func IdentifyMatrices(population []morph.FeatureRecord, method Method, maxClusters int, fixedK int) (Result, error) {
	_, m, err := buildFeatureMatrix(population)
	if err != nil {
		return Result{}, err
	}

	n, _ := m.Dims()
	upperK := maxClusters
	if n-1 < upperK {
		upperK = n - 1
	}

	var bestK int
	var bestAssignments []int
	var bestSilhouette float64
	first := true

	tryK := func(k int) ([]int, float64) {
		var assignments []int
		if method == MethodKMeans {
			assignments = kmeans(m, k, kmeansSeed)
		} else {
			groups := hierarchicalWard(m, k)
			assignments = make([]int, n)
			for clusterIdx, members := range groups {
				for _, row := range members {
					assignments[row] = clusterIdx
				}
			}
		}
		return assignments, silhouetteScore(m, assignments, k)
	}

	if fixedK > 0 {
		bestK = fixedK
		bestAssignments, bestSilhouette = tryK(fixedK)
	} else {
		for k := 2; k <= upperK; k++ {
			assignments, score := tryK(k)
			if first || score > bestSilhouette {
				bestK, bestAssignments, bestSilhouette = k, assignments, score
				first = false
			}
		}
	}

	matrixIDs := make([]string, bestK)
	for i := range matrixIDs {
		matrixIDs[i] = matrixIDFor(i)
	}

	assignmentsOut := make(map[string]string, n)
	members := make([][]morph.FeatureRecord, bestK)
	for i, rec := range population {
		c := bestAssignments[i]
		assignmentsOut[rec.ArtifactID] = matrixIDs[c]
		members[c] = append(members[c], rec)
	}

	summaries := make(map[string]MatrixSummary, bestK)
	for c := 0; c < bestK; c++ {
		summaries[matrixIDs[c]] = buildSummary(matrixIDs[c], members[c])
	}

	return Result{
		NMatrices:       bestK,
		SilhouetteScore: bestSilhouette,
		LowSeparation:   bestSilhouette < lowSeparationThreshold,
		Assignments:     assignmentsOut,
		Summaries:       summaries,
	}, nil
}
