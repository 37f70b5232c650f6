package matrix

import "testing"

func TestSilhouetteScore_WellSeparatedBlobsIsHigh(t *testing.T) {
	m := twoBlobMatrix()
	assignments := []int{0, 0, 0, 1, 1, 1}
	score := silhouetteScore(m, assignments, 2)
	if score < 0.9 {
		t.Errorf("expected a high silhouette score for well-separated blobs, got %f", score)
	}
}

func TestSilhouetteScore_SingletonClustersContributeZero(t *testing.T) {
	m := twoBlobMatrix()
	assignments := []int{0, 1, 2, 3, 4, 5}
	score := silhouetteScore(m, assignments, 6)
	if score != 0 {
		t.Errorf("expected zero silhouette when every cluster is a singleton, got %f", score)
	}
}
