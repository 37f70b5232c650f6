package matrix

import (
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func twoBlobMatrix() *mat.Dense {
	rows := [][]float64{
		{0, 0}, {0.1, 0.1}, {-0.1, 0},
		{10, 10}, {10.1, 9.9}, {9.9, 10.1},
	}
	m := mat.NewDense(len(rows), 2, nil)
	for i, r := range rows {
		m.SetRow(i, r)
	}
	return m
}

func TestHierarchicalWard_SeparatesTwoBlobs(t *testing.T) {
	m := twoBlobMatrix()
	groups := hierarchicalWard(m, 2)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	for _, g := range groups {
		if len(g) != 3 {
			t.Errorf("expected each blob to form its own group of 3, got sizes %v", groups)
		}
	}
}

func TestHierarchicalWard_Deterministic(t *testing.T) {
	m := twoBlobMatrix()
	first := hierarchicalWard(m, 2)
	second := hierarchicalWard(m, 2)
	if len(first) != len(second) {
		t.Fatal("expected deterministic group count across repeated runs")
	}
	for i := range first {
		if !reflect.DeepEqual(first[i], second[i]) {
			t.Errorf("expected deterministic group %d membership, got %v vs %v", i, first[i], second[i])
		}
	}
}
