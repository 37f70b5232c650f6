package mesh

import (
	"math"
	"testing"
)

func TestNormalize_RescalesMetreScaleMeshes(t *testing.T) {
	m := Mesh{V: [][3]float64{{0, 0, 0}, {0.1, 0.05, 0.01}}, Volume: 1, SurfaceArea: 1}
	out := Normalize(m)
	if got, want := out.V[1][0], 100.0; got != want {
		t.Errorf("V[1][0] = %v, want %v", got, want)
	}
	if out.Volume != 1e9 {
		t.Errorf("Volume = %v, want 1e9", out.Volume)
	}
	if out.SurfaceArea != 1e6 {
		t.Errorf("SurfaceArea = %v, want 1e6", out.SurfaceArea)
	}
}

func TestNormalize_LeavesMillimetreMeshesUnchanged(t *testing.T) {
	m := Mesh{V: [][3]float64{{0, 0, 0}, {163, 56, 15}}}
	out := Normalize(m)
	if out.V[1] != m.V[1] {
		t.Errorf("mesh was rescaled unexpectedly: %v", out.V[1])
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite([][3]float64{{1, 2, 3}}) {
		t.Error("expected finite for ordinary coordinates")
	}
	if IsFinite([][3]float64{{1, 2, math.NaN()}}) {
		t.Error("expected non-finite for a NaN coordinate")
	}
	if IsFinite([][3]float64{{1, math.Inf(1), 3}}) {
		t.Error("expected non-finite for an infinite coordinate")
	}
}
