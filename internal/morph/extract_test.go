package morph

import (
	"math"
	"testing"

	"github.com/savignano-axe/morphocore/internal/config"
	"github.com/savignano-axe/morphocore/internal/mesh"
	"github.com/savignano-axe/morphocore/internal/monitoring"
	"github.com/savignano-axe/morphocore/internal/testutil"
)

// axeLikeBox builds a hollow-box surface point cloud elongated along one
// world axis, standing in for a scanned mesh for Extract's purposes: Align
// only consumes V, and the box's anisotropic extent gives principal-axis
// alignment a well-defined length/width/thickness ordering to recover.
func axeLikeBox(lengthMM, widthMM, thicknessMM float64) mesh.Mesh {
	var v [][3]float64
	step := 2.0
	for x := -lengthMM / 2; x <= lengthMM/2; x += step {
		for y := -widthMM / 2; y <= widthMM/2; y += step {
			v = append(v, [3]float64{x, y, -thicknessMM / 2})
			v = append(v, [3]float64{x, y, thicknessMM / 2})
		}
	}
	for x := -lengthMM / 2; x <= lengthMM/2; x += step {
		for z := -thicknessMM / 2; z <= thicknessMM/2; z += step {
			v = append(v, [3]float64{x, -widthMM / 2, z})
			v = append(v, [3]float64{x, widthMM / 2, z})
		}
	}
	return mesh.Mesh{
		V:           v,
		Volume:      lengthMM * widthMM * thicknessMM * 0.5,
		SurfaceArea: 2 * (lengthMM*widthMM + lengthMM*thicknessMM + widthMM*thicknessMM),
		Watertight:  true,
	}
}

func TestExtract_EmptyMesh(t *testing.T) {
	cfg := config.EmptyExtractorConfig()
	_, err := Extract(mesh.Mesh{}, ExtractOptions{Config: cfg, ArtifactID: "a1", InventoryNumber: "INV-1"})
	if err != ErrEmptyMesh {
		t.Fatalf("expected ErrEmptyMesh, got %v", err)
	}
}

func TestExtract_DegenerateAlignment(t *testing.T) {
	cfg := config.EmptyExtractorConfig()
	m := mesh.Mesh{V: [][3]float64{{0, 0, 0}, {1, 0, 0}, {math.NaN(), 0, 0}}}
	_, err := Extract(m, ExtractOptions{Config: cfg, ArtifactID: "a1", InventoryNumber: "INV-1"})
	if err != ErrDegenerateAlignment {
		t.Fatalf("expected ErrDegenerateAlignment, got %v", err)
	}
}

func TestExtract_BasicFields(t *testing.T) {
	cfg := config.EmptyExtractorConfig()
	m := axeLikeBox(200, 60, 20)
	weight := 410.5
	record, err := Extract(m, ExtractOptions{Config: cfg, ArtifactID: "artifact-42", InventoryNumber: "INV-2026-07", Weight: &weight})
	testutil.AssertNoError(t, err)

	if record.ArtifactID != "artifact-42" || record.InventoryNumber != "INV-2026-07" {
		t.Errorf("expected identifiers to be carried through untouched, got %+v", record)
	}
	if record.Length <= 0 || record.Width <= 0 || record.Thickness <= 0 {
		t.Errorf("expected positive length/width/thickness, got L=%f W=%f T=%f", record.Length, record.Width, record.Thickness)
	}
	testutil.AssertClose(t, record.Peso, weight, 1e-9)
	if record.Volume <= 0 || record.SurfaceArea <= 0 {
		t.Errorf("expected volume/surface area to be carried through from the mesh, got V=%f S=%f", record.Volume, record.SurfaceArea)
	}
}

func TestExtract_NilWeightDefaultsToZero(t *testing.T) {
	cfg := config.EmptyExtractorConfig()
	m := axeLikeBox(200, 60, 20)
	record, err := Extract(m, ExtractOptions{Config: cfg, ArtifactID: "artifact-42"})
	testutil.AssertNoError(t, err)

	if record.Peso != 0 {
		t.Errorf("expected peso 0.0 when weight is absent, got %f", record.Peso)
	}
}

func TestExtract_NearCubicMeshStillExtracts(t *testing.T) {
	var messages []string
	monitoring.SetLogger(func(format string, v ...interface{}) { messages = append(messages, format) })
	defer monitoring.SetLogger(nil)

	cfg := config.EmptyExtractorConfig()
	// A near-cubic box can legitimately yield thickness > width after PCA
	// reordering; either way Extract must not error, and any degraded or
	// unusual feature is logged rather than silently dropped.
	m := axeLikeBox(30, 28, 26)
	_, err := Extract(m, ExtractOptions{Config: cfg, ArtifactID: "a1", InventoryNumber: "INV-1"})
	testutil.AssertNoError(t, err)
}
