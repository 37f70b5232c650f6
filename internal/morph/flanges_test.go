package morph

import (
	"testing"

	"github.com/savignano-axe/morphocore/internal/config"
	"github.com/savignano-axe/morphocore/internal/testutil"
)

// syntheticBodyWithFlanges builds a body slab where the central y-band sits
// at z=0 and both outer y-margins are raised by raiseMM.
func syntheticBodyWithFlanges(raiseMM float64) [][3]float64 {
	var body [][3]float64
	for ix := 0; ix <= 100; ix += 5 {
		x := float64(ix)
		for iy := -50; iy <= 50; iy += 2 {
			y := float64(iy)
			z := 0.0
			if y <= -35 || y >= 35 {
				z = raiseMM
			}
			body = append(body, [3]float64{x, y, z})
		}
	}
	return body
}

func TestDetectFlanges_BothRaised(t *testing.T) {
	cfg := config.EmptyExtractorConfig()
	body := syntheticBodyWithFlanges(2.0)
	result := detectFlanges(body, cfg)
	if !result.Present {
		t.Fatal("expected raised flanges to be detected")
	}
	if result.SpessoreMax <= 0 {
		t.Errorf("expected positive max raised thickness, got %f", result.SpessoreMax)
	}
	if result.Lunghezza <= 0 {
		t.Errorf("expected positive flange length, got %f", result.Lunghezza)
	}
}

func TestDetectFlanges_AbsentWhenFlat(t *testing.T) {
	cfg := config.EmptyExtractorConfig()
	body := syntheticBodyWithFlanges(0.0)
	result := detectFlanges(body, cfg)
	if result.Present {
		t.Error("expected no flanges when the body slab is flat")
	}
}

func TestDetectFlanges_RequiresBothStrips(t *testing.T) {
	cfg := config.EmptyExtractorConfig()
	var body [][3]float64
	for ix := 0; ix <= 100; ix += 5 {
		x := float64(ix)
		for iy := -50; iy <= 50; iy += 2 {
			y := float64(iy)
			z := 0.0
			if y <= -35 { // only the left strip is raised
				z = 2.0
			}
			body = append(body, [3]float64{x, y, z})
		}
	}
	result := detectFlanges(body, cfg)
	if result.Present {
		t.Error("expected no flanges when only one strip is raised")
	}
}

func TestStripRaised(t *testing.T) {
	strip := [][3]float64{{0, 0, 5}, {0, 1, 5}, {0, 2, 5}}
	if !stripRaised(strip, 4.0, 0.5) {
		t.Error("expected strip median 5 vs central 4.0 at threshold 0.5 to be raised")
	}
	if stripRaised(strip, 4.8, 0.5) {
		t.Error("expected strip median 5 vs central 4.8 at threshold 0.5 to NOT be raised")
	}
	if stripRaised(nil, 0, 0.5) {
		t.Error("expected an empty strip to never be raised")
	}
}

func TestDetectFlanges_EmptyBody(t *testing.T) {
	cfg := config.EmptyExtractorConfig()
	result := detectFlanges(nil, cfg)
	if result.Present {
		t.Error("expected no flanges for an empty body slab")
	}
	testutil.AssertClose(t, result.Lunghezza, 0, 1e-9)
}
