package morph

import (
	"github.com/savignano-axe/morphocore/internal/config"
	"github.com/savignano-axe/morphocore/internal/mesh"
	"github.com/savignano-axe/morphocore/internal/monitoring"
)

// ExtractOptions carries Extract's optional inputs (§4.M's
// extract(mesh, weight?, artifact_id?, inventory_number?) contract). Weight
// is the external, caller-supplied mass in grams (§3's "peso ... external
// input"); nil means unknown, and Peso defaults to 0.0 per §3's rule for
// absent numerics.
type ExtractOptions struct {
	Weight          *float64
	ArtifactID      string
	InventoryNumber string
	Config          *config.ExtractorConfig
}

// Extract implements the top-level §4.M pipeline: normalise and align the
// mesh, then derive every Feature Record field from the aligned vertex
// array. ArtifactID and InventoryNumber are carried through untouched for
// downstream provenance; Weight is carried through as-is into Peso, since
// mass cannot be derived from geometry alone.
func Extract(m mesh.Mesh, opts ExtractOptions) (FeatureRecord, error) {
	cfg := opts.Config
	artifactID := opts.ArtifactID
	inventoryNumber := opts.InventoryNumber

	normalized := mesh.Normalize(m)

	aligned, err := mesh.Align(normalized)
	if err != nil {
		switch err {
		case mesh.ErrEmptyMesh:
			return FeatureRecord{}, ErrEmptyMesh
		default:
			return FeatureRecord{}, ErrDegenerateAlignment
		}
	}

	whole := aligned.V

	length := xRange(whole)
	width := yRange(whole)
	thickness := zRange(whole)

	butt := buttSlab(whole, cfg.GetButtSlabFraction())
	blade := bladeSlab(whole, cfg.GetBladeSlabFraction())
	body := bodySlab(whole, cfg.GetBodySlabMargin())

	if len(butt) == 0 {
		monitoring.Logf("WARNING morph artifact_id=%s feature=tallone: empty butt slab", artifactID)
	}
	if len(blade) == 0 {
		monitoring.Logf("WARNING morph artifact_id=%s feature=tagliente: empty blade slab", artifactID)
	}
	if len(body) == 0 {
		monitoring.Logf("WARNING morph artifact_id=%s feature=corpo: empty body slab", artifactID)
	}

	tallonLarghezza, tallonSpessore := buttMeasurements(butt)
	taglienteLarghezza := bladeWidth(blade)

	larghezzaMinima, spessoreConMargini, spessoreSenzaMargini := bodyMeasurements(
		body, cfg.GetCentralStripLowPercentile(), cfg.GetCentralStripHighPercentile(), cfg.GetBodyBinCount())

	taglienteForma, arco, corda := bladeProfile(
		whole, cfg.GetCuttingEdgeFraction(), cfg.GetArcChordRatioLow(), cfg.GetArcChordRatioHigh(), artifactID)
	taglienteEspanso := bladeExpanded(taglienteLarghezza, larghezzaMinima, cfg.GetBladeExpansionRatio())

	socket := detectSocket(butt, cfg, artifactID)
	flanges := detectFlanges(body, cfg)

	var peso float64
	if opts.Weight != nil {
		peso = *opts.Weight
	}

	record := FeatureRecord{
		Length:      length,
		Width:       width,
		Thickness:   thickness,
		Volume:      normalized.Volume,
		SurfaceArea: normalized.SurfaceArea,
		Peso:        peso,

		TallonLarghezza: tallonLarghezza,
		TallonSpessore:  tallonSpessore,

		IncavoPresente:   socket.Present,
		IncavoLarghezza:  socket.Larghezza,
		IncavoProfondita: socket.Profondita,
		IncavoProfilo:    socket.Profilo,

		MarginiRialzatiPresenti:    flanges.Present,
		MarginiRialzatiLunghezza:   flanges.Lunghezza,
		MarginiRialzatiSpessoreMax: flanges.SpessoreMax,

		LarghezzaMinima:             larghezzaMinima,
		SpessoreMassimoConMargini:   spessoreConMargini,
		SpessoreMassimoSenzaMargini: spessoreSenzaMargini,

		TaglienteLarghezza:   taglienteLarghezza,
		TaglienteForma:       taglienteForma,
		TaglienteArcoMisura:  arco,
		TaglienteCordaMisura: corda,
		TaglienteEspanso:     taglienteEspanso,

		ArtifactID:      artifactID,
		InventoryNumber: inventoryNumber,
	}

	if record.Thickness > record.Width {
		monitoring.Logf("WARNING morph artifact_id=%s feature=thickness: thickness %.3f exceeds width %.3f, principal-axis ordering likely degenerate for this specimen", artifactID, record.Thickness, record.Width)
	}

	return record, nil
}
