// Package morph implements the Morphometric Extractor (§4.M): principal-axis
// alignment consumption and derivation of the Feature Record from a
// triangulated axe mesh.
package morph

// Profile is a tagged variant for named-category feature values, with an
// explicit "absent" member so classification code never compares bare
// strings (per the design note in spec §9 on named-category values).
type Profile string

const (
	ProfileAssente      Profile = "assente"
	ProfileRettangolare Profile = "rettangolare"
	ProfileCircolare    Profile = "circolare"
)

// BladeShape is the tagged variant for the cutting-edge profile class.
type BladeShape string

const (
	ShapeAssente       BladeShape = "assente"
	ShapeArcoRibassato BladeShape = "arco_ribassato"
	ShapeSemicircolare BladeShape = "semicircolare"
	ShapeLunato        BladeShape = "lunato"
)

// FeatureRecord is the fixed schema of morphometric parameters described in
// §3. Every key is always present; unknown numerics default to 0.0, unknown
// booleans to false, unknown categoricals to the "assente" sentinel.
type FeatureRecord struct {
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Thickness   float64 `json:"thickness"`
	Volume      float64 `json:"volume"`
	SurfaceArea float64 `json:"surface_area"`
	Peso        float64 `json:"peso"`

	TallonLarghezza float64 `json:"tallone_larghezza"`
	TallonSpessore  float64 `json:"tallone_spessore"`

	IncavoPresente   bool    `json:"incavo_presente"`
	IncavoLarghezza  float64 `json:"incavo_larghezza"`
	IncavoProfondita float64 `json:"incavo_profondita"`
	IncavoProfilo    Profile `json:"incavo_profilo"`

	MarginiRialzatiPresenti    bool    `json:"margini_rialzati_presenti"`
	MarginiRialzatiLunghezza   float64 `json:"margini_rialzati_lunghezza"`
	MarginiRialzatiSpessoreMax float64 `json:"margini_rialzati_spessore_max"`

	LarghezzaMinima             float64 `json:"larghezza_minima"`
	SpessoreMassimoConMargini   float64 `json:"spessore_massimo_con_margini"`
	SpessoreMassimoSenzaMargini float64 `json:"spessore_massimo_senza_margini"`

	TaglienteLarghezza   float64    `json:"tagliente_larghezza"`
	TaglienteForma       BladeShape `json:"tagliente_forma"`
	TaglienteArcoMisura  float64    `json:"tagliente_arco_misura"`
	TaglienteCordaMisura float64    `json:"tagliente_corda_misura"`
	TaglienteEspanso     bool       `json:"tagliente_espanso"`

	ArtifactID      string `json:"artifact_id"`
	InventoryNumber string `json:"inventory_number"`
}

// SortedFeatureNames returns the canonical, stable order of the numeric
// feature subset used by the Matrix Analyser's feature matrix (§4.C.1) and
// the Taxonomy's parameter sets (§4.T.1). This mirrors the teacher's
// l6objects.SortedFeatureNames/TrackFeatures.ToVector pattern of exposing a
// single canonical ordering shared by every downstream consumer.
func SortedFeatureNames() []string {
	return []string{
		"length",
		"width",
		"thickness",
		"volume",
		"surface_area",
		"peso",
		"tallone_larghezza",
		"tallone_spessore",
		"incavo_larghezza",
		"incavo_profondita",
		"margini_rialzati_lunghezza",
		"margini_rialzati_spessore_max",
		"larghezza_minima",
		"spessore_massimo_con_margini",
		"spessore_massimo_senza_margini",
		"tagliente_larghezza",
		"tagliente_arco_misura",
		"tagliente_corda_misura",
	}
}

// Numeric returns the value of the named feature, including the boolean
// features encoded as 0/1. ok is false for unknown or categorical names.
func (f FeatureRecord) Numeric(name string) (float64, bool) {
	switch name {
	case "length":
		return f.Length, true
	case "width":
		return f.Width, true
	case "thickness":
		return f.Thickness, true
	case "volume":
		return f.Volume, true
	case "surface_area":
		return f.SurfaceArea, true
	case "peso":
		return f.Peso, true
	case "tallone_larghezza":
		return f.TallonLarghezza, true
	case "tallone_spessore":
		return f.TallonSpessore, true
	case "incavo_larghezza":
		return f.IncavoLarghezza, true
	case "incavo_profondita":
		return f.IncavoProfondita, true
	case "margini_rialzati_lunghezza":
		return f.MarginiRialzatiLunghezza, true
	case "margini_rialzati_spessore_max":
		return f.MarginiRialzatiSpessoreMax, true
	case "larghezza_minima":
		return f.LarghezzaMinima, true
	case "spessore_massimo_con_margini":
		return f.SpessoreMassimoConMargini, true
	case "spessore_massimo_senza_margini":
		return f.SpessoreMassimoSenzaMargini, true
	case "tagliente_larghezza":
		return f.TaglienteLarghezza, true
	case "tagliente_arco_misura":
		return f.TaglienteArcoMisura, true
	case "tagliente_corda_misura":
		return f.TaglienteCordaMisura, true
	case "incavo_presente":
		return boolToFloat(f.IncavoPresente), true
	case "margini_rialzati_presenti":
		return boolToFloat(f.MarginiRialzatiPresenti), true
	case "tagliente_espanso":
		return boolToFloat(f.TaglienteEspanso), true
	default:
		return 0, false
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// ToVector flattens the numeric subset into canonical order, encoding
// booleans as 0/1 at the end, matching SortedFeatureNames order followed
// by the boolean feature names in a fixed order.
func (f FeatureRecord) ToVector() []float64 {
	names := SortedFeatureNames()
	out := make([]float64, 0, len(names)+3)
	for _, n := range names {
		v, _ := f.Numeric(n)
		out = append(out, v)
	}
	out = append(out,
		boolToFloat(f.IncavoPresente),
		boolToFloat(f.MarginiRialzatiPresenti),
		boolToFloat(f.TaglienteEspanso),
	)
	return out
}

// BooleanFeatureNames returns the names of the boolean features appended by
// ToVector, in the order they appear.
func BooleanFeatureNames() []string {
	return []string{"incavo_presente", "margini_rialzati_presenti", "tagliente_espanso"}
}
