package catalog

// Static reference data for the structural range. Dimensions in mm,
// mass in kg/m. These tables mirror the supplier price book, they are
// not computed.

type BeamSpec struct {
	ID          string  `json:"id"`
	HeightMM    float64 `json:"height_mm"`
	WidthMM     float64 `json:"width_mm"`
	ThicknessMM float64 `json:"thickness_mm"`
	MassKgPerM  float64 `json:"mass_kg_per_m"`
	MaxSpanMM   float64 `json:"max_span_mm"`
	Fluted      bool    `json:"fluted"`
}

type SheetSpec struct {
	ID           string  `json:"id"`
	ThicknessMM  float64 `json:"thickness_mm"`
	CoverWidthMM float64 `json:"cover_width_mm"`
	MaxSpanMM    float64 `json:"max_span_mm"`
	Insulated    bool    `json:"insulated"`
	RibHeightMM  float64 `json:"rib_height_mm"`
	RibSpacingMM float64 `json:"rib_spacing_mm"`
}

type StructuralPattern struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	MaxSpanMM     float64 `json:"max_span_mm"`
	HasOverhang   bool    `json:"has_overhang"`
	OverhangMM    float64 `json:"overhang_mm"`
	HasPurlins    bool    `json:"has_purlins"`
	HasMidPurlin  bool    `json:"has_mid_purlin"`
	HorizontalRun bool    `json:"horizontal_run"`
	DefaultBeamID string  `json:"default_beam_id"`
}

var (
	Beam110 = BeamSpec{
		ID:          "SB110",
		HeightMM:    110,
		WidthMM:     50,
		ThicknessMM: 1.2,
		MassKgPerM:  2.9,
		MaxSpanMM:   4500,
		Fluted:      false,
	}
	Beam150 = BeamSpec{
		ID:          "SB150",
		HeightMM:    150,
		WidthMM:     50,
		ThicknessMM: 1.6,
		MassKgPerM:  4.4,
		MaxSpanMM:   6500,
		Fluted:      true,
	}
)

var (
	SheetCorrugated = SheetSpec{
		ID:           "CORO42",
		ThicknessMM:  0.42,
		CoverWidthMM: 762,
		MaxSpanMM:    1600,
		Insulated:    false,
		RibHeightMM:  16,
		RibSpacingMM: 76,
	}
	SheetFlat = SheetSpec{
		ID:           "FLAT48",
		ThicknessMM:  0.48,
		CoverWidthMM: 700,
		MaxSpanMM:    1900,
		Insulated:    false,
		RibHeightMM:  0,
		RibSpacingMM: 0,
	}
	SheetInsulated = SheetSpec{
		ID:           "INSU50",
		ThicknessMM:  50,
		CoverWidthMM: 1000,
		MaxSpanMM:    6000,
		Insulated:    true,
		RibHeightMM:  29,
		RibSpacingMM: 250,
	}
)

var (
	PatternType1 = StructuralPattern{
		ID:            "T1",
		Name:          "Type 1",
		MaxSpanMM:     4500,
		HasOverhang:   false,
		HasPurlins:    false,
		DefaultBeamID: Beam110.ID,
	}
	PatternType2 = StructuralPattern{
		ID:            "T2",
		Name:          "Type 2",
		MaxSpanMM:     5400,
		HasOverhang:   true,
		OverhangMM:    300,
		HasPurlins:    false,
		DefaultBeamID: Beam150.ID,
	}
	PatternType3 = StructuralPattern{
		ID:            "T3",
		Name:          "Type 3",
		MaxSpanMM:     6000,
		HasPurlins:    true,
		HorizontalRun: true,
		DefaultBeamID: Beam150.ID,
	}
	PatternType4 = StructuralPattern{
		ID:            "T4",
		Name:          "Type 4",
		MaxSpanMM:     8000,
		HasPurlins:    true,
		HasMidPurlin:  true,
		HorizontalRun: true,
		DefaultBeamID: Beam150.ID,
	}
)

// SelectPatioType classifies a span into a structural pattern.
// Boundaries are inclusive on the smaller pattern, so a span exactly at
// a threshold selects the lower-capacity type. The Type 2 overhang
// pattern is only offered for attached structures.
func SelectPatioType(spanMM float64, freestanding bool) StructuralPattern {
	switch {
	case spanMM <= PatternType1.MaxSpanMM:
		return PatternType1
	case spanMM <= PatternType2.MaxSpanMM && !freestanding:
		return PatternType2
	case spanMM <= PatternType3.MaxSpanMM:
		return PatternType3
	default:
		return PatternType4
	}
}

// SelectBeamForSpan picks the beam profile for an unsupported span.
// Widths beyond the larger beam's rating are handled by mid posts
// during layout, never by a bigger profile.
func SelectBeamForSpan(spanMM float64) BeamSpec {
	if spanMM <= Beam110.MaxSpanMM {
		return Beam110
	}
	return Beam150
}

// SelectSheet maps roofing material and profile to a sheet spec.
// Insulated panels come in a single spec regardless of profile. Any
// unmapped combination falls back to the corrugated sheet, the
// lowest-capability entry.
func SelectSheet(material Material, profile SheetProfile) SheetSpec {
	if material == MaterialInsulated {
		return SheetInsulated
	}
	switch profile {
	case ProfileFlat:
		return SheetFlat
	default:
		return SheetCorrugated
	}
}

// BeamByID resolves a pattern's default beam. Unknown ids fall back to
// the smaller profile.
func BeamByID(id string) BeamSpec {
	if id == Beam150.ID {
		return Beam150
	}
	return Beam110
}
