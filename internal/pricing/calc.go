package pricing

import (
	"fmt"
	"math"

	configure "Pergola/internal/configure"
	layout "Pergola/internal/layout"
)

// Supplier rates. Steel by mass, roofing by area, accessories and
// fixings as flat line items. AUD.
const (
	RateSteelPerKg       = 6.8
	RateColumnEach       = 185.0
	RateFootingEach      = 95.0
	RateSheetPerM2       = 48.0
	RateInsulatedPerM2   = 139.0
	RateGutterPerM       = 31.0
	RateDownpipeEach     = 58.0
	RateBracketEach      = 24.0
	RateLightEach        = 76.0
	RateFanEach          = 420.0
	RateDesignerBeamPerM = 92.0
	RateDecorColumnEach  = 140.0
	LabourPercent        = 28.0
	MarginPercent        = 22.0
	GSTPercent           = 10.0
)

type Input struct {
	Config configure.Configuration `json:"config"`
	Layout layout.Layout           `json:"layout"`
}

type Breakdown struct {
	Structure   float64 `json:"structure"`
	Footings    float64 `json:"footings"`
	Roofing     float64 `json:"roofing"`
	Rainwater   float64 `json:"rainwater"`
	Accessories float64 `json:"accessories"`
	Labour      float64 `json:"labour"`
	Margin      float64 `json:"margin"`
	GST         float64 `json:"gst"`
}

type Result struct {
	ColumnCount int       `json:"column_count"`
	SteelKg     float64   `json:"steel_kg"`
	RoofAreaM2  float64   `json:"roof_area_m2"`
	BeamLabel   string    `json:"beam_label"`
	SheetLabel  string    `json:"sheet_label"`
	PatternName string    `json:"pattern_name"`
	Breakdown   Breakdown `json:"breakdown"`
	TotalAUD    float64   `json:"total_aud"`
	Notes       string    `json:"notes"`
}

// Calculate derives a quote from an already resolved layout. It never
// re-runs the structural pipeline; the layout is the single source of
// quantities so pricing and rendering can never disagree.
func Calculate(in Input) (Result, error) {
	l := in.Layout
	if l.WidthM <= 0 || l.TotalDepthM <= 0 {
		return Result{}, fmt.Errorf("layout not derived")
	}

	cols := len(l.Posts)
	beamKg := 2.0 * l.WidthM * l.Beam.MassKgPerM
	purlinKg := 0.0
	if l.Pattern.HasPurlins {
		n := int(math.Ceil(l.TotalDepthM/(l.Sheet.MaxSpanMM/1000.0))) + 1
		purlinKg = float64(n) * l.WidthM * 1.1
	}
	steelKg := beamKg + purlinKg
	area := l.WidthM * l.TotalDepthM

	var bd Breakdown
	bd.Structure = steelKg*RateSteelPerKg + float64(cols)*RateColumnEach + 4*RateBracketEach
	bd.Footings = float64(cols) * RateFootingEach

	sheetRate := RateSheetPerM2
	if l.Sheet.Insulated {
		sheetRate = RateInsulatedPerM2
	}
	bd.Roofing = area * sheetRate

	if in.Config.Gutters {
		bd.Rainwater = l.WidthM * RateGutterPerM
		pipes := 1.0
		if l.WidthM > 6.0 {
			pipes = 2.0
		}
		bd.Rainwater += pipes * RateDownpipeEach
	}

	if in.Config.Lighting {
		lights := 2.0
		if l.WidthM >= 4.0 {
			lights = 3.0
		}
		if l.WidthM >= 8.0 {
			lights = 4.0
		}
		bd.Accessories += lights * RateLightEach
	}
	if in.Config.Fan {
		bd.Accessories += RateFanEach
	}
	if in.Config.DesignerBeam {
		bd.Accessories += l.WidthM * RateDesignerBeamPerM
	}
	if in.Config.DecorativeColumns {
		bd.Accessories += float64(cols) * RateDecorColumnEach
	}

	supply := bd.Structure + bd.Footings + bd.Roofing + bd.Rainwater + bd.Accessories
	bd.Labour = supply * LabourPercent / 100.0
	bd.Margin = (supply + bd.Labour) * MarginPercent / 100.0
	bd.GST = (supply + bd.Labour + bd.Margin) * GSTPercent / 100.0
	total := supply + bd.Labour + bd.Margin + bd.GST

	return Result{
		ColumnCount: cols,
		SteelKg:     steelKg,
		RoofAreaM2:  area,
		BeamLabel:   l.Beam.ID,
		SheetLabel:  l.Sheet.ID,
		PatternName: l.Pattern.Name,
		Breakdown:   bd,
		TotalAUD:    math.Round(total*100) / 100,
		Notes:       "Budget estimate from catalog rates, not a site quote.",
	}, nil
}
