package layout

import (
	"math"

	catalog "Pergola/internal/catalog"
	configure "Pergola/internal/configure"
)

// Edge tags which edges a post sits on. Corner posts carry two flags.
type Edge struct {
	Front bool `json:"front"`
	Back  bool `json:"back"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

// Post is a support position in structure-local metres. Origin is the
// structure center; x runs along the width axis, z along the depth
// axis with the front edge at positive z.
type Post struct {
	X    float64 `json:"x"`
	Z    float64 `json:"z"`
	Edge Edge    `json:"edge"`
}

// Layout is the fully resolved intermediate form between a validated
// configuration and the parts list. It is a read-only snapshot;
// downstream consumers must not mutate it.
type Layout struct {
	WidthM  float64 `json:"width_m"`
	DepthM  float64 `json:"depth_m"`
	HeightM float64 `json:"height_m"`

	Pattern catalog.StructuralPattern `json:"pattern"`
	Beam    catalog.BeamSpec          `json:"beam"`
	Sheet   catalog.SheetSpec         `json:"sheet"`

	OverhangM   float64 `json:"overhang_m"`
	TotalDepthM float64 `json:"total_depth_m"`
	SlopeDeg    float64 `json:"slope_deg"`

	Freestanding  bool `json:"freestanding"`
	Gable         bool `json:"gable"`
	AttachedBack  bool `json:"attached_back"`
	AttachedLeft  bool `json:"attached_left"`
	AttachedRight bool `json:"attached_right"`

	Posts        []Post `json:"posts"`
	MidPostCount int    `json:"mid_post_count"`
}

// Roof slopes by style. The skillion roof runs noticeably steeper
// than the flat-pitched styles.
const (
	slopeStandardDeg = 2.0
	slopeSkillionDeg = 10.0
)

// Derive resolves a validated configuration against the catalog and
// places every support post. Pure: identical input yields an
// identical layout, including post order.
func Derive(c configure.Configuration) Layout {
	l := Layout{
		WidthM:        c.WidthM,
		DepthM:        c.DepthM,
		HeightM:       c.HeightM,
		Freestanding:  c.Freestanding(),
		Gable:         c.RoofShape == configure.ShapeGable,
		AttachedBack:  c.Attached(configure.SideBack),
		AttachedLeft:  c.Attached(configure.SideLeft),
		AttachedRight: c.Attached(configure.SideRight),
	}

	spanMM := c.DepthM * 1000.0
	l.Pattern = catalog.SelectPatioType(spanMM, l.Freestanding)
	l.Beam = catalog.SelectBeamForSpan(spanMM)
	l.Sheet = catalog.SelectSheet(c.Material, c.SheetProfile)

	if l.Pattern.HasOverhang {
		l.OverhangM = l.Pattern.OverhangMM / 1000.0
	}
	l.TotalDepthM = l.DepthM + l.OverhangM

	if c.Style == configure.StyleSkillion {
		l.SlopeDeg = slopeSkillionDeg
	} else {
		l.SlopeDeg = slopeStandardDeg
	}

	l.Posts, l.MidPostCount = placePosts(l)
	return l
}

// placePosts enumerates the corner candidates, inserts mid-span posts
// where the width outruns the beam rating, then drops every post that
// sits on an attached edge. Order is front row left to right, then
// back row left to right.
func placePosts(l Layout) ([]Post, int) {
	halfW := l.WidthM / 2.0
	halfD := l.DepthM / 2.0

	front := []Post{
		{X: -halfW, Z: halfD, Edge: Edge{Front: true, Left: true}},
	}
	back := []Post{
		{X: -halfW, Z: -halfD, Edge: Edge{Back: true, Left: true}},
	}

	// Mid posts when a single beam cannot carry the full width.
	maxSpanM := l.Beam.MaxSpanMM / 1000.0
	midCount := 0
	if l.WidthM > maxSpanM {
		midCount = int(math.Ceil(l.WidthM/maxSpanM)) - 1
	}
	spacing := l.WidthM / float64(midCount+1)
	for i := 1; i <= midCount; i++ {
		x := -halfW + spacing*float64(i)
		front = append(front, Post{X: x, Z: halfD, Edge: Edge{Front: true}})
		if l.Freestanding || !l.AttachedBack {
			back = append(back, Post{X: x, Z: -halfD, Edge: Edge{Back: true}})
		}
	}

	front = append(front, Post{X: halfW, Z: halfD, Edge: Edge{Front: true, Right: true}})
	back = append(back, Post{X: halfW, Z: -halfD, Edge: Edge{Back: true, Right: true}})

	candidates := append(front, back...)
	if l.Freestanding {
		return candidates, midCount
	}

	kept := make([]Post, 0, len(candidates))
	for _, p := range candidates {
		if !excluded(l, p) {
			kept = append(kept, p)
		}
	}
	return kept, midCount
}

// excluded applies the attachment rule: a post on an attached edge is
// replaced by the wall itself. For corner posts the back flag takes
// precedence over left/right, so a back corner is dropped whenever the
// back is attached regardless of the side flags.
func excluded(l Layout, p Post) bool {
	if p.Edge.Back && l.AttachedBack {
		return true
	}
	if p.Edge.Left && l.AttachedLeft {
		return true
	}
	if p.Edge.Right && l.AttachedRight {
		return true
	}
	return false
}
