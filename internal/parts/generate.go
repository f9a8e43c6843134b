package parts

import (
	"fmt"
	"math"

	configure "Pergola/internal/configure"
	layout "Pergola/internal/layout"
)

// Fixed member dimensions in metres. Catalog-driven sizes (beam
// profile, sheet cover) come from the layout instead.
const (
	groundApronM     = 1.0
	groundThickM     = 0.05
	wallThickM       = 0.2
	wallExtraM       = 0.9
	basePlateM       = 0.25
	basePlateThickM  = 0.012
	columnSideM      = 0.09
	postCapM         = 0.12
	purlinSideM      = 0.05
	midPurlinSideM   = 0.1
	gutterSideM      = 0.115
	downpipeRadiusM  = 0.045
	designerBeamM    = 0.035
	decorSleeveSideM = 0.14
	decorSleeveHighM = 1.0
	gablePitchDeg    = 15.0
)

// builder accumulates parts in assembly order and hands out ids
// derived from (kind, index-within-kind). All state is local to one
// Generate call, so concurrent runs never share counters.
type builder struct {
	parts  []Part
	counts map[Kind]int
}

func (b *builder) add(p Part) {
	b.counts[p.Kind]++
	p.ID = fmt.Sprintf("%s-%d", p.Kind, b.counts[p.Kind])
	b.parts = append(b.parts, p)
}

// Generate expands a configuration and its derived layout into the
// flat parts list. Deterministic: re-running on the same input yields
// the same parts in the same order with the same field values.
func Generate(c configure.Configuration, l layout.Layout) []Part {
	b := &builder{counts: make(map[Kind]int)}

	frame := Surface{Color: c.FrameColor, Metalness: 0.7, Roughness: 0.35}
	roof := Surface{Color: "surfmist", Metalness: 0.6, Roughness: 0.45}

	beamH := l.Beam.HeightMM / 1000.0
	beamW := l.Beam.WidthMM / 1000.0
	roofY := l.HeightM + beamH

	b.emitGround(l)
	b.emitWalls(l)
	b.emitFootings(l, frame)
	b.emitWallBrackets(l, frame)
	b.emitBeams(l, frame, beamH, beamW)
	b.emitPurlins(l, frame, roofY)
	if l.Gable {
		b.emitGableRoof(l, roof, frame, roofY)
	} else {
		b.emitFlatRoof(l, roof, roofY)
	}
	if c.Gutters {
		b.emitGutters(l, frame, roofY)
	}
	if c.DesignerBeam {
		b.add(Part{
			Kind:     KindDesignerBeam,
			Label:    "Designer beam",
			Position: Vec3{Y: l.HeightM - 0.3, Z: l.DepthM / 2.0},
			Size:     Vec3{X: l.WidthM, Y: designerBeamM, Z: designerBeamM},
			Surface:  Surface{Color: "timber-oak", Metalness: 0.1, Roughness: 0.7},
			Geometry: Geometry{Primitive: "box"},
		})
	}
	if c.Lighting {
		b.emitLights(l)
	}
	if c.Fan {
		b.emitFan(l)
	}
	if c.DecorativeColumns {
		b.emitDecorColumns(l)
	}
	return b.parts
}

func (b *builder) emitGround(l layout.Layout) {
	b.add(Part{
		Kind:     KindGround,
		Label:    "Ground slab",
		Position: Vec3{Y: -groundThickM / 2.0},
		Size: Vec3{
			X: l.WidthM + 2*groundApronM,
			Y: groundThickM,
			Z: l.TotalDepthM + 2*groundApronM,
		},
		Surface:  Surface{Color: "concrete", Metalness: 0.0, Roughness: 0.9},
		Geometry: Geometry{Primitive: "box"},
	})
}

// emitWalls draws the host-building walls along each attached edge so
// the scene shows what the structure fixes to.
func (b *builder) emitWalls(l layout.Layout) {
	wall := Surface{Color: "render-white", Metalness: 0.0, Roughness: 0.8}
	h := l.HeightM + wallExtraM
	if l.AttachedBack {
		b.add(Part{
			Kind:     KindWall,
			Label:    "Back wall",
			Position: Vec3{Y: h / 2.0, Z: -l.DepthM/2.0 - wallThickM/2.0},
			Size:     Vec3{X: l.WidthM + 2*wallThickM, Y: h, Z: wallThickM},
			Surface:  wall,
			Geometry: Geometry{Primitive: "box"},
		})
	}
	if l.AttachedLeft {
		b.add(Part{
			Kind:     KindWall,
			Label:    "Left wall",
			Position: Vec3{X: -l.WidthM/2.0 - wallThickM/2.0, Y: h / 2.0},
			Size:     Vec3{X: wallThickM, Y: h, Z: l.DepthM},
			Surface:  wall,
			Geometry: Geometry{Primitive: "box"},
		})
	}
	if l.AttachedRight {
		b.add(Part{
			Kind:     KindWall,
			Label:    "Right wall",
			Position: Vec3{X: l.WidthM/2.0 + wallThickM/2.0, Y: h / 2.0},
			Size:     Vec3{X: wallThickM, Y: h, Z: l.DepthM},
			Surface:  wall,
			Geometry: Geometry{Primitive: "box"},
		})
	}
}

// emitFootings places a base plate, a column and a post cap at every
// post position from the layout.
func (b *builder) emitFootings(l layout.Layout, frame Surface) {
	for _, p := range l.Posts {
		b.add(Part{
			Kind:     KindBasePlate,
			Label:    "Base plate",
			Position: Vec3{X: p.X, Y: basePlateThickM / 2.0, Z: p.Z},
			Size:     Vec3{X: basePlateM, Y: basePlateThickM, Z: basePlateM},
			Surface:  frame,
			Geometry: Geometry{Primitive: "box"},
		})
	}
	for _, p := range l.Posts {
		b.add(Part{
			Kind:     KindColumn,
			Label:    "Column",
			Position: Vec3{X: p.X, Y: l.HeightM / 2.0, Z: p.Z},
			Size:     Vec3{X: columnSideM, Y: l.HeightM, Z: columnSideM},
			Surface:  frame,
			Geometry: Geometry{Primitive: "box"},
		})
	}
	for _, p := range l.Posts {
		b.add(Part{
			Kind:     KindPostCap,
			Label:    "Post cap",
			Position: Vec3{X: p.X, Y: l.HeightM + 0.01, Z: p.Z},
			Size:     Vec3{X: postCapM, Y: 0.02, Z: postCapM},
			Surface:  frame,
			Geometry: Geometry{Primitive: "box"},
		})
	}
}

// emitWallBrackets puts a bracket wherever an attached edge replaced a
// post: the corner stations plus any mid stations on the back edge.
func (b *builder) emitWallBrackets(l layout.Layout, frame Surface) {
	y := l.HeightM + 0.05
	size := Vec3{X: 0.1, Y: 0.15, Z: 0.08}
	if l.AttachedBack {
		for _, x := range backStations(l) {
			b.add(Part{
				Kind:     KindWallBracket,
				Label:    "Wall bracket",
				Position: Vec3{X: x, Y: y, Z: -l.DepthM / 2.0},
				Size:     size,
				Surface:  frame,
				Geometry: Geometry{Primitive: "box"},
			})
		}
	}
	if l.AttachedLeft {
		for _, z := range []float64{l.DepthM / 2.0, -l.DepthM / 2.0} {
			b.add(Part{
				Kind:     KindWallBracket,
				Label:    "Wall bracket",
				Position: Vec3{X: -l.WidthM / 2.0, Y: y, Z: z},
				Size:     size,
				Surface:  frame,
				Geometry: Geometry{Primitive: "box"},
			})
		}
	}
	if l.AttachedRight {
		for _, z := range []float64{l.DepthM / 2.0, -l.DepthM / 2.0} {
			b.add(Part{
				Kind:     KindWallBracket,
				Label:    "Wall bracket",
				Position: Vec3{X: l.WidthM / 2.0, Y: y, Z: z},
				Size:     size,
				Surface:  frame,
				Geometry: Geometry{Primitive: "box"},
			})
		}
	}
}

// backStations lists the x coordinates of the support stations along
// the back edge: both corners plus the mid-span stations.
func backStations(l layout.Layout) []float64 {
	out := []float64{-l.WidthM / 2.0}
	spacing := l.WidthM / float64(l.MidPostCount+1)
	for i := 1; i <= l.MidPostCount; i++ {
		out = append(out, -l.WidthM/2.0+spacing*float64(i))
	}
	return append(out, l.WidthM/2.0)
}

func (b *builder) emitBeams(l layout.Layout, frame Surface, beamH, beamW float64) {
	y := l.HeightM + beamH/2.0
	for _, row := range []struct {
		label string
		z     float64
	}{
		{"Front beam", l.DepthM / 2.0},
		{"Back beam", -l.DepthM / 2.0},
	} {
		b.add(Part{
			Kind:     KindBeam,
			Label:    row.label,
			Position: Vec3{Y: y, Z: row.z},
			Size:     Vec3{X: l.WidthM, Y: beamH, Z: beamW},
			Surface:  frame,
			Geometry: Geometry{Primitive: "box"},
		})
	}
	for _, z := range []float64{l.DepthM / 2.0, -l.DepthM / 2.0} {
		for _, x := range []float64{-l.WidthM / 2.0, l.WidthM / 2.0} {
			b.add(Part{
				Kind:     KindBeamBracket,
				Label:    "Beam bracket",
				Position: Vec3{X: x, Y: y, Z: z},
				Size:     Vec3{X: 0.06, Y: beamH, Z: beamW + 0.01},
				Surface:  frame,
				Geometry: Geometry{Primitive: "box"},
			})
		}
	}
}

// emitPurlins spaces purlins along the depth axis no wider apart than
// the sheet's rated span, plus the heavier mid purlin for the Type 4
// pattern.
func (b *builder) emitPurlins(l layout.Layout, frame Surface, roofY float64) {
	if !l.Pattern.HasPurlins {
		return
	}
	span := l.Sheet.MaxSpanMM / 1000.0
	n := int(math.Ceil(l.TotalDepthM/span)) + 1
	if n < 2 {
		n = 2
	}
	step := l.TotalDepthM / float64(n-1)
	frontZ := l.DepthM/2.0 + l.OverhangM
	for i := 0; i < n; i++ {
		b.add(Part{
			Kind:     KindPurlin,
			Label:    "Purlin",
			Position: Vec3{Y: roofY + purlinSideM/2.0, Z: frontZ - step*float64(i)},
			Size:     Vec3{X: l.WidthM, Y: purlinSideM, Z: purlinSideM},
			Surface:  frame,
			Geometry: Geometry{Primitive: "box"},
		})
	}
	if l.Pattern.HasMidPurlin {
		b.add(Part{
			Kind:     KindPurlin,
			Label:    "Mid purlin",
			Position: Vec3{Y: roofY + midPurlinSideM/2.0, Z: (frontZ - l.DepthM/2.0) / 2.0},
			Size:     Vec3{X: l.WidthM, Y: midPurlinSideM, Z: midPurlinSideM},
			Surface:  frame,
			Geometry: Geometry{Primitive: "box"},
		})
	}
}

// emitFlatRoof lays sheet panels across the width, one per cover
// width, tilted to the layout slope, with ribs and the insulated
// underside when the sheet spec calls for them.
func (b *builder) emitFlatRoof(l layout.Layout, roof Surface, roofY float64) {
	cover := l.Sheet.CoverWidthMM / 1000.0
	thick := l.Sheet.ThicknessMM / 1000.0
	n := int(math.Ceil(l.WidthM / cover))
	slope := -l.SlopeDeg * math.Pi / 180.0
	zCenter := l.OverhangM / 2.0
	y := roofY + purlinSideM + thick/2.0

	for i := 0; i < n; i++ {
		x := -l.WidthM/2.0 + cover*(float64(i)+0.5)
		b.add(Part{
			Kind:     KindRoofSheet,
			Label:    "Roof sheet",
			Position: Vec3{X: x, Y: y, Z: zCenter},
			Rotation: Vec3{X: slope},
			Size:     Vec3{X: cover, Y: thick, Z: l.TotalDepthM},
			Surface:  roof,
			Geometry: Geometry{Primitive: "box"},
		})
	}

	if l.Sheet.RibHeightMM > 0 {
		ribH := l.Sheet.RibHeightMM / 1000.0
		spacing := l.Sheet.RibSpacingMM / 1000.0
		perSheet := int(math.Floor(cover / spacing))
		for i := 0; i < n; i++ {
			left := -l.WidthM/2.0 + cover*float64(i)
			for j := 0; j < perSheet; j++ {
				b.add(Part{
					Kind:     KindRib,
					Label:    "Rib",
					Position: Vec3{X: left + spacing*(float64(j)+0.5), Y: y + thick/2.0 + ribH/2.0, Z: zCenter},
					Rotation: Vec3{X: slope},
					Size:     Vec3{X: 0.03, Y: ribH, Z: l.TotalDepthM},
					Surface:  roof,
					Geometry: Geometry{Primitive: "box"},
				})
			}
		}
	}

	if l.Sheet.Insulated {
		b.add(Part{
			Kind:     KindUndersidePanel,
			Label:    "Underside panel",
			Position: Vec3{Y: y - thick/2.0 - 0.005, Z: zCenter},
			Rotation: Vec3{X: slope},
			Size:     Vec3{X: l.WidthM, Y: 0.01, Z: l.TotalDepthM},
			Surface:  Surface{Color: "panel-white", Metalness: 0.1, Roughness: 0.6},
			Geometry: Geometry{Primitive: "box"},
		})
	}
}

// emitGableRoof replaces the flat-sheet emission entirely: two pitched
// planes, triangular infills at each end and a ridge cap.
func (b *builder) emitGableRoof(l layout.Layout, roof, frame Surface, roofY float64) {
	pitch := gablePitchDeg * math.Pi / 180.0
	thick := l.Sheet.ThicknessMM / 1000.0
	halfD := l.TotalDepthM / 2.0
	planeRun := halfD / math.Cos(pitch)
	rise := halfD * math.Tan(pitch)
	zCenter := l.OverhangM / 2.0
	y := roofY + rise/2.0

	b.add(Part{
		Kind:     KindRoofSheet,
		Label:    "Gable plane front",
		Position: Vec3{Y: y, Z: zCenter + halfD/2.0},
		Rotation: Vec3{X: -pitch},
		Size:     Vec3{X: l.WidthM, Y: thick, Z: planeRun},
		Surface:  roof,
		Geometry: Geometry{Primitive: "box"},
	})
	b.add(Part{
		Kind:     KindRoofSheet,
		Label:    "Gable plane back",
		Position: Vec3{Y: y, Z: zCenter - halfD/2.0},
		Rotation: Vec3{X: pitch},
		Size:     Vec3{X: l.WidthM, Y: thick, Z: planeRun},
		Surface:  roof,
		Geometry: Geometry{Primitive: "box"},
	})
	for _, x := range []float64{-l.WidthM / 2.0, l.WidthM / 2.0} {
		b.add(Part{
			Kind:     KindGableInfill,
			Label:    "Gable infill",
			Position: Vec3{X: x, Y: roofY + rise/2.0, Z: zCenter},
			Size:     Vec3{X: 0.01, Y: rise, Z: l.TotalDepthM},
			Surface:  roof,
			Geometry: Geometry{Primitive: "prism", Args: []float64{l.TotalDepthM, rise}},
		})
	}
	b.add(Part{
		Kind:     KindRidgeCap,
		Label:    "Ridge cap",
		Position: Vec3{Y: roofY + rise, Z: zCenter},
		Size:     Vec3{X: l.WidthM, Y: 0.04, Z: 0.2},
		Surface:  frame,
		Geometry: Geometry{Primitive: "box"},
	})
}

func (b *builder) emitGutters(l layout.Layout, frame Surface, roofY float64) {
	frontZ := l.DepthM/2.0 + l.OverhangM + gutterSideM/2.0
	b.add(Part{
		Kind:     KindGutter,
		Label:    "Front gutter",
		Position: Vec3{Y: roofY, Z: frontZ},
		Size:     Vec3{X: l.WidthM, Y: gutterSideM, Z: gutterSideM},
		Surface:  frame,
		Geometry: Geometry{Primitive: "box"},
	})
	xs := []float64{l.WidthM/2.0 - downpipeRadiusM}
	if l.WidthM > 6.0 {
		xs = append(xs, -l.WidthM/2.0+downpipeRadiusM)
	}
	for _, x := range xs {
		b.add(Part{
			Kind:     KindDownpipe,
			Label:    "Downpipe",
			Position: Vec3{X: x, Y: roofY / 2.0, Z: frontZ},
			Size:     Vec3{X: 2 * downpipeRadiusM, Y: roofY, Z: 2 * downpipeRadiusM},
			Surface:  frame,
			Geometry: Geometry{Primitive: "cylinder", Args: []float64{downpipeRadiusM, roofY}},
		})
	}
}

func (b *builder) emitLights(l layout.Layout) {
	n := 2
	if l.WidthM >= 4.0 {
		n = 3
	}
	if l.WidthM >= 8.0 {
		n = 4
	}
	step := l.WidthM / float64(n+1)
	for i := 1; i <= n; i++ {
		b.add(Part{
			Kind:     KindLight,
			Label:    "Downlight",
			Position: Vec3{X: -l.WidthM/2.0 + step*float64(i), Y: l.HeightM - 0.05},
			Size:     Vec3{X: 0.11, Y: 0.04, Z: 0.11},
			Surface:  Surface{Color: "warm-white", Metalness: 0.2, Roughness: 0.3},
			Geometry: Geometry{Primitive: "cylinder", Args: []float64{0.055, 0.04}},
		})
	}
}

func (b *builder) emitFan(l layout.Layout) {
	chrome := Surface{Color: "brushed-steel", Metalness: 0.9, Roughness: 0.2}
	rodLen := 0.3
	rodY := l.HeightM - rodLen/2.0
	b.add(Part{
		Kind:     KindFanRod,
		Label:    "Fan rod",
		Position: Vec3{Y: rodY},
		Size:     Vec3{X: 0.03, Y: rodLen, Z: 0.03},
		Surface:  chrome,
		Geometry: Geometry{Primitive: "cylinder", Args: []float64{0.015, rodLen}},
	})
	motorY := l.HeightM - rodLen - 0.06
	b.add(Part{
		Kind:     KindFanMotor,
		Label:    "Fan motor",
		Position: Vec3{Y: motorY},
		Size:     Vec3{X: 0.18, Y: 0.12, Z: 0.18},
		Surface:  chrome,
		Geometry: Geometry{Primitive: "cylinder", Args: []float64{0.09, 0.12}},
	})
	for i := 0; i < 3; i++ {
		angle := float64(i) * 2.0 * math.Pi / 3.0
		b.add(Part{
			Kind:     KindFanBlade,
			Label:    "Fan blade",
			Position: Vec3{X: 0.35 * math.Cos(angle), Y: motorY, Z: 0.35 * math.Sin(angle)},
			Rotation: Vec3{Y: -angle},
			Size:     Vec3{X: 0.6, Y: 0.01, Z: 0.12},
			Surface:  Surface{Color: "timber-oak", Metalness: 0.1, Roughness: 0.7},
			Geometry: Geometry{Primitive: "box"},
		})
	}
}

func (b *builder) emitDecorColumns(l layout.Layout) {
	for _, p := range l.Posts {
		b.add(Part{
			Kind:     KindDecorColumn,
			Label:    "Column sleeve",
			Position: Vec3{X: p.X, Y: decorSleeveHighM / 2.0, Z: p.Z},
			Size:     Vec3{X: decorSleeveSideM, Y: decorSleeveHighM, Z: decorSleeveSideM},
			Surface:  Surface{Color: "sandstone", Metalness: 0.0, Roughness: 0.85},
			Geometry: Geometry{Primitive: "box"},
		})
	}
}
