package layout

import (
	"math"
	"reflect"
	"testing"

	catalog "Pergola/internal/catalog"
	configure "Pergola/internal/configure"
)

func valid(c configure.Configuration) configure.Configuration {
	return configure.Validate(c)
}

func TestDeriveFreestandingMidPosts(t *testing.T) {
	// 5 m wide, 3.5 m deep freestanding: depth selects the small beam
	// whose 4.5 m rating is under the width, so one mid post pair is
	// required at x=0 on both edges.
	l := Derive(valid(configure.Configuration{
		WidthM: 5, DepthM: 3.5, HeightM: 3,
		Style: configure.StyleFreestanding,
	}))

	if l.Beam.ID != catalog.Beam110.ID {
		t.Fatalf("beam = %s, want %s", l.Beam.ID, catalog.Beam110.ID)
	}
	if l.MidPostCount != 1 {
		t.Fatalf("MidPostCount = %d, want 1", l.MidPostCount)
	}
	if len(l.Posts) != 6 {
		t.Fatalf("post count = %d, want 6", len(l.Posts))
	}

	var frontMid, backMid int
	for _, p := range l.Posts {
		if p.X == 0 && p.Z == l.DepthM/2 {
			frontMid++
		}
		if p.X == 0 && p.Z == -l.DepthM/2 {
			backMid++
		}
	}
	if frontMid != 1 || backMid != 1 {
		t.Errorf("mid posts front=%d back=%d, want 1 and 1", frontMid, backMid)
	}
}

func TestDeriveAttachedBackDropsBackPosts(t *testing.T) {
	// 3x3 attached at the back: only the two front corners remain.
	l := Derive(valid(configure.Configuration{
		WidthM: 3, DepthM: 3, HeightM: 3,
		Style:         configure.StyleFlyover,
		AttachedSides: []configure.Side{configure.SideBack},
	}))

	if len(l.Posts) != 2 {
		t.Fatalf("post count = %d, want 2", len(l.Posts))
	}
	for _, p := range l.Posts {
		if p.Z != l.DepthM/2 {
			t.Errorf("post at z=%v, want all on front edge", p.Z)
		}
	}
}

func TestDeriveBackFlagWinsOnCorners(t *testing.T) {
	// Back corners sit on two edges. With only the back attached the
	// back-left corner must be dropped even though the left edge is
	// free; with only the left attached both left-edge corners go.
	backOnly := Derive(valid(configure.Configuration{
		WidthM: 4, DepthM: 4, HeightM: 3,
		Style:         configure.StyleAttached,
		AttachedSides: []configure.Side{configure.SideBack},
	}))
	for _, p := range backOnly.Posts {
		if p.Edge.Back {
			t.Errorf("back-edge post kept at (%v, %v)", p.X, p.Z)
		}
	}

	leftOnly := Derive(valid(configure.Configuration{
		WidthM: 4, DepthM: 4, HeightM: 3,
		Style:         configure.StyleAttached,
		AttachedSides: []configure.Side{configure.SideLeft},
	}))
	if len(leftOnly.Posts) != 2 {
		t.Fatalf("post count = %d, want 2", len(leftOnly.Posts))
	}
	for _, p := range leftOnly.Posts {
		if p.Edge.Left {
			t.Errorf("left-edge post kept at (%v, %v)", p.X, p.Z)
		}
	}
}

func TestDeriveAllSidesAttachedCollapses(t *testing.T) {
	// Every perimeter post sits on an attached edge; only mandatory
	// mid posts on the front edge survive.
	l := Derive(valid(configure.Configuration{
		WidthM: 7, DepthM: 4, HeightM: 3,
		Style:         configure.StyleAttached,
		AttachedSides: []configure.Side{configure.SideBack, configure.SideLeft, configure.SideRight},
	}))

	if l.MidPostCount != 1 {
		t.Fatalf("MidPostCount = %d, want 1", l.MidPostCount)
	}
	if len(l.Posts) != 1 {
		t.Fatalf("post count = %d, want only the front mid post", len(l.Posts))
	}
	p := l.Posts[0]
	if !p.Edge.Front || p.Edge.Left || p.Edge.Right || p.Edge.Back {
		t.Errorf("surviving post has wrong edges: %+v", p.Edge)
	}
}

func TestDeriveMidPostSpacing(t *testing.T) {
	// 11 m width on the large beam: ceil(11/6.5)-1 = 1 mid post,
	// then verify the generic spacing property on a wider case.
	tests := []struct {
		widthM, depthM float64
		wantMid        int
	}{
		{11, 6.2, 1},
		{12, 2, 2},
		{4, 2, 0},
	}
	for _, tt := range tests {
		l := Derive(valid(configure.Configuration{
			WidthM: tt.widthM, DepthM: tt.depthM, HeightM: 3,
			Style: configure.StyleFreestanding,
		}))
		maxSpanM := l.Beam.MaxSpanMM / 1000.0
		wantMid := 0
		if tt.widthM > maxSpanM {
			wantMid = int(math.Ceil(tt.widthM/maxSpanM)) - 1
		}
		if wantMid != tt.wantMid || l.MidPostCount != tt.wantMid {
			t.Errorf("width %v: MidPostCount = %d, want %d", tt.widthM, l.MidPostCount, tt.wantMid)
		}

		// Consecutive x positions along the front edge must divide the
		// width into equal segments.
		var xs []float64
		for _, p := range l.Posts {
			if p.Z == l.DepthM/2 {
				xs = append(xs, p.X)
			}
		}
		step := tt.widthM / float64(l.MidPostCount+1)
		for i := 1; i < len(xs); i++ {
			if d := xs[i] - xs[i-1]; math.Abs(d-step) > 1e-9 {
				t.Errorf("width %v: spacing %v, want %v", tt.widthM, d, step)
			}
		}
	}
}

func TestDerivePatternAndOverhang(t *testing.T) {
	// 4.6 m depth freestanding lands in the purlin pattern with the
	// large beam and no overhang.
	free := Derive(valid(configure.Configuration{
		WidthM: 4, DepthM: 4.6, HeightM: 3,
		Style: configure.StyleFreestanding,
	}))
	if free.Pattern.ID != catalog.PatternType3.ID {
		t.Errorf("pattern = %s, want %s", free.Pattern.ID, catalog.PatternType3.ID)
	}
	if free.Beam.ID != catalog.Beam150.ID {
		t.Errorf("beam = %s, want %s", free.Beam.ID, catalog.Beam150.ID)
	}
	if free.OverhangM != 0 || free.TotalDepthM != free.DepthM {
		t.Errorf("unexpected overhang: %v", free.OverhangM)
	}

	// The same depth attached selects the overhang pattern and grows
	// the total depth.
	attached := Derive(valid(configure.Configuration{
		WidthM: 4, DepthM: 4.6, HeightM: 3,
		Style:         configure.StyleAttached,
		AttachedSides: []configure.Side{configure.SideBack},
	}))
	if attached.Pattern.ID != catalog.PatternType2.ID {
		t.Errorf("pattern = %s, want %s", attached.Pattern.ID, catalog.PatternType2.ID)
	}
	if attached.OverhangM != 0.3 {
		t.Errorf("overhang = %v, want 0.3", attached.OverhangM)
	}
	if math.Abs(attached.TotalDepthM-4.9) > 1e-9 {
		t.Errorf("total depth = %v, want 4.9", attached.TotalDepthM)
	}
}

func TestDeriveSlope(t *testing.T) {
	skillion := Derive(valid(configure.Configuration{
		WidthM: 4, DepthM: 4, HeightM: 3,
		Style:         configure.StyleSkillion,
		AttachedSides: []configure.Side{configure.SideBack},
	}))
	standard := Derive(valid(configure.Configuration{
		WidthM: 4, DepthM: 4, HeightM: 3,
		Style: configure.StyleFreestanding,
	}))
	if skillion.SlopeDeg <= standard.SlopeDeg {
		t.Errorf("skillion slope %v not steeper than standard %v", skillion.SlopeDeg, standard.SlopeDeg)
	}
}

func TestDeriveDeterministic(t *testing.T) {
	cfg := valid(configure.Configuration{
		WidthM: 9.5, DepthM: 6.5, HeightM: 3.2,
		Style:         configure.StyleSkillion,
		AttachedSides: []configure.Side{configure.SideBack, configure.SideLeft},
		Material:      catalog.MaterialInsulated,
	})
	a := Derive(cfg)
	b := Derive(cfg)
	if !reflect.DeepEqual(a, b) {
		t.Error("Derive is not deterministic for identical input")
	}
}

func TestDeriveAttachmentExclusionInvariant(t *testing.T) {
	// No returned post may lie on an attached edge's coordinate line.
	sides := [][]configure.Side{
		{configure.SideBack},
		{configure.SideLeft},
		{configure.SideRight},
		{configure.SideBack, configure.SideRight},
		{configure.SideBack, configure.SideLeft, configure.SideRight},
	}
	for _, attached := range sides {
		for _, width := range []float64{3, 5, 8, 12} {
			cfg := valid(configure.Configuration{
				WidthM: width, DepthM: 4, HeightM: 3,
				Style:         configure.StyleAttached,
				AttachedSides: attached,
			})
			l := Derive(cfg)
			for _, p := range l.Posts {
				if l.AttachedBack && p.Z == -l.DepthM/2 {
					t.Errorf("width %v sides %v: post on attached back edge", width, attached)
				}
				if l.AttachedLeft && p.X == -l.WidthM/2 {
					t.Errorf("width %v sides %v: post on attached left edge", width, attached)
				}
				if l.AttachedRight && p.X == l.WidthM/2 {
					t.Errorf("width %v sides %v: post on attached right edge", width, attached)
				}
			}
		}
	}
}
