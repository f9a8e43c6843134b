package parts

import (
	"fmt"
	"reflect"
	"testing"

	catalog "Pergola/internal/catalog"
	configure "Pergola/internal/configure"
	layout "Pergola/internal/layout"
)

func run(c configure.Configuration) (configure.Configuration, layout.Layout, []Part) {
	cfg := configure.Validate(c)
	l := layout.Derive(cfg)
	return cfg, l, Generate(cfg, l)
}

func kinds(list []Part) map[Kind]int {
	out := make(map[Kind]int)
	for _, p := range list {
		out[p.Kind]++
	}
	return out
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := configure.Configuration{
		WidthM: 6.4, DepthM: 5.1, HeightM: 3,
		Style:         configure.StyleSkillion,
		AttachedSides: []configure.Side{configure.SideBack},
		Material:      catalog.MaterialInsulated,
		Lighting:      true, Fan: true, Gutters: true,
		DesignerBeam: true, DecorativeColumns: true,
	}
	_, l, a := run(cfg)
	_, _, b := run(cfg)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two generations of the same input differ")
	}
	if len(l.Posts) == 0 {
		t.Fatal("expected posts in layout")
	}
}

func TestGenerateStructuralCounts(t *testing.T) {
	// Freestanding 5x3.5: six posts, so six of every per-post part,
	// two beams with four brackets.
	_, l, list := run(configure.Configuration{
		WidthM: 5, DepthM: 3.5, HeightM: 3,
		Style: configure.StyleFreestanding,
	})
	k := kinds(list)

	want := len(l.Posts)
	for _, kind := range []Kind{KindBasePlate, KindColumn, KindPostCap} {
		if k[kind] != want {
			t.Errorf("%s count = %d, want %d", kind, k[kind], want)
		}
	}
	if k[KindBeam] != 2 {
		t.Errorf("beam count = %d, want 2", k[KindBeam])
	}
	if k[KindBeamBracket] != 4 {
		t.Errorf("beam bracket count = %d, want 4", k[KindBeamBracket])
	}
	if k[KindWall] != 0 || k[KindWallBracket] != 0 {
		t.Errorf("freestanding structure should have no walls or wall brackets")
	}
	// Type 1 pattern carries no purlins.
	if k[KindPurlin] != 0 {
		t.Errorf("purlin count = %d, want 0 for Type 1", k[KindPurlin])
	}
}

func TestGenerateWallBracketsOnAttachedEdge(t *testing.T) {
	// 3x3 attached at the back: one bracket group of two stations.
	_, _, list := run(configure.Configuration{
		WidthM: 3, DepthM: 3, HeightM: 3,
		Style:         configure.StyleFlyover,
		AttachedSides: []configure.Side{configure.SideBack},
	})
	k := kinds(list)
	if k[KindWall] != 1 {
		t.Errorf("wall count = %d, want 1", k[KindWall])
	}
	if k[KindWallBracket] != 2 {
		t.Errorf("wall bracket count = %d, want 2", k[KindWallBracket])
	}
	if k[KindColumn] != 2 {
		t.Errorf("column count = %d, want 2", k[KindColumn])
	}
}

func TestGenerateNoAccessoriesMeansNoAccessoryParts(t *testing.T) {
	_, _, list := run(configure.Configuration{
		WidthM: 5, DepthM: 4, HeightM: 3,
		Style: configure.StyleFreestanding,
	})
	k := kinds(list)
	for _, kind := range []Kind{KindLight, KindFanRod, KindFanMotor, KindFanBlade, KindGutter, KindDownpipe, KindDesignerBeam, KindDecorColumn} {
		if k[kind] != 0 {
			t.Errorf("%s emitted with all accessories off", kind)
		}
	}
}

func TestGenerateAccessoryToggleIsIsolated(t *testing.T) {
	base := configure.Configuration{
		WidthM: 5, DepthM: 4, HeightM: 3,
		Style:    configure.StyleFreestanding,
		Lighting: true, Gutters: true,
	}
	withFan := base
	withFan.Fan = true

	_, _, a := run(base)
	_, _, b := run(withFan)

	fanKinds := map[Kind]bool{KindFanRod: true, KindFanMotor: true, KindFanBlade: true}
	var bWithoutFan []Part
	for _, p := range b {
		if !fanKinds[p.Kind] {
			bWithoutFan = append(bWithoutFan, p)
		}
	}
	if !reflect.DeepEqual(a, bWithoutFan) {
		t.Error("toggling the fan changed parts other than the fan kinds")
	}
}

func TestGenerateRoofVariants(t *testing.T) {
	// Corrugated colorbond: ribbed sheets, no underside panel.
	_, l, ribbed := run(configure.Configuration{
		WidthM: 5, DepthM: 4, HeightM: 3,
		Style:    configure.StyleFreestanding,
		Material: catalog.MaterialColorbond, SheetProfile: catalog.ProfileCorrugated,
	})
	k := kinds(ribbed)
	if k[KindRoofSheet] == 0 || k[KindRib] == 0 {
		t.Errorf("corrugated roof: sheets=%d ribs=%d, want both > 0", k[KindRoofSheet], k[KindRib])
	}
	if k[KindUndersidePanel] != 0 {
		t.Error("corrugated roof should have no underside panel")
	}
	if l.Sheet.ID != catalog.SheetCorrugated.ID {
		t.Errorf("sheet = %s, want %s", l.Sheet.ID, catalog.SheetCorrugated.ID)
	}

	// Flat colorbond: no ribs.
	_, _, flat := run(configure.Configuration{
		WidthM: 5, DepthM: 4, HeightM: 3,
		Style:    configure.StyleFreestanding,
		Material: catalog.MaterialColorbond, SheetProfile: catalog.ProfileFlat,
	})
	if kf := kinds(flat); kf[KindRib] != 0 {
		t.Errorf("flat sheet emitted %d ribs", kf[KindRib])
	}

	// Insulated: underside panel present.
	_, _, insulated := run(configure.Configuration{
		WidthM: 5, DepthM: 4, HeightM: 3,
		Style:    configure.StyleFreestanding,
		Material: catalog.MaterialInsulated,
	})
	if ki := kinds(insulated); ki[KindUndersidePanel] != 1 {
		t.Errorf("insulated roof underside panels = %d, want 1", ki[KindUndersidePanel])
	}
}

func TestGenerateGableBypassesFlatEmission(t *testing.T) {
	_, _, list := run(configure.Configuration{
		WidthM: 5, DepthM: 4, HeightM: 3,
		Style:     configure.StyleFreestanding,
		RoofShape: configure.ShapeGable,
		Material:  catalog.MaterialColorbond, SheetProfile: catalog.ProfileCorrugated,
	})
	k := kinds(list)
	if k[KindRoofSheet] != 2 {
		t.Errorf("gable planes = %d, want 2", k[KindRoofSheet])
	}
	if k[KindGableInfill] != 2 {
		t.Errorf("gable infills = %d, want 2", k[KindGableInfill])
	}
	if k[KindRidgeCap] != 1 {
		t.Errorf("ridge caps = %d, want 1", k[KindRidgeCap])
	}
	// The flat-sheet path, ribs included, is bypassed entirely.
	if k[KindRib] != 0 {
		t.Errorf("gable roof emitted %d ribs", k[KindRib])
	}
}

func TestGeneratePurlinsFollowPattern(t *testing.T) {
	// 6.5 m depth freestanding resolves to the mid-purlin pattern.
	_, l, list := run(configure.Configuration{
		WidthM: 5, DepthM: 6.5, HeightM: 3,
		Style: configure.StyleFreestanding,
	})
	if !l.Pattern.HasPurlins || !l.Pattern.HasMidPurlin {
		t.Fatalf("pattern = %s, want the mid-purlin type", l.Pattern.ID)
	}
	k := kinds(list)
	if k[KindPurlin] < 3 {
		t.Errorf("purlin count = %d, want at least 3", k[KindPurlin])
	}
}

func TestGenerateIDsAreStablePerKind(t *testing.T) {
	_, _, list := run(configure.Configuration{
		WidthM: 5, DepthM: 3.5, HeightM: 3,
		Style: configure.StyleFreestanding,
	})
	seen := make(map[string]bool)
	counts := make(map[Kind]int)
	for _, p := range list {
		if seen[p.ID] {
			t.Errorf("duplicate part id %s", p.ID)
		}
		seen[p.ID] = true
		counts[p.Kind]++
		want := fmt.Sprintf("%s-%d", p.Kind, counts[p.Kind])
		if p.ID != want {
			t.Errorf("part id = %s, want %s", p.ID, want)
		}
	}
}
