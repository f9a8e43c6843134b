package catalog

import "testing"

func TestSelectPatioType(t *testing.T) {
	tests := []struct {
		name         string
		spanMM       float64
		freestanding bool
		wantID       string
	}{
		{"small span attached", 3000, false, "T1"},
		{"small span freestanding", 3000, true, "T1"},
		{"at first threshold stays type 1", 4500, true, "T1"},
		{"overhang band attached", 5000, false, "T2"},
		{"at overhang threshold attached", 5400, false, "T2"},
		{"overhang band freestanding skips type 2", 5000, true, "T3"},
		{"purlin band attached", 5800, false, "T3"},
		{"at purlin threshold", 6000, true, "T3"},
		{"wide span", 6001, true, "T4"},
		{"widest span", 8000, false, "T4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectPatioType(tt.spanMM, tt.freestanding)
			if got.ID != tt.wantID {
				t.Errorf("SelectPatioType(%v, %v) = %s, want %s", tt.spanMM, tt.freestanding, got.ID, tt.wantID)
			}
		})
	}
}

func TestSelectPatioTypeMonotonic(t *testing.T) {
	// Capability must never shrink as the span grows.
	rank := map[string]int{"T1": 1, "T2": 2, "T3": 3, "T4": 4}
	for _, freestanding := range []bool{false, true} {
		prev := 0
		for span := 2000.0; span <= 8000.0; span += 100.0 {
			got := rank[SelectPatioType(span, freestanding).ID]
			if got < prev {
				t.Fatalf("capability dropped at span %v (freestanding=%v)", span, freestanding)
			}
			prev = got
		}
	}
}

func TestSelectBeamForSpan(t *testing.T) {
	tests := []struct {
		spanMM float64
		wantID string
	}{
		{2000, Beam110.ID},
		{4500, Beam110.ID},
		{4501, Beam150.ID},
		{8000, Beam150.ID},
	}

	for _, tt := range tests {
		got := SelectBeamForSpan(tt.spanMM)
		if got.ID != tt.wantID {
			t.Errorf("SelectBeamForSpan(%v) = %s, want %s", tt.spanMM, got.ID, tt.wantID)
		}
	}

	prev := 0.0
	for span := 2000.0; span <= 8000.0; span += 100.0 {
		max := SelectBeamForSpan(span).MaxSpanMM
		if max < prev {
			t.Fatalf("beam capacity dropped at span %v", span)
		}
		prev = max
	}
}

func TestSelectSheet(t *testing.T) {
	tests := []struct {
		name     string
		material Material
		profile  SheetProfile
		wantID   string
	}{
		{"insulated ignores corrugated profile", MaterialInsulated, ProfileCorrugated, SheetInsulated.ID},
		{"insulated ignores flat profile", MaterialInsulated, ProfileFlat, SheetInsulated.ID},
		{"colorbond flat", MaterialColorbond, ProfileFlat, SheetFlat.ID},
		{"colorbond corrugated", MaterialColorbond, ProfileCorrugated, SheetCorrugated.ID},
		{"unmapped material falls back", Material("zincalume"), ProfileCorrugated, SheetCorrugated.ID},
		{"unmapped profile falls back", MaterialColorbond, SheetProfile("mystery"), SheetCorrugated.ID},
		{"empty input falls back", Material(""), SheetProfile(""), SheetCorrugated.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectSheet(tt.material, tt.profile)
			if got.ID != tt.wantID {
				t.Errorf("SelectSheet(%q, %q) = %s, want %s", tt.material, tt.profile, got.ID, tt.wantID)
			}
		})
	}
}
