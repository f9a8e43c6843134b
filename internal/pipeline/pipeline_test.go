package pipeline

import (
	"reflect"
	"sync"
	"testing"

	catalog "Pergola/internal/catalog"
	configure "Pergola/internal/configure"
)

func TestRunDeterministic(t *testing.T) {
	cfg := configure.Configuration{
		WidthM: 7.3, DepthM: 5.8, HeightM: 3.1,
		Style:         configure.StyleAttached,
		AttachedSides: []configure.Side{configure.SideBack},
		Material:      catalog.MaterialInsulated,
		Lighting:      true, Gutters: true,
	}
	a := Run(cfg)
	b := Run(cfg)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two runs over the same configuration differ")
	}
}

func TestRunValidatesFirst(t *testing.T) {
	res := Run(configure.Configuration{WidthM: 99, DepthM: 0, HeightM: 0, Style: configure.StyleAttached})
	if res.Config.WidthM != configure.MaxWidthM {
		t.Errorf("width = %v, want clamped to %v", res.Config.WidthM, configure.MaxWidthM)
	}
	if len(res.Config.AttachedSides) != 1 || res.Config.AttachedSides[0] != configure.SideBack {
		t.Errorf("attached sides = %v, want default back", res.Config.AttachedSides)
	}
	if res.Layout.WidthM != res.Config.WidthM {
		t.Errorf("layout width %v does not match validated config %v", res.Layout.WidthM, res.Config.WidthM)
	}
	if len(res.Parts) == 0 {
		t.Error("expected a parts list")
	}
}

func TestRunConcurrentInvocations(t *testing.T) {
	// Each invocation must be independently reentrant: no counters or
	// caches may leak between concurrent runs.
	cfg := configure.Configuration{
		WidthM: 5, DepthM: 3.5, HeightM: 3,
		Style: configure.StyleFreestanding,
		Fan:   true,
	}
	want := Run(cfg)

	var wg sync.WaitGroup
	results := make([]Result, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Run(cfg)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if !reflect.DeepEqual(want, got) {
			t.Fatalf("concurrent run %d differs from the serial run", i)
		}
	}
}
