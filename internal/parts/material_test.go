package parts

import "testing"

func TestSurfaceCacheDeduplicates(t *testing.T) {
	cache := NewSurfaceCache()
	a := cache.Get(Surface{Color: "monument", Metalness: 0.7, Roughness: 0.35})
	b := cache.Get(Surface{Color: "monument", Metalness: 0.7, Roughness: 0.35})
	c := cache.Get(Surface{Color: "surfmist", Metalness: 0.6, Roughness: 0.45})

	if a != b {
		t.Error("identical surfaces should share one instance")
	}
	if a == c {
		t.Error("distinct surfaces must not share an instance")
	}
	if cache.Len() != 2 {
		t.Errorf("cache size = %d, want 2", cache.Len())
	}
}

func TestSurfaceCacheBypassIsEquivalent(t *testing.T) {
	// The cache is an allocation optimization only: the shared value
	// must equal the input value.
	in := Surface{Color: "sandstone", Metalness: 0.0, Roughness: 0.85}
	got := NewSurfaceCache().Get(in)
	if *got != in {
		t.Errorf("cached surface %+v differs from input %+v", *got, in)
	}
}
