package pipeline

import (
	"encoding/json"
	"net/http"

	configure "Pergola/internal/configure"
	parts "Pergola/internal/parts"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input configure.Configuration
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := Run(input)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

type debugPart struct {
	parts.Part
	Shared *parts.Surface `json:"shared_surface"`
}

type debugResult struct {
	Count    int         `json:"count"`
	Surfaces int         `json:"surfaces"`
	Parts    []debugPart `json:"parts"`
}

// Debug returns the parts list filtered by the kind query parameter,
// with surfaces deduplicated through a per-request cache the way a
// renderer would hold them.
func (h *Handler) Debug(w http.ResponseWriter, r *http.Request) {
	var input configure.Configuration
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	kind := parts.Kind(r.URL.Query().Get("kind"))

	res := Run(input)
	cache := parts.NewSurfaceCache()
	out := debugResult{Parts: []debugPart{}}
	for _, p := range res.Parts {
		if kind != "" && p.Kind != kind {
			continue
		}
		out.Parts = append(out.Parts, debugPart{Part: p, Shared: cache.Get(p.Surface)})
	}
	out.Count = len(out.Parts)
	out.Surfaces = cache.Len()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
