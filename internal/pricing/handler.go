package pricing

import (
	"encoding/json"
	"net/http"

	configure "Pergola/internal/configure"
	pipeline "Pergola/internal/pipeline"
)

type Handler struct{}

// Calc prices a raw configuration: the structural pipeline resolves
// the layout, then the estimate is derived from it.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input configure.Configuration
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	run := pipeline.Run(input)
	res, err := Calculate(Input{Config: run.Config, Layout: run.Layout})
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
