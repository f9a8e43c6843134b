package project

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	auth "Pergola/internal/auth"
	configure "Pergola/internal/configure"
	pipeline "Pergola/internal/pipeline"
	pricing "Pergola/internal/pricing"
	repo "Pergola/internal/repo"
)

type Handler struct {
	Repo repo.Repository
}

type SaveRequest struct {
	Name   string                  `json:"name"`
	Config configure.Configuration `json:"config"`
}

// Save stores a validated configuration as a new project revision for
// the logged-in user.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		req.Name = "Untitled project"
	}

	cfg := configure.Validate(req.Config)
	raw, err := json.Marshal(cfg)
	if err != nil {
		http.Error(w, "Invalid configuration", http.StatusBadRequest)
		return
	}

	id, err := h.Repo.SaveProject(r.Context(), userID, req.Name, string(raw))
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"id": id})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	projects, err := h.Repo.ListProjects(r.Context(), userID)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(projects)
}

// Get returns one stored project together with a fresh pipeline run
// over its configuration, so the client never renders a stale layout.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.GetProject(r.Context(), userID, id)
	if err != nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	var cfg configure.Configuration
	if err := json.Unmarshal([]byte(p.ConfigJSON), &cfg); err != nil {
		http.Error(w, "Corrupt project", http.StatusInternalServerError)
		return
	}

	type response struct {
		Project repo.Project    `json:"project"`
		Run     pipeline.Result `json:"run"`
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response{Project: p, Run: pipeline.Run(cfg)})
}

type LeadRequest struct {
	Name   string                  `json:"name"`
	Phone  string                  `json:"phone"`
	Email  string                  `json:"email"`
	Config configure.Configuration `json:"config"`
}

// Lead accepts a public quote request: the configuration is priced
// and stored for the sales follow-up bot.
func (h *Handler) Lead(w http.ResponseWriter, r *http.Request) {
	var req LeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" || (req.Phone == "" && req.Email == "") {
		http.Error(w, "Name and a contact required", http.StatusBadRequest)
		return
	}

	run := pipeline.Run(req.Config)
	price, err := pricing.Calculate(pricing.Input{Config: run.Config, Layout: run.Layout})
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	raw, _ := json.Marshal(run.Config)

	id, err := h.Repo.CreateLead(r.Context(), repo.Lead{
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		ConfigJSON: string(raw),
		TotalAUD:   price.TotalAUD,
	})
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{"id": id, "total_aud": price.TotalAUD})
}
