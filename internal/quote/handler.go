package quote

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	configure "Pergola/internal/configure"
	parts "Pergola/internal/parts"
	pipeline "Pergola/internal/pipeline"
	pricing "Pergola/internal/pricing"
)

type Input struct {
	Customer string                  `json:"customer"`
	Project  string                  `json:"project"`
	Notes    string                  `json:"notes"`
	Config   configure.Configuration `json:"config"`
}

type Handler struct{}

// Generate renders a one-page PDF quote: configuration summary,
// resolved structural selections, per-kind part counts and the price
// breakdown.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Project == "" {
		input.Project = "Patio quote"
	}

	run := pipeline.Run(input.Config)
	price, err := pricing.Calculate(pricing.Input{Config: run.Config, Layout: run.Layout})
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Project)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Customer: %s", input.Customer))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Structure")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	c := run.Config
	l := run.Layout
	pdf.Cell(0, 6, fmt.Sprintf("Size: %.1f x %.1f x %.1f m (%s, %s roof)", c.WidthM, c.DepthM, c.HeightM, c.Style, c.RoofShape))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Pattern: %s   Beam: %s   Sheet: %s", l.Pattern.Name, l.Beam.ID, l.Sheet.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Posts: %d   Roof area: %.1f m2   Steel: %.0f kg", price.ColumnCount, price.RoofAreaM2, price.SteelKg))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Bill of materials")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range countByKind(run.Parts) {
		pdf.Cell(0, 5, fmt.Sprintf("%-18s %d", row.Kind, row.Count))
		pdf.Ln(5)
	}
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Pricing")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	bd := price.Breakdown
	for _, line := range []struct {
		name string
		v    float64
	}{
		{"Structure", bd.Structure},
		{"Footings", bd.Footings},
		{"Roofing", bd.Roofing},
		{"Rainwater", bd.Rainwater},
		{"Accessories", bd.Accessories},
		{"Labour", bd.Labour},
		{"Margin", bd.Margin},
		{"GST", bd.GST},
	} {
		pdf.Cell(0, 5, fmt.Sprintf("%-14s $%.2f", line.name, line.v))
		pdf.Ln(5)
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: $%.2f", price.TotalAUD))
	pdf.Ln(10)
	if input.Notes != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"quote.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

type kindCount struct {
	Kind  parts.Kind
	Count int
}

// countByKind aggregates in first-seen order so the PDF follows the
// assembly order of the parts list.
func countByKind(list []parts.Part) []kindCount {
	idx := make(map[parts.Kind]int)
	var out []kindCount
	for _, p := range list {
		if i, ok := idx[p.Kind]; ok {
			out[i].Count++
			continue
		}
		idx[p.Kind] = len(out)
		out = append(out, kindCount{Kind: p.Kind, Count: 1})
	}
	return out
}
