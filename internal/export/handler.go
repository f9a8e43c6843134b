package export

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	configure "Pergola/internal/configure"
	parts "Pergola/internal/parts"
	pipeline "Pergola/internal/pipeline"
)

type Handler struct{}

// BOM streams the generated parts list as an xlsx workbook: one sheet
// with every part, one summary sheet with quantities per kind.
func (h *Handler) BOM(w http.ResponseWriter, r *http.Request) {
	var input configure.Configuration
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	run := pipeline.Run(input)

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Parts"
	f.SetSheetName(f.GetSheetName(0), sheet)
	header := []interface{}{"ID", "Kind", "Label", "X (m)", "Y (m)", "Z (m)", "Size X (m)", "Size Y (m)", "Size Z (m)", "Color"}
	_ = f.SetSheetRow(sheet, "A1", &header)
	for i, p := range run.Parts {
		row := []interface{}{
			p.ID, string(p.Kind), p.Label,
			p.Position.X, p.Position.Y, p.Position.Z,
			p.Size.X, p.Size.Y, p.Size.Z,
			p.Surface.Color,
		}
		cell := fmt.Sprintf("A%d", i+2)
		_ = f.SetSheetRow(sheet, cell, &row)
	}

	summary := "Summary"
	if _, err := f.NewSheet(summary); err == nil {
		head := []interface{}{"Kind", "Quantity"}
		_ = f.SetSheetRow(summary, "A1", &head)
		order, counts := tally(run.Parts)
		for i, k := range order {
			row := []interface{}{string(k), counts[k]}
			_ = f.SetSheetRow(summary, fmt.Sprintf("A%d", i+2), &row)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"bom.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}

func tally(list []parts.Part) ([]parts.Kind, map[parts.Kind]int) {
	counts := make(map[parts.Kind]int)
	var order []parts.Kind
	for _, p := range list {
		if counts[p.Kind] == 0 {
			order = append(order, p.Kind)
		}
		counts[p.Kind]++
	}
	return order, counts
}
