package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/xuri/excelize/v2"

	batch "Pergola/internal/batch"
	catalog "Pergola/internal/catalog"
	configure "Pergola/internal/configure"
)

type Handler struct{}

type ImportResult struct {
	Count   int          `json:"count"`
	Results []batch.Item `json:"results"`
}

// Configurations parses one configuration per spreadsheet row and
// prices every row. Malformed rows are skipped, not fatal.
func (h *Handler) Configurations(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var items []configure.Configuration
	for i := 1; i < len(rows); i++ {
		cfg, err := parseRow(rows[i])
		if err != nil {
			continue
		}
		items = append(items, cfg)
	}
	if len(items) == 0 {
		http.Error(w, "No valid rows", http.StatusBadRequest)
		return
	}

	res, err := batch.Calculate(batch.Input{Items: items})
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(res.Results), Results: res.Results})
}

// expected: width_m, depth_m, height_m, material, profile, shape, style, attached sides (semicolon list)
func parseRow(row []string) (configure.Configuration, error) {
	if len(row) < 3 {
		return configure.Configuration{}, fmt.Errorf("bad row")
	}
	width, err := toFloat(row[0])
	if err != nil {
		return configure.Configuration{}, err
	}
	depth, err := toFloat(row[1])
	if err != nil {
		return configure.Configuration{}, err
	}
	height, err := toFloat(row[2])
	if err != nil {
		return configure.Configuration{}, err
	}
	cfg := configure.Configuration{
		WidthM:  width,
		DepthM:  depth,
		HeightM: height,
	}
	if len(row) > 3 && row[3] != "" {
		cfg.Material = catalog.Material(row[3])
	}
	if len(row) > 4 && row[4] != "" {
		cfg.SheetProfile = catalog.SheetProfile(row[4])
	}
	if len(row) > 5 && row[5] != "" {
		cfg.RoofShape = configure.RoofShape(row[5])
	}
	if len(row) > 6 && row[6] != "" {
		cfg.Style = configure.Style(row[6])
	}
	if len(row) > 7 && row[7] != "" {
		for _, s := range strings.Split(row[7], ";") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.AttachedSides = append(cfg.AttachedSides, configure.Side(s))
			}
		}
	}
	return cfg, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
