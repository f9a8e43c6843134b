package batch

import (
	"fmt"

	configure "Pergola/internal/configure"
	pipeline "Pergola/internal/pipeline"
	pricing "Pergola/internal/pricing"
)

type Input struct {
	Items []configure.Configuration `json:"items"`
}

type Item struct {
	ColumnCount int     `json:"column_count"`
	PatternName string  `json:"pattern_name"`
	BeamLabel   string  `json:"beam_label"`
	PartCount   int     `json:"part_count"`
	TotalAUD    float64 `json:"total_aud"`
}

type Result struct {
	Results []Item `json:"results"`
}

// Calculate runs the full pipeline and pricing over a list of
// configurations, e.g. a dealer comparing size options.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]Item, 0, len(in.Items))}
	for _, cfg := range in.Items {
		run := pipeline.Run(cfg)
		price, err := pricing.Calculate(pricing.Input{Config: run.Config, Layout: run.Layout})
		if err != nil {
			return Result{}, err
		}
		out.Results = append(out.Results, Item{
			ColumnCount: price.ColumnCount,
			PatternName: price.PatternName,
			BeamLabel:   price.BeamLabel,
			PartCount:   len(run.Parts),
			TotalAUD:    price.TotalAUD,
		})
	}
	return out, nil
}
