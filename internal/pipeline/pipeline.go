package pipeline

import (
	configure "Pergola/internal/configure"
	layout "Pergola/internal/layout"
	parts "Pergola/internal/parts"
)

// Result is the full pipeline output: the configuration after
// clamping, the resolved layout and the generated parts list.
type Result struct {
	Config configure.Configuration `json:"config"`
	Layout layout.Layout           `json:"layout"`
	Parts  []parts.Part            `json:"parts"`
}

// Run composes Validate, Derive and Generate into one synchronous
// call. It holds no state between invocations and is safe to call
// from concurrent request handlers.
func Run(raw configure.Configuration) Result {
	cfg := configure.Validate(raw)
	l := layout.Derive(cfg)
	return Result{
		Config: cfg,
		Layout: l,
		Parts:  parts.Generate(cfg, l),
	}
}
