package configure

import (
	catalog "Pergola/internal/catalog"
)

type Style string

const (
	StyleFreestanding Style = "freestanding"
	StyleAttached     Style = "attached"
	StyleFlyover      Style = "flyover"
	StyleSkillion     Style = "skillion"
)

type RoofShape string

const (
	ShapeFlat  RoofShape = "flat"
	ShapeGable RoofShape = "gable"
)

// Side names an edge of the structure. The front edge never attaches
// to a wall.
type Side string

const (
	SideBack  Side = "back"
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Configuration is the user intent for one structure. Dimensions in
// metres. It is a plain value; Validate returns a normalized copy and
// never mutates its argument.
type Configuration struct {
	WidthM  float64 `json:"width_m"`
	DepthM  float64 `json:"depth_m"`
	HeightM float64 `json:"height_m"`

	Material     catalog.Material     `json:"material"`
	SheetProfile catalog.SheetProfile `json:"sheet_profile"`
	RoofShape    RoofShape            `json:"roof_shape"`
	Style        Style                `json:"style"`

	AttachedSides []Side `json:"attached_sides"`

	Lighting          bool `json:"lighting"`
	Fan               bool `json:"fan"`
	Gutters           bool `json:"gutters"`
	DesignerBeam      bool `json:"designer_beam"`
	DecorativeColumns bool `json:"decorative_columns"`

	FrameColor string `json:"frame_color"`
}

const (
	MinWidthM  = 2.0
	MaxWidthM  = 12.0
	MinDepthM  = 2.0
	MaxDepthM  = 8.0
	MinHeightM = 2.4
	MaxHeightM = 4.5
)

// Validate clamps dimensions into the supported ranges and normalizes
// the attached-side set. Total and idempotent: validating an already
// valid configuration returns it unchanged.
func Validate(c Configuration) Configuration {
	out := c
	out.WidthM = clamp(c.WidthM, MinWidthM, MaxWidthM)
	out.DepthM = clamp(c.DepthM, MinDepthM, MaxDepthM)
	out.HeightM = clamp(c.HeightM, MinHeightM, MaxHeightM)

	if out.Style == "" {
		out.Style = StyleFreestanding
	}
	if out.FrameColor == "" {
		out.FrameColor = "monument"
	}
	out.AttachedSides = normalizeSides(out.Style, c.AttachedSides)
	return out
}

// normalizeSides drops unknown entries and duplicates and orders the
// set back, left, right. A freestanding structure has no attached
// sides; any other style defaults to back when nothing was chosen.
func normalizeSides(style Style, sides []Side) []Side {
	if style == StyleFreestanding {
		return nil
	}
	var back, left, right bool
	for _, s := range sides {
		switch s {
		case SideBack:
			back = true
		case SideLeft:
			left = true
		case SideRight:
			right = true
		}
	}
	if !back && !left && !right {
		back = true
	}
	out := make([]Side, 0, 3)
	if back {
		out = append(out, SideBack)
	}
	if left {
		out = append(out, SideLeft)
	}
	if right {
		out = append(out, SideRight)
	}
	return out
}

// Attached reports whether the given side is in the attached set.
func (c Configuration) Attached(side Side) bool {
	for _, s := range c.AttachedSides {
		if s == side {
			return true
		}
	}
	return false
}

// Freestanding reports whether the structure stands on its own posts
// with no wall attachment.
func (c Configuration) Freestanding() bool {
	return c.Style == StyleFreestanding
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
