package parts

// Kind identifies what a generated part is. The renderer, the BOM
// export and the debug overlay all filter on it.
type Kind string

const (
	KindGround         Kind = "ground"
	KindWall           Kind = "wall"
	KindBasePlate      Kind = "base-plate"
	KindColumn         Kind = "column"
	KindPostCap        Kind = "post-cap"
	KindWallBracket    Kind = "wall-bracket"
	KindBeam           Kind = "beam"
	KindBeamBracket    Kind = "beam-bracket"
	KindPurlin         Kind = "purlin"
	KindRoofSheet      Kind = "roof-sheet"
	KindRib            Kind = "rib"
	KindUndersidePanel Kind = "underside-panel"
	KindGutter         Kind = "gutter"
	KindDownpipe       Kind = "downpipe"
	KindDesignerBeam   Kind = "designer-beam"
	KindLight          Kind = "light"
	KindFanRod         Kind = "fan-rod"
	KindFanMotor       Kind = "fan-motor"
	KindFanBlade       Kind = "fan-blade"
	KindGableInfill    Kind = "gable-infill"
	KindRidgeCap       Kind = "ridge-cap"
	KindDecorColumn    Kind = "decor-column"
)

// Vec3 is a position, rotation (radians) or bounding size in metres,
// in the same structure-local frame the layout uses, with y up.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Surface carries the visual attributes a renderer needs. Values, not
// handles: two equal Surfaces are interchangeable.
type Surface struct {
	Color     string  `json:"color"`
	Metalness float64 `json:"metalness"`
	Roughness float64 `json:"roughness"`
}

// Geometry names the primitive a renderer should instance for the
// part, with optional parametric arguments (e.g. cylinder radius).
type Geometry struct {
	Primitive string    `json:"primitive"`
	Args      []float64 `json:"args,omitempty"`
}

// Part is one structural or decorative element. Parts are regenerated
// wholesale on every pipeline run and owned by the caller; the
// generator keeps no reference after returning.
type Part struct {
	ID       string   `json:"id"`
	Kind     Kind     `json:"kind"`
	Label    string   `json:"label"`
	Position Vec3     `json:"position"`
	Rotation Vec3     `json:"rotation"`
	Size     Vec3     `json:"size"`
	Surface  Surface  `json:"surface"`
	Geometry Geometry `json:"geometry"`
}
