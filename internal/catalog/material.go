package catalog

type Material string

const (
	MaterialColorbond Material = "colorbond"
	MaterialInsulated Material = "insulated"
)

type SheetProfile string

const (
	ProfileCorrugated SheetProfile = "corrugated"
	ProfileFlat       SheetProfile = "flat"
)
