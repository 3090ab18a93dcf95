package classification

// Dimension identifies one independently-classified attribute contributing to
// a land degradation assessment.
type Dimension string

// Classification dimension constants.
const (
	DimLandCover    Dimension = "land_cover"
	DimProductivity Dimension = "productivity"
	DimSoilCarbon   Dimension = "soil_organic_carbon"
)

// ValidDimensions is the canonical set of accepted dimension identifiers.
var ValidDimensions = map[Dimension]bool{
	DimLandCover:    true,
	DimProductivity: true,
	DimSoilCarbon:   true,
}

// IsValid reports whether d is a registered dimension identifier.
func (d Dimension) IsValid() bool {
	return ValidDimensions[d]
}
