package classification

// NoDataCode is the reserved raster no-data value shared by the built-in
// legends.
const NoDataCode = -32768

// builtinLegends returns the legends registered at process start: the UNCCD
// seven-class land cover legend, the five-class land productivity dynamics
// legend, and the three-class soil organic carbon change legend.
func builtinLegends() map[Dimension]Legend {
	nodata := &Class{Code: NoDataCode, NameShort: "No data", Color: "#000000"}

	landCover := mustLegend("UNCCD Land Cover", []Class{
		{Code: 1, NameShort: "Tree-covered", NameLong: "Tree-covered areas", Color: "#787F1B"},
		{Code: 2, NameShort: "Grassland", Color: "#FFAC42"},
		{Code: 3, NameShort: "Cropland", Color: "#FFFB6E"},
		{Code: 4, NameShort: "Wetland", NameLong: "Wetlands", Color: "#00DB84"},
		{Code: 5, NameShort: "Artificial", NameLong: "Artificial surfaces", Color: "#E60017"},
		{Code: 6, NameShort: "Other land", NameLong: "Other lands, bare areas", Color: "#FFF3D7"},
		{Code: 7, NameShort: "Water body", NameLong: "Water bodies", Color: "#0053C4"},
	}, nodata)

	productivity := mustLegend("Land Productivity Dynamics", []Class{
		{Code: 1, NameShort: "Declining", Color: "#9B2779"},
		{Code: 2, NameShort: "Moderate decline", Color: "#D58286"},
		{Code: 3, NameShort: "Stressed", NameLong: "Stressed, early signs of decline", Color: "#FFF1C4"},
		{Code: 4, NameShort: "Stable", NameLong: "Stable, not stressed", Color: "#CCE7C0"},
		{Code: 5, NameShort: "Increasing", Color: "#196D12"},
	}, nodata)

	soilCarbon := mustLegend("Soil Organic Carbon Change", []Class{
		{Code: -1, NameShort: "Degraded", NameLong: "Soil organic carbon degraded", Color: "#9B2779"},
		{Code: 0, NameShort: "Stable", NameLong: "Soil organic carbon stable", Color: "#FFFFE0"},
		{Code: 1, NameShort: "Improved", NameLong: "Soil organic carbon improved", Color: "#196D12"},
	}, nodata)

	return map[Dimension]Legend{
		DimLandCover:    landCover,
		DimProductivity: productivity,
		DimSoilCarbon:   soilCarbon,
	}
}

func mustLegend(name string, key []Class, nodata *Class) Legend {
	legend, err := NewLegend(name, key, nodata)
	if err != nil {
		panic(err)
	}
	return legend
}
