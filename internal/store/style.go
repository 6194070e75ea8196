package store

import (
	"github.com/franciscosanchezn/pizza-factory/internal/ingredients"
)

// Style is the regional configuration a Store Front runs its steps with
type Style struct {
	Name            string `json:"name"`
	BakeTemperature int    `json:"bake_temperature"`
	BakeMinutes     int    `json:"bake_minutes"`
	CutStyle        string `json:"cut_style"`
}

// DefaultStyle is used by regions that do not override any step
var DefaultStyle = Style{
	Name:            "Basic Style",
	BakeTemperature: 350,
	BakeMinutes:     25,
	CutStyle:        "triangles",
}

var regionalStyles = map[ingredients.Region]Style{
	ingredients.EastCoast: {
		Name:            "New York Style",
		BakeTemperature: DefaultStyle.BakeTemperature,
		BakeMinutes:     DefaultStyle.BakeMinutes,
		CutStyle:        DefaultStyle.CutStyle,
	},
	ingredients.Midwest: {
		Name:            "Chicago Style",
		BakeTemperature: DefaultStyle.BakeTemperature,
		BakeMinutes:     45,
		CutStyle:        "squares",
	},
}

// StyleFor returns the style of region, or DefaultStyle for a region without one
func StyleFor(region ingredients.Region) Style {
	if style, ok := regionalStyles[region]; ok {
		return style
	}
	return DefaultStyle
}
