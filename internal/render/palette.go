package render

import (
	"image/color"

	"islandgen/internal/island"
)

var (
	seaColor    = color.RGBA{R: 54, G: 92, B: 138, A: 255}
	borderColor = color.RGBA{R: 40, G: 38, B: 30, A: 255}
	markerColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}

	houseColor     = color.RGBA{R: 112, G: 74, B: 40, A: 255}
	primaryColor   = color.RGBA{R: 170, G: 40, B: 40, A: 255}
	satelliteColor = color.RGBA{R: 200, G: 96, B: 96, A: 255}
)

// elevationColor maps an elevation in [0, 1] to a terrain band: sand near
// the coast, grass and forest inland, rock and snow at the peaks.
func elevationColor(v float64) color.RGBA {
	switch {
	case v < 0.05:
		return color.RGBA{R: 214, G: 196, B: 148, A: 255}
	case v < 0.3:
		return color.RGBA{R: 120, G: 160, B: 82, A: 255}
	case v < 0.55:
		return color.RGBA{R: 86, G: 130, B: 64, A: 255}
	case v < 0.8:
		return color.RGBA{R: 132, G: 120, B: 108, A: 255}
	default:
		return color.RGBA{R: 238, G: 238, B: 240, A: 255}
	}
}

func structureColor(role island.Role) color.RGBA {
	switch role {
	case island.RoleShrinePrimary:
		return primaryColor
	case island.RoleShrineSatellite:
		return satelliteColor
	default:
		return houseColor
	}
}
