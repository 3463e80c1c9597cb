// Package render rasterizes an island record to a terrain-map image. It
// consumes the immutable output of the generation core and never feeds back
// into it.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"islandgen/internal/island"
)

// Options controls rasterization.
type Options struct {
	Margin     int    // sea padding around the border bounding box, pixels
	MarkerText string // distress text stamped at the castaway marker
}

// DefaultOptions returns the reference rendering options.
func DefaultOptions() Options {
	return Options{Margin: 10, MarkerText: "HELP"}
}

// Render draws elevation, border, structures and the distress marker into a
// new image. World coordinates map 1:1 to pixels, offset so the island fits
// with the configured margin.
func Render(isle *island.Island, opts Options) *image.RGBA {
	minX, minY, maxX, maxY := isle.Border.Bounds()
	offX := minX - opts.Margin
	offY := minY - opts.Margin
	w := maxX - minX + 2*opts.Margin + 1
	h := maxY - minY + 2*opts.Margin + 1

	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			p := island.Point{X: px + offX, Y: py + offY}
			if v, ok := isle.Elevation.At(p); ok {
				img.SetRGBA(px, py, elevationColor(v))
			} else {
				img.SetRGBA(px, py, seaColor)
			}
		}
	}

	for _, p := range isle.Border.Points {
		img.SetRGBA(p.X-offX, p.Y-offY, borderColor)
	}

	for _, s := range isle.Structures {
		fillPolygon(img, s.Vertices(), offX, offY, structureColor(s.Role))
	}

	if isle.Marker != nil {
		drawRotatedText(img,
			isle.Marker.Location.X-offX, isle.Marker.Location.Y-offY,
			isle.Marker.Orientation, opts.MarkerText, markerColor)
	}

	return img
}

// fillPolygon paints every pixel of the polygon's bounding box that the
// even-odd test classifies as inside. Structure polygons are small, so the
// scan is cheap.
func fillPolygon(img *image.RGBA, verts []mgl64.Vec2, offX, offY int, col color.RGBA) {
	if len(verts) < 3 {
		return
	}
	minX, minY := verts[0].X(), verts[0].Y()
	maxX, maxY := minX, minY
	for _, v := range verts[1:] {
		minX = math.Min(minX, v.X())
		maxX = math.Max(maxX, v.X())
		minY = math.Min(minY, v.Y())
		maxY = math.Max(maxY, v.Y())
	}
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		for x := int(math.Floor(minX)); x <= int(math.Ceil(maxX)); x++ {
			if pointInPolygon(float64(x), float64(y), verts) {
				img.SetRGBA(x-offX, y-offY, col)
			}
		}
	}
}

func pointInPolygon(x, y float64, verts []mgl64.Vec2) bool {
	inside := false
	n := len(verts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := verts[i].X(), verts[i].Y()
		xj, yj := verts[j].X(), verts[j].Y()
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi+1e-12)+xi {
			inside = !inside
		}
	}
	return inside
}
