package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawRotatedText renders text into a small tile with the basic bitmap face,
// then blits the tile rotated by angle (radians) about its center at
// (cx, cy). Nearest-neighbor sampling is fine at this glyph size.
func drawRotatedText(img *image.RGBA, cx, cy int, angle float64, text string, col color.RGBA) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	tw := font.MeasureString(face, text).Ceil()
	th := face.Height

	tile := image.NewRGBA(image.Rect(0, 0, tw, th))
	d := font.Drawer{
		Dst:  tile,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(text)

	sin, cos := math.Sincos(angle)
	// Dest reach of the rotated tile from its center.
	reach := int(math.Ceil(math.Hypot(float64(tw), float64(th)) / 2))
	tcx, tcy := float64(tw)/2, float64(th)/2

	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			// Inverse rotation back into tile coordinates.
			sx := cos*float64(dx) + sin*float64(dy) + tcx
			sy := -sin*float64(dx) + cos*float64(dy) + tcy
			ix, iy := int(math.Round(sx)), int(math.Round(sy))
			if ix < 0 || ix >= tw || iy < 0 || iy >= th {
				continue
			}
			if _, _, _, a := tile.At(ix, iy).RGBA(); a > 0 {
				img.SetRGBA(cx+dx, cy+dy, col)
			}
		}
	}
}
