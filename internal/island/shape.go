package island

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"islandgen/internal/config"
)

// ShapeGenerator builds the island border by walking a circle at fixed
// angular steps and displacing each point with two noise octaves: a coarse
// large-amplitude pass and a fine small-amplitude one. Coordinates are
// rounded to the lattice after each pass so later membership tests stay
// exact.
type ShapeGenerator struct {
	noise *Field
	cfg   config.Shape
}

// NewShapeGenerator creates a generator over the given noise field.
func NewShapeGenerator(noise *Field, cfg config.Shape) *ShapeGenerator {
	return &ShapeGenerator{noise: noise, cfg: cfg}
}

// Generate walks [0, 360) degrees and returns the closed border loop.
// Extreme weight-to-radius ratios can self-intersect the outline; that is
// accepted rather than detected or repaired.
func (g *ShapeGenerator) Generate() *Border {
	step := g.cfg.StepDegrees
	if step <= 0 {
		step = 1
	}
	points := make([]Point, 0, int(360/step))
	for deg := 0.0; deg < 360; deg += step {
		r := mgl64.DegToRad(deg)
		p := Pt(g.cfg.RadiusX*math.Cos(r), g.cfg.RadiusY*math.Sin(r))
		p = g.noisify(p, g.cfg.CoarseWeight)
		p = g.noisify(p, g.cfg.FineWeight)
		points = append(points, p)
	}
	return NewBorder(points)
}

// noisify displaces p by up to ±w/2 on each axis, sampling the noise field
// at frequency 1/w so amplitude and feature size scale together.
func (g *ShapeGenerator) noisify(p Point, w float64) Point {
	if w == 0 {
		return p
	}
	f := 1 / w
	x, y := float64(p.X), float64(p.Y)
	nx := w*g.noise.Sample(f*x, f*y, ChannelShapeX) - w/2
	ny := w*g.noise.Sample(f*x, f*y, ChannelShapeY) - w/2
	return Pt(x+nx, y+ny)
}
