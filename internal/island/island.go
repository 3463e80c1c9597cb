// Package island implements procedural generation of a single closed
// landmass: a noise-distorted border polygon, an elevation field shaped by
// distance to the border, and constrained placement of a settlement, a
// shrine complex and a castaway marker. Everything is deterministic for a
// fixed noise seed and random source.
package island

import (
	"encoding/json"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is a lattice coordinate. Border and interior lookups are exact
// because coordinates are rounded to integers at every stage boundary.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt rounds float coordinates to the nearest lattice point.
func Pt(x, y float64) Point {
	return Point{X: int(math.Round(x)), Y: int(math.Round(y))}
}

// Vec returns the point as a float vector for geometric math.
func (p Point) Vec() mgl64.Vec2 {
	return mgl64.Vec2{float64(p.X), float64(p.Y)}
}

// DistanceTo returns the euclidean distance to q.
func (p Point) DistanceTo(q Point) float64 {
	return q.Vec().Sub(p.Vec()).Len()
}

// Border is the island outline: an ordered closed loop of lattice points
// traversed at fixed angular steps around the origin. Read-only once built.
type Border struct {
	Points []Point `json:"points"`

	set map[Point]struct{}
}

// NewBorder wraps an ordered point loop and indexes it for membership tests.
func NewBorder(points []Point) *Border {
	b := &Border{
		Points: points,
		set:    make(map[Point]struct{}, len(points)),
	}
	for _, p := range points {
		b.set[p] = struct{}{}
	}
	return b
}

// UnmarshalJSON restores a border from its point loop and rebuilds the
// membership index.
func (b *Border) UnmarshalJSON(data []byte) error {
	var raw struct {
		Points []Point `json:"points"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = *NewBorder(raw.Points)
	return nil
}

// OnBorder reports whether p is one of the border points.
func (b *Border) OnBorder(p Point) bool {
	_, ok := b.set[p]
	return ok
}

// Contains reports whether p lies inside or on the border. Border points are
// included; interior classification uses an even-odd ray cast over the loop.
func (b *Border) Contains(p Point) bool {
	if b.OnBorder(p) {
		return true
	}
	return pointInRing(p.Vec(), b.Points)
}

// Bounds returns the axis-aligned bounding box of the border.
func (b *Border) Bounds() (minX, minY, maxX, maxY int) {
	if len(b.Points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = b.Points[0].X, b.Points[0].Y
	maxX, maxY = minX, minY
	for _, p := range b.Points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, minY, maxX, maxY
}

// Nearest returns the border point closest to p. Ties keep the point seen
// first in traversal order, so results are stable for a fixed border.
func (b *Border) Nearest(p Point) Point {
	best := b.Points[0]
	bestDist := p.DistanceTo(best)
	for _, q := range b.Points[1:] {
		if d := p.DistanceTo(q); d < bestDist {
			best = q
			bestDist = d
		}
	}
	return best
}

// pointInRing is an even-odd ray cast. Zero-length edges (consecutive
// duplicate points from rounding) contribute nothing and are safe to keep.
func pointInRing(pt mgl64.Vec2, ring []Point) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	inside := false
	x, y := pt.X(), pt.Y()
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := float64(ring[i].X), float64(ring[i].Y)
		xj, yj := float64(ring[j].X), float64(ring[j].Y)
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi+1e-12)+xi {
			inside = !inside
		}
	}
	return inside
}

// Role classifies a placed structure.
type Role string

const (
	RoleHouse           Role = "house"
	RoleShrinePrimary   Role = "shrine-primary"
	RoleShrineSatellite Role = "shrine-satellite"
)

// Structure is a placed regular polygon feature.
type Structure struct {
	Anchor   Point   `json:"anchor"`
	Sides    int     `json:"sides"`
	Radius   float64 `json:"radius"`
	Rotation float64 `json:"rotation"` // radians
	Role     Role    `json:"role"`
}

// Vertices returns the polygon corners in world coordinates.
func (s Structure) Vertices() []mgl64.Vec2 {
	verts := make([]mgl64.Vec2, s.Sides)
	center := s.Anchor.Vec()
	for i := range verts {
		a := s.Rotation + 2*math.Pi*float64(i)/float64(s.Sides)
		verts[i] = center.Add(mgl64.Vec2{math.Cos(a), math.Sin(a)}.Mul(s.Radius))
	}
	return verts
}

// CastawayMarker is the distress marker: a location near the coast and an
// orientation roughly perpendicular to the local coastline.
type CastawayMarker struct {
	Location    Point   `json:"location"`
	Orientation float64 `json:"orientation"` // radians
}

// Island is the final immutable aggregate. Structures appear in placement
// order: houses, then the shrine primary, then its satellites.
type Island struct {
	Border     *Border         `json:"border"`
	Elevation  *HeightMap      `json:"elevation"`
	Structures []Structure     `json:"structures"`
	Marker     *CastawayMarker `json:"marker,omitempty"`
}
