package island

import (
	"encoding/json"
	"math"

	"golang.org/x/sync/errgroup"

	"islandgen/internal/config"
)

// HeightMap maps every lattice point inside or on the border to an
// elevation in [0, 1]. Points are also kept as a slice in row-major
// bounding-box order so random draws over the interior are reproducible.
type HeightMap struct {
	values map[Point]float64
	points []Point
}

// At returns the elevation at p and whether p is part of the interior set.
func (m *HeightMap) At(p Point) (float64, bool) {
	v, ok := m.values[p]
	return v, ok
}

// Defined reports whether p belongs to the interior point set.
func (m *HeightMap) Defined(p Point) bool {
	_, ok := m.values[p]
	return ok
}

// Points returns the interior points in row-major order. Callers must not
// mutate the returned slice.
func (m *HeightMap) Points() []Point {
	return m.points
}

// Len returns the interior point count.
func (m *HeightMap) Len() int {
	return len(m.points)
}

type heightSample struct {
	X int     `json:"x"`
	Y int     `json:"y"`
	H float64 `json:"h"`
}

// MarshalJSON emits the field as an ordered list of point samples; a Go map
// with struct keys has no native JSON form.
func (m *HeightMap) MarshalJSON() ([]byte, error) {
	samples := make([]heightSample, len(m.points))
	for i, p := range m.points {
		samples[i] = heightSample{X: p.X, Y: p.Y, H: m.values[p]}
	}
	return json.Marshal(samples)
}

// UnmarshalJSON restores a height map from its ordered sample list.
func (m *HeightMap) UnmarshalJSON(data []byte) error {
	var samples []heightSample
	if err := json.Unmarshal(data, &samples); err != nil {
		return err
	}
	m.values = make(map[Point]float64, len(samples))
	m.points = make([]Point, len(samples))
	for i, s := range samples {
		p := Point{X: s.X, Y: s.Y}
		m.points[i] = p
		m.values[p] = s.H
	}
	return nil
}

// ElevationSynthesizer computes the elevation field for a border. Elevation
// is the product of a normalized distance-to-border factor and terrain
// noise, which attenuates the field toward the coast and keeps peaks away
// from the shoreline.
type ElevationSynthesizer struct {
	noise *Field
	cfg   config.Elevation
}

// NewElevationSynthesizer creates a synthesizer over the given noise field.
func NewElevationSynthesizer(noise *Field, cfg config.Elevation) *ElevationSynthesizer {
	return &ElevationSynthesizer{noise: noise, cfg: cfg}
}

// Synthesize scans the border's bounding box, classifies each lattice point,
// and computes elevations for the interior set. The distance factor uses the
// square root of euclidean distance, which flattens the gradient near the
// coast. Noise is normalized to [0, 1], so elevations stay in [0, 1] without
// a separate clamping pass.
func (s *ElevationSynthesizer) Synthesize(b *Border) *HeightMap {
	minX, minY, maxX, maxY := b.Bounds()

	var points []Point
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := Point{X: x, Y: y}
			if b.Contains(p) {
				points = append(points, p)
			}
		}
	}

	dists := s.borderDistances(b, points)

	maxDist := 0.0
	for _, d := range dists {
		if d > maxDist {
			maxDist = d
		}
	}

	values := make(map[Point]float64, len(points))
	for i, p := range points {
		factor := 0.0
		if maxDist > 0 {
			factor = dists[i] / maxDist
		}
		n := s.noise.Sample(s.cfg.Frequency*float64(p.X), s.cfg.Frequency*float64(p.Y), ChannelTerrain)
		values[p] = factor * n
	}

	return &HeightMap{values: values, points: points}
}

// borderDistances computes, for each point, the square root of the minimum
// euclidean distance to the border. The pass is embarrassingly parallel:
// each worker owns a disjoint slice range of the result.
func (s *ElevationSynthesizer) borderDistances(b *Border, points []Point) []float64 {
	dists := make([]float64, len(points))

	workers := s.cfg.Workers
	if workers <= 1 || len(points) < workers {
		s.distanceRange(b, points, dists, 0, len(points))
		return dists
	}

	var g errgroup.Group
	chunk := (len(points) + workers - 1) / workers
	for start := 0; start < len(points); start += chunk {
		end := start + chunk
		if end > len(points) {
			end = len(points)
		}
		start, end := start, end
		g.Go(func() error {
			s.distanceRange(b, points, dists, start, end)
			return nil
		})
	}
	// Workers never fail; Wait just joins them.
	_ = g.Wait()
	return dists
}

func (s *ElevationSynthesizer) distanceRange(b *Border, points []Point, dists []float64, start, end int) {
	for i := start; i < end; i++ {
		p := points[i]
		minSq := math.MaxFloat64
		for _, q := range b.Points {
			dx := float64(p.X - q.X)
			dy := float64(p.Y - q.Y)
			if sq := dx*dx + dy*dy; sq < minSq {
				minSq = sq
			}
		}
		// sqrt(euclidean distance) == fourth root of the squared distance.
		dists[i] = math.Sqrt(math.Sqrt(minSq))
	}
}
