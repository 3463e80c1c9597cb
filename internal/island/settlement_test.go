package island

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"islandgen/internal/config"
)

func testSettlementConfig() config.Settlement {
	return config.Settlement{
		NeighborhoodSize: 20,
		SteepnessLimit:   0.02,
		MaxAttempts:      100,
		MinNeighborhood:  9,
	}
}

// gridHeightMap builds a synthetic interior: a filled square of lattice
// points with elevations supplied per point.
func gridHeightMap(minX, minY, maxX, maxY int, elev func(Point) float64) *HeightMap {
	values := make(map[Point]float64)
	var points []Point
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := Point{X: x, Y: y}
			points = append(points, p)
			values[p] = elev(p)
		}
	}
	return &HeightMap{values: values, points: points}
}

func TestLocateSettlementAcceptsFlatRegion(t *testing.T) {
	hm := gridHeightMap(0, 0, 40, 40, func(Point) float64 { return 0.5 })
	cfg := testSettlementConfig()

	anchor, err := LocateSettlement(rand.New(rand.NewSource(1)), hm, cfg)
	require.NoError(t, err)

	assert.True(t, hm.Defined(anchor))
	steepness, samples := NeighborhoodSteepness(hm, anchor, cfg.NeighborhoodSize)
	assert.LessOrEqual(t, steepness, cfg.SteepnessLimit)
	assert.GreaterOrEqual(t, samples, cfg.MinNeighborhood)
}

// A checkerboard has maximal local variance everywhere, so no candidate can
// meet the threshold and the bounded search must fall back to the flattest
// sampled point instead of hanging.
func TestLocateSettlementFallsBackWhenNothingFlat(t *testing.T) {
	hm := gridHeightMap(0, 0, 40, 40, func(p Point) float64 {
		if (p.X+p.Y)%2 == 0 {
			return 0
		}
		return 1
	})
	cfg := testSettlementConfig()
	cfg.MaxAttempts = 20

	anchor, err := LocateSettlement(rand.New(rand.NewSource(1)), hm, cfg)
	require.NoError(t, err)
	assert.True(t, hm.Defined(anchor))
}

// A one-point interior can never supply the minimum neighborhood sample, so
// the search exhausts its budget and reports the explicit failure.
func TestLocateSettlementDegenerateInterior(t *testing.T) {
	hm := gridHeightMap(0, 0, 0, 0, func(Point) float64 { return 0.1 })
	cfg := testSettlementConfig()
	cfg.MaxAttempts = 50

	_, err := LocateSettlement(rand.New(rand.NewSource(1)), hm, cfg)
	require.ErrorIs(t, err, ErrNoSettlementSite)
}

func TestLocateSettlementEmptyInterior(t *testing.T) {
	hm := &HeightMap{values: map[Point]float64{}}
	_, err := LocateSettlement(rand.New(rand.NewSource(1)), hm, testSettlementConfig())
	require.ErrorIs(t, err, ErrNoSettlementSite)
}

func TestNeighborhoodSteepnessUniformIsZero(t *testing.T) {
	hm := gridHeightMap(0, 0, 10, 10, func(Point) float64 { return 0.3 })
	steepness, samples := NeighborhoodSteepness(hm, Point{X: 5, Y: 5}, 6)
	assert.Zero(t, steepness)
	assert.Equal(t, 49, samples, "7x7 window fully defined")
}
