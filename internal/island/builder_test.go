package island

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"islandgen/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// builderTestConfig is a small island tuned so every optional stage can
// succeed by construction: the settlement anchor must have a fully defined
// sample window, houses are placed inside that window, and the castaway
// band covers the whole positive elevation range.
func builderTestConfig(seed int64) config.Generation {
	cfg := config.Default()
	cfg.Seed = seed
	cfg.Shape = config.Shape{RadiusX: 60, RadiusY: 50, CoarseWeight: 20, FineWeight: 4, StepDegrees: 1}
	cfg.Elevation = config.Elevation{Frequency: 0.01, Workers: 2}
	cfg.Settlement = config.Settlement{
		NeighborhoodSize: 20,
		SteepnessLimit:   1, // any fully sampled window is acceptably flat
		MaxAttempts:      1000,
		MinNeighborhood:  21 * 21, // window must be entirely interior
	}
	cfg.Structures.HouseMinDistance = 2
	cfg.Structures.HouseMaxDistance = 3
	cfg.Structures.SatelliteDistance = 4
	cfg.Castaway = config.Castaway{BandLow: 0, BandHigh: 1, MinSettlementDistance: 0}
	return cfg
}

func buildWithChances(t *testing.T, seed int64, chances config.Chances) *Island {
	t.Helper()
	cfg := builderTestConfig(seed)
	cfg.Chances = chances
	isle, err := NewBuilder(cfg, rand.New(rand.NewSource(seed)), testLogger()).Build()
	require.NoError(t, err)
	require.NotNil(t, isle)
	return isle
}

func countRoles(structures []Structure) (houses, primaries, satellites int) {
	for _, s := range structures {
		switch s.Role {
		case RoleHouse:
			houses++
		case RoleShrinePrimary:
			primaries++
		case RoleShrineSatellite:
			satellites++
		}
	}
	return
}

// All stages forced on: the island carries houses, exactly one primary
// shrine, a bounded satellite count and a marker.
func TestBuildAllStagesIncluded(t *testing.T) {
	isle := buildWithChances(t, 1, config.Chances{Settlement: 1, Shrine: 1, Castaway: 1})

	houses, primaries, satellites := countRoles(isle.Structures)
	assert.GreaterOrEqual(t, houses, 1)
	assert.LessOrEqual(t, houses, 5)
	assert.Equal(t, 1, primaries)
	maxSat := 3
	if houses < maxSat {
		maxSat = houses
	}
	assert.LessOrEqual(t, satellites, maxSat)

	for _, s := range isle.Structures {
		assert.True(t, isle.Elevation.Defined(s.Anchor), "structure anchor %v outside interior", s.Anchor)
	}

	require.NotNil(t, isle.Marker)
	v, ok := isle.Elevation.At(isle.Marker.Location)
	require.True(t, ok)
	assert.Greater(t, v, 0.0)
	assert.LessOrEqual(t, v, 1.0)
}

// All stages forced off: border and elevation only.
func TestBuildAllStagesExcluded(t *testing.T) {
	isle := buildWithChances(t, 1, config.Chances{})

	assert.NotEmpty(t, isle.Border.Points)
	assert.NotZero(t, isle.Elevation.Len())
	assert.Empty(t, isle.Structures)
	assert.Nil(t, isle.Marker)
}

// Two runs with the same seed produce identical records, including the
// randomized feature stages.
func TestBuildDeterministic(t *testing.T) {
	chances := config.Chances{Settlement: 1, Shrine: 1, Castaway: 1}
	isle1 := buildWithChances(t, 77, chances)
	isle2 := buildWithChances(t, 77, chances)
	require.Equal(t, isle1, isle2)
}

func TestBuildDifferentSeedsDiffer(t *testing.T) {
	chances := config.Chances{Settlement: 1, Shrine: 1, Castaway: 1}
	isle1 := buildWithChances(t, 1, chances)
	isle2 := buildWithChances(t, 2, chances)
	assert.NotEqual(t, isle1.Border.Points, isle2.Border.Points)
}

// When no settlement site qualifies, the builder recovers: the island is
// produced without settlement or shrine structures.
func TestBuildRecoversFromUnsettlableIsland(t *testing.T) {
	cfg := builderTestConfig(5)
	cfg.Chances = config.Chances{Settlement: 1, Shrine: 1, Castaway: 0}
	cfg.Settlement.MinNeighborhood = 1 << 20 // never satisfiable
	cfg.Settlement.MaxAttempts = 25

	isle, err := NewBuilder(cfg, rand.New(rand.NewSource(5)), testLogger()).Build()
	require.NoError(t, err)
	assert.Empty(t, isle.Structures)
	assert.Nil(t, isle.Marker)
}

func BenchmarkBuild(b *testing.B) {
	cfg := builderTestConfig(1)
	cfg.Chances = config.Chances{Settlement: 1, Shrine: 1, Castaway: 1}
	for i := 0; i < b.N; i++ {
		rng := rand.New(rand.NewSource(cfg.Seed))
		if _, err := NewBuilder(cfg, rng, testLogger()).Build(); err != nil {
			b.Fatal(err)
		}
	}
}
