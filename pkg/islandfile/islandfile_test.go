package islandfile

import (
	"io"
	"log/slog"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"islandgen/internal/config"
	"islandgen/internal/island"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 21
	cfg.Shape = config.Shape{RadiusX: 40, RadiusY: 35, CoarseWeight: 12, FineWeight: 3, StepDegrees: 1}
	cfg.Elevation.Workers = 2
	cfg.Chances = config.Chances{Settlement: 1, Shrine: 1, Castaway: 1}
	cfg.Castaway = config.Castaway{BandLow: 0, BandHigh: 1, MinSettlementDistance: 0}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	original, err := island.NewBuilder(cfg, rand.New(rand.NewSource(cfg.Seed)), log).Build()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "island.json")
	require.NoError(t, Save(path, original))

	loaded, err := Load(path)
	require.NoError(t, err)

	// Decoding rebuilds the border index and interior order, so the loaded
	// record is usable for the same membership and lookup queries.
	require.Equal(t, original, loaded)
	for _, p := range original.Border.Points {
		assert.True(t, loaded.Border.Contains(p))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
