package island

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"islandgen/internal/config"
	"islandgen/internal/profiling"
)

// Builder runs the generation pipeline in a fixed order: shape, elevation,
// then the optional settlement/houses, shrine and castaway stages. Each
// optional stage is included by one uniform draw against its configured
// probability; the shrine stage additionally requires that the settlement
// stage ran. All randomness comes from the single injected source, so a
// fixed seed reproduces the island exactly.
type Builder struct {
	cfg   config.Generation
	noise *Field
	rng   *rand.Rand
	log   *slog.Logger
}

// NewBuilder creates a builder. The random source drives every stage draw;
// the noise field is seeded from cfg.Seed. A nil logger falls back to
// slog.Default.
func NewBuilder(cfg config.Generation, rng *rand.Rand, log *slog.Logger) *Builder {
	if log == nil {
		log = slog.Default()
	}
	return &Builder{
		cfg:   cfg,
		noise: NewField(cfg.Seed),
		rng:   rng,
		log:   log,
	}
}

// Build generates one immutable island record.
func (b *Builder) Build() (*Island, error) {
	border := b.generateBorder()
	if len(border.Points) == 0 {
		return nil, errors.New("empty border")
	}

	elevation := b.synthesizeElevation(border)
	if elevation.Len() == 0 {
		return nil, fmt.Errorf("border of %d points encloses no interior", len(border.Points))
	}

	isle := &Island{Border: border, Elevation: elevation}

	settlement, err := b.settlementStage(isle)
	if err != nil {
		return nil, err
	}
	b.castawayStage(isle, settlement)

	b.log.Info("island built",
		"border_points", len(border.Points),
		"interior_points", elevation.Len(),
		"structures", len(isle.Structures),
		"marker", isle.Marker != nil,
	)
	return isle, nil
}

func (b *Builder) generateBorder() *Border {
	defer profiling.Track("island.Shape")()
	return NewShapeGenerator(b.noise, b.cfg.Shape).Generate()
}

func (b *Builder) synthesizeElevation(border *Border) *HeightMap {
	defer profiling.Track("island.Elevation")()
	return NewElevationSynthesizer(b.noise, b.cfg.Elevation).Synthesize(border)
}

// settlementStage runs the settlement/houses draw and, when a settlement
// exists, the shrine draw. It returns the anchor for the castaway stage, or
// nil when no settlement was placed.
func (b *Builder) settlementStage(isle *Island) (*Point, error) {
	if b.rng.Float64() >= b.cfg.Chances.Settlement {
		b.log.Debug("settlement stage skipped by chance draw")
		return nil, nil
	}

	defer profiling.Track("island.Settlement")()

	anchor, err := LocateSettlement(b.rng, isle.Elevation, b.cfg.Settlement)
	if errors.Is(err, ErrNoSettlementSite) {
		b.log.Warn("no suitable settlement site, island stays unsettled")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	houses := PlaceHouses(b.rng, isle.Elevation, anchor, b.cfg.Structures)
	isle.Structures = append(isle.Structures, houses...)
	b.log.Debug("settlement placed", "anchor", anchor, "houses", len(houses))

	if b.rng.Float64() < b.cfg.Chances.Shrine {
		shrine := PlaceShrineComplex(b.rng, isle.Elevation, anchor, len(houses), b.cfg.Structures)
		isle.Structures = append(isle.Structures, shrine...)
		b.log.Debug("shrine complex placed", "satellites", len(shrine)-1)
	}
	return &anchor, nil
}

func (b *Builder) castawayStage(isle *Island, settlement *Point) {
	if b.rng.Float64() >= b.cfg.Chances.Castaway {
		b.log.Debug("castaway stage skipped by chance draw")
		return
	}

	defer profiling.Track("island.Castaway")()

	isle.Marker = PlaceCastaway(b.rng, isle.Border, isle.Elevation, settlement, b.cfg.Castaway)
	if isle.Marker == nil {
		b.log.Debug("no castaway candidates in elevation band")
	}
}
