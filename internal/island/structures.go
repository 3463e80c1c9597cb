package island

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"islandgen/internal/config"
)

// PlaceHouses scatters a random number of houses around the settlement
// anchor. Each candidate gets a random angle and a random radial distance;
// candidates that land outside the interior set are skipped without retry,
// so the placed count can be lower than the drawn count.
func PlaceHouses(rng *rand.Rand, hm *HeightMap, anchor Point, cfg config.Structures) []Structure {
	count := cfg.MinHouses
	if cfg.MaxHouses > cfg.MinHouses {
		count += rng.Intn(cfg.MaxHouses - cfg.MinHouses + 1)
	}

	houses := make([]Structure, 0, count)
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		dist := cfg.HouseMinDistance + rng.Float64()*(cfg.HouseMaxDistance-cfg.HouseMinDistance)
		candidate := offsetPoint(anchor, angle, dist)
		if !hm.Defined(candidate) {
			continue
		}
		houses = append(houses, Structure{
			Anchor:   candidate,
			Sides:    4,
			Radius:   cfg.HouseRadius,
			Rotation: rng.Float64() * 2 * math.Pi,
			Role:     RoleHouse,
		})
	}
	return houses
}

// PlaceShrineComplex places the primary shrine directly at the anchor and a
// number of satellites around it. The satellite count is capped by the
// placed house count, and every satellite has at most as many sides as the
// primary. Non-interior satellite candidates are skipped without retry.
func PlaceShrineComplex(rng *rand.Rand, hm *HeightMap, anchor Point, housesPlaced int, cfg config.Structures) []Structure {
	primarySides := cfg.PrimaryMinSides
	if cfg.PrimaryMaxSides > cfg.PrimaryMinSides {
		primarySides += rng.Intn(cfg.PrimaryMaxSides - cfg.PrimaryMinSides + 1)
	}

	shrine := []Structure{{
		Anchor:   anchor,
		Sides:    primarySides,
		Radius:   cfg.PrimaryRadius,
		Rotation: rng.Float64() * 2 * math.Pi,
		Role:     RoleShrinePrimary,
	}}

	maxSatellites := cfg.MaxSatellites
	if housesPlaced < maxSatellites {
		maxSatellites = housesPlaced
	}
	if maxSatellites < 0 {
		maxSatellites = 0
	}

	satellites := rng.Intn(maxSatellites + 1)
	for i := 0; i < satellites; i++ {
		angle := rng.Float64() * 2 * math.Pi
		candidate := offsetPoint(anchor, angle, cfg.SatelliteDistance)
		if !hm.Defined(candidate) {
			continue
		}
		sides := cfg.PrimaryMinSides
		if primarySides > cfg.PrimaryMinSides {
			sides += rng.Intn(primarySides - cfg.PrimaryMinSides + 1)
		}
		shrine = append(shrine, Structure{
			Anchor:   candidate,
			Sides:    sides,
			Radius:   cfg.SatelliteRadius,
			Rotation: rng.Float64() * 2 * math.Pi,
			Role:     RoleShrineSatellite,
		})
	}
	return shrine
}

// offsetPoint returns the lattice point at a polar offset from p.
func offsetPoint(p Point, angle, dist float64) Point {
	v := p.Vec().Add(mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(dist))
	return Pt(v.X(), v.Y())
}
