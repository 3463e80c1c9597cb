package island

import (
	"math"
	"math/rand"

	"islandgen/internal/config"
)

// PlaceCastaway picks a distress-marker location in a near-shore elevation
// band, away from the settlement when one exists, and orients it roughly
// perpendicular to the local coastline. An empty candidate set is a valid
// outcome and yields no marker.
func PlaceCastaway(rng *rand.Rand, b *Border, hm *HeightMap, settlement *Point, cfg config.Castaway) *CastawayMarker {
	var candidates []Point
	for _, p := range hm.Points() {
		v, _ := hm.At(p)
		if v <= cfg.BandLow || v > cfg.BandHigh {
			continue
		}
		if settlement != nil && p.DistanceTo(*settlement) <= cfg.MinSettlementDistance {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return nil
	}

	location := candidates[rng.Intn(len(candidates))]
	return &CastawayMarker{
		Location:    location,
		Orientation: coastOrientation(b, location),
	}
}

// coastOrientation approximates "facing the sea" from the marker location.
// It takes the nearest border point and derives an angle from the relative
// x-displacement normalized by distance. An exact tangent of the noisy
// border polygon is not worth computing.
func coastOrientation(b *Border, location Point) float64 {
	nearest := b.Nearest(location)
	dist := location.DistanceTo(nearest)
	if dist == 0 {
		return 0
	}
	rx := float64(nearest.X-location.X) / dist
	// Guard acos against rounding just outside [-1, 1].
	if rx > 1 {
		rx = 1
	} else if rx < -1 {
		rx = -1
	}
	if location.Y < nearest.Y {
		return math.Acos(rx) - math.Pi/2
	}
	return -math.Acos(rx) - math.Pi/2
}
