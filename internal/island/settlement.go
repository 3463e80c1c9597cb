package island

import (
	"errors"
	"math"
	"math/rand"

	"islandgen/internal/config"
)

// ErrNoSettlementSite is returned when the bounded flat-site search
// exhausts its attempt budget without an acceptable anchor and no fallback
// candidate was seen. Callers recover by retrying with a new seed or
// building the island without a settlement.
var ErrNoSettlementSite = errors.New("no suitable settlement site")

// LocateSettlement searches the elevation field for an interior point whose
// surrounding neighborhood is flat enough to host a settlement. Flatness is
// the standard deviation of the defined elevations inside a square window
// centered on the candidate; acceptance also requires a minimum number of
// defined samples so a degenerate interior cannot pass on a trivial window.
//
// The search is bounded: after cfg.MaxAttempts random candidates it falls
// back to the flattest adequately-sampled candidate seen, or fails with
// ErrNoSettlementSite when there was none.
func LocateSettlement(rng *rand.Rand, hm *HeightMap, cfg config.Settlement) (Point, error) {
	points := hm.Points()
	if len(points) == 0 {
		return Point{}, ErrNoSettlementSite
	}

	best := Point{}
	bestSteepness := math.MaxFloat64
	found := false

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		candidate := points[rng.Intn(len(points))]
		steepness, samples := NeighborhoodSteepness(hm, candidate, cfg.NeighborhoodSize)
		if samples < cfg.MinNeighborhood {
			continue
		}
		if steepness <= cfg.SteepnessLimit {
			return candidate, nil
		}
		if steepness < bestSteepness {
			best = candidate
			bestSteepness = steepness
			found = true
		}
	}

	if found {
		return best, nil
	}
	return Point{}, ErrNoSettlementSite
}

// NeighborhoodSteepness returns the population standard deviation of the
// defined elevations within a size x size square window centered on p,
// together with the number of defined samples.
func NeighborhoodSteepness(hm *HeightMap, p Point, size int) (float64, int) {
	half := size / 2
	var sum float64
	var values []float64
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			if v, ok := hm.At(Point{X: p.X + dx, Y: p.Y + dy}); ok {
				values = append(values, v)
				sum += v
			}
		}
	}
	if len(values) == 0 {
		return 0, 0
	}
	mean := sum / float64(len(values))
	var variance float64
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return math.Sqrt(variance), len(values)
}
