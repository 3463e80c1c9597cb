// Package config holds generation parameters. Defaults are embedded in code;
// a YAML file can override any subset of them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Generation is the full parameter set for one island.
type Generation struct {
	Seed int64 `yaml:"seed"`

	Shape      Shape      `yaml:"shape"`
	Elevation  Elevation  `yaml:"elevation"`
	Settlement Settlement `yaml:"settlement"`
	Structures Structures `yaml:"structures"`
	Castaway   Castaway   `yaml:"castaway"`
	Chances    Chances    `yaml:"chances"`
}

// Shape controls the border polygon.
type Shape struct {
	RadiusX float64 `yaml:"radius_x"` // island half-extent along x
	RadiusY float64 `yaml:"radius_y"` // island half-extent along y

	// Displacement weights for the two noise octaves. The coarse pass
	// establishes gross irregularity, the fine pass adds roughness; a ratio
	// around 8-10x separates peninsula-like outlines from blob-like ones.
	CoarseWeight float64 `yaml:"coarse_weight"`
	FineWeight   float64 `yaml:"fine_weight"`

	StepDegrees float64 `yaml:"step_degrees"` // angular step of the border walk
}

// Elevation controls the interior elevation field.
type Elevation struct {
	Frequency float64 `yaml:"frequency"` // terrain noise frequency
	Workers   int     `yaml:"workers"`   // parallel distance workers, <=1 disables
}

// Settlement controls the flat-site search.
type Settlement struct {
	NeighborhoodSize int     `yaml:"neighborhood_size"` // square sample window edge
	SteepnessLimit   float64 `yaml:"steepness_limit"`   // max elevation stddev
	MaxAttempts      int     `yaml:"max_attempts"`
	MinNeighborhood  int     `yaml:"min_neighborhood"` // min defined points in window
}

// Structures controls house and shrine placement around the settlement.
type Structures struct {
	MinHouses        int     `yaml:"min_houses"`
	MaxHouses        int     `yaml:"max_houses"`
	HouseMinDistance float64 `yaml:"house_min_distance"`
	HouseMaxDistance float64 `yaml:"house_max_distance"`
	HouseRadius      float64 `yaml:"house_radius"`

	PrimaryMinSides int     `yaml:"primary_min_sides"`
	PrimaryMaxSides int     `yaml:"primary_max_sides"`
	PrimaryRadius   float64 `yaml:"primary_radius"`

	MaxSatellites     int     `yaml:"max_satellites"`
	SatelliteDistance float64 `yaml:"satellite_distance"`
	SatelliteRadius   float64 `yaml:"satellite_radius"`
}

// Castaway controls the distress marker placement.
type Castaway struct {
	BandLow               float64 `yaml:"band_low"`  // exclusive lower elevation bound
	BandHigh              float64 `yaml:"band_high"` // inclusive upper elevation bound
	MinSettlementDistance float64 `yaml:"min_settlement_distance"`
}

// Chances are per-stage inclusion probabilities in [0, 1].
type Chances struct {
	Settlement float64 `yaml:"settlement"`
	Shrine     float64 `yaml:"shrine"` // conditioned on the settlement stage running
	Castaway   float64 `yaml:"castaway"`
}

// Default returns the reference parameter set.
func Default() Generation {
	return Generation{
		Seed: 1,
		Shape: Shape{
			RadiusX:      160,
			RadiusY:      140,
			CoarseWeight: 80,
			FineWeight:   10,
			StepDegrees:  1,
		},
		Elevation: Elevation{
			Frequency: 0.01,
			Workers:   4,
		},
		Settlement: Settlement{
			NeighborhoodSize: 20,
			SteepnessLimit:   0.02,
			MaxAttempts:      1000,
			MinNeighborhood:  9,
		},
		Structures: Structures{
			MinHouses:         1,
			MaxHouses:         5,
			HouseMinDistance:  19,
			HouseMaxDistance:  22,
			HouseRadius:       5,
			PrimaryMinSides:   3,
			PrimaryMaxSides:   6,
			PrimaryRadius:     8,
			MaxSatellites:     3,
			SatelliteDistance: 12,
			SatelliteRadius:   4,
		},
		Castaway: Castaway{
			BandLow:               0.1,
			BandHigh:              0.2,
			MinSettlementDistance: 120,
		},
		Chances: Chances{
			Settlement: 0.5,
			Shrine:     0.5,
			Castaway:   0.5,
		},
	}
}

// Load reads a YAML file over the defaults. Missing keys keep their
// default values.
func Load(path string) (Generation, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
