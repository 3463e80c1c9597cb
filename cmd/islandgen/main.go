package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"math/rand"
	"os"

	"islandgen/internal/config"
	"islandgen/internal/island"
	"islandgen/internal/profiling"
	"islandgen/internal/render"
	"islandgen/pkg/islandfile"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (defaults used when empty)")
		seed       = flag.Int64("seed", 0, "override the config seed (0 keeps it)")
		outPath    = flag.String("out", "island.png", "output PNG path")
		jsonPath   = flag.String("json", "", "also export the island record as JSON")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*configPath, *seed, *outPath, *jsonPath, log); err != nil {
		log.Error("generation failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64, outPath, jsonPath string, log *slog.Logger) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	log.Info("generating island", "seed", cfg.Seed)

	profiling.Reset()
	rng := rand.New(rand.NewSource(cfg.Seed))
	isle, err := island.NewBuilder(cfg, rng, log).Build()
	if err != nil {
		return err
	}
	profiling.Report(log)

	img := render.Render(isle, render.DefaultOptions())
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	log.Info("wrote map", "path", outPath, "size", img.Bounds().Max)

	if jsonPath != "" {
		if err := islandfile.Save(jsonPath, isle); err != nil {
			return err
		}
		log.Info("wrote record", "path", jsonPath)
	}
	return nil
}
