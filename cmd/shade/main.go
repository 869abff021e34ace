package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"g3vec/internal/batch"
	"g3vec/internal/config"
	"g3vec/internal/mathutil"
	"g3vec/internal/shade"
	"g3vec/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	inputDir := flag.String("input", "", "Directory of normal maps (default: .)")
	outputDir := flag.String("output", "", "Output directory (default: <input>/shaded)")
	size := flag.Int("size", 0, "Longest side of the output images (default: 256)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	azimuth := flag.Float64("azimuth", 0, "Key light azimuth in degrees")
	elevation := flag.Float64("elevation", 0, "Key light elevation in degrees (default: 45)")
	strength := flag.Float64("strength", 0, "Normal strength, 0 = flat, 1 = as authored (default: 1)")
	testN := flag.Int("test", 0, "Shade only the first N maps")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	flags := config.Flags{
		InputDir:   *inputDir,
		OutputDir:  *outputDir,
		OutputSize: *size,
		Workers:    *workers,
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "azimuth":
			flags.Azimuth = azimuth
		case "elevation":
			flags.Elevation = elevation
		case "strength":
			flags.Strength = strength
		}
	})
	cfg.Resolve(flags)

	// Collect inputs
	idx := texture.BuildIndex(cfg.InputDir)
	var jobs []batch.Job
	for _, stem := range idx.Stems() {
		path, _ := idx.ResolvePath(stem)
		jobs = append(jobs, batch.Job{Name: stem, Path: path})
	}

	// Limit for testing
	if *testN > 0 && *testN < len(jobs) {
		jobs = jobs[:*testN]
	}

	if len(jobs) == 0 {
		fmt.Println("No normal maps to shade.")
		os.Exit(0)
	}

	light := shade.DefaultLightConfig(cfg.Azimuth, *cfg.Elevation)
	light.SlopeDeg = *cfg.SlopeDeg
	light.Exposure = cfg.Exposure

	// Print summary
	fmt.Printf("Normal map shader → WebP\n")
	fmt.Printf("Maps: %d, Workers: %d\n", len(jobs), cfg.Workers)
	fmt.Printf("Light: %s (az %.1f°, el %.1f°)\n", light.LightDir.FormatWith("%.3f"), cfg.Azimuth, *cfg.Elevation)
	fmt.Printf("Light vs view: %.1f°\n", mathutil.AngleD(light.LightDir, light.ViewDir))
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:  cfg.OutputDir,
		Light:      light,
		OutputSize: cfg.OutputSize,
		Strength:   float32(*cfg.Strength),
		Workers:    cfg.Workers,
	}, jobs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
			if r.Degenerate > 0 {
				fmt.Printf("  %s: %d degenerate texels\n", r.Name, r.Degenerate)
			}
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Shaded: %d/%d\n", success, len(jobs))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else if err := batch.WriteManifest(manifestPath, jobs, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
