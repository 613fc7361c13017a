// Command genbatch renders the full cross product of colormaps, colorbar
// placements, and contour types for a synthetic field.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"contour-tools/internal/batch"
	"contour-tools/internal/field"
	"contour-tools/internal/render"
)

func main() {
	configPath := flag.String("config", "genbatch.yaml", "YAML configuration file")
	outDir := flag.String("out", "", "Output directory (overrides config)")
	colormaps := flag.String("colormaps", "", "Colormap selector (overrides config)")
	positions := flag.String("positions", "", "Position selector (overrides config)")
	orientations := flag.String("orientations", "", "Orientation selector (overrides config)")
	contourTypes := flag.String("contour-types", "", "Contour type selector (overrides config)")
	writeConfig := flag.Bool("write-config", false, "Write the default config to -config and exit")
	flag.Parse()

	if *writeConfig {
		if err := render.SaveConfig(render.DefaultConfig(), *configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *configPath)
		return
	}

	cfg, err := render.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *colormaps != "" {
		cfg.Batch.Colormaps = *colormaps
	}
	if *positions != "" {
		cfg.Batch.Positions = *positions
	}
	if *orientations != "" {
		cfg.Batch.Orientations = *orientations
	}
	if *contourTypes != "" {
		cfg.Batch.ContourTypes = *contourTypes
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	// One field and one mask shared by every job.
	g := field.Generate(cfg.Grid.NX, cfg.Grid.NY, field.Pattern(cfg.Grid.Pattern))
	offsetX, offsetY := field.RandomOffset(cfg.Mask.MaxOffset, cfg.Mask.Seed)
	mask := field.ShapeMask(g, field.Shape(cfg.Mask.Shape), offsetX, offsetY, field.ShapeParams{})

	jobs := batch.Jobs(batch.Axes{
		Colormaps:    cfg.Batch.Colormaps,
		Positions:    cfg.Batch.Positions,
		Orientations: cfg.Batch.Orientations,
		Modes:        cfg.Batch.ContourTypes,
	})
	fmt.Printf("Rendering %d images to %s\n", len(jobs), cfg.Output.Dir)

	summary := batch.Run(jobs, func(j batch.Job) error {
		z := field.ApplyMask(g.Data, mask, j.Mode)

		opts := render.DefaultOptions()
		opts.Colormap = j.Colormap
		opts.Position = j.Position
		opts.Orientation = j.Orientation
		opts.Levels = cfg.Output.Levels

		path := filepath.Join(cfg.Output.Dir, j.Filename("png"))
		return render.RenderFile(g.WithData(z), opts, path)
	})

	fmt.Printf("Done: %d rendered, %d failed\n", summary.Processed, summary.Failed)
	if summary.Failed > 0 {
		os.Exit(1)
	}
}
