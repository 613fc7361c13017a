// Command gencontour renders a single synthetic contour plot to a PNG file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"contour-tools/internal/field"
	"contour-tools/internal/render"
)

func main() {
	pattern := flag.String("pattern", string(field.PatternStress), "Field pattern: "+joinPatterns())
	shape := flag.String("shape", "", "Mask shape: "+joinShapes()+" (empty = no mask)")
	mode := flag.String("mode", string(field.ModeStandard), "Mask mode: standard, cae_inner, or cae_outer")
	colormap := flag.String("colormap", render.DefaultColormap, "Colormap name")
	position := flag.String("position", string(render.PositionRight), "Colorbar position: top, bottom, left, or right")
	orientation := flag.String("orientation", string(render.OrientationVertical), "Colorbar orientation: horizontal or vertical")
	nx := flag.Int("nx", 100, "Grid columns")
	ny := flag.Int("ny", 100, "Grid rows")
	levels := flag.Int("levels", 10, "Contour levels (0 = heatmap only)")
	maxOffset := flag.Float64("max-offset", 0, "Random shape offset bound (0 = centered)")
	seed := flag.Int64("seed", 1, "Random offset seed")
	title := flag.String("title", "", "Plot title")
	out := flag.String("out", "", "Output PNG path (default: derived from settings)")
	flag.Parse()

	if !render.IsKnownColormap(*colormap) {
		fmt.Fprintf(os.Stderr, "Unknown colormap %q, using %q\n", *colormap, render.DefaultColormap)
		*colormap = render.DefaultColormap
	}

	g := field.Generate(*nx, *ny, field.Pattern(*pattern))

	z := g.Data
	if *shape != "" {
		offsetX, offsetY := field.RandomOffset(*maxOffset, *seed)
		mask := field.ShapeMask(g, field.Shape(*shape), offsetX, offsetY, field.ShapeParams{})
		z = field.ApplyMask(g.Data, mask, field.Mode(*mode))
	}

	opts := render.DefaultOptions()
	opts.Colormap = *colormap
	opts.Position = render.Position(*position)
	opts.Orientation = render.Orientation(*orientation)
	opts.Levels = *levels
	opts.Title = *title

	path := *out
	if path == "" {
		path = render.Filename(*colormap, opts.Position, opts.Orientation, field.Mode(*mode), "png")
	}

	if err := render.RenderFile(g.WithData(z), opts, path); err != nil {
		fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%dx%d grid, pattern %s)\n", path, *nx, *ny, *pattern)
}

func joinPatterns() string {
	names := make([]string, len(field.Patterns()))
	for i, p := range field.Patterns() {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

func joinShapes() string {
	names := make([]string, len(field.Shapes()))
	for i, s := range field.Shapes() {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
