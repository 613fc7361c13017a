package render

import (
	"fmt"
	"image"
	"math"
	"os"

	"contour-tools/internal/field"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Position places the colorbar strip relative to the main plot.
type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
	PositionLeft   Position = "left"
	PositionRight  Position = "right"
)

// Positions lists the colorbar placements.
func Positions() []Position {
	return []Position{PositionTop, PositionBottom, PositionLeft, PositionRight}
}

// Orientation sets the direction of the colorbar gradient.
type Orientation string

const (
	OrientationHorizontal Orientation = "horizontal"
	OrientationVertical   Orientation = "vertical"
)

// Orientations lists the colorbar orientations.
func Orientations() []Orientation {
	return []Orientation{OrientationHorizontal, OrientationVertical}
}

// Options configures a single rendered plot.
type Options struct {
	Colormap    string
	Position    Position
	Orientation Orientation
	Levels      int // contour line count, 0 disables the overlay
	Title       string

	// Canvas size. Zero values fall back to 8x6 inches.
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns the options used by the sample generators.
func DefaultOptions() Options {
	return Options{
		Colormap:    DefaultColormap,
		Position:    PositionRight,
		Orientation: OrientationVertical,
		Levels:      10,
	}
}

// barThickness is the width of the colorbar strip on the canvas.
const barThickness = 0.8 * vg.Inch

// Render draws the grid as a heat map with an attached colorbar and returns
// the composed image. NaN cells are left blank, which is how masked CAE
// contours show the excluded region.
func Render(g *field.Grid, opts Options) (image.Image, error) {
	canvas, err := renderCanvas(g, opts)
	if err != nil {
		return nil, err
	}
	return canvas.Image(), nil
}

// RenderFile renders the grid and writes a PNG to path.
func RenderFile(g *field.Grid, opts Options, path string) error {
	canvas, err := renderCanvas(g, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func renderCanvas(g *field.Grid, opts Options) (*vgimg.Canvas, error) {
	if g == nil {
		return nil, fmt.Errorf("render: nil grid")
	}

	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = 8 * vg.Inch
	}
	if height <= 0 {
		height = 6 * vg.Inch
	}

	zmin, zmax := dataRange(g)
	if zmax <= zmin {
		zmax = zmin + 1
	}

	// The clamp keeps endpoint rounding inside [zmin, zmax]; the plotters
	// sample the exact endpoints when rasterizing.
	cm := clamped(Colormap(opts.Colormap))
	cm.SetMin(zmin)
	cm.SetMax(zmax)

	main := mainPlot(g, opts, cm, zmin, zmax)
	bar := barPlot(cm, opts.Orientation == OrientationVertical)

	canvas := vgimg.New(width, height)
	dc := draw.New(canvas)

	mainArea, barArea := splitCanvas(dc, opts.Position)
	main.Draw(mainArea)
	bar.Draw(barArea)

	return canvas, nil
}

// mainPlot builds the heat map plot with optional contour line overlay.
func mainPlot(g *field.Grid, opts Options, cm palette.ColorMap, zmin, zmax float64) *plot.Plot {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	heat := plotter.NewHeatMap(g, cm.Palette(255))
	heat.Min = zmin
	heat.Max = zmax
	p.Add(heat)

	if opts.Levels > 0 {
		cg := contourGrid(g, zmin)
		contour := plotter.NewContour(cg, contourLevels(zmin, zmax, opts.Levels), cm.Palette(opts.Levels))
		p.Add(contour)
	}

	return p
}

// contourGrid substitutes the range minimum for masked cells. The contour
// tracer has no notion of missing data; pinned cells sit below every level,
// so no lines are traced inside the masked region.
func contourGrid(g *field.Grid, zmin float64) *field.Grid {
	c, r := g.Dims()

	hasNaN := false
	for iy := 0; iy < r && !hasNaN; iy++ {
		for ix := 0; ix < c; ix++ {
			if math.IsNaN(g.Z(ix, iy)) {
				hasNaN = true
				break
			}
		}
	}
	if !hasNaN {
		return g
	}

	z := mat.DenseCopyOf(g.Data)
	for iy := 0; iy < r; iy++ {
		for ix := 0; ix < c; ix++ {
			if math.IsNaN(z.At(iy, ix)) {
				z.Set(iy, ix, zmin)
			}
		}
	}
	return g.WithData(z)
}

// barPlot builds the colorbar legend plot.
func barPlot(cm palette.ColorMap, vertical bool) *plot.Plot {
	p := plot.New()
	bar := &plotter.ColorBar{ColorMap: cm}
	bar.Vertical = vertical
	p.Add(bar)

	if vertical {
		p.HideX()
	} else {
		p.HideY()
	}
	return p
}

// splitCanvas divides the drawing area into the main plot region and the
// colorbar strip according to the requested position.
func splitCanvas(dc draw.Canvas, pos Position) (main, bar draw.Canvas) {
	min := dc.Rectangle.Min
	max := dc.Rectangle.Max

	sub := func(x0, y0, x1, y1 vg.Length) draw.Canvas {
		return draw.Canvas{
			Canvas: dc.Canvas,
			Rectangle: vg.Rectangle{
				Min: vg.Point{X: x0, Y: y0},
				Max: vg.Point{X: x1, Y: y1},
			},
		}
	}

	switch pos {
	case PositionTop:
		main = sub(min.X, min.Y, max.X, max.Y-barThickness)
		bar = sub(min.X, max.Y-barThickness, max.X, max.Y)
	case PositionBottom:
		main = sub(min.X, min.Y+barThickness, max.X, max.Y)
		bar = sub(min.X, min.Y, max.X, min.Y+barThickness)
	case PositionLeft:
		main = sub(min.X+barThickness, min.Y, max.X, max.Y)
		bar = sub(min.X, min.Y, min.X+barThickness, max.Y)
	default: // right
		main = sub(min.X, min.Y, max.X-barThickness, max.Y)
		bar = sub(max.X-barThickness, min.Y, max.X, max.Y)
	}
	return main, bar
}

// contourLevels returns n evenly spaced levels strictly inside [zmin, zmax].
func contourLevels(zmin, zmax float64, n int) []float64 {
	levels := make([]float64, n)
	step := (zmax - zmin) / float64(n+1)
	for i := range levels {
		levels[i] = zmin + step*float64(i+1)
	}
	return levels
}

// dataRange scans the grid for its finite value range. NaN cells (masked
// points) are skipped.
func dataRange(g *field.Grid) (zmin, zmax float64) {
	zmin = math.Inf(1)
	zmax = math.Inf(-1)

	c, r := g.Dims()
	for iy := 0; iy < r; iy++ {
		for ix := 0; ix < c; ix++ {
			v := g.Z(ix, iy)
			if math.IsNaN(v) {
				continue
			}
			if v < zmin {
				zmin = v
			}
			if v > zmax {
				zmax = v
			}
		}
	}

	if math.IsInf(zmin, 1) {
		return 0, 0
	}
	return zmin, zmax
}
