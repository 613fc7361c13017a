// Package field generates synthetic 2-D scalar fields and shape masks for
// sample contour plots.
package field

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Domain bounds for the sampling grid. Both axes span [-3, 3].
const (
	DomainMin = -3.0
	DomainMax = 3.0
)

// Pattern selects the analytic formula used to fill the scalar field.
type Pattern string

const (
	PatternPeaks    Pattern = "peaks"
	PatternWaves    Pattern = "waves"
	PatternGradient Pattern = "gradient"
	PatternStress   Pattern = "stress"
)

// Patterns lists the named field patterns.
func Patterns() []Pattern {
	return []Pattern{PatternPeaks, PatternWaves, PatternGradient, PatternStress}
}

// Grid holds an evenly spaced sampling of the domain and the scalar values
// evaluated over it. X has nx entries, Y has ny entries, and Z is ny rows by
// nx columns. Grid implements gonum/plot's GridXYZ so it can feed a heat map
// directly.
type Grid struct {
	XCoords []float64
	YCoords []float64
	Data    *mat.Dense // ny x nx
}

// Generate builds the coordinate grid over [-3,3] x [-3,3] and evaluates the
// named pattern at every point. An unrecognized pattern falls back silently
// to the default formula x*exp(-x^2-y^2), matching the observed behavior of
// the sample generators.
func Generate(nx, ny int, pattern Pattern) *Grid {
	if nx < 2 {
		nx = 2
	}
	if ny < 2 {
		ny = 2
	}

	g := &Grid{
		XCoords: make([]float64, nx),
		YCoords: make([]float64, ny),
		Data:    mat.NewDense(ny, nx, nil),
	}
	floats.Span(g.XCoords, DomainMin, DomainMax)
	floats.Span(g.YCoords, DomainMin, DomainMax)

	eval := formula(pattern)
	for iy := 0; iy < ny; iy++ {
		y := g.YCoords[iy]
		for ix := 0; ix < nx; ix++ {
			g.Data.Set(iy, ix, eval(g.XCoords[ix], y))
		}
	}
	return g
}

// formula returns the point evaluator for a pattern.
func formula(pattern Pattern) func(x, y float64) float64 {
	switch pattern {
	case PatternPeaks:
		// Similar to MATLAB's peaks function.
		return func(x, y float64) float64 {
			return 3*(1-x)*(1-x)*math.Exp(-x*x-(y+1)*(y+1)) -
				10*(x/5-x*x*x-math.Pow(y, 5))*math.Exp(-x*x-y*y) -
				1.0/3.0*math.Exp(-(x+1)*(x+1)-y*y)
		}
	case PatternWaves:
		return func(x, y float64) float64 {
			r := math.Hypot(x, y)
			return math.Sin(r*2) * math.Exp(-r/3)
		}
	case PatternGradient:
		return func(x, y float64) float64 {
			return x + y
		}
	case PatternStress:
		// Stress-distribution-like pattern used by the CAE samples.
		return func(x, y float64) float64 {
			return math.Sin(x)*math.Cos(y) + 0.5*math.Sin(2*x)*math.Cos(2*y)
		}
	default:
		return func(x, y float64) float64 {
			return x * math.Exp(-x*x-y*y)
		}
	}
}

// Dims returns the number of columns and rows in the grid.
func (g *Grid) Dims() (c, r int) {
	return len(g.XCoords), len(g.YCoords)
}

// Z returns the field value at the given column and row.
func (g *Grid) Z(c, r int) float64 {
	return g.Data.At(r, c)
}

// X returns the x coordinate of the given column.
func (g *Grid) X(c int) float64 {
	return g.XCoords[c]
}

// Y returns the y coordinate of the given row.
func (g *Grid) Y(r int) float64 {
	return g.YCoords[r]
}

// WithData returns a shallow copy of the grid with its values replaced.
// The coordinate vectors are shared.
func (g *Grid) WithData(z *mat.Dense) *Grid {
	return &Grid{XCoords: g.XCoords, YCoords: g.YCoords, Data: z}
}
