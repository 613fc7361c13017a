package field

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Shape names the parametric inclusion region used for CAE-style masking.
type Shape string

const (
	ShapeCircle    Shape = "circle"
	ShapeRectangle Shape = "rectangle"
	ShapeRing      Shape = "ring"
	ShapeBracket   Shape = "bracket"
	ShapeGear      Shape = "gear"
)

// Shapes lists the named mask shapes.
func Shapes() []Shape {
	return []Shape{ShapeCircle, ShapeRectangle, ShapeRing, ShapeBracket, ShapeGear}
}

// ShapeParams carries the per-shape geometry parameters. Zero values are
// replaced by the shape defaults, so callers can set only what they need.
type ShapeParams struct {
	CenterX float64
	CenterY float64

	Radius      float64 // circle
	Width       float64 // rectangle
	Height      float64 // rectangle
	InnerRadius float64 // ring
	OuterRadius float64 // ring
	Teeth       int     // gear
}

// DefaultShapeParams returns the default geometry for every shape: circle
// radius 2.0, rectangle 4.0 x 3.0, ring radii 1.0-2.5, gear with 8 teeth.
func DefaultShapeParams() ShapeParams {
	return ShapeParams{
		Radius:      2.0,
		Width:       4.0,
		Height:      3.0,
		InnerRadius: 1.0,
		OuterRadius: 2.5,
		Teeth:       8,
	}
}

// withDefaults fills unset parameters from the defaults.
func (p ShapeParams) withDefaults() ShapeParams {
	def := DefaultShapeParams()
	if p.Radius == 0 {
		p.Radius = def.Radius
	}
	if p.Width == 0 {
		p.Width = def.Width
	}
	if p.Height == 0 {
		p.Height = def.Height
	}
	if p.InnerRadius == 0 {
		p.InnerRadius = def.InnerRadius
	}
	if p.OuterRadius == 0 {
		p.OuterRadius = def.OuterRadius
	}
	if p.Teeth == 0 {
		p.Teeth = def.Teeth
	}
	return p
}

// Gear boundary constants. The tooth profile modulates the radius between
// gearInner and gearInner+gearToothDepth; points closer than gearHubRadius
// to the center are excluded.
const (
	gearInner      = 1.5
	gearToothDepth = 0.5
	gearHubRadius  = 0.5
)

// Mask is a boolean inclusion grid with the same dimensions as the field it
// was derived from. True marks a point inside the shape.
type Mask struct {
	nx, ny int
	values []bool
}

// NewMask creates an all-false mask with the given dimensions.
func NewMask(nx, ny int) *Mask {
	return &Mask{nx: nx, ny: ny, values: make([]bool, nx*ny)}
}

// Dims returns the number of columns and rows in the mask.
func (m *Mask) Dims() (c, r int) {
	return m.nx, m.ny
}

// At reports inclusion at the given column and row.
func (m *Mask) At(c, r int) bool {
	return m.values[r*m.nx+c]
}

// Set stores the inclusion flag at the given column and row.
func (m *Mask) Set(c, r int, v bool) {
	m.values[r*m.nx+c] = v
}

// Count returns the number of included points.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.values {
		if v {
			n++
		}
	}
	return n
}

// ShapeMask tests every grid point for inclusion in the named shape, after
// translating the grid by the given offset. An unrecognized shape yields an
// all-true mask (no masking) rather than an error; the fallback is silent by
// design.
func ShapeMask(g *Grid, shape Shape, offsetX, offsetY float64, params ShapeParams) *Mask {
	nx, ny := g.Dims()
	m := NewMask(nx, ny)
	inside := shapeTest(shape, params.withDefaults())

	for iy := 0; iy < ny; iy++ {
		y := g.YCoords[iy] - offsetY
		for ix := 0; ix < nx; ix++ {
			x := g.XCoords[ix] - offsetX
			m.Set(ix, iy, inside(x, y))
		}
	}
	return m
}

// shapeTest returns the point-inclusion predicate for a shape.
func shapeTest(shape Shape, p ShapeParams) func(x, y float64) bool {
	switch shape {
	case ShapeCircle:
		r2 := p.Radius * p.Radius
		return func(x, y float64) bool {
			dx := x - p.CenterX
			dy := y - p.CenterY
			return dx*dx+dy*dy <= r2
		}
	case ShapeRectangle:
		hw, hh := p.Width/2, p.Height/2
		return func(x, y float64) bool {
			return math.Abs(x-p.CenterX) <= hw && math.Abs(y-p.CenterY) <= hh
		}
	case ShapeRing:
		return func(x, y float64) bool {
			r := math.Hypot(x, y)
			return r >= p.InnerRadius && r <= p.OuterRadius
		}
	case ShapeBracket:
		// L-shaped bracket: a horizontal strip along the bottom joined with
		// a vertical strip along the left.
		return func(x, y float64) bool {
			horizontal := math.Abs(x) <= 2.5 && y >= -2.5 && y <= -1.0
			vertical := x >= -2.5 && x <= -1.0 && math.Abs(y) <= 2.5
			return horizontal || vertical
		}
	case ShapeGear:
		n := float64(p.Teeth)
		return func(x, y float64) bool {
			r := math.Hypot(x, y)
			theta := math.Atan2(y, x)
			modulated := gearInner + gearToothDepth*(1+math.Sin(n*theta))/2
			return r >= gearHubRadius && r <= modulated
		}
	default:
		return func(x, y float64) bool { return true }
	}
}

// Mode selects how ApplyMask rewrites values to NaN.
type Mode string

const (
	// ModeStandard leaves the field untouched.
	ModeStandard Mode = "standard"
	// ModeInner keeps values inside the mask; everything else becomes NaN.
	ModeInner Mode = "cae_inner"
	// ModeOuter keeps values outside the mask; the shape itself becomes NaN.
	ModeOuter Mode = "cae_outer"
)

// Modes lists the contour mask modes.
func Modes() []Mode {
	return []Mode{ModeStandard, ModeInner, ModeOuter}
}

// ApplyMask returns a copy of z with masked positions rewritten to NaN.
// ModeInner blanks points outside the mask, ModeOuter blanks points inside
// it, and any other mode returns the copy unchanged. The input is never
// modified.
func ApplyMask(z *mat.Dense, m *Mask, mode Mode) *mat.Dense {
	out := mat.DenseCopyOf(z)
	if m == nil {
		return out
	}

	rows, cols := out.Dims()
	nx, ny := m.Dims()
	if cols != nx || rows != ny {
		return out
	}

	nan := math.NaN()
	switch mode {
	case ModeInner:
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if !m.At(c, r) {
					out.Set(r, c, nan)
				}
			}
		}
	case ModeOuter:
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if m.At(c, r) {
					out.Set(r, c, nan)
				}
			}
		}
	}
	return out
}
