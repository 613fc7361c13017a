package field

import (
	"math"
	"testing"
)

// rotated180 returns the mask value at the point-reflected position through
// the grid center. The [-3,3] sampling is symmetric, so index reflection
// corresponds to negating both coordinates.
func rotated180(m *Mask, c, r int) bool {
	nx, ny := m.Dims()
	return m.At(nx-1-c, ny-1-r)
}

func TestMaskRotationalSymmetry(t *testing.T) {
	g := Generate(101, 101, PatternStress)

	for _, shape := range []Shape{ShapeCircle, ShapeRing, ShapeGear} {
		m := ShapeMask(g, shape, 0, 0, ShapeParams{})

		nx, ny := m.Dims()
		for r := 0; r < ny; r++ {
			for c := 0; c < nx; c++ {
				if m.At(c, r) != rotated180(m, c, r) {
					t.Fatalf("%s mask not symmetric under 180 deg rotation at (%d,%d)", shape, c, r)
				}
			}
		}
	}
}

func TestRectangleReflectionSymmetry(t *testing.T) {
	g := Generate(101, 101, PatternStress)
	m := ShapeMask(g, ShapeRectangle, 0, 0, ShapeParams{})

	nx, ny := m.Dims()
	for r := 0; r < ny; r++ {
		for c := 0; c < nx; c++ {
			if m.At(c, r) != m.At(nx-1-c, r) {
				t.Fatalf("rectangle mask not symmetric under x reflection at (%d,%d)", c, r)
			}
			if m.At(c, r) != m.At(c, ny-1-r) {
				t.Fatalf("rectangle mask not symmetric under y reflection at (%d,%d)", c, r)
			}
		}
	}
}

func TestUnknownShapeIsAllTrue(t *testing.T) {
	g := Generate(30, 30, PatternPeaks)
	m := ShapeMask(g, Shape("hexagon"), 0, 0, ShapeParams{})

	if nx, ny := m.Dims(); m.Count() != nx*ny {
		t.Errorf("Unknown shape should produce an all-true mask, got %d of %d", m.Count(), nx*ny)
	}
}

func TestMaskOffsetTranslates(t *testing.T) {
	g := Generate(121, 121, PatternStress)
	centered := ShapeMask(g, ShapeCircle, 0, 0, ShapeParams{Radius: 0.97})
	shifted := ShapeMask(g, ShapeCircle, 1.0, 0, ShapeParams{Radius: 0.97})

	// The grid step is 0.05, so a 1.0 offset is exactly 20 columns.
	nx, ny := centered.Dims()
	for r := 0; r < ny; r++ {
		for c := 20; c < nx; c++ {
			if shifted.At(c, r) != centered.At(c-20, r) {
				t.Fatalf("Shifted mask mismatch at (%d,%d)", c, r)
			}
		}
	}
}

func TestApplyMaskInnerOuterComplement(t *testing.T) {
	g := Generate(80, 80, PatternWaves)
	m := ShapeMask(g, ShapeRing, 0, 0, ShapeParams{})

	inner := ApplyMask(g.Data, m, ModeInner)
	outer := ApplyMask(g.Data, m, ModeOuter)

	rows, cols := inner.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			innerNaN := math.IsNaN(inner.At(r, c))
			outerNaN := math.IsNaN(outer.At(r, c))
			if !innerNaN && !outerNaN {
				t.Fatalf("Point (%d,%d) finite in both inner and outer output", c, r)
			}
			if innerNaN && outerNaN {
				t.Fatalf("Point (%d,%d) blanked in both inner and outer output", c, r)
			}
		}
	}
}

func TestApplyMaskDoesNotMutateInput(t *testing.T) {
	g := Generate(40, 40, PatternPeaks)
	m := ShapeMask(g, ShapeCircle, 0, 0, ShapeParams{})

	before := g.Z(0, 0)
	_ = ApplyMask(g.Data, m, ModeInner)
	if g.Z(0, 0) != before {
		t.Errorf("ApplyMask mutated its input")
	}
}

func TestApplyMaskUnknownModeIsIdentity(t *testing.T) {
	g := Generate(40, 40, PatternPeaks)
	m := ShapeMask(g, ShapeCircle, 0, 0, ShapeParams{})

	out := ApplyMask(g.Data, m, Mode("other"))
	rows, cols := out.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if out.At(r, c) != g.Data.At(r, c) {
				t.Fatalf("Unknown mode should leave values unchanged at (%d,%d)", c, r)
			}
		}
	}
}

func TestStressCircleInnerEndToEnd(t *testing.T) {
	g := Generate(150, 150, PatternStress)
	m := ShapeMask(g, ShapeCircle, 0, 0, ShapeParams{Radius: 2.0})
	masked := ApplyMask(g.Data, m, ModeInner)

	c, r := g.Dims()
	for iy := 0; iy < r; iy++ {
		for ix := 0; ix < c; ix++ {
			x, y := g.X(ix), g.Y(iy)
			insideCircle := x*x+y*y <= 4.0
			finite := !math.IsNaN(masked.At(iy, ix))
			if insideCircle != finite {
				t.Fatalf("Point (%v,%v): inside=%v finite=%v", x, y, insideCircle, finite)
			}
		}
	}
}
