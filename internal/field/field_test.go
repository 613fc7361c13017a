package field

import (
	"math"
	"testing"
)

func TestGenerateDims(t *testing.T) {
	g := Generate(120, 80, PatternPeaks)

	c, r := g.Dims()
	if c != 120 || r != 80 {
		t.Fatalf("Expected 120x80 grid, got %dx%d", c, r)
	}

	if g.X(0) != DomainMin || g.X(c-1) != DomainMax {
		t.Errorf("X coordinates should span [%v,%v], got [%v,%v]",
			DomainMin, DomainMax, g.X(0), g.X(c-1))
	}
	if g.Y(0) != DomainMin || g.Y(r-1) != DomainMax {
		t.Errorf("Y coordinates should span [%v,%v], got [%v,%v]",
			DomainMin, DomainMax, g.Y(0), g.Y(r-1))
	}
}

func TestGenerateEvenSpacing(t *testing.T) {
	g := Generate(61, 61, PatternWaves)

	step := g.X(1) - g.X(0)
	for i := 2; i < len(g.XCoords); i++ {
		d := g.X(i) - g.X(i-1)
		if math.Abs(d-step) > 1e-12 {
			t.Fatalf("Uneven x spacing at %d: %v vs %v", i, d, step)
		}
	}
}

func TestGradientPattern(t *testing.T) {
	g := Generate(50, 50, PatternGradient)

	c, r := g.Dims()
	for iy := 0; iy < r; iy++ {
		for ix := 0; ix < c; ix++ {
			want := g.X(ix) + g.Y(iy)
			if got := g.Z(ix, iy); math.Abs(got-want) > 1e-12 {
				t.Fatalf("gradient value at (%d,%d) = %v, want %v", ix, iy, got, want)
			}
		}
	}
}

func TestUnknownPatternFallsBack(t *testing.T) {
	g := Generate(40, 40, Pattern("nope"))

	// The default formula is x*exp(-x^2-y^2).
	c, r := g.Dims()
	for iy := 0; iy < r; iy += 7 {
		for ix := 0; ix < c; ix += 7 {
			x, y := g.X(ix), g.Y(iy)
			want := x * math.Exp(-x*x-y*y)
			if got := g.Z(ix, iy); math.Abs(got-want) > 1e-12 {
				t.Fatalf("fallback value at (%d,%d) = %v, want %v", ix, iy, got, want)
			}
		}
	}
}

func TestGenerateNoNaN(t *testing.T) {
	for _, p := range Patterns() {
		g := Generate(64, 64, p)
		c, r := g.Dims()
		for iy := 0; iy < r; iy++ {
			for ix := 0; ix < c; ix++ {
				if math.IsNaN(g.Z(ix, iy)) {
					t.Fatalf("pattern %q produced NaN at (%d,%d)", p, ix, iy)
				}
			}
		}
	}
}

func TestRandomOffsetReproducible(t *testing.T) {
	x1, y1 := RandomOffset(1.0, 42)
	x2, y2 := RandomOffset(1.0, 42)

	if x1 != x2 || y1 != y2 {
		t.Errorf("Same seed should reproduce offsets: (%v,%v) vs (%v,%v)", x1, y1, x2, y2)
	}

	x3, y3 := RandomOffset(1.0, 43)
	if x1 == x3 && y1 == y3 {
		t.Errorf("Different seeds should give different offsets")
	}
}

func TestRandomOffsetRange(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		dx, dy := RandomOffset(0.75, seed)
		if math.Abs(dx) > 0.75 || math.Abs(dy) > 0.75 {
			t.Fatalf("Offset (%v,%v) outside [-0.75,0.75] for seed %d", dx, dy, seed)
		}
	}
}
