package colorbar

import (
	"math/rand"
	"testing"

	"contour-tools/pkg/geometry"
)

func TestRefineNoMargins(t *testing.T) {
	bounds := geometry.NewRectInt(0, 0, 100, 80)
	rect := geometry.NewRectInt(10, 20, 30, 40)

	got := Refine(rect, Margins{}, bounds)
	if got != rect {
		t.Errorf("Zero margins should be identity, got %+v", got)
	}
}

func TestRefineShrink(t *testing.T) {
	bounds := geometry.NewRectInt(0, 0, 100, 80)
	rect := geometry.NewRectInt(10, 20, 30, 40)

	got := Refine(rect, Margins{Top: 2, Bottom: 3, Left: 4, Right: 5}, bounds)
	want := geometry.NewRectInt(14, 22, 21, 35)
	if got != want {
		t.Errorf("Refine shrink = %+v, want %+v", got, want)
	}
}

func TestRefineGrowClampsToBounds(t *testing.T) {
	bounds := geometry.NewRectInt(0, 0, 100, 80)
	rect := geometry.NewRectInt(10, 20, 30, 40)

	got := Refine(rect, Margins{Top: -100, Bottom: -100, Left: -100, Right: -100}, bounds)
	if got != bounds {
		t.Errorf("Over-grow should clamp to bounds, got %+v", got)
	}
}

func TestRefineAlwaysInsideWithPositiveSpan(t *testing.T) {
	bounds := geometry.NewRectInt(0, 0, 64, 48)
	rect := geometry.NewRectInt(5, 5, 50, 30)

	margins := []Margins{
		{Top: 1000, Bottom: 1000, Left: 1000, Right: 1000},
		{Top: -1000, Bottom: 1000, Left: 500, Right: -500},
		{Top: 40, Bottom: 40, Left: 60, Right: 60},
		{Top: -7, Bottom: 13, Left: 29, Right: -3},
	}
	for _, m := range margins {
		got := Refine(rect, m, bounds)
		if got.Width < 1 || got.Height < 1 {
			t.Errorf("Margins %+v collapsed the rectangle: %+v", m, got)
		}
		if !bounds.ContainsRect(got) {
			t.Errorf("Margins %+v escaped the bounds: %+v", m, got)
		}
	}
}

func TestRefineRandomizedProperty(t *testing.T) {
	bounds := geometry.NewRectInt(0, 0, 200, 150)
	rect := geometry.NewRectInt(30, 40, 90, 60)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		m := Margins{
			Top:    rng.Intn(600) - 300,
			Bottom: rng.Intn(600) - 300,
			Left:   rng.Intn(600) - 300,
			Right:  rng.Intn(600) - 300,
		}
		got := Refine(rect, m, bounds)
		if got.Width < 1 || got.Height < 1 || !bounds.ContainsRect(got) {
			t.Fatalf("Margins %+v produced invalid rectangle %+v", m, got)
		}
	}
}

func TestRefineDegenerateBounds(t *testing.T) {
	got := Refine(geometry.NewRectInt(0, 0, 10, 10), Uniform(2), geometry.RectInt{})
	if !got.Empty() {
		t.Errorf("Degenerate bounds should yield an empty rectangle, got %+v", got)
	}
}

func TestRandomMarginsRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		m := RandomMargins(rng, 5)
		for _, v := range []int{m.Top, m.Bottom, m.Left, m.Right} {
			if v < 0 || v > 5 {
				t.Fatalf("Margin %d outside [0,5]", v)
			}
		}
	}
}
