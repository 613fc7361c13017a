package colorbar

import (
	"math/rand"

	"contour-tools/pkg/geometry"
)

// Margins holds the per-side boundary adjustment in pixels. Positive values
// shrink the rectangle inward, negative values grow it outward.
type Margins struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Uniform returns margins with the same value on every side.
func Uniform(n int) Margins {
	return Margins{Top: n, Bottom: n, Left: n, Right: n}
}

// RandomMargins draws four independent margins in [0, max] from the caller's
// source, used to jitter crops when building training sets.
func RandomMargins(rng *rand.Rand, max int) Margins {
	if max <= 0 {
		return Margins{}
	}
	return Margins{
		Top:    rng.Intn(max + 1),
		Bottom: rng.Intn(max + 1),
		Left:   rng.Intn(max + 1),
		Right:  rng.Intn(max + 1),
	}
}

// Refine applies the margins to the detected rectangle and clamps the result
// into bounds. The returned rectangle always lies fully inside bounds and is
// at least 1x1, even when the margins would collapse or invert it.
func Refine(rect geometry.RectInt, m Margins, bounds geometry.RectInt) geometry.RectInt {
	if bounds.Width < 1 || bounds.Height < 1 {
		return geometry.RectInt{}
	}

	maxX := bounds.X + bounds.Width
	maxY := bounds.Y + bounds.Height

	x1 := geometry.Clamp(rect.X+m.Left, bounds.X, maxX-1)
	y1 := geometry.Clamp(rect.Y+m.Top, bounds.Y, maxY-1)
	x2 := geometry.Clamp(rect.X+rect.Width-m.Right, bounds.X, maxX)
	y2 := geometry.Clamp(rect.Y+rect.Height-m.Bottom, bounds.Y, maxY)

	// Contradictory margins collapse to a 1px span.
	if x2 <= x1 {
		x2 = x1 + 1
	}
	if y2 <= y1 {
		y2 = y1 + 1
	}

	return geometry.RectInt{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}
