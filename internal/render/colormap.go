// Package render produces sample contour plot images from scalar field grids.
package render

import (
	"errors"
	"image/color"
	"sort"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// DefaultColormap is substituted for unrecognized colormap names. The
// substitution is silent: callers that care should check Names() first.
const DefaultColormap = "coolwarm"

// colormapBuilders maps colormap names to constructors. Perceptual maps come
// from moreland (the diverging constructors return palette.DivergingColorMap
// and need a narrowing wrapper); the classic heat/rainbow families are
// discrete palettes wrapped into a ColorMap.
var colormapBuilders = map[string]func() palette.ColorMap{
	"coolwarm": func() palette.ColorMap {
		return moreland.SmoothBlueRed()
	},
	"bluetan": func() palette.ColorMap {
		return moreland.SmoothBlueTan()
	},
	"greenpurple": func() palette.ColorMap {
		return moreland.SmoothGreenPurple()
	},
	"purpleorange": func() palette.ColorMap {
		return moreland.SmoothPurpleOrange()
	},
	"greenred": func() palette.ColorMap {
		return moreland.SmoothGreenRed()
	},
	"kindlmann": moreland.Kindlmann,
	"viridis":   moreland.ExtendedKindlmann,
	"blackbody": moreland.BlackBody,
	"inferno":   moreland.ExtendedBlackBody,
	"hot": func() palette.ColorMap {
		return FromPalette(palette.Heat(255, 1))
	},
	"jet": func() palette.ColorMap {
		return FromPalette(palette.Rainbow(255, palette.Blue, palette.Red, 1, 1, 1))
	},
	"rainbow": func() palette.ColorMap {
		return FromPalette(palette.Rainbow(255, palette.Red, palette.Magenta, 1, 1, 1))
	},
	"gray": func() palette.ColorMap {
		return FromPalette(grayPalette(255))
	},
}

// Colormap returns the color map registered under name. Unknown names fall
// back to DefaultColormap.
func Colormap(name string) palette.ColorMap {
	if build, ok := colormapBuilders[name]; ok {
		return build()
	}
	return colormapBuilders[DefaultColormap]()
}

// IsKnownColormap reports whether name is registered.
func IsKnownColormap(name string) bool {
	_, ok := colormapBuilders[name]
	return ok
}

// Names returns all registered colormap names, sorted.
func Names() []string {
	names := make([]string, 0, len(colormapBuilders))
	for name := range colormapBuilders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Representative returns a small cross-section of the registry covering the
// perceptual, diverging, and classic families.
func Representative() []string {
	return []string{
		"viridis",
		"jet",
		"hot",
		"coolwarm",
		"rainbow",
		"kindlmann",
		"blackbody",
		"gray",
	}
}

var (
	errEmptyPalette = errors.New("render: empty palette")
	errNaNValue     = errors.New("render: NaN interpolation value")
	errRangeValue   = errors.New("render: interpolation value out of range")
)

// paletteMap adapts a discrete palette.Palette to the palette.ColorMap
// interface so it can drive both heat maps and color bars.
type paletteMap struct {
	colors   []color.Color
	min, max float64
	alpha    float64
}

// FromPalette wraps a discrete palette into a ColorMap. The map's range is
// unset until SetMin/SetMax are called.
func FromPalette(p palette.Palette) palette.ColorMap {
	return &paletteMap{colors: p.Colors(), alpha: 1}
}

func (m *paletteMap) At(v float64) (color.Color, error) {
	if len(m.colors) == 0 {
		return nil, errEmptyPalette
	}
	if v != v {
		return nil, errNaNValue
	}
	if v < m.min || v > m.max || m.max <= m.min {
		return nil, errRangeValue
	}
	frac := (v - m.min) / (m.max - m.min)
	idx := int(frac * float64(len(m.colors)))
	if idx >= len(m.colors) {
		idx = len(m.colors) - 1
	}
	c := m.colors[idx]
	if m.alpha == 1 {
		return c, nil
	}
	r, g, b, _ := c.RGBA()
	return color.NRGBA64{
		R: uint16(r),
		G: uint16(g),
		B: uint16(b),
		A: uint16(m.alpha * 0xffff),
	}, nil
}

func (m *paletteMap) Min() float64     { return m.min }
func (m *paletteMap) SetMin(v float64) { m.min = v }
func (m *paletteMap) Max() float64     { return m.max }
func (m *paletteMap) SetMax(v float64) { m.max = v }

func (m *paletteMap) Alpha() float64 { return m.alpha }

func (m *paletteMap) SetAlpha(a float64) {
	if a < 0 || a > 1 {
		panic("render: alpha out of [0,1]")
	}
	m.alpha = a
}

// Palette resamples the wrapped colors to the requested count.
func (m *paletteMap) Palette(colors int) palette.Palette {
	if colors <= 0 || len(m.colors) == 0 {
		return slicePalette(nil)
	}
	out := make([]color.Color, colors)
	for i := range out {
		idx := i * len(m.colors) / colors
		out[i] = m.colors[idx]
	}
	return slicePalette(out)
}

// slicePalette is a palette.Palette backed by a color slice.
type slicePalette []color.Color

func (p slicePalette) Colors() []color.Color { return p }

// clampedMap bounds At lookups to the wrapped map's range and samples
// Palette colors at cell midpoints. Heat map and color bar rasterization
// evaluate the exact range endpoints, and floating-point rounding can land
// one ulp outside them, which the moreland maps treat as a hard error.
type clampedMap struct {
	palette.ColorMap
}

// clamped wraps cm so endpoint rounding cannot push a lookup out of range.
func clamped(cm palette.ColorMap) palette.ColorMap {
	return clampedMap{ColorMap: cm}
}

func (m clampedMap) At(v float64) (color.Color, error) {
	if v < m.Min() {
		v = m.Min()
	} else if v > m.Max() {
		v = m.Max()
	}
	return m.ColorMap.At(v)
}

func (m clampedMap) Palette(n int) palette.Palette {
	if n < 1 {
		n = 1
	}
	min, max := m.Min(), m.Max()
	colors := make([]color.Color, n)
	for i := range colors {
		v := min + (max-min)*(float64(i)+0.5)/float64(n)
		c, err := m.ColorMap.At(v)
		if err != nil {
			c = color.Gray{Y: 0x80}
		}
		colors[i] = c
	}
	return slicePalette(colors)
}

// grayPalette builds a linear grayscale palette with n steps.
func grayPalette(n int) palette.Palette {
	colors := make([]color.Color, n)
	for i := range colors {
		v := uint8(i * 255 / (n - 1))
		colors[i] = color.Gray{Y: v}
	}
	return slicePalette(colors)
}
