package render

import (
	"fmt"
	"strings"

	"contour-tools/internal/field"
)

// libraryName is the fixed library tag used in output filenames, matching
// the lib_colormap_position_orientation_type.ext composition of the sample
// sets produced with other plotting engines.
const libraryName = "gonum"

// orientShort maps orientations to their filename shorthand.
var orientShort = map[Orientation]string{
	OrientationHorizontal: "hori",
	OrientationVertical:   "vert",
}

// Filename composes the deterministic output name for a rendered sample.
func Filename(colormap string, pos Position, orient Orientation, mode field.Mode, ext string) string {
	o, ok := orientShort[orient]
	if !ok {
		o = string(orient)
	}
	ext = strings.TrimPrefix(ext, ".")
	return fmt.Sprintf("%s_%s_%s_%s_%s.%s", libraryName, colormap, pos, o, mode, ext)
}

// ExpandSelector resolves a per-axis batch selector: "all" yields every
// value, "representative" yields the representative subset, and anything
// else is split on commas. Unknown names are passed through untouched; the
// consumers apply their usual silent fallbacks.
func ExpandSelector(selector string, all, representative []string) []string {
	switch strings.ToLower(strings.TrimSpace(selector)) {
	case "", "all":
		return all
	case "representative":
		return representative
	}

	parts := strings.Split(selector, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
