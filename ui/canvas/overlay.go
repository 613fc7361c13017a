// Package canvas provides overlay types for the image canvas.
package canvas

import (
	"image/color"

	"contour-tools/pkg/geometry"
)

// Overlay represents a drawable overlay on the canvas. Coordinates are in
// image space; the canvas scales them by the current zoom when drawing.
type Overlay struct {
	Rectangles []OverlayRect
	Polygons   []OverlayPolygon
	Markers    []OverlayMarker
}

// OverlayRect is a rectangle outline with its own color.
type OverlayRect struct {
	Rect  geometry.RectInt
	Color color.RGBA
}

// OverlayPolygon is a closed polygon outline with its own color.
type OverlayPolygon struct {
	Points []geometry.PointInt
	Color  color.RGBA
	Closed bool // draw the last-to-first edge
}

// OverlayMarker is a small cross marking a single point, used for freehand
// vertices being placed.
type OverlayMarker struct {
	Point geometry.PointInt
	Color color.RGBA
}
