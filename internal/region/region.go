// Package region provides region descriptors for image extraction, their
// JSON parameter files, and mask construction.
package region

import (
	"fmt"

	"contour-tools/pkg/geometry"
)

// Type identifies the kind of a selected region.
type Type string

const (
	TypeRectangle Type = "rectangle"
	TypeFreehand  Type = "freehand"
)

// minRectSpan is the smallest accepted rectangle side in pixels. Smaller
// selections are almost always accidental clicks.
const minRectSpan = 5

// minFreehandPoints is the minimum vertex count for a freehand polygon.
const minFreehandPoints = 3

// Region is one selected area in image pixel coordinates. A rectangle is
// stored as its two normalized corners (top-left, bottom-right); a freehand
// region as its ordered polygon vertices.
type Region struct {
	Type   Type                `json:"type"`
	Points []geometry.PointInt `json:"points"`
}

// NewRectangle builds a rectangle region from two opposite corners. The
// corners are clipped to the image bounds and normalized so the first point
// is the top-left.
func NewRectangle(p1, p2 geometry.PointInt, size geometry.Size) (Region, error) {
	x1 := geometry.Clamp(p1.X, 0, size.Width)
	y1 := geometry.Clamp(p1.Y, 0, size.Height)
	x2 := geometry.Clamp(p2.X, 0, size.Width)
	y2 := geometry.Clamp(p2.Y, 0, size.Height)

	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}

	if x2-x1 < minRectSpan || y2-y1 < minRectSpan {
		return Region{}, fmt.Errorf("region too small: %dx%d, need at least %dx%d",
			x2-x1, y2-y1, minRectSpan, minRectSpan)
	}

	return Region{
		Type:   TypeRectangle,
		Points: []geometry.PointInt{{X: x1, Y: y1}, {X: x2, Y: y2}},
	}, nil
}

// NewFreehand builds a freehand region from ordered polygon vertices, clipped
// to the image bounds.
func NewFreehand(points []geometry.PointInt, size geometry.Size) (Region, error) {
	if len(points) < minFreehandPoints {
		return Region{}, fmt.Errorf("freehand region needs at least %d points, got %d",
			minFreehandPoints, len(points))
	}

	clipped := make([]geometry.PointInt, len(points))
	for i, p := range points {
		clipped[i] = geometry.PointInt{
			X: geometry.Clamp(p.X, 0, size.Width),
			Y: geometry.Clamp(p.Y, 0, size.Height),
		}
	}

	return Region{Type: TypeFreehand, Points: clipped}, nil
}

// Validate checks the region's structural constraints against an image size.
func (r Region) Validate(size geometry.Size) error {
	switch r.Type {
	case TypeRectangle:
		if len(r.Points) != 2 {
			return fmt.Errorf("rectangle region has %d points, want 2", len(r.Points))
		}
		w := r.Points[1].X - r.Points[0].X
		h := r.Points[1].Y - r.Points[0].Y
		if w < minRectSpan || h < minRectSpan {
			return fmt.Errorf("rectangle region too small: %dx%d", w, h)
		}
	case TypeFreehand:
		if len(r.Points) < minFreehandPoints {
			return fmt.Errorf("freehand region has %d points, want at least %d",
				len(r.Points), minFreehandPoints)
		}
	default:
		return fmt.Errorf("unknown region type %q", r.Type)
	}

	for _, p := range r.Points {
		if p.X < 0 || p.X > size.Width || p.Y < 0 || p.Y > size.Height {
			return fmt.Errorf("point (%d,%d) outside %dx%d image",
				p.X, p.Y, size.Width, size.Height)
		}
	}
	return nil
}

// Contains reports whether the pixel lies inside the region.
func (r Region) Contains(p geometry.PointInt) bool {
	switch r.Type {
	case TypeRectangle:
		if len(r.Points) != 2 {
			return false
		}
		return p.X >= r.Points[0].X && p.X <= r.Points[1].X &&
			p.Y >= r.Points[0].Y && p.Y <= r.Points[1].Y
	case TypeFreehand:
		return geometry.PointInPolygon(p, r.Points)
	}
	return false
}

// BoundingBox returns the axis-aligned bounding box of the region.
func (r Region) BoundingBox() geometry.RectInt {
	return geometry.BoundingBox(r.Points)
}
