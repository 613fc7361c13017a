package canvas

import (
	"image"
	"image/color"

	"contour-tools/pkg/geometry"
)

const markerSize = 4 // half-extent of vertex markers in canvas pixels

// drawOverlay renders an overlay's shapes scaled by the current zoom.
func (ic *ImageCanvas) drawOverlay(output *image.RGBA, overlay *Overlay) {
	for _, r := range overlay.Rectangles {
		x1 := int(float64(r.Rect.X) * ic.zoom)
		y1 := int(float64(r.Rect.Y) * ic.zoom)
		x2 := int(float64(r.Rect.X+r.Rect.Width) * ic.zoom)
		y2 := int(float64(r.Rect.Y+r.Rect.Height) * ic.zoom)
		ic.drawRectOutline(output, x1, y1, x2, y2, r.Color)
	}

	for _, p := range overlay.Polygons {
		ic.drawPolyline(output, p.Points, p.Color, p.Closed)
	}

	for _, m := range overlay.Markers {
		cx := int(float64(m.Point.X) * ic.zoom)
		cy := int(float64(m.Point.Y) * ic.zoom)
		ic.drawLine(output, cx-markerSize, cy, cx+markerSize, cy, m.Color)
		ic.drawLine(output, cx, cy-markerSize, cx, cy+markerSize, m.Color)
	}
}

// drawRectOutline draws a 2px rectangle outline.
func (ic *ImageCanvas) drawRectOutline(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	for t := 0; t < 2; t++ {
		ic.drawLine(output, x1, y1+t, x2, y1+t, col)
		ic.drawLine(output, x1, y2-t, x2, y2-t, col)
		ic.drawLine(output, x1+t, y1, x1+t, y2, col)
		ic.drawLine(output, x2-t, y1, x2-t, y2, col)
	}
}

// drawPolyline draws line segments through the points, optionally closing
// the loop.
func (ic *ImageCanvas) drawPolyline(output *image.RGBA, points []geometry.PointInt, col color.RGBA, closed bool) {
	if len(points) < 2 {
		return
	}

	for i := 1; i < len(points); i++ {
		ic.drawSegment(output, points[i-1], points[i], col)
	}
	if closed && len(points) > 2 {
		ic.drawSegment(output, points[len(points)-1], points[0], col)
	}
}

func (ic *ImageCanvas) drawSegment(output *image.RGBA, a, b geometry.PointInt, col color.RGBA) {
	ic.drawLine(output,
		int(float64(a.X)*ic.zoom), int(float64(a.Y)*ic.zoom),
		int(float64(b.X)*ic.zoom), int(float64(b.Y)*ic.zoom), col)
}

// drawLine draws a line using Bresenham's algorithm.
func (ic *ImageCanvas) drawLine(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := output.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	x, y := x1, y1
	for {
		if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
			output.SetRGBA(x, y, col)
		}
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
