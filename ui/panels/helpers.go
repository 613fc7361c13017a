package panels

import (
	"contour-tools/internal/app"
	"contour-tools/internal/region"
	"contour-tools/pkg/colorutil"
	"contour-tools/pkg/geometry"
	"contour-tools/ui/canvas"
)

// regionsOverlay builds the overlay for the committed regions. The color
// cycles with the region's position in the selection order.
func regionsOverlay(regions []region.Region) *canvas.Overlay {
	overlay := &canvas.Overlay{}
	for i, r := range regions {
		col := colorutil.RegionColor(i)
		switch r.Type {
		case region.TypeRectangle:
			if len(r.Points) != 2 {
				continue
			}
			overlay.Rectangles = append(overlay.Rectangles, canvas.OverlayRect{
				Rect:  geometry.BoundingBox(r.Points),
				Color: col,
			})
		case region.TypeFreehand:
			overlay.Polygons = append(overlay.Polygons, canvas.OverlayPolygon{
				Points: r.Points,
				Color:  col,
				Closed: true,
			})
		}
	}
	return overlay
}

// pendingOverlay builds the overlay for a selection in progress: the drag
// rectangle, or the freehand vertices joined by an open polyline.
func pendingOverlay(sel *app.Selection) *canvas.Overlay {
	overlay := &canvas.Overlay{}

	if rect, ok := sel.PendingRect(); ok {
		overlay.Rectangles = append(overlay.Rectangles, canvas.OverlayRect{
			Rect:  rect,
			Color: colorutil.White,
		})
	}

	if points := sel.PendingPoints(); len(points) > 0 {
		overlay.Polygons = append(overlay.Polygons, canvas.OverlayPolygon{
			Points: points,
			Color:  colorutil.White,
		})
		for _, p := range points {
			overlay.Markers = append(overlay.Markers, canvas.OverlayMarker{
				Point: p,
				Color: colorutil.White,
			})
		}
	}

	return overlay
}
