package geometry

// PointInPolygon tests if a point is inside a polygon using ray casting.
// The polygon is given as an ordered sequence of vertices; it is closed
// implicitly between the last and first vertex.
func PointInPolygon(p PointInt, polygon []PointInt) bool {
	if len(polygon) < 3 {
		return false
	}

	px, py := float64(p.X), float64(p.Y)
	inside := false
	n := len(polygon)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xi, yi := float64(polygon[i].X), float64(polygon[i].Y)
		xj, yj := float64(polygon[j].X), float64(polygon[j].Y)

		// Check if ray from p going right intersects edge i-j
		if ((yi > py) != (yj > py)) &&
			(px < (xj-xi)*(py-yi)/(yj-yi)+xi) {
			inside = !inside
		}
	}

	return inside
}
