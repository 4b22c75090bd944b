package geometry

// IsPointInPolygon runs an even-odd ray cast from point against every edge
// (i, i-1 mod n). An empty polygon contains nothing.
func IsPointInPolygon(point Point, polygon []Point) bool {
	if len(polygon) == 0 {
		return false
	}

	inside := false
	j := len(polygon) - 1
	for i := range polygon {
		v1 := polygon[i]
		v2 := polygon[j]

		// The second operand only runs when v1.Y != v2.Y, so the division is safe
		if (v1.Y > point.Y) != (v2.Y > point.Y) &&
			point.X < (v2.X-v1.X)*(point.Y-v1.Y)/(v2.Y-v1.Y)+v1.X {
			inside = !inside
		}
		j = i
	}

	return inside
}

// orientation classifies the turn a->b->c as 0 (collinear), 1 (clockwise) or
// 2 (counter-clockwise)
func orientation(a, b, c Point) int {
	cross := (b.Y-a.Y)*(c.X-b.X) - (b.X-a.X)*(c.Y-b.Y)
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return 2
	default:
		return 0
	}
}

// SegmentsIntersect reports whether p1p2 and q1q2 cross. Collinear and touching
// configurations are not special-cased: a zero orientation is simply its own
// class, so overlapping collinear segments report false.
func SegmentsIntersect(p1, p2, q1, q2 Point) bool {
	o1 := orientation(p1, p2, q1)
	o2 := orientation(p1, p2, q2)
	o3 := orientation(q1, q2, p1)
	o4 := orientation(q1, q2, p2)

	return o1 != o2 && o3 != o4
}

// PolygonCollision reports whether any vertex of triangle lies inside polygon
// or any triangle edge crosses a polygon edge. A polygon fully contained in the
// triangle without crossing edges is not detected; the ship and asteroid sizes
// keep that case out of play.
func PolygonCollision(triangle, polygon []Point) bool {
	for _, vertex := range triangle {
		if IsPointInPolygon(vertex, polygon) {
			return true
		}
	}

	for i := range triangle {
		a1 := triangle[i]
		a2 := triangle[(i+1)%len(triangle)]
		for j := range polygon {
			b1 := polygon[j]
			b2 := polygon[(j+1)%len(polygon)]
			if SegmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}

	return false
}
