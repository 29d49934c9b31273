package detection

import "math"

// Area returns the area enclosed by a contour, computed as the absolute
// value of the shoelace sum over its vertex sequence divided by two.
//
// Vertices are pixel centers, so the measured area of a filled axis-aligned
// n by n square is (n-1)^2: the boundary polygon spans the outermost pixel
// centers, which undercounts the pixel count by roughly half the perimeter.
// Callers comparing against pixel counts should allow for that band.
func Area(c Contour) float64 {
	if len(c) < 3 {
		return 0
	}
	sum := 0.0
	for i, p := range c {
		q := c[(i+1)%len(c)]
		sum += float64(p.Col*q.Row - q.Col*p.Row)
	}
	return math.Abs(sum) / 2
}

// ArcLength returns the perimeter of a contour, the euclidean length of the
// closed polyline through its vertices. A contour with fewer than two
// points has zero perimeter and is considered degenerate.
func ArcLength(c Contour) float64 {
	if len(c) < 2 {
		return 0
	}
	total := 0.0
	for i, p := range c {
		q := c[(i+1)%len(c)]
		total += math.Hypot(float64(q.Row-p.Row), float64(q.Col-p.Col))
	}
	return total
}

// TouchesBorder reports whether any vertex of the contour lies on the
// outermost row or column of an image with the given dimensions. Contours
// touching the border are conventionally truncated by the field of view and
// therefore unreliable.
//
// Compressed runs cannot hide a border contact: a straight run along the
// border keeps both endpoints on it, and a run that merely grazes the
// border must turn there, which keeps the grazing pixel as a vertex.
func TouchesBorder(c Contour, width, height int) bool {
	for _, p := range c {
		if p.Row == 0 || p.Row == height-1 || p.Col == 0 || p.Col == width-1 {
			return true
		}
	}
	return false
}
