package detection

// FilterContours applies the geometric acceptance tests to a contour map and
// returns the accepted subset under the original identifiers.
//
// A contour is accepted only if all of the following hold:
//   - it is non-degenerate (nonzero perimeter),
//   - no vertex touches the image border,
//   - its enclosed area lies within [areaMin, areaMax], both inclusive.
//
// The returned map is never nil. Rejecting every contour is a valid outcome,
// not an error.
func FilterContours(contours ContourMap, width, height int, areaMin, areaMax float64) ContourMap {
	accepted := ContourMap{}
	for id, c := range contours {
		if ArcLength(c) == 0 {
			continue
		}
		if TouchesBorder(c, width, height) {
			continue
		}
		if a := Area(c); a >= areaMin && a <= areaMax {
			accepted[id] = c
		}
	}
	return accepted
}
