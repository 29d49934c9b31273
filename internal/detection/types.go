package detection

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

// idPrefix is the common prefix of all contour identifiers.
const idPrefix = "contour_"

// Point is a pixel location in row-major image coordinates. Row 0 is the top
// of the image and Col 0 is the left edge. Points serialize to JSON as a
// two-element [row, col] array, which is the wire format consumed by clients.
type Point struct {
	Row int
	Col int
}

// MarshalJSON encodes the point as a [row, col] pair.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Row, p.Col})
}

// UnmarshalJSON decodes a [row, col] pair.
func (p *Point) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	p.Row, p.Col = pair[0], pair[1]
	return nil
}

// Contour is the ordered, closed boundary of one connected foreground
// component. Consecutive points are 8-neighbors except where collinear runs
// have been compressed to their endpoints; the sequence implicitly closes
// from the last point back to the first.
type Contour []Point

// ContourMap maps contour identifiers ("contour_0", "contour_1", ...) to
// contours. Identifiers are assigned in discovery order and survive
// filtering, so a filtered map may have sparse indices that still
// cross-reference the unfiltered map.
type ContourMap map[string]Contour

// ContourID returns the identifier for a discovery index.
func ContourID(index int) string {
	return idPrefix + strconv.Itoa(index)
}

// IDs returns the map's identifiers sorted by discovery index. Iterating in
// this order makes downstream consumers that draw from a random source, or
// that log per contour, reproducible regardless of map iteration order.
func (m ContourMap) IDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := contourIndex(ids[i]), contourIndex(ids[j])
		if a != b {
			return a < b
		}
		return ids[i] < ids[j]
	})
	return ids
}

// contourIndex extracts the numeric discovery index from an identifier.
// Identifiers that do not follow the contour_<n> pattern sort last.
func contourIndex(id string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(id, idPrefix))
	if err != nil {
		return math.MaxInt
	}
	return n
}
