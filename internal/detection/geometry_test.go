package detection

import (
	"math"
	"testing"
)

// squareContour builds the four-corner contour of an axis-aligned square
// with the given top-left corner and side length in polygon units.
func squareContour(row, col, side int) Contour {
	return Contour{
		{Row: row, Col: col},
		{Row: row + side, Col: col},
		{Row: row + side, Col: col + side},
		{Row: row, Col: col + side},
	}
}

func TestArea_Square(t *testing.T) {
	if got := Area(squareContour(2, 3, 10)); got != 100 {
		t.Errorf("area: got %v, want 100", got)
	}
}

func TestArea_Triangle(t *testing.T) {
	tri := Contour{{Row: 0, Col: 0}, {Row: 4, Col: 0}, {Row: 0, Col: 4}}
	if got := Area(tri); got != 8 {
		t.Errorf("area: got %v, want 8", got)
	}
}

func TestArea_OrientationIndependent(t *testing.T) {
	cw := squareContour(1, 1, 6)
	ccw := Contour{cw[0], cw[3], cw[2], cw[1]}
	if Area(cw) != Area(ccw) {
		t.Errorf("area depends on orientation: %v vs %v", Area(cw), Area(ccw))
	}
}

func TestArea_Degenerate(t *testing.T) {
	if got := Area(Contour{{Row: 5, Col: 5}}); got != 0 {
		t.Errorf("single point area: got %v, want 0", got)
	}
	if got := Area(Contour{{Row: 5, Col: 5}, {Row: 9, Col: 9}}); got != 0 {
		t.Errorf("two point area: got %v, want 0", got)
	}
}

func TestArcLength_Square(t *testing.T) {
	if got := ArcLength(squareContour(0, 0, 10)); got != 40 {
		t.Errorf("perimeter: got %v, want 40", got)
	}
}

func TestArcLength_Degenerate(t *testing.T) {
	if got := ArcLength(Contour{{Row: 3, Col: 3}}); got != 0 {
		t.Errorf("single point perimeter: got %v, want 0", got)
	}
	want := 2 * math.Sqrt2
	if got := ArcLength(Contour{{Row: 0, Col: 0}, {Row: 1, Col: 1}}); math.Abs(got-want) > 1e-12 {
		t.Errorf("pair perimeter: got %v, want %v", got, want)
	}
}

func TestTouchesBorder(t *testing.T) {
	tests := []struct {
		name    string
		contour Contour
		want    bool
	}{
		{"interior", squareContour(2, 2, 5), false},
		{"top row", squareContour(0, 2, 5), true},
		{"left column", squareContour(2, 0, 5), true},
		{"bottom row", squareContour(4, 2, 5), true},  // reaches row 9 of 10
		{"right column", squareContour(2, 4, 5), true}, // reaches col 9 of 10
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TouchesBorder(tt.contour, 10, 10); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
