package detection

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPointJSON_RowColOrder(t *testing.T) {
	data, err := json.Marshal(Point{Row: 3, Col: 7})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "[3,7]" {
		t.Errorf("Marshal: got %s, want [3,7]", data)
	}

	var p Point
	if err := json.Unmarshal([]byte("[12,34]"), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if p.Row != 12 || p.Col != 34 {
		t.Errorf("Unmarshal: got %+v, want {Row:12 Col:34}", p)
	}
}

func TestPointJSON_RoundTrip(t *testing.T) {
	want := Contour{{Row: 0, Col: 0}, {Row: 5, Col: 2}, {Row: 5, Col: 9}}
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var got Contour
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestContourID(t *testing.T) {
	if got := ContourID(5); got != "contour_5" {
		t.Errorf("ContourID(5): got %s, want contour_5", got)
	}
	if got := ContourID(0); got != "contour_0" {
		t.Errorf("ContourID(0): got %s, want contour_0", got)
	}
}

func TestContourMapIDs_NumericOrder(t *testing.T) {
	m := ContourMap{
		"contour_10": {{Row: 1, Col: 1}},
		"contour_2":  {{Row: 2, Col: 2}},
		"contour_0":  {{Row: 0, Col: 0}},
	}

	got := m.IDs()
	want := []string{"contour_0", "contour_2", "contour_10"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("IDs order mismatch (-want +got):\n%s", diff)
	}
}
