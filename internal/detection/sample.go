package detection

import (
	"math/rand"
	"time"
)

// SampleContours retains each contour independently with probability p and
// returns the kept subset under the original identifiers.
//
// Contours are visited in ascending identifier order and one draw is taken
// per contour, so a seeded generator reproduces the exact kept set on every
// run. Passing a nil generator falls back to a time-seeded one, which keeps
// production behavior unpredictable without touching the process-wide
// generator. p <= 0 keeps nothing and p >= 1 keeps everything.
func SampleContours(contours ContourMap, p float64, rng *rand.Rand) ContourMap {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	kept := ContourMap{}
	for _, id := range contours.IDs() {
		if rng.Float64() < p {
			kept[id] = contours[id]
		}
	}
	return kept
}
