package imaging

import (
	"fmt"
	"image"
)

// Default window bounds in Hounsfield units. The band spans air at -1000
// through dense bone at 2000, the clinically interesting range for lung
// field segmentation.
const (
	DefaultWindowMin = -1000
	DefaultWindowMax = 2000
)

// InvalidWindowError reports window bounds that admit no intensity range.
type InvalidWindowError struct {
	Min float64
	Max float64
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("invalid window [%g, %g]: max must exceed min", e.Min, e.Max)
}

// ApplyWindow clips calibrated samples to [windowMin, windowMax] and maps
// the band linearly onto the 8-bit display range, windowMin to 0 and
// windowMax to 255, truncating fractional values.
//
// The input must be rectangular. windowMax must strictly exceed windowMin
// or the mapping degenerates; that misconfiguration fails with
// *InvalidWindowError.
func ApplyWindow(hu [][]float64, windowMin, windowMax float64) (*image.Gray, error) {
	if windowMax <= windowMin {
		return nil, &InvalidWindowError{Min: windowMin, Max: windowMax}
	}

	h := len(hu)
	w := 0
	if h > 0 {
		w = len(hu[0])
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	span := windowMax - windowMin
	for r := 0; r < h; r++ {
		for c, v := range hu[r] {
			if c >= w {
				break
			}
			if v < windowMin {
				v = windowMin
			}
			if v > windowMax {
				v = windowMax
			}
			img.Pix[r*img.Stride+c] = uint8((v - windowMin) / span * 255)
		}
	}
	return img, nil
}
