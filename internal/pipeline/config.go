package pipeline

import (
	"fmt"
	"math/rand"

	"github.com/openchest/lungseg/internal/imaging"
)

// Stock tuning for the geometric filter and the subsampling stage.
const (
	DefaultAreaMin         = 3000
	DefaultAreaMax         = 40000
	DefaultKeepProbability = 0.7
)

// Config carries every knob of the segmentation pipeline. The zero value is
// not a working configuration; start from Default and override fields.
type Config struct {
	// WindowMin and WindowMax bound the Hounsfield band mapped onto the
	// 8-bit display range. WindowMax must strictly exceed WindowMin.
	WindowMin float64
	WindowMax float64

	// KernelSize and Sigma parameterize the smoothing stage. KernelSize
	// must be odd and positive. A Sigma of zero derives the deviation
	// from the kernel size.
	KernelSize int
	Sigma      float64

	// AreaMin and AreaMax bound the accepted contour area in square
	// pixels, both ends inclusive.
	AreaMin float64
	AreaMax float64

	// Subsample enables random decimation of the accepted contours.
	// Each contour is kept independently with KeepProbability. Rand
	// supplies the draws; nil selects a time-seeded generator per run,
	// while a seeded generator makes the kept set reproducible.
	Subsample       bool
	KeepProbability float64
	Rand            *rand.Rand

	// Overlay enables rendering the accepted contours onto a black
	// canvas, stroked in OverlayColor ("#RRGGBB").
	Overlay      bool
	OverlayColor string
}

// Default returns the stock tuning: the full lung window, a 5x5
// derived-sigma blur, and the acceptance band sized for lung fields at
// standard CT slice resolution.
func Default() Config {
	return Config{
		WindowMin:       imaging.DefaultWindowMin,
		WindowMax:       imaging.DefaultWindowMax,
		KernelSize:      imaging.DefaultKernelSize,
		AreaMin:         DefaultAreaMin,
		AreaMax:         DefaultAreaMax,
		KeepProbability: DefaultKeepProbability,
		OverlayColor:    imaging.DefaultHighlight,
	}
}

// Validate reports the first impossible setting. Hosts call it once at
// startup so a bad flag fails fast instead of failing every request.
func (c Config) Validate() error {
	if c.WindowMax <= c.WindowMin {
		return &imaging.InvalidWindowError{Min: c.WindowMin, Max: c.WindowMax}
	}
	if c.KernelSize < 1 || c.KernelSize%2 == 0 {
		return fmt.Errorf("kernel size %d: must be odd and positive", c.KernelSize)
	}
	if c.AreaMin < 0 || c.AreaMax < c.AreaMin {
		return fmt.Errorf("area bounds [%g, %g]: must be non-negative and ordered", c.AreaMin, c.AreaMax)
	}
	if c.KeepProbability < 0 || c.KeepProbability > 1 {
		return fmt.Errorf("keep probability %g: must lie in [0, 1]", c.KeepProbability)
	}
	return nil
}
