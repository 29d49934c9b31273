package pipeline

import (
	"image"

	"github.com/openchest/lungseg/internal/detection"
	"github.com/openchest/lungseg/internal/dicom"
	"github.com/openchest/lungseg/internal/imaging"
)

// Result bundles everything one pipeline run produces. All fields are
// plain values; encoding for a particular transport is the host's job.
type Result struct {
	// Stats summarizes the calibrated slice in Hounsfield units.
	Stats imaging.PixelStats

	// Threshold is the histogram split used for mask generation.
	Threshold uint8

	// Normalized is the window-normalized slice and the source for
	// previews. Smoothed is its blurred copy, Mask the inverted
	// binarization of Smoothed.
	Normalized *image.Gray
	Smoothed   *image.Gray
	Mask       *image.Gray

	// Contours holds every traced component boundary, Accepted the
	// subset passing the geometric filter, Sampled the randomly
	// decimated subset. Sampled is nil unless subsampling was enabled;
	// the other two are always non-nil.
	Contours detection.ContourMap
	Accepted detection.ContourMap
	Sampled  detection.ContourMap

	// Overlay is the accepted contours stroked on a black canvas, nil
	// unless overlay rendering was enabled.
	Overlay *image.RGBA
}

// Run executes the segmentation pipeline on one decoded slice.
//
// # Stages
//
// The slice is calibrated to Hounsfield units, window-normalized to an
// 8-bit grayscale image, smoothed, and binarized at an automatically
// chosen threshold with inverted polarity so that radiolucent regions
// become mask foreground. Component boundaries are traced from the mask,
// then filtered by the border, degeneracy and area tests. Optional stages
// decimate the accepted set at random and render the overlay canvas.
//
// Run validates cfg first, so hosts that already called Validate pay the
// check twice but broken configurations never reach the stages. The input
// slice is not modified. Errors carry their domain types unchanged:
// *imaging.UnsupportedModalityError for non-CT input and
// *imaging.InvalidWindowError for degenerate window bounds.
func Run(slice *dicom.Slice, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	hu, err := imaging.Calibrate(slice)
	if err != nil {
		return nil, err
	}

	normalized, err := imaging.ApplyWindow(hu, cfg.WindowMin, cfg.WindowMax)
	if err != nil {
		return nil, err
	}
	smoothed := imaging.Smooth(normalized, cfg.KernelSize, cfg.Sigma)

	threshold := detection.OtsuThreshold(detection.Histogram(smoothed))
	mask := detection.Binarize(smoothed, threshold)

	contours := detection.FindContours(mask)
	b := mask.Bounds()
	accepted := detection.FilterContours(contours, b.Dx(), b.Dy(), cfg.AreaMin, cfg.AreaMax)

	res := &Result{
		Stats:      imaging.ComputeStats(hu),
		Threshold:  threshold,
		Normalized: normalized,
		Smoothed:   smoothed,
		Mask:       mask,
		Contours:   contours,
		Accepted:   accepted,
	}

	if cfg.Subsample {
		res.Sampled = detection.SampleContours(accepted, cfg.KeepProbability, cfg.Rand)
	}

	if cfg.Overlay {
		res.Overlay, err = imaging.RenderOverlay(accepted, b.Dx(), b.Dy(), cfg.OverlayColor)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}
