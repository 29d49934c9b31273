// Package imaging turns calibrated CT slices into images ready for
// segmentation and presentation.
//
// The package covers the image-domain half of the pipeline: Hounsfield
// calibration of raw pixel data, window normalization to 8-bit grayscale,
// Gaussian smoothing, pixel statistics, contour overlay rendering, and
// preview encoding. Mask generation and contour extraction live in the
// detection package.
//
// # Coordinate System
//
// Grayscale images follow the standard Go image convention: (0,0) at the
// top-left, X rightward, Y downward. Contour points use (row, col) order,
// so drawing routines map Col to X and Row to Y.
//
// # Calibration and Windowing
//
// Calibrate converts stored pixel values to Hounsfield units with the
// slice's rescale slope and intercept, defaulting to an identity transform
// when the tags are absent. ApplyWindow clips the Hounsfield matrix to a
// configured window and maps it linearly onto the 0..255 range; values at
// or below the window floor become 0 and values at or above the ceiling
// become 255.
//
// # Determinism
//
// Every function here is a pure transformation of its inputs. Smoothing
// accumulates in float64 and rounds once per pixel, so repeated runs over
// the same slice produce byte-identical images.
//
// # Error Handling
//
// Domain errors carry their own types so callers can map them to API
// responses: UnsupportedModalityError for non-CT slices and
// InvalidWindowError for degenerate window bounds. All other errors are
// wrapped with context and propagate unchanged.
package imaging
