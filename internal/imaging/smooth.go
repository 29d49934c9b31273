package imaging

import (
	"image"
	"math"
)

// DefaultKernelSize is the smoothing kernel size used ahead of
// thresholding.
const DefaultKernelSize = 5

// fixed normalized taps for the small derived-sigma kernels
var smallKernels = map[int][]float64{
	1: {1},
	3: {0.25, 0.5, 0.25},
	5: {0.0625, 0.25, 0.375, 0.25, 0.0625},
}

// Smooth applies a separable Gaussian blur to a grayscale image and returns
// a new image of the same dimensions.
//
// ksize is the square kernel size and must be odd and positive. A sigma of
// zero or less derives the standard deviation from the kernel size: sizes
// up to five use the fixed binomial taps, larger sizes use
// sigma = 0.3*((ksize-1)/2 - 1) + 0.8.
//
// Image borders are handled by edge replication, so a uniform image stays
// exactly uniform. Both convolution passes accumulate in float64 and the
// result is rounded once, keeping the output deterministic for identical
// inputs.
func Smooth(img *image.Gray, ksize int, sigma float64) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return out
	}

	kernel := gaussianKernel(ksize, sigma)
	radius := len(kernel) / 2

	// Horizontal pass into a float buffer, vertical pass with a single
	// rounding at the end.
	tmp := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0.0
			for k := -radius; k <= radius; k++ {
				sx := clamp(x+k, 0, w-1)
				sum += kernel[k+radius] * float64(img.GrayAt(b.Min.X+sx, b.Min.Y+y).Y)
			}
			tmp[y*w+x] = sum
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0.0
			for k := -radius; k <= radius; k++ {
				sy := clamp(y+k, 0, h-1)
				sum += kernel[k+radius] * tmp[sy*w+x]
			}
			out.Pix[y*out.Stride+x] = uint8(sum + 0.5)
		}
	}
	return out
}

// gaussianKernel builds the normalized 1-D taps for a kernel size. Sigma
// values of zero or less select the derived-from-size rule documented on
// Smooth. Even or non-positive sizes are bumped up to the next valid size.
func gaussianKernel(size int, sigma float64) []float64 {
	if size < 1 {
		size = 1
	}
	if size%2 == 0 {
		size++
	}
	if sigma <= 0 {
		if taps, ok := smallKernels[size]; ok {
			return taps
		}
		sigma = 0.3*(float64(size-1)*0.5-1) + 0.8
	}

	taps := make([]float64, size)
	radius := size / 2
	sum := 0.0
	for i := range taps {
		d := float64(i - radius)
		taps[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += taps[i]
	}
	for i := range taps {
		taps[i] /= sum
	}
	return taps
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
