package detection

import "image"

// Histogram computes the 256-bin intensity histogram of a grayscale image.
func Histogram(img *image.Gray) [256]int {
	var hist [256]int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			hist[img.GrayAt(x, y).Y]++
		}
	}
	return hist
}

// OtsuThreshold selects the global threshold that best separates a grayscale
// histogram into a dark and a bright population.
//
// # Algorithm
//
// For every candidate threshold t in [1, 254] the histogram is split into the
// population of values <= t and the population of values > t. The candidate
// maximizing the between-class variance
//
//	w0 * w1 * (m0 - m1)^2
//
// is selected, where w0/w1 are the class probabilities and m0/m1 the class
// means. Candidates that leave either class empty are skipped. Ties are
// broken toward the lowest threshold, and a histogram with a single occupied
// bin yields the lowest candidate, 1.
//
// The search is a single deterministic pass over 254 candidates with
// incremental class sums, so identical histograms always produce identical
// thresholds.
func OtsuThreshold(hist [256]int) uint8 {
	total := 0
	weightedSum := 0
	for i, n := range hist {
		total += n
		weightedSum += i * n
	}
	if total == 0 {
		return 1
	}

	best := uint8(1)
	bestVariance := -1.0
	count0 := hist[0]
	sum0 := 0
	for t := 1; t <= 254; t++ {
		count0 += hist[t]
		sum0 += t * hist[t]
		count1 := total - count0
		if count0 == 0 || count1 == 0 {
			continue
		}
		w0 := float64(count0) / float64(total)
		w1 := float64(count1) / float64(total)
		m0 := float64(sum0) / float64(count0)
		m1 := float64(weightedSum-sum0) / float64(count1)
		variance := w0 * w1 * (m0 - m1) * (m0 - m1)
		if variance > bestVariance {
			bestVariance = variance
			best = uint8(t)
		}
	}
	return best
}

// Binarize produces the inverted binary mask for a smoothed grayscale image:
// pixels at or below the threshold become foreground (255) and brighter
// pixels become background (0). The inversion matches the intensity polarity
// of windowed CT slices, where air, and therefore lung tissue, is dark.
func Binarize(img *image.Gray, threshold uint8) *image.Gray {
	b := img.Bounds()
	mask := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if img.GrayAt(b.Min.X+x, b.Min.Y+y).Y <= threshold {
				mask.Pix[y*mask.Stride+x] = 255
			}
		}
	}
	return mask
}
