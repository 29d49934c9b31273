package imaging

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PixelStats summarizes a calibrated slice for logging and API responses.
type PixelStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// ComputeStats flattens a Hounsfield matrix and reports its pixel value
// distribution. An empty matrix yields the zero value. The standard
// deviation is the sample deviation and is reported as zero when fewer
// than two pixels are present, so the result always marshals to JSON.
func ComputeStats(hu [][]float64) PixelStats {
	n := 0
	for _, row := range hu {
		n += len(row)
	}
	if n == 0 {
		return PixelStats{}
	}

	flat := make([]float64, 0, n)
	for _, row := range hu {
		flat = append(flat, row...)
	}

	mean, std := stat.MeanStdDev(flat, nil)
	if len(flat) < 2 {
		std = 0
	}
	return PixelStats{
		Min:    floats.Min(flat),
		Max:    floats.Max(flat),
		Mean:   mean,
		StdDev: std,
	}
}
