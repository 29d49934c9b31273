package imaging

import (
	"fmt"

	"github.com/openchest/lungseg/internal/dicom"
)

// ModalityCT is the modality code of computed tomography scans, the only
// modality the calibration understands.
const ModalityCT = "CT"

// UnsupportedModalityError reports an input scan whose modality is not
// computed tomography. The conversion to Hounsfield units is only defined
// for CT, so the pipeline refuses anything else up front.
type UnsupportedModalityError struct {
	Modality string
}

func (e *UnsupportedModalityError) Error() string {
	if e.Modality == "" {
		return "unsupported modality: element absent, want CT"
	}
	return fmt.Sprintf("unsupported modality %q, want CT", e.Modality)
}

// Calibrate converts a raw slice to Hounsfield units by the element-wise
// linear transform raw*slope + intercept.
//
// A slice without rescale coefficients is calibrated with slope 1 and
// intercept 0, an explicit "no calibration" fallback rather than an error.
// Non-CT slices fail with *UnsupportedModalityError.
func Calibrate(s *dicom.Slice) ([][]float64, error) {
	if s.Modality != ModalityCT {
		return nil, &UnsupportedModalityError{Modality: s.Modality}
	}

	slope, intercept := 1.0, 0.0
	if s.RescaleSlope != nil {
		slope = *s.RescaleSlope
	}
	if s.RescaleIntercept != nil {
		intercept = *s.RescaleIntercept
	}

	hu := make([][]float64, len(s.Pixels))
	for r, row := range s.Pixels {
		out := make([]float64, len(row))
		for c, v := range row {
			out[c] = float64(v)*slope + intercept
		}
		hu[r] = out
	}
	return hu, nil
}
