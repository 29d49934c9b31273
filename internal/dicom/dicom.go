package dicom

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// Slice is one decoded single-slice scan: the raw pixel matrix plus the
// minimal metadata the segmentation pipeline consumes. No other metadata is
// read from the source file.
type Slice struct {
	// Pixels holds the raw samples in row-major order, Pixels[row][col],
	// exactly as the parser delivered them.
	Pixels [][]int32

	// Rows and Cols are the matrix dimensions.
	Rows int
	Cols int

	// Modality is the scan's modality code ("CT", "MR", ...), trimmed of
	// padding. Empty when the element is absent.
	Modality string

	// RescaleSlope and RescaleIntercept are the linear calibration
	// coefficients. A nil pointer means the element was absent; the
	// calibration stage substitutes 1 and 0.
	RescaleSlope     *float64
	RescaleIntercept *float64
}

// DecodeError reports malformed or unsupported input bytes. It wraps the
// parser's error when one exists.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode dicom: %s: %v", e.Reason, e.Err)
	}
	return "decode dicom: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode parses a DICOM stream of known length into a Slice.
//
// Only the modality, the two rescale coefficients, and the first frame of
// the pixel data are extracted. Multi-frame files contribute their first
// frame; encapsulated (compressed) pixel data is rejected with a
// DecodeError.
func Decode(r io.Reader, size int64) (*Slice, error) {
	ds, err := dicom.Parse(r, size, nil)
	if err != nil {
		return nil, &DecodeError{Reason: "parse failed", Err: err}
	}
	return sliceFromDataset(ds)
}

// DecodeFile parses a DICOM file from disk into a Slice.
func DecodeFile(path string) (*Slice, error) {
	ds, err := dicom.ParseFile(path, nil)
	if err != nil {
		return nil, &DecodeError{Reason: "parse failed", Err: err}
	}
	return sliceFromDataset(ds)
}

func sliceFromDataset(ds dicom.Dataset) (*Slice, error) {
	slope, err := decimalTag(ds, tag.RescaleSlope)
	if err != nil {
		return nil, err
	}
	intercept, err := decimalTag(ds, tag.RescaleIntercept)
	if err != nil {
		return nil, err
	}

	el, err := ds.FindElementByTag(tag.PixelData)
	if err != nil {
		return nil, &DecodeError{Reason: "missing pixel data"}
	}
	if el.Value.ValueType() != dicom.PixelData {
		return nil, &DecodeError{Reason: "unexpected pixel data value type"}
	}
	info := dicom.MustGetPixelDataInfo(el.Value)
	if len(info.Frames) == 0 {
		return nil, &DecodeError{Reason: "pixel data contains no frames"}
	}
	native, err := info.Frames[0].GetNativeFrame()
	if err != nil {
		return nil, &DecodeError{Reason: "unsupported pixel encoding", Err: err}
	}

	pixels, err := pixelMatrix(native.Data, native.Rows, native.Cols)
	if err != nil {
		return nil, err
	}

	return &Slice{
		Pixels:           pixels,
		Rows:             native.Rows,
		Cols:             native.Cols,
		Modality:         stringTag(ds, tag.Modality),
		RescaleSlope:     slope,
		RescaleIntercept: intercept,
	}, nil
}

// stringTag returns the first string value of an element, trimmed, or ""
// when the element is absent or not string-valued.
func stringTag(ds dicom.Dataset, t tag.Tag) string {
	el, err := ds.FindElementByTag(t)
	if err != nil {
		return ""
	}
	strs, ok := el.Value.GetValue().([]string)
	if !ok || len(strs) == 0 {
		return ""
	}
	return strings.TrimSpace(strs[0])
}

// decimalTag reads an optional decimal-string element. Absent or empty
// elements yield nil; present but unparseable values are a DecodeError.
func decimalTag(ds dicom.Dataset, t tag.Tag) (*float64, error) {
	el, err := ds.FindElementByTag(t)
	if err != nil {
		return nil, nil
	}
	strs, ok := el.Value.GetValue().([]string)
	if !ok || len(strs) == 0 {
		return nil, nil
	}
	return parseDecimal(strs[0], t)
}

func parseDecimal(raw string, t tag.Tag) (*float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, &DecodeError{Reason: fmt.Sprintf("malformed decimal string %q in element %v", raw, t), Err: err}
	}
	return &v, nil
}

// pixelMatrix reshapes the parser's flat pixel-major sample list into a
// rows by cols matrix, taking the first sample of each pixel.
func pixelMatrix(data [][]int, rows, cols int) ([][]int32, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &DecodeError{Reason: fmt.Sprintf("invalid frame dimensions %dx%d", rows, cols)}
	}
	if len(data) != rows*cols {
		return nil, &DecodeError{Reason: fmt.Sprintf("frame has %d samples, want %d", len(data), rows*cols)}
	}
	pixels := make([][]int32, rows)
	for r := 0; r < rows; r++ {
		row := make([]int32, cols)
		for c := 0; c < cols; c++ {
			sample := data[r*cols+c]
			if len(sample) == 0 {
				return nil, &DecodeError{Reason: fmt.Sprintf("empty sample at pixel %d", r*cols+c)}
			}
			row[c] = int32(sample[0])
		}
		pixels[r] = row
	}
	return pixels, nil
}
