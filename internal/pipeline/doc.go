// Package pipeline chains the slice processing stages into one run.
//
// The package owns sequencing and configuration only. The image math
// lives in the imaging package, contour work in the detection package,
// and file decoding in the dicom package; hosts such as the HTTP server
// or the batch CLI own transport encoding and logging. A Result is a
// plain value, so two hosts given the same slice and configuration
// produce identical results regardless of how they serialize them.
package pipeline
