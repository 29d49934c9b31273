// Package dicom decodes single-slice DICOM scans into the value-level form
// the segmentation pipeline consumes.
//
// The package is a deliberately thin collaborator: it extracts the pixel
// matrix, the modality code, and the optional rescale slope/intercept pair,
// and nothing else. Samples are passed through exactly as the underlying
// parser delivers them; interpreting them is the pipeline's job. All
// failure modes surface as *DecodeError so hosts can map malformed uploads
// to a client-error response.
package dicom
