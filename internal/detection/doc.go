// Package detection turns a smoothed grayscale slice into lung-candidate
// boundary geometry.
//
// This package implements the decision half of the segmentation pipeline:
// automatic global thresholding, binary mask construction, outer-boundary
// tracing of connected components, geometric acceptance filtering, and
// probabilistic subsampling of the accepted set.
//
// # Processing Stages
//
// The stages compose in a fixed order, each a pure function of the previous
// stage's output:
//
//  1. Histogram + OtsuThreshold: pick the global threshold maximizing
//     between-class variance of the intensity histogram
//  2. Binarize: build the inverted mask, dark pixels become foreground
//  3. FindContours: trace the outer boundary of every 8-connected component
//  4. FilterContours: reject degenerate, border-touching, and out-of-range
//     areas
//  5. SampleContours: optional probabilistic reduction of the accepted set
//
// # Coordinate System
//
// All geometry is row-major:
//   - Origin (0, 0) at the top-left pixel
//   - Row increases downward, Col increases rightward
//   - Points serialize to JSON as [row, col] pairs
//
// Image border means row 0, row height-1, column 0, or column width-1.
//
// # Contour Identity
//
// Contours are keyed "contour_<n>" with n assigned in discovery order, the
// row-major order of each component's first pixel. Filtering and sampling
// keep the original keys, so a filtered map may skip indices; consumers can
// cross-reference the full and accepted maps by identifier.
//
// # Determinism
//
// Thresholding and tracing are fully deterministic: identical masks always
// produce identical thresholds, contours, and identifiers. The only
// randomness lives in SampleContours, which takes an explicit generator so
// tests can fix the outcome.
//
// # Limitations
//
// Boundary tracing reports outer boundaries only. Holes inside a foreground
// component are not traced, but a separate component nested inside such a
// hole is, since no hierarchy is tracked. Contour vertices are pixel
// centers, so areas undercount pixel counts by roughly half the perimeter;
// see Area for the exact relationship.
package detection
