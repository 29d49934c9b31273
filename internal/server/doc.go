// Package server exposes the segmentation pipeline as an HTTP upload
// service.
//
// The server accepts one DICOM slice per request on POST /upload and
// responds with the contour geometry and a preview image as JSON. It is
// a thin host: decoding is delegated to the dicom package, processing to
// the pipeline package, and the handlers only translate between HTTP and
// those collaborators.
//
// # Routes
//
//   - POST /upload: multipart form, file field "dicom". 200 with the
//     result document, 400 for client mistakes, 422 for non-CT input,
//     500 for anything else.
//   - GET /health: liveness probe.
//
// # Error Contract
//
// Every failure body is {"error": "..."}. Internal failures never leak
// details to the client; the cause is logged under the request id that
// the X-Request-ID header reports.
//
// # Middleware
//
// Handler wraps the routes with permissive CORS (the service expects
// browser frontends on other origins) and per-request logging. Each
// request gets a uuid, one access log line with status and duration, and
// a context logger that handlers enrich with pipeline diagnostics.
package server
