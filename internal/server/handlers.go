package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/openchest/lungseg/internal/imaging"
	"github.com/openchest/lungseg/internal/pipeline"
)

// uploadField is the multipart form field carrying the slice file.
const uploadField = "dicom"

// errorResponse is the error envelope shared by every failure path.
type errorResponse struct {
	Error string `json:"error"`
}

// healthResponse answers liveness probes.
type healthResponse struct {
	Status string `json:"status"`
}

// handleUpload accepts one file in the "dicom" multipart field, runs the
// pipeline on it, and answers with a JSON document carrying:
//
//	{
//	  "preview":  "<base64 PNG, rotated to viewing orientation>",
//	  "contours": {"contour_0": [[row, col], ...], ...},
//	  "sampled_contours": {...},   // only when subsampling is enabled
//	  "overlay":  "<base64 PNG>"   // only when overlay rendering is enabled
//	}
//
// A request without the field or with an undecodable file is the client's
// fault (400). A well-formed non-CT file is rejected as unprocessable
// (422). Anything else is a 500 whose body says no more than that; the
// cause goes to the log under the request id.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	log := zerolog.Ctx(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	file, header, err := r.FormFile(uploadField)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "missing file field \"dicom\"")
		return
	}
	defer file.Close()

	slice, err := s.decode(file, header.Size)
	if err != nil {
		log.Warn().Err(err).Str("filename", header.Filename).Msg("decode failed")
		writeJSONError(w, http.StatusBadRequest, "could not decode DICOM file")
		return
	}

	start := time.Now()
	res, err := pipeline.Run(slice, s.cfg)
	if err != nil {
		var modErr *imaging.UnsupportedModalityError
		if errors.As(err, &modErr) {
			writeJSONError(w, http.StatusUnprocessableEntity, modErr.Error())
			return
		}
		log.Error().Err(err).Msg("pipeline failed")
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	preview, err := imaging.EncodePreview(res.Normalized, true)
	if err != nil {
		log.Error().Err(err).Msg("preview encode failed")
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := map[string]interface{}{
		"preview":  preview,
		"contours": res.Accepted,
	}
	if res.Sampled != nil {
		resp["sampled_contours"] = res.Sampled
	}
	if res.Overlay != nil {
		overlay, err := imaging.EncodePNGBase64(res.Overlay)
		if err != nil {
			log.Error().Err(err).Msg("overlay encode failed")
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		resp["overlay"] = overlay
	}

	ev := log.Info().
		Str("filename", header.Filename).
		Float64("hu_min", res.Stats.Min).
		Float64("hu_max", res.Stats.Max).
		Float64("hu_mean", res.Stats.Mean).
		Float64("hu_stddev", res.Stats.StdDev).
		Int("threshold", int(res.Threshold)).
		Int("contours_traced", len(res.Contours)).
		Int("contours_accepted", len(res.Accepted)).
		Dur("elapsed", time.Since(start))
	if res.Sampled != nil {
		ev = ev.Int("contours_sampled", len(res.Sampled))
	}
	ev.Msg("slice segmented")

	writeJSON(w, http.StatusOK, resp)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is gone already, so an encode failure here has no
	// recovery path.
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
