package server

import (
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/openchest/lungseg/internal/dicom"
	"github.com/openchest/lungseg/internal/pipeline"
)

// DefaultMaxUploadBytes caps the accepted request body. Uncompressed
// single-slice files run well under a megabyte, so the default leaves
// generous headroom.
const DefaultMaxUploadBytes = 32 << 20

// Server handles slice uploads over HTTP.
type Server struct {
	log       zerolog.Logger
	cfg       pipeline.Config
	decode    func(io.Reader, int64) (*dicom.Slice, error)
	maxUpload int64
}

// New creates a server running the pipeline with the given configuration.
// maxUpload caps the request body in bytes; zero or negative selects
// DefaultMaxUploadBytes. The caller is expected to have validated cfg.
func New(cfg pipeline.Config, log zerolog.Logger, maxUpload int64) *Server {
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUploadBytes
	}
	return &Server{
		log:       log,
		cfg:       cfg,
		decode:    dicom.Decode,
		maxUpload: maxUpload,
	}
}

// ServeMux returns the route table without any middleware attached.
func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/upload", s.handleUpload)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Handler returns the complete handler chain: CORS, then request
// identification and access logging, then the routes.
func (s *Server) Handler() http.Handler {
	return s.withCORS(s.withRequestLog(s.ServeMux()))
}

// withRequestLog tags each request with a fresh id, exposes it in the
// X-Request-ID response header and the context logger, and writes one
// access log line when the request finishes.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)

		reqLog := s.log.With().Str("request_id", id).Logger()
		lw := &loggingResponseWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(lw, r.WithContext(reqLog.WithContext(r.Context())))

		reqLog.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", lw.status).
			Dur("elapsed", time.Since(start)).
			Msg("request served")
	})
}

// withCORS answers preflight requests and marks every response as
// cross-origin readable, so browser frontends on other origins can call
// the upload endpoint directly.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// loggingResponseWriter records the status code for the access log.
type loggingResponseWriter struct {
	http.ResponseWriter
	status int
}

func (w *loggingResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
