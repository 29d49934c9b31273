package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/openchest/lungseg/internal/pipeline"
	"github.com/openchest/lungseg/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg := pipeline.Default()

	addr := flag.String("addr", ":8000", "listen address")
	jsonLog := flag.Bool("json", false, "log JSON lines instead of console format")
	quiet := flag.Bool("quiet", false, "log warnings and errors only")
	maxUpload := flag.Int64("max-upload", server.DefaultMaxUploadBytes, "upload size cap in bytes")
	showVersion := flag.Bool("version", false, "print version information and exit")

	flag.Float64Var(&cfg.WindowMin, "img-min", cfg.WindowMin, "window lower bound in Hounsfield units")
	flag.Float64Var(&cfg.WindowMax, "img-max", cfg.WindowMax, "window upper bound in Hounsfield units")
	flag.IntVar(&cfg.KernelSize, "kernel", cfg.KernelSize, "smoothing kernel size, odd")
	flag.Float64Var(&cfg.Sigma, "sigma", cfg.Sigma, "smoothing sigma, 0 derives it from the kernel size")
	flag.Float64Var(&cfg.AreaMin, "area-min", cfg.AreaMin, "smallest accepted contour area in pixels")
	flag.Float64Var(&cfg.AreaMax, "area-max", cfg.AreaMax, "largest accepted contour area in pixels")
	flag.BoolVar(&cfg.Subsample, "sample", cfg.Subsample, "subsample accepted contours")
	flag.Float64Var(&cfg.KeepProbability, "keep", cfg.KeepProbability, "per-contour keep probability when sampling")
	flag.BoolVar(&cfg.Overlay, "overlay", cfg.Overlay, "render contour overlays into responses")
	flag.StringVar(&cfg.OverlayColor, "overlay-color", cfg.OverlayColor, "overlay stroke color as #RRGGBB")
	flag.Parse()

	if *showVersion {
		fmt.Printf("lungseg-server %s (built %s, commit %s)\n", Version, BuildTime, GitCommit)
		return
	}

	log := newLogger(*jsonLog)
	if *quiet {
		log = log.Level(zerolog.WarnLevel)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           server.New(cfg, log, *maxUpload).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info().Str("addr", *addr).Str("version", Version).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(jsonLog bool) zerolog.Logger {
	if jsonLog {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).With().Timestamp().Logger()
}
