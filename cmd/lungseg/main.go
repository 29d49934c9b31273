package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	dimaging "github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"github.com/openchest/lungseg/internal/dicom"
	"github.com/openchest/lungseg/internal/imaging"
	"github.com/openchest/lungseg/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg := pipeline.Default()

	outDir := flag.String("out", "", "artifact directory (default: alongside the input file)")
	save := flag.Bool("save", false, "write normalized, mask and contour composite PNGs")
	thumb := flag.Int("thumb", 0, "also write a thumbnail this many pixels wide")
	seed := flag.Int64("seed", 0, "subsampling seed, 0 keeps it time-based")
	quiet := flag.Bool("quiet", false, "log warnings and errors only")
	showVersion := flag.Bool("version", false, "print version information and exit")

	flag.Float64Var(&cfg.WindowMin, "img-min", cfg.WindowMin, "window lower bound in Hounsfield units")
	flag.Float64Var(&cfg.WindowMax, "img-max", cfg.WindowMax, "window upper bound in Hounsfield units")
	flag.IntVar(&cfg.KernelSize, "kernel", cfg.KernelSize, "smoothing kernel size, odd")
	flag.Float64Var(&cfg.Sigma, "sigma", cfg.Sigma, "smoothing sigma, 0 derives it from the kernel size")
	flag.Float64Var(&cfg.AreaMin, "area-min", cfg.AreaMin, "smallest accepted contour area in pixels")
	flag.Float64Var(&cfg.AreaMax, "area-max", cfg.AreaMax, "largest accepted contour area in pixels")
	flag.BoolVar(&cfg.Subsample, "sample", cfg.Subsample, "subsample accepted contours")
	flag.Float64Var(&cfg.KeepProbability, "keep", cfg.KeepProbability, "per-contour keep probability when sampling")
	flag.StringVar(&cfg.OverlayColor, "overlay-color", cfg.OverlayColor, "composite stroke color as #RRGGBB")
	flag.Parse()

	if *showVersion {
		fmt.Printf("lungseg %s (built %s, commit %s)\n", Version, BuildTime, GitCommit)
		return
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	log := zerolog.New(out).With().Timestamp().Logger()
	if *quiet {
		log = log.Level(zerolog.WarnLevel)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: lungseg [flags] <file.dcm>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	if *seed != 0 {
		cfg.Rand = rand.New(rand.NewSource(*seed))
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	slice, err := dicom.DecodeFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("decode failed")
	}

	start := time.Now()
	res, err := pipeline.Run(slice, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("segmentation failed")
	}
	log.Info().
		Str("file", path).
		Float64("hu_min", res.Stats.Min).
		Float64("hu_max", res.Stats.Max).
		Int("threshold", int(res.Threshold)).
		Int("contours_traced", len(res.Contours)).
		Int("contours_accepted", len(res.Accepted)).
		Dur("elapsed", time.Since(start)).
		Msg("slice segmented")

	if *save || *thumb > 0 {
		if err := writeArtifacts(path, *outDir, *save, *thumb, cfg, res); err != nil {
			log.Fatal().Err(err).Msg("artifact write failed")
		}
	}

	summary := map[string]interface{}{
		"file":            path,
		"rows":            slice.Rows,
		"cols":            slice.Cols,
		"stats":           res.Stats,
		"threshold":       res.Threshold,
		"contours_traced": len(res.Contours),
		"contours":        res.Accepted,
	}
	if res.Sampled != nil {
		summary["sampled_contours"] = res.Sampled
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		log.Fatal().Err(err).Msg("summary encode failed")
	}
}

// writeArtifacts drops PNG renderings of the run next to the input file,
// or into outDir when set.
func writeArtifacts(input, outDir string, save bool, thumb int, cfg pipeline.Config, res *pipeline.Result) error {
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	target := func(suffix string) string {
		return filepath.Join(dir, base+suffix)
	}

	if save {
		if err := imgio.Save(target("_normalized.png"), res.Normalized, imgio.PNGEncoder()); err != nil {
			return fmt.Errorf("write normalized image: %w", err)
		}
		if err := imgio.Save(target("_mask.png"), res.Mask, imgio.PNGEncoder()); err != nil {
			return fmt.Errorf("write mask: %w", err)
		}
		composite, err := imaging.RenderComposite(res.Normalized, res.Accepted, cfg.OverlayColor)
		if err != nil {
			return fmt.Errorf("render contour composite: %w", err)
		}
		if err := imgio.Save(target("_contours.png"), composite, imgio.PNGEncoder()); err != nil {
			return fmt.Errorf("write contour composite: %w", err)
		}
	}

	if thumb > 0 {
		small := dimaging.Resize(res.Normalized, thumb, 0, dimaging.Lanczos)
		if err := imgio.Save(target("_thumb.png"), small, imgio.PNGEncoder()); err != nil {
			return fmt.Errorf("write thumbnail: %w", err)
		}
	}
	return nil
}
