package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	Scene     string
	Width     int // 0 keeps the scene default
	Height    int
	Samples   int
	MaxDepth  int
	Seed      int64
	Workers   int
	Output    string // Empty writes output/<scene>/render_<timestamp>.png
	Thumbnail uint   // Max thumbnail edge; 0 disables
	BinaryPPM bool
	Publish   bool
	EnvFile   string
	Help      bool
}

// newFlagSet binds the command line options to cfg
func newFlagSet(cfg *Config, out io.Writer) *flag.FlagSet {
	flags := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	flags.SetOutput(out)

	flags.StringVar(&cfg.Scene, "scene", "cornell", "Scene name: "+strings.Join(scene.Names(), ", "))
	flags.IntVar(&cfg.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flags.IntVar(&cfg.Height, "height", 0, "Image height in pixels (0 = scene default)")
	flags.IntVar(&cfg.Samples, "spp", 0, "Samples per pixel (0 = scene default)")
	flags.IntVar(&cfg.MaxDepth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	flags.Int64Var(&cfg.Seed, "seed", 0, "Random seed for reproducible renders (0 = random)")
	flags.IntVar(&cfg.Workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	flags.StringVar(&cfg.Output, "out", "", "Output file; the extension selects ppm, png or bmp")
	flags.UintVar(&cfg.Thumbnail, "thumb", 0, "Also write a PNG thumbnail no larger than this many pixels")
	flags.BoolVar(&cfg.BinaryPPM, "binary", false, "Write binary (P6) instead of plain (P3) PPM")
	flags.BoolVar(&cfg.Publish, "publish", false, "Upload the image to S3 using S3_* environment settings")
	flags.StringVar(&cfg.EnvFile, "env", ".env", "Environment file loaded before reading S3 settings")
	flags.BoolVar(&cfg.Help, "help", false, "Show help information")
	return flags
}

// parseFlags parses args (without the program name) into a Config
func parseFlags(args []string, stderr io.Writer) (Config, error) {
	var cfg Config
	flags := newFlagSet(&cfg, stderr)
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	if flags.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}
	return cfg, nil
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Monte Carlo Path Tracer")
	fmt.Fprintln(w, "Usage: pathtracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	var cfg Config
	newFlagSet(&cfg, w).PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, name := range scene.Names() {
		fmt.Fprintf(w, "  %s\n", name)
	}
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if cfg.Help {
		printHelp(os.Stdout)
		return
	}

	if err := loadEnv(cfg.EnvFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadEnv loads variables from path. A missing file is not an error since
// settings may come from the real environment.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// run renders the configured scene, writes it and optionally publishes it
func run(ctx context.Context, cfg Config, logger core.Logger) error {
	outputPath := cfg.Output
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = filepath.Join("output", cfg.Scene, fmt.Sprintf("render_%s.png", timestamp))
	}
	format, err := output.FormatFromPath(outputPath)
	if err != nil {
		return err
	}

	var publisher *output.S3Publisher
	if cfg.Publish {
		if publisher, err = output.NewS3Publisher(output.S3ConfigFromEnv()); err != nil {
			return err
		}
	}

	s, err := scene.New(cfg.Scene, cfg.Seed)
	if err != nil {
		return err
	}
	applyOverrides(s, cfg)
	logger.Printf("Using %s scene (%d objects)...\n", s.Name, s.GetPrimitiveCount())

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := s.Preprocess(core.NewSeededSampler(seed)); err != nil {
		return err
	}
	if stats, ok := s.BVHStats(); ok {
		logger.Printf("BVH: %d nodes, %d leaves, depth %d\n", stats.TotalNodes, stats.LeafNodes, stats.MaxDepth)
	}

	raytracer, err := renderer.NewRaytracer(s, s.Sampling, logger)
	if err != nil {
		return err
	}
	frame, _, err := raytracer.Render(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := output.WriteFrame(&buf, frame, format, cfg.BinaryPPM); err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	if err := writeFile(outputPath, buf.Bytes()); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", outputPath)

	if cfg.Thumbnail > 0 {
		thumbPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + "_thumb.png"
		var thumb bytes.Buffer
		if err := output.WritePNG(&thumb, output.Thumbnail(frame.Image(), cfg.Thumbnail)); err != nil {
			return fmt.Errorf("encoding thumbnail: %w", err)
		}
		if err := writeFile(thumbPath, thumb.Bytes()); err != nil {
			return err
		}
		logger.Printf("Thumbnail saved as %s\n", thumbPath)
	}

	if publisher != nil {
		key, err := publisher.Publish(ctx, filepath.Base(outputPath), buf.Bytes(), format.ContentType())
		if err != nil {
			return err
		}
		logger.Printf("Published %s (%d bytes)\n", key, buf.Len())
	}

	return nil
}

// applyOverrides replaces scene defaults with any options set on the command line
func applyOverrides(s *scene.Scene, cfg Config) {
	width, height := s.Sampling.Width, s.Sampling.Height
	if cfg.Width > 0 {
		width = cfg.Width
	}
	if cfg.Height > 0 {
		height = cfg.Height
	}
	s.SetImageSize(width, height)

	if cfg.Samples > 0 {
		s.Sampling.SamplesPerPixel = cfg.Samples
	}
	if cfg.MaxDepth > 0 {
		s.Sampling.MaxDepth = cfg.MaxDepth
	}
	s.Sampling.Seed = cfg.Seed
	s.Sampling.NumWorkers = cfg.Workers
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
