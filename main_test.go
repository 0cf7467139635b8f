package main

import (
	"context"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectError bool
		check       func(t *testing.T, cfg Config)
	}{
		{
			name: "defaults",
			args: nil,
			check: func(t *testing.T, cfg Config) {
				if cfg.Scene != "cornell" {
					t.Errorf("Expected default scene cornell, got %q", cfg.Scene)
				}
				if cfg.Width != 0 || cfg.Height != 0 || cfg.Samples != 0 || cfg.Seed != 0 {
					t.Errorf("Expected zero overrides by default, got %+v", cfg)
				}
				if cfg.EnvFile != ".env" {
					t.Errorf("Expected default env file .env, got %q", cfg.EnvFile)
				}
			},
		},
		{
			name: "overrides",
			args: []string{"-scene", "random", "-width", "64", "-height", "32", "-spp", "4", "-depth", "5",
				"-seed", "7", "-workers", "2", "-out", "img.ppm", "-binary", "-thumb", "16"},
			check: func(t *testing.T, cfg Config) {
				want := Config{Scene: "random", Width: 64, Height: 32, Samples: 4, MaxDepth: 5, Seed: 7,
					Workers: 2, Output: "img.ppm", BinaryPPM: true, Thumbnail: 16, EnvFile: ".env"}
				if cfg != want {
					t.Errorf("Expected %+v, got %+v", want, cfg)
				}
			},
		},
		{
			name: "help",
			args: []string{"-help"},
			check: func(t *testing.T, cfg Config) {
				if !cfg.Help {
					t.Error("Expected Help to be set")
				}
			},
		},
		{"unknown flag", []string{"-bogus"}, true, nil},
		{"bad integer", []string{"-width", "wide"}, true, nil},
		{"stray argument", []string{"cornell"}, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args, io.Discard)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for args %v, got none", tt.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for args %v: %v", tt.args, err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestPrintHelp_ListsScenes(t *testing.T) {
	var sb strings.Builder
	printHelp(&sb)
	help := sb.String()

	for _, name := range scene.Names() {
		if !strings.Contains(help, name) {
			t.Errorf("Help output missing scene %q", name)
		}
	}
	if !strings.Contains(help, "-spp") {
		t.Error("Help output missing -spp flag")
	}
}

func TestApplyOverrides(t *testing.T) {
	s, err := scene.New("cornell", 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defaultHeight := s.Sampling.Height
	defaultDepth := s.Sampling.MaxDepth

	applyOverrides(s, Config{Width: 100, Samples: 3, Seed: 9, Workers: 2})

	if s.Sampling.Width != 100 || s.Sampling.Height != defaultHeight {
		t.Errorf("Expected 100x%d, got %dx%d", defaultHeight, s.Sampling.Width, s.Sampling.Height)
	}
	if s.Sampling.SamplesPerPixel != 3 {
		t.Errorf("Expected 3 spp, got %d", s.Sampling.SamplesPerPixel)
	}
	if s.Sampling.MaxDepth != defaultDepth {
		t.Errorf("Expected depth to stay %d, got %d", defaultDepth, s.Sampling.MaxDepth)
	}
	if s.Sampling.Seed != 9 || s.Sampling.NumWorkers != 2 {
		t.Errorf("Expected seed 9 and 2 workers, got %d and %d", s.Sampling.Seed, s.Sampling.NumWorkers)
	}
	wantAspect := 100.0 / float64(defaultHeight)
	if s.Camera.AspectRatio != wantAspect {
		t.Errorf("Expected aspect ratio %v, got %v", wantAspect, s.Camera.AspectRatio)
	}
}

func TestRun_WritesPPM(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "nested", "wall.ppm")
	cfg := Config{Scene: "emissive-wall", Seed: 1, Output: outPath}

	if err := run(context.Background(), cfg, renderer.NopLogger{}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	want := "P3\n2 2\n255\n128 128 128\n128 128 128\n128 128 128\n128 128 128\n"
	if string(data) != want {
		t.Errorf("Expected PPM\n%q\ngot\n%q", want, string(data))
	}
}

func TestRun_WritesPNGAndThumbnail(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "render.png")
	cfg := Config{Scene: "emissive-wall", Seed: 1, Output: outPath, Width: 8, Height: 4, Thumbnail: 2}

	if err := run(context.Background(), cfg, renderer.NopLogger{}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		path          string
		width, height int
	}{
		{outPath, 8, 4},
		{filepath.Join(dir, "render_thumb.png"), 2, 1},
	}
	for _, tt := range tests {
		f, err := os.Open(tt.path)
		if err != nil {
			t.Fatalf("Failed to open %s: %v", tt.path, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("Failed to decode %s: %v", tt.path, err)
		}
		if b := img.Bounds(); b.Dx() != tt.width || b.Dy() != tt.height {
			t.Errorf("%s: expected %dx%d, got %dx%d", tt.path, tt.width, tt.height, b.Dx(), b.Dy())
		}
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"unknown scene", Config{Scene: "nonexistent", Output: filepath.Join(dir, "a.ppm")}, scene.ErrUnknownScene},
		{"unsupported extension", Config{Scene: "emissive-wall", Output: filepath.Join(dir, "a.gif")}, output.ErrUnsupportedFormat},
		{"publish without bucket", Config{Scene: "emissive-wall", Output: filepath.Join(dir, "a.ppm"), Publish: true}, output.ErrNoBucket},
	}

	t.Setenv("S3_BUCKET", "")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), tt.cfg, renderer.NopLogger{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outPath := filepath.Join(t.TempDir(), "cancelled.ppm")
	err := run(ctx, Config{Scene: "emissive-wall", Seed: 1, Output: outPath}, renderer.NopLogger{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Errorf("Expected no output file after cancellation, stat returned %v", statErr)
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.env")
	malformed := filepath.Join(dir, "malformed.env")
	if err := os.WriteFile(valid, []byte("PATHTRACER_TEST_BUCKET=renders\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(malformed, []byte("BAD-KEY=1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Registers cleanup, then clears so the file value is not shadowed
	t.Setenv("PATHTRACER_TEST_BUCKET", "")
	os.Unsetenv("PATHTRACER_TEST_BUCKET")

	tests := []struct {
		name        string
		path        string
		expectError bool
	}{
		{"empty path", "", false},
		{"missing file", filepath.Join(dir, "missing.env"), false},
		{"valid file", valid, false},
		{"malformed file", malformed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loadEnv(tt.path)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error loading %s", tt.path)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error loading %s: %v", tt.path, err)
			}
		})
	}

	if got := os.Getenv("PATHTRACER_TEST_BUCKET"); got != "renders" {
		t.Errorf("Expected PATHTRACER_TEST_BUCKET=renders from the env file, got %q", got)
	}
}
