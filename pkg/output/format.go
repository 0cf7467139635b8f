package output

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

var (
	// ErrUnsupportedFormat is returned for output paths with an unknown extension
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrSizeMismatch is returned when a pixel buffer does not match its dimensions
	ErrSizeMismatch = errors.New("pixel buffer size mismatch")
)

// Format identifies an image encoding
type Format int

const (
	FormatPPM Format = iota
	FormatPNG
	FormatBMP
)

// String returns the format's conventional extension without the dot
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	default:
		return "ppm"
	}
}

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatBMP:
		return "image/bmp"
	default:
		return "image/x-portable-pixmap"
	}
}

// FormatFromPath chooses the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return FormatPPM, nil
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// WriteFrame encodes frame in format; binaryPPM selects P6 over P3 for pixmaps
func WriteFrame(w io.Writer, frame *renderer.Frame, format Format, binaryPPM bool) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, frame.Width, frame.Height, frame.Pix, binaryPPM)
	case FormatPNG:
		return WritePNG(w, frame.Image())
	case FormatBMP:
		return WriteBMP(w, frame.Image())
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}
}
