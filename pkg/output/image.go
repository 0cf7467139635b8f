package output

import (
	"image"
	"image/png"
	"io"

	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
)

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// WriteBMP encodes img as an uncompressed BMP
func WriteBMP(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

// Thumbnail scales img to fit within maxSize×maxSize, keeping its aspect ratio.
// Images already small enough are returned unchanged.
func Thumbnail(img image.Image, maxSize uint) image.Image {
	return resize.Thumbnail(maxSize, maxSize, img, resize.Lanczos3)
}
