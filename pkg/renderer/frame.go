package renderer

import (
	"image"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Frame is a rendered image as packed 8-bit RGB, row-major with the top row first
type Frame struct {
	Width, Height int
	Pix           []byte
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]byte, 3*width*height),
	}
}

// offset returns the index of the first byte of pixel (x, y), y counted from the top
func (f *Frame) offset(x, y int) int {
	return 3 * (y*f.Width + x)
}

// Image converts the frame to an opaque RGBA image
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			src := f.offset(x, y)
			dst := img.PixOffset(x, y)
			img.Pix[dst] = f.Pix[src]
			img.Pix[dst+1] = f.Pix[src+1]
			img.Pix[dst+2] = f.Pix[src+2]
			img.Pix[dst+3] = 255
		}
	}
	return img
}

// ToneMap averages a radiance sum over samples and gamma-2 encodes it to bytes
func ToneMap(sum core.Vec3, samples int) [3]byte {
	scale := 1.0 / float64(samples)
	return [3]byte{
		encodeChannel(sum.X * scale),
		encodeChannel(sum.Y * scale),
		encodeChannel(sum.Z * scale),
	}
}

func encodeChannel(linear float64) byte {
	c := math.Sqrt(linear)
	if !(c > 0) {
		return 0
	}
	if c > 0.999 {
		c = 0.999
	}
	return byte(256 * c)
}
