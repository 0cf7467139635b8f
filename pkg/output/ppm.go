package output

import (
	"bufio"
	"fmt"
	"io"
)

// WritePPM writes packed RGB pixels as a plain (P3) or binary (P6) pixmap
func WritePPM(w io.Writer, width, height int, pix []byte, binary bool) error {
	if len(pix) != 3*width*height {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrSizeMismatch, width, height, 3*width*height, len(pix))
	}

	bw := bufio.NewWriter(w)
	magic := "P3"
	if binary {
		magic = "P6"
	}
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n255\n", magic, width, height); err != nil {
		return err
	}

	if binary {
		if _, err := bw.Write(pix); err != nil {
			return err
		}
		return bw.Flush()
	}

	for i := 0; i < len(pix); i += 3 {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", pix[i], pix[i+1], pix[i+2]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
