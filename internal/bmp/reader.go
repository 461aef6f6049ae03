package bmp

import (
	"errors"
	"fmt"
	"image"
	"io"
)

// Decode reads a 24-bit uncompressed BMP image from r.
//
// Errors wrap ErrInvalidFormat for data that is not a BMP file, is truncated,
// or declares more pixels than the file holds, and ErrUnsupported for any other bit depth or a compressed file.
func Decode(r io.Reader) (*image.NRGBA, error) {
	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if !h.Supported() {
		return nil, fmt.Errorf("%w: %d bits per pixel, compression %d (24-bit uncompressed only)",
			ErrUnsupported, h.BitCount, h.Compression)
	}
	if err := h.checkDataLen(); err != nil {
		return nil, err
	}

	if skip := int64(h.DataOffset) - headersLen; skip > 0 {
		if _, err := io.CopyN(io.Discard, r, skip); err != nil {
			return nil, fmt.Errorf("%w: skipping to pixel data: %v", ErrInvalidFormat, err)
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, h.Width, h.Height))
	row := make([]byte, RowStride(h.Width))

	for i := 0; i < h.Height; i++ {
		if _, err := io.ReadFull(r, row); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return nil, fmt.Errorf("%w: reading row %d: %v", ErrInvalidFormat, i, err)
		}

		y := h.Height - 1 - i
		if h.TopDown {
			y = i
		}

		dst := img.Pix[y*img.Stride : y*img.Stride+h.Width*4]
		for x := 0; x < h.Width; x++ {
			// Stored as B, G, R.
			dst[x*4+0] = row[x*3+2]
			dst[x*4+1] = row[x*3+1]
			dst[x*4+2] = row[x*3+0]
			dst[x*4+3] = 0xFF
		}
	}

	return img, nil
}
