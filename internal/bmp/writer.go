package bmp

import (
	"fmt"
	"image"
	"image/color"
	"io"

	xbmp "golang.org/x/image/bmp"
)

// Encode writes img to w as a bottom-up 24-bit uncompressed BMP.
// Alpha is discarded; color channels are written un-premultiplied.
func Encode(w io.Writer, img image.Image) error {
	b := img.Bounds()
	opaque := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			opaque.SetRGBA(x-b.Min.X, y-b.Min.Y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}

	// An opaque *image.RGBA is written with 24 bits per pixel.
	if err := xbmp.Encode(w, opaque); err != nil {
		return fmt.Errorf("failed to encode BMP: %w", err)
	}
	return nil
}
