package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/raster-tools-mcp/internal/quantize"
)

// ToPixels flattens img into a row-major, unpadded buffer of non-premultiplied
// 8-bit samples, returning the buffer with its width and height.
func ToPixels(img image.Image) ([]quantize.Pixel, int, int) {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	pixels := make([]quantize.Pixel, 0, w*h)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w; x++ {
			pixels = append(pixels, quantize.Pixel{
				R: row[x*4+0],
				G: row[x*4+1],
				B: row[x*4+2],
				A: row[x*4+3],
			})
		}
	}
	return pixels, w, h
}

// FromPixels builds an image from a row-major buffer of width*height pixels.
// It panics if the buffer is shorter than width*height.
func FromPixels(pixels []quantize.Pixel, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			p := pixels[y*width+x]
			row[x*4+0] = p.R
			row[x*4+1] = p.G
			row[x*4+2] = p.B
			row[x*4+3] = p.A
		}
	}
	return img
}
