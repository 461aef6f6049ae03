package imaging

import (
	"image"

	"github.com/ironsheep/raster-tools-mcp/internal/quantize"
)

// PaletteEntry is one color of an extracted palette.
type PaletteEntry struct {
	ColorResult
	Population int     `json:"population"` // Pixels whose box produced this color
	Percentage float64 `json:"percentage"` // Population as a share of the image (0-100)
}

// PaletteResult is a median-cut palette, darkest color first.
type PaletteResult struct {
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	MaxColors int            `json:"max_colors"`
	Colors    []PaletteEntry `json:"colors"`
}

// QuantizeImage reduces img to at most maxColors colors with median cut.
//
// Returns the quantized image and its palette. The input image is not modified.
func QuantizeImage(img image.Image, maxColors int) (*image.NRGBA, *PaletteResult, error) {
	pixels, w, h := ToPixels(img)

	res, err := quantize.Quantize(pixels, w, h, maxColors)
	if err != nil {
		return nil, nil, err
	}

	return FromPixels(res.Pixels, w, h), newPaletteResult(res, maxColors), nil
}

// ExtractPalette derives the median-cut palette of img without producing the
// remapped image.
func ExtractPalette(img image.Image, maxColors int) (*PaletteResult, error) {
	_, pal, err := QuantizeImage(img, maxColors)
	return pal, err
}

func newPaletteResult(res *quantize.Result, maxColors int) *PaletteResult {
	total := res.Width * res.Height

	colors := make([]PaletteEntry, 0, len(res.Palette))
	for _, e := range res.Palette {
		entry := PaletteEntry{
			ColorResult: newColorResult(e.Color.R, e.Color.G, e.Color.B, e.Color.A),
			Population:  e.Population,
		}
		if total > 0 {
			entry.Percentage = float64(e.Population) / float64(total) * 100
		}
		colors = append(colors, entry)
	}

	return &PaletteResult{
		Width:     res.Width,
		Height:    res.Height,
		MaxColors: maxColors,
		Colors:    colors,
	}
}
