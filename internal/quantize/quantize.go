package quantize

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned for a non-positive color count, negative
// dimensions, or a buffer whose length does not match width*height.
var ErrInvalidArgument = errors.New("quantize: invalid argument")

// DefaultMaxColors is the palette size used when the caller has no preference.
const DefaultMaxColors = 64

// Result holds the derived palette and the remapped buffer.
type Result struct {
	// Palette is ordered by brightness (R+G+B), ascending. Its length is at most
	// the requested color count.
	Palette []Entry `json:"palette"`

	// Pixels has the dimensions of the input; every pixel's RGB is a palette color.
	Pixels []Pixel `json:"-"`

	Width  int `json:"width"`
	Height int `json:"height"`
}

// Colors returns the palette colors without populations.
func (r *Result) Colors() []Pixel {
	colors := make([]Pixel, len(r.Palette))
	for i, e := range r.Palette {
		colors[i] = e.Color
	}
	return colors
}

// Quantize reduces a row-major buffer of width*height pixels to at most maxColors
// colors using median cut.
//
// Returns:
//   - *Result: the palette and a newly allocated remapped buffer.
//   - error: wraps ErrInvalidArgument if maxColors < 1, a dimension is negative,
//     width*height overflows int, or len(pixels) != width*height. No work is done in that case.
//
// An empty image yields an empty palette and an empty buffer.
func Quantize(pixels []Pixel, width, height, maxColors int) (*Result, error) {
	if maxColors < 1 {
		return nil, fmt.Errorf("%w: maxColors must be at least 1, got %d", ErrInvalidArgument, maxColors)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidArgument, width, height)
	}
	if height != 0 && width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: dimensions %dx%d overflow", ErrInvalidArgument, width, height)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("%w: buffer holds %d pixels, %dx%d needs %d",
			ErrInvalidArgument, len(pixels), width, height, width*height)
	}

	if len(pixels) == 0 {
		return &Result{Palette: []Entry{}, Pixels: []Pixel{}, Width: width, Height: height}, nil
	}

	boxes, err := splitBoxes(pixels, maxColors)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Palette: buildPalette(pixels, boxes),
		Width:   width,
		Height:  height,
	}
	if res.Pixels, err = Remap(pixels, res.Colors()); err != nil {
		return nil, err
	}
	return res, nil
}
