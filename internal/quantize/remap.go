package quantize

import "fmt"

// Nearest returns the index of the palette entry closest to p in RGB space.
// The first entry wins a tie. It returns -1 for an empty palette.
func Nearest(p Pixel, palette []Pixel) int {
	best, bestDist := -1, 0
	for i, c := range palette {
		d := distanceSquared(p, c)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
			if d == 0 {
				break
			}
		}
	}
	return best
}

// Remap returns a new buffer in which every pixel is replaced by its nearest
// palette color. Source alpha is kept. The input buffer is not modified.
//
// An empty palette is only accepted for an empty buffer.
func Remap(pixels []Pixel, palette []Pixel) ([]Pixel, error) {
	if len(pixels) > 0 && len(palette) == 0 {
		return nil, fmt.Errorf("%w: empty palette for %d pixels", ErrInvalidArgument, len(pixels))
	}

	out := make([]Pixel, len(pixels))
	for i, p := range pixels {
		c := palette[Nearest(p, palette)]
		c.A = p.A
		out[i] = c
	}
	return out, nil
}
