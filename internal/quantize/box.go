package quantize

import "errors"

var errEmptyBox = errors.New("quantize: bounds of an empty box")

// colorBox is a set of pixels, held as indices into the source buffer, together
// with the tight per-channel bounds of those pixels.
type colorBox struct {
	members []int
	min     [3]uint8
	max     [3]uint8
}

// newColorBox builds a box over members and computes its bounds.
func newColorBox(pixels []Pixel, members []int) (*colorBox, error) {
	b := &colorBox{members: members}
	if err := b.computeBounds(pixels); err != nil {
		return nil, err
	}
	return b, nil
}

// computeBounds sets min/max to the exact range of the members on every channel.
func (b *colorBox) computeBounds(pixels []Pixel) error {
	if len(b.members) == 0 {
		return errEmptyBox
	}

	first := pixels[b.members[0]]
	for c := red; c <= blue; c++ {
		b.min[c] = first.channel(c)
		b.max[c] = first.channel(c)
	}

	for _, idx := range b.members[1:] {
		p := pixels[idx]
		for c := red; c <= blue; c++ {
			v := p.channel(c)
			if v < b.min[c] {
				b.min[c] = v
			}
			if v > b.max[c] {
				b.max[c] = v
			}
		}
	}
	return nil
}

func (b *colorBox) span(c channel) int {
	return int(b.max[c]) - int(b.min[c])
}

// widestAxis returns the channel with the largest range. Ties go to red, then green.
func (b *colorBox) widestAxis() channel {
	rRange := b.span(red)
	gRange := b.span(green)
	bRange := b.span(blue)

	if rRange >= gRange && rRange >= bRange {
		return red
	}
	if gRange >= bRange {
		return green
	}
	return blue
}

// spread is the largest per-channel range of the box.
func (b *colorBox) spread() int {
	return b.span(b.widestAxis())
}

// degenerate reports whether the box cannot be split further.
func (b *colorBox) degenerate() bool {
	return len(b.members) < 2 || b.spread() == 0
}
