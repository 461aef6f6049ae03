package quantize

import "sort"

// Entry is one palette color and the number of source pixels its box held.
type Entry struct {
	Color      Pixel `json:"color"`
	Population int   `json:"population"`
}

// buildPalette reduces every box to its mean color and orders the result by
// brightness, ascending. Boxes of equal brightness keep their discovery order.
func buildPalette(pixels []Pixel, boxes []*colorBox) []Entry {
	entries := make([]Entry, 0, len(boxes))
	for _, b := range boxes {
		entries = append(entries, Entry{
			Color:      b.mean(pixels),
			Population: len(b.members),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Color.Brightness() < entries[j].Color.Brightness()
	})
	return entries
}

// mean is the per-channel average of the members, truncated to 8 bits.
func (b *colorBox) mean(pixels []Pixel) Pixel {
	var r, g, bl, a uint64
	for _, idx := range b.members {
		p := pixels[idx]
		r += uint64(p.R)
		g += uint64(p.G)
		bl += uint64(p.B)
		a += uint64(p.A)
	}

	n := uint64(len(b.members))
	return Pixel{
		R: uint8(r / n),
		G: uint8(g / n),
		B: uint8(bl / n),
		A: uint8(a / n),
	}
}
