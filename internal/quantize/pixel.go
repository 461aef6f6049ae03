package quantize

// Pixel is one 8-bit RGBA sample. Palette entries use the same type.
type Pixel struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Brightness returns R+G+B, the key the palette is ordered by.
func (p Pixel) Brightness() int {
	return int(p.R) + int(p.G) + int(p.B)
}

// channel selects one of the color channels that take part in splitting.
type channel int

const (
	red channel = iota
	green
	blue
)

func (p Pixel) channel(c channel) uint8 {
	switch c {
	case red:
		return p.R
	case green:
		return p.G
	default:
		return p.B
	}
}

// distanceSquared is the squared Euclidean distance over R, G and B.
func distanceSquared(a, b Pixel) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
