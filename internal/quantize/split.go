package quantize

import "slices"

// splitBoxes partitions every pixel of the buffer into at most maxColors boxes.
// pixels must not be empty and maxColors must be at least 1.
//
// Every index of pixels ends up in exactly one returned box.
func splitBoxes(pixels []Pixel, maxColors int) ([]*colorBox, error) {
	all := make([]int, len(pixels))
	for i := range all {
		all[i] = i
	}

	initial, err := newColorBox(pixels, all)
	if err != nil {
		return nil, err
	}

	worklist := []*colorBox{initial}
	var terminal []*colorBox

	for len(worklist) > 0 && len(worklist)+len(terminal) < maxColors {
		i := widestBox(worklist)
		b := worklist[i]
		worklist = slices.Delete(worklist, i, i+1)

		if b.degenerate() {
			terminal = append(terminal, b)
			continue
		}

		low, high, ok, err := b.split(pixels)
		if err != nil {
			return nil, err
		}
		if !ok {
			terminal = append(terminal, b)
			continue
		}
		worklist = append(worklist, low, high)
	}

	return append(terminal, worklist...), nil
}

// widestBox returns the index of the box with the largest spread.
// The first box wins a tie.
func widestBox(boxes []*colorBox) int {
	best, bestSpread := 0, -1
	for i, b := range boxes {
		if s := b.spread(); s > bestSpread {
			best, bestSpread = i, s
		}
	}
	return best
}

// split cuts the box on its widest axis at the midpoint of that axis' range.
// ok is false when one side would be empty; the box is then left untouched.
func (b *colorBox) split(pixels []Pixel) (low, high *colorBox, ok bool, err error) {
	axis := b.widestAxis()
	// v < (min+max)/2 without leaving integer arithmetic.
	threshold := int(b.min[axis]) + int(b.max[axis])

	lowMembers := make([]int, 0, len(b.members)/2)
	highMembers := make([]int, 0, len(b.members)/2)
	for _, idx := range b.members {
		if 2*int(pixels[idx].channel(axis)) < threshold {
			lowMembers = append(lowMembers, idx)
		} else {
			highMembers = append(highMembers, idx)
		}
	}

	if len(lowMembers) == 0 || len(highMembers) == 0 {
		return nil, nil, false, nil
	}

	if low, err = newColorBox(pixels, lowMembers); err != nil {
		return nil, nil, false, err
	}
	if high, err = newColorBox(pixels, highMembers); err != nil {
		return nil, nil, false, err
	}
	return low, high, true, nil
}
