package quantize

import (
	"errors"
	"testing"
)

func indices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func TestColorBox_Bounds(t *testing.T) {
	pixels := []Pixel{
		{R: 10, G: 200, B: 30},
		{R: 50, G: 100, B: 30},
		{R: 20, G: 150, B: 90},
	}

	b, err := newColorBox(pixels, indices(len(pixels)))
	if err != nil {
		t.Fatalf("newColorBox failed: %v", err)
	}

	if b.min != [3]uint8{10, 100, 30} {
		t.Errorf("min: got %v", b.min)
	}
	if b.max != [3]uint8{50, 200, 90} {
		t.Errorf("max: got %v", b.max)
	}
	if b.widestAxis() != green || b.spread() != 100 {
		t.Errorf("widest axis %d spread %d, want green 100", b.widestAxis(), b.spread())
	}
}

func TestColorBox_EmptyBounds(t *testing.T) {
	if _, err := newColorBox([]Pixel{gray(1)}, nil); !errors.Is(err, errEmptyBox) {
		t.Errorf("got %v, want errEmptyBox", err)
	}
}

func TestColorBox_WidestAxisTieBreak(t *testing.T) {
	tests := []struct {
		name   string
		pixels []Pixel
		want   channel
	}{
		{"all equal", []Pixel{gray(0), gray(9)}, red},
		{"green and blue", []Pixel{{R: 0, G: 0, B: 0}, {R: 1, G: 9, B: 9}}, green},
		{"red and blue", []Pixel{{R: 0, G: 0, B: 0}, {R: 9, G: 1, B: 9}}, red},
		{"blue alone", []Pixel{{R: 0, G: 0, B: 0}, {R: 1, G: 2, B: 9}}, blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := newColorBox(tt.pixels, indices(len(tt.pixels)))
			if err != nil {
				t.Fatalf("newColorBox failed: %v", err)
			}
			if got := b.widestAxis(); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestColorBox_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		pixels []Pixel
		want   bool
	}{
		{"single member", []Pixel{gray(3)}, true},
		{"one color", []Pixel{gray(3), gray(3), gray(3)}, true},
		{"two colors", []Pixel{gray(3), gray(4)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := newColorBox(tt.pixels, indices(len(tt.pixels)))
			if err != nil {
				t.Fatalf("newColorBox failed: %v", err)
			}
			if got := b.degenerate(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorBox_SplitAtMidpoint(t *testing.T) {
	// Midpoint of 0..100 is 50; 50 itself goes high.
	pixels := []Pixel{gray(0), gray(49), gray(50), gray(100), gray(10)}

	b, err := newColorBox(pixels, indices(len(pixels)))
	if err != nil {
		t.Fatalf("newColorBox failed: %v", err)
	}

	low, high, ok, err := b.split(pixels)
	if err != nil || !ok {
		t.Fatalf("split failed: ok=%v err=%v", ok, err)
	}

	if got := low.members; len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 4 {
		t.Errorf("low members: got %v, want [0 1 4]", got)
	}
	if got := high.members; len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("high members: got %v, want [2 3]", got)
	}
	if low.max[red] != 49 || high.min[red] != 50 {
		t.Errorf("child bounds not recomputed: low max %d, high min %d", low.max[red], high.min[red])
	}
}

func TestColorBox_SplitOddRange(t *testing.T) {
	// Midpoint of 0..1 is 0.5: 0 goes low, 1 goes high.
	pixels := []Pixel{gray(1), gray(0)}

	b, err := newColorBox(pixels, indices(len(pixels)))
	if err != nil {
		t.Fatalf("newColorBox failed: %v", err)
	}

	low, high, ok, err := b.split(pixels)
	if err != nil || !ok {
		t.Fatalf("split failed: ok=%v err=%v", ok, err)
	}
	if len(low.members) != 1 || low.members[0] != 1 || len(high.members) != 1 || high.members[0] != 0 {
		t.Errorf("got low %v high %v", low.members, high.members)
	}
}

func TestColorBox_SplitRefusesEmptySide(t *testing.T) {
	pixels := []Pixel{gray(7), gray(7)}

	b, err := newColorBox(pixels, indices(len(pixels)))
	if err != nil {
		t.Fatalf("newColorBox failed: %v", err)
	}

	low, high, ok, err := b.split(pixels)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if ok || low != nil || high != nil {
		t.Error("split of a one-color box should be refused")
	}
	if len(b.members) != 2 {
		t.Error("refused split modified the box")
	}
}
