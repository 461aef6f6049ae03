package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
)

// FlipVertical mirrors img top to bottom.
func FlipVertical(img image.Image) *image.RGBA {
	return transform.FlipV(img)
}

// FlipHorizontal mirrors img left to right.
func FlipHorizontal(img image.Image) *image.RGBA {
	return transform.FlipH(img)
}

// Flip mirrors img along the named axis: "vertical" (top to bottom) or
// "horizontal" (left to right).
func Flip(img image.Image, axis string) (*image.RGBA, error) {
	switch strings.ToLower(axis) {
	case "vertical", "v":
		return FlipVertical(img), nil
	case "horizontal", "h":
		return FlipHorizontal(img), nil
	default:
		return nil, fmt.Errorf("unknown flip axis: %s", axis)
	}
}

// Grayscale replaces each pixel's R, G and B with their rounded average.
// Alpha is kept.
func Grayscale(img image.Image) *image.RGBA {
	return adjust.Apply(img, func(c color.RGBA) color.RGBA {
		sum := int(c.R) + int(c.G) + int(c.B)
		// sum/3 never ends in .5, so +1 before truncating rounds to nearest.
		v := uint8((sum + 1) / 3)
		return color.RGBA{R: v, G: v, B: v, A: c.A}
	})
}

// ResampleMethod selects the interpolation used by Resize.
type ResampleMethod string

const (
	Nearest  ResampleMethod = "nearest"
	Bilinear ResampleMethod = "bilinear"
	Bicubic  ResampleMethod = "bicubic"
)

// ParseResampleMethod maps a method name to a ResampleMethod. An empty name
// selects Bilinear.
func ParseResampleMethod(name string) (ResampleMethod, error) {
	switch m := ResampleMethod(strings.ToLower(name)); m {
	case "":
		return Bilinear, nil
	case Nearest, Bilinear, Bicubic:
		return m, nil
	case "linear":
		return Bilinear, nil
	case "cubic", "catmullrom":
		return Bicubic, nil
	default:
		return "", fmt.Errorf("unknown resample method: %s", name)
	}
}

func (m ResampleMethod) filter() (imaging.ResampleFilter, error) {
	switch m {
	case Nearest:
		return imaging.NearestNeighbor, nil
	case Bilinear:
		return imaging.Linear, nil
	case Bicubic:
		// Catmull-Rom is the cubic convolution kernel with a = -0.5.
		return imaging.CatmullRom, nil
	default:
		return imaging.ResampleFilter{}, fmt.Errorf("unknown resample method: %s", m)
	}
}

// Resize scales img to width x height. If one of the dimensions is 0 it is
// derived from the other so the aspect ratio is preserved.
//
// # Errors
//
//   - Returns error if either dimension is negative or both are 0
//   - Returns error for an unknown method
func Resize(img image.Image, width, height int, method ResampleMethod) (*image.NRGBA, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", width, height)
	}
	if width == 0 && height == 0 {
		return nil, fmt.Errorf("no target size given")
	}

	filter, err := method.filter()
	if err != nil {
		return nil, err
	}
	return imaging.Resize(img, width, height, filter), nil
}

// HalveSize shrinks img to half its width and height with nearest-neighbor sampling.
func HalveSize(img image.Image) (*image.NRGBA, error) {
	b := img.Bounds()
	w, h := b.Dx()/2, b.Dy()/2
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("image %dx%d too small to halve", b.Dx(), b.Dy())
	}
	return Resize(img, w, h, Nearest)
}
