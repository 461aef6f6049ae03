package main

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/ironsheep/raster-tools-mcp/internal/imaging"
	"github.com/ironsheep/raster-tools-mcp/internal/quantize"
)

// ioArgs are the positional arguments shared by the image-producing commands.
type ioArgs struct {
	Input  string `arg:"" type:"existingfile" help:"Source image (png, jpg, gif or 24-bit bmp)"`
	Output string `arg:"" help:"Destination image; the extension selects the format"`
}

func (a ioArgs) load() (image.Image, error) {
	return imaging.NewImageCache().Load(a.Input)
}

func (a ioArgs) save(img image.Image) error {
	if err := imaging.Save(img, a.Output); err != nil {
		return err
	}
	b := img.Bounds()
	slog.Info("wrote image", "from", a.Input, "to", a.Output, "width", b.Dx(), "height", b.Dy())
	return nil
}

type infoCmd struct {
	Input string `arg:"" type:"existingfile" help:"BMP file"`
}

func (c *infoCmd) Run(w io.Writer) error {
	h, err := imaging.BMPInfo(c.Input)
	if err != nil {
		return err
	}

	order := "bottom-up"
	if h.TopDown {
		order = "top-down"
	}
	fmt.Fprintf(w, "size:        %dx%d (%s)\n", h.Width, h.Height, order)
	fmt.Fprintf(w, "bit count:   %d\n", h.BitCount)
	fmt.Fprintf(w, "compression: %d\n", h.Compression)
	fmt.Fprintf(w, "file size:   %d\n", h.FileSize)
	fmt.Fprintf(w, "data offset: %d\n", h.DataOffset)
	fmt.Fprintf(w, "supported:   %t\n", h.Supported())
	return nil
}

type flipCmd struct {
	Axis string `help:"Flip axis" enum:"vertical,horizontal" default:"vertical"`
	ioArgs
}

func (c *flipCmd) Run() error {
	img, err := c.load()
	if err != nil {
		return err
	}
	out, err := imaging.Flip(img, c.Axis)
	if err != nil {
		return err
	}
	return c.save(out)
}

type grayCmd struct {
	ioArgs
}

func (c *grayCmd) Run() error {
	img, err := c.load()
	if err != nil {
		return err
	}
	return c.save(imaging.Grayscale(img))
}

type resizeCmd struct {
	Width  int    `help:"Target width; 0 keeps the aspect ratio"`
	Height int    `help:"Target height; 0 keeps the aspect ratio"`
	Method string `help:"Interpolation" enum:"nearest,bilinear,bicubic" default:"bilinear"`
	ioArgs

	method imaging.ResampleMethod
}

func (c *resizeCmd) Validate(kctx *kong.Context) error {
	switch {
	case c.Width < 0:
		return fmt.Errorf("invalid resize width: %d", c.Width)
	case c.Height < 0:
		return fmt.Errorf("invalid resize height: %d", c.Height)
	case c.Width == 0 && c.Height == 0:
		return fmt.Errorf("no resize dimensions given")
	}

	var err error
	c.method, err = imaging.ParseResampleMethod(c.Method)
	return err
}

func (c *resizeCmd) Run() error {
	img, err := c.load()
	if err != nil {
		return err
	}
	out, err := imaging.Resize(img, c.Width, c.Height, c.method)
	if err != nil {
		return err
	}
	return c.save(out)
}

type halveCmd struct {
	ioArgs
}

func (c *halveCmd) Run() error {
	img, err := c.load()
	if err != nil {
		return err
	}
	out, err := imaging.HalveSize(img)
	if err != nil {
		return err
	}
	return c.save(out)
}

type quantizeCmd struct {
	Colors int `help:"Maximum number of palette colors" default:"64"`
	ioArgs
}

func (c *quantizeCmd) Validate(kctx *kong.Context) error {
	if c.Colors < 1 {
		return fmt.Errorf("invalid color count: %d", c.Colors)
	}
	return nil
}

func (c *quantizeCmd) Run(w io.Writer) error {
	img, err := c.load()
	if err != nil {
		return err
	}
	out, pal, err := imaging.QuantizeImage(img, c.Colors)
	if err != nil {
		return err
	}
	if err := c.save(out); err != nil {
		return err
	}

	printPalette(w, pal)
	return nil
}

func printPalette(w io.Writer, pal *imaging.PaletteResult) {
	fmt.Fprintf(w, "%d colors (max %d) for %dx%d pixels\n", len(pal.Colors), pal.MaxColors, pal.Width, pal.Height)
	for i, c := range pal.Colors {
		p := quantize.Pixel{R: c.RGB.R, G: c.RGB.G, B: c.RGB.B}
		fmt.Fprintf(w, "%3d  %s  brightness %3d  %8d px  %5.1f%%\n", i, c.Hex, p.Brightness(), c.Population, c.Percentage)
	}
}
