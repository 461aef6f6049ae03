// Command bmptool applies the raster transforms and median-cut quantization
// to image files from the command line.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ironsheep/raster-tools-mcp/internal/logging"
)

// Version information - set by ldflags during build
var Version = "dev"

type cli struct {
	LogLevel string           `help:"Log level" enum:"debug,info,warn,error" default:"warn"`
	Version  kong.VersionFlag `help:"Print version information"`

	Info     infoCmd     `cmd:"" help:"Print the headers of a BMP file"`
	Flip     flipCmd     `cmd:"" help:"Mirror an image vertically or horizontally"`
	Gray     grayCmd     `cmd:"" help:"Convert an image to grayscale"`
	Resize   resizeCmd   `cmd:"" help:"Resize an image"`
	Halve    halveCmd    `cmd:"" help:"Shrink an image to half its width and height"`
	Quantize quantizeCmd `cmd:"" help:"Reduce an image to a median-cut palette and print the palette"`
}

func run(args []string, stdout, stderr io.Writer) error {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("bmptool"),
		kong.Description("Raster transforms and color quantization for BMP and other image files."),
		kong.UsageOnError(),
		kong.Vars{"version": Version},
		kong.Writers(stdout, stderr),
		kong.BindTo(stdout, (*io.Writer)(nil)),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	if err := logging.Setup(stderr, c.LogLevel); err != nil {
		return err
	}
	return kctx.Run()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("bmptool failed", "error", err)
		fmt.Fprintf(os.Stderr, "bmptool: %v\n", err)
		os.Exit(1)
	}
}
