package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/raster-tools-mcp/internal/bmp"
)

// ImageResult carries a produced image back to the caller.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`

	// OutputPath is set when the image was also written to disk.
	OutputPath string `json:"output_path,omitempty"`
}

// NewImageResult encodes img as a base64 PNG.
func NewImageResult(img image.Image) (*ImageResult, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &ImageResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Save writes img to path. ".bmp" files are written as 24-bit BMP; any other
// extension supported by the imaging library (png, jpg, gif, tif) is written in
// that format.
func Save(img image.Image, path string) error {
	if formatFromPath(path) != "bmp" {
		if err := imaging.Save(img, path); err != nil {
			return fmt.Errorf("failed to save image: %w", err)
		}
		return nil
	}

	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	tmp := f.Name()

	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	// CreateTemp makes the file owner-only.
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to set output file mode: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rename output file: %w", err)
	}
	return nil
}

// WriteResult encodes img for the caller and, if outputPath is not empty, also
// saves it there.
func WriteResult(img image.Image, outputPath string) (*ImageResult, error) {
	if outputPath != "" {
		if err := Save(img, outputPath); err != nil {
			return nil, err
		}
	}

	res, err := NewImageResult(img)
	if err != nil {
		return nil, err
	}
	res.OutputPath = outputPath
	return res, nil
}
