package bmp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidFormat means the data is not a BMP file.
	ErrInvalidFormat = errors.New("bmp: invalid format")

	// ErrUnsupported means the file is a BMP that uses a feature other than
	// 24-bit uncompressed pixels.
	ErrUnsupported = errors.New("bmp: unsupported BMP image")
)

const (
	signature      = 0x4D42 // "BM", little-endian
	fileHeaderLen  = 14
	infoHeaderLen  = 40
	headersLen     = fileHeaderLen + infoHeaderLen
	compressionRGB = 0

	// maxPixels bounds the decoded image to 1 GiB of NRGBA samples.
	maxPixels = 1 << 28
)

// fileHeader is BITMAPFILEHEADER.
type fileHeader struct {
	Type      uint16
	Size      uint32
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32
}

// infoHeader is BITMAPINFOHEADER.
type infoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// Header describes a BMP file without its pixel data.
type Header struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	BitCount    int    `json:"bit_count"`
	Compression uint32 `json:"compression"`
	FileSize    uint32 `json:"file_size"`
	DataOffset  uint32 `json:"data_offset"`
	TopDown     bool   `json:"top_down"`
}

// Supported reports whether Decode can read pixel data described by h.
func (h Header) Supported() bool {
	return h.BitCount == 24 && h.Compression == compressionRGB
}

// RowStride is the on-disk length of one 24-bit pixel row, padding included.
func RowStride(width int) int {
	return ((width*3 + 3) / 4) * 4
}

// checkDataLen verifies that the pixel data h describes is within maxPixels
// and, when the file size is recorded, fits in the file.
func (h Header) checkDataLen() error {
	if h.Width != 0 && h.Height > maxPixels/h.Width {
		return fmt.Errorf("%w: %dx%d image too large", ErrInvalidFormat, h.Width, h.Height)
	}
	need := int64(RowStride(h.Width)) * int64(h.Height)
	if h.FileSize != 0 && need > int64(h.FileSize)-int64(h.DataOffset) {
		return fmt.Errorf("%w: %dx%d needs %d bytes of pixel data, file holds %d after offset %d",
			ErrInvalidFormat, h.Width, h.Height, need, int64(h.FileSize)-int64(h.DataOffset), h.DataOffset)
	}
	return nil
}

// readHeader reads both headers and leaves r positioned just after them.
func readHeader(r io.Reader) (Header, error) {
	var fh fileHeader
	if err := binary.Read(r, binary.LittleEndian, &fh); err != nil {
		return Header{}, fmt.Errorf("%w: reading file header: %v", ErrInvalidFormat, err)
	}
	if fh.Type != signature {
		return Header{}, fmt.Errorf("%w: bad signature 0x%04X", ErrInvalidFormat, fh.Type)
	}

	var ih infoHeader
	if err := binary.Read(r, binary.LittleEndian, &ih); err != nil {
		return Header{}, fmt.Errorf("%w: reading info header: %v", ErrInvalidFormat, err)
	}
	if ih.Size < infoHeaderLen {
		return Header{}, fmt.Errorf("%w: info header of %d bytes", ErrUnsupported, ih.Size)
	}
	if fh.OffBits < fileHeaderLen+ih.Size {
		return Header{}, fmt.Errorf("%w: pixel data offset %d inside headers", ErrInvalidFormat, fh.OffBits)
	}
	if ih.Width < 0 {
		return Header{}, fmt.Errorf("%w: negative width %d", ErrInvalidFormat, ih.Width)
	}

	h := Header{
		Width:       int(ih.Width),
		Height:      int(ih.Height),
		BitCount:    int(ih.BitCount),
		Compression: ih.Compression,
		FileSize:    fh.Size,
		DataOffset:  fh.OffBits,
	}
	if h.Height < 0 {
		h.Height = -h.Height
		h.TopDown = true
	}
	return h, nil
}

// DecodeConfig reads the headers of a BMP file. It does not reject files that
// Decode cannot read; check Header.Supported for that.
func DecodeConfig(r io.Reader) (Header, error) {
	return readHeader(r)
}
