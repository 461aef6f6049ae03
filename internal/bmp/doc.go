// Package bmp reads and writes uncompressed 24-bit Windows BMP files.
//
// Decoding is deliberately strict: only the "BM" signature, a BITMAPINFOHEADER (or a
// larger header whose extra fields are skipped), 24 bits per pixel and BI_RGB
// (no compression) are accepted. Each pixel row on disk is padded to a multiple of
// four bytes; the padding is stripped so callers only ever see packed pixels.
//
// Both bottom-up (positive height) and top-down (negative height) files are read.
// Decoded images are always *image.NRGBA with the origin at (0,0) and alpha 255.
//
// Encoding always produces a bottom-up 24-bit file. Alpha is dropped.
package bmp
