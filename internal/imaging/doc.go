// Package imaging provides the image-level operations of the raster tools: loading,
// pixel-buffer conversion, geometric and color transforms, color sampling and
// median-cut palette extraction.
//
// All operations work with standard Go image.Image types and use a coordinate system
// where (0,0) is at the top-left corner, X increases rightward, and Y increases downward.
//
// # Pixel Buffers
//
// ToPixels flattens an image into a row-major []quantize.Pixel with no row padding;
// FromPixels turns such a buffer back into an *image.NRGBA. These are the hand-off
// points between decoded files and the quantizer.
//
// # Transforms
//
// FlipVertical, FlipHorizontal, Grayscale and Resize never modify their input and
// always return a new image. Grayscale uses the plain average of R, G and B, rounded,
// rather than a luminance weighting.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Individual image operations
// are stateless and can be called concurrently on different images.
//
// # Color Representation
//
// Colors are returned in multiple formats for flexibility:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGB: 8-bit components (0-255)
//   - RGBA: 8-bit components with alpha (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds
//   - Non-positive target sizes or palette sizes
//   - Unsupported BMP variants (see package bmp)
//   - File I/O and encoding errors
package imaging
