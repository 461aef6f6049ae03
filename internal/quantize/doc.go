// Package quantize implements median-cut color quantization over flat pixel buffers.
//
// Given a row-major buffer of 8-bit RGBA samples and a target palette size, Quantize
// derives a palette of at most maxColors entries and remaps every pixel to its nearest
// palette entry under squared Euclidean RGB distance.
//
// # Algorithm
//
//  1. All pixels start in a single box bounded by the per-channel min/max of its members.
//  2. While the number of boxes is below maxColors, the box with the largest spread
//     (largest per-channel range) is taken from the worklist. A box holding a single
//     color or a single member is moved to the terminal set instead of being split.
//  3. The chosen box is cut on its widest channel at the midpoint of that channel's
//     range: members below the midpoint go low, the rest go high.
//  4. Each terminal box contributes its mean color to the palette. The palette is
//     ordered by brightness (R+G+B) ascending.
//  5. Every source pixel is replaced by the first palette entry at minimum distance.
//
// The split threshold is the midpoint of (min, max), not the statistical median of the
// members. Skewed distributions therefore produce unequal child boxes.
//
// # Alpha
//
// Alpha takes no part in bounds, axis selection or distance. Palette entries carry the
// mean alpha of their box; remapped pixels keep the alpha of the source pixel.
//
// # Buffer Ownership
//
// The input buffer is only read. Quantize and Remap always allocate a new output
// buffer, so the caller may keep using the input while or after quantizing.
//
// # Thread Safety
//
// All state is local to one call. Functions may be called concurrently on any buffers.
package quantize
