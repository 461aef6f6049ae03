// Package server implements the MCP (Model Context Protocol) server for the
// raster tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Logging goes through log/slog and must therefore be routed to stderr.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_bmp_info: Read the headers of a BMP file
//
// Color:
//   - image_sample_color: Get color at pixel
//   - image_sample_colors_multi: Sample multiple labeled points
//   - image_dominant_colors: Most common colors by median cut
//   - image_quantize: Reduce an image to a median-cut palette
//
// Transforms:
//   - image_flip: Mirror vertically or horizontally
//   - image_grayscale: Average the color channels
//   - image_resize: Nearest, bilinear or bicubic resampling
//
// Tools that produce an image return it as base64 PNG and, when output_path is
// given, also write it to disk (".bmp" as 24-bit BMP).
//
// # Image Caching
//
// Loaded images are cached by path for the lifetime of the process. Writing
// to output_path evicts that path so later loads see the new file.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure), -32602 (malformed params)
//   - message: Human-readable error description
//   - data: The Go error string
package server
