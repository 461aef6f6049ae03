package server

import (
	"encoding/json"
	"fmt"
	"image"
	"log/slog"

	"github.com/ironsheep/raster-tools-mcp/internal/bmp"
	"github.com/ironsheep/raster-tools-mcp/internal/imaging"
	"github.com/ironsheep/raster-tools-mcp/internal/quantize"
)

// Defaults for optional tool arguments.
const (
	defaultColorCount = 5
	defaultFlipAxis   = "vertical"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_quantize").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		slog.Info("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging function
//  5. Writes output_path, if given, and returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_bmp_info":
		return s.handleImageBMPInfo(args)

	// Color Operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_quantize":
		return s.handleImageQuantize(args)

	// Transforms
	case "image_flip":
		return s.handleImageFlip(args)
	case "image_grayscale":
		return s.handleImageGrayscale(args)
	case "image_resize":
		return s.handleImageResize(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func decodeArgs(args json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// writeImage encodes img for the response and saves it to outputPath, if set.
// The saved path is evicted from the cache so it is reloaded when read next.
func (s *Server) writeImage(img image.Image, outputPath string) (*imaging.ImageResult, error) {
	res, err := imaging.WriteResult(img, outputPath)
	if err != nil {
		return nil, err
	}
	if outputPath != "" {
		s.cache.Evict(outputPath)
		slog.Debug("wrote image", "path", outputPath, "width", res.Width, "height", res.Height)
	}
	return res, nil
}

// === Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type bmpInfoResult struct {
	*bmp.Header
	Supported bool `json:"supported"`
}

func (s *Server) handleImageBMPInfo(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	h, err := imaging.BMPInfo(a.Path)
	if err != nil {
		return nil, err
	}
	return &bmpInfoResult{Header: h, Supported: h.Supported()}, nil
}

// === Color Operation Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points)
}

type imageDominantColorsArgs struct {
	Path   string `json:"path"`
	Count  int    `json:"count"`
	Region *struct {
		X1 int `json:"x1"`
		Y1 int `json:"y1"`
		X2 int `json:"x2"`
		Y2 int `json:"y2"`
	} `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = defaultColorCount
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var region *imaging.Region
	if a.Region != nil {
		region = &imaging.Region{X1: a.Region.X1, Y1: a.Region.Y1, X2: a.Region.X2, Y2: a.Region.Y2}
	}
	return imaging.DominantColors(img, a.Count, region)
}

type imageQuantizeArgs struct {
	Path string `json:"path"`
	// MaxColors is a pointer so an explicit 0 is rejected instead of defaulted.
	MaxColors   *int   `json:"max_colors"`
	PaletteOnly bool   `json:"palette_only"`
	OutputPath  string `json:"output_path"`
}

type quantizeResult struct {
	Palette *imaging.PaletteResult `json:"palette"`
	Image   *imaging.ImageResult   `json:"image,omitempty"`
}

func (s *Server) handleImageQuantize(args json.RawMessage) (interface{}, error) {
	var a imageQuantizeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	maxColors := quantize.DefaultMaxColors
	if a.MaxColors != nil {
		maxColors = *a.MaxColors
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	if a.PaletteOnly && a.OutputPath == "" {
		pal, err := imaging.ExtractPalette(img, maxColors)
		if err != nil {
			return nil, err
		}
		return &quantizeResult{Palette: pal}, nil
	}

	out, pal, err := imaging.QuantizeImage(img, maxColors)
	if err != nil {
		return nil, err
	}
	res, err := s.writeImage(out, a.OutputPath)
	if err != nil {
		return nil, err
	}
	if a.PaletteOnly {
		res = nil
	}
	return &quantizeResult{Palette: pal, Image: res}, nil
}

// === Transform Handlers ===

type imageFlipArgs struct {
	Path       string `json:"path"`
	Axis       string `json:"axis"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleImageFlip(args json.RawMessage) (interface{}, error) {
	var a imageFlipArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Axis == "" {
		a.Axis = defaultFlipAxis
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := imaging.Flip(img, a.Axis)
	if err != nil {
		return nil, err
	}
	return s.writeImage(out, a.OutputPath)
}

type imageGrayscaleArgs struct {
	Path       string `json:"path"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleImageGrayscale(args json.RawMessage) (interface{}, error) {
	var a imageGrayscaleArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return s.writeImage(imaging.Grayscale(img), a.OutputPath)
}

type imageResizeArgs struct {
	Path       string `json:"path"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Method     string `json:"method"`
	Halve      bool   `json:"halve"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var out image.Image
	if a.Halve {
		out, err = imaging.HalveSize(img)
	} else {
		var method imaging.ResampleMethod
		if method, err = imaging.ParseResampleMethod(a.Method); err != nil {
			return nil, err
		}
		out, err = imaging.Resize(img, a.Width, a.Height, method)
	}
	if err != nil {
		return nil, err
	}
	return s.writeImage(out, a.OutputPath)
}
