package server

import (
	"testing"
)

func toolByName(t *testing.T, name string) Tool {
	t.Helper()
	for _, tool := range GetToolDefinitions() {
		if tool.Name == name {
			return tool
		}
	}
	t.Fatalf("Tool %s not found", name)
	return Tool{}
}

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"image_load",
		"image_dimensions",
		"image_bmp_info",
		"image_sample_color",
		"image_sample_colors_multi",
		"image_dominant_colors",
		"image_quantize",
		"image_flip",
		"image_grayscale",
		"image_resize",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("Tool count: got %d, want %d", len(tools), len(expectedTools))
	}

	seen := make(map[string]bool)
	for _, tool := range tools {
		if seen[tool.Name] {
			t.Errorf("Duplicate tool %s", tool.Name)
		}
		seen[tool.Name] = true
	}
	for _, name := range expectedTools {
		if !seen[name] {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}

			// Every tool works on a file.
			if _, ok := props["path"]; !ok {
				t.Error("missing 'path' property")
			}
			required, ok := tool.InputSchema["required"].([]string)
			if !ok || len(required) == 0 || required[0] != "path" {
				t.Errorf("required: got %v, want path first", tool.InputSchema["required"])
			}
			for _, name := range required {
				if _, ok := props[name]; !ok {
					t.Errorf("required parameter %s has no property", name)
				}
			}
		})
	}
}

func TestToolDefinitions_OutputPath(t *testing.T) {
	withOutput := map[string]bool{
		"image_quantize":  true,
		"image_flip":      true,
		"image_grayscale": true,
		"image_resize":    true,
	}

	for _, tool := range GetToolDefinitions() {
		props := tool.InputSchema["properties"].(map[string]interface{})
		_, has := props["output_path"]
		if has != withOutput[tool.Name] {
			t.Errorf("%s: output_path present = %v, want %v", tool.Name, has, withOutput[tool.Name])
		}
	}
}

func TestToolDefinitions_OptionalDefaults(t *testing.T) {
	toolDefaults := map[string]map[string]interface{}{
		"image_dominant_colors": {"count": 5},
		"image_quantize":        {"max_colors": 64, "palette_only": false},
		"image_flip":            {"axis": "vertical"},
		"image_resize":          {"method": "bilinear", "halve": false},
	}

	for toolName, expectedDefaults := range toolDefaults {
		tool := toolByName(t, toolName)
		props := tool.InputSchema["properties"].(map[string]interface{})

		for paramName, expected := range expectedDefaults {
			param, ok := props[paramName].(map[string]interface{})
			if !ok {
				t.Errorf("%s.%s: parameter not found or not a map", toolName, paramName)
				continue
			}
			if got, ok := param["default"]; !ok || got != expected {
				t.Errorf("%s.%s: default got %v, want %v", toolName, paramName, got, expected)
			}
		}
	}
}

func TestToolDefinitions_Enums(t *testing.T) {
	tests := []struct {
		tool, param string
		want        []string
	}{
		{"image_flip", "axis", []string{"vertical", "horizontal"}},
		{"image_resize", "method", []string{"nearest", "bilinear", "bicubic"}},
	}

	for _, tt := range tests {
		props := toolByName(t, tt.tool).InputSchema["properties"].(map[string]interface{})
		enum, ok := props[tt.param].(map[string]interface{})["enum"].([]string)
		if !ok || len(enum) != len(tt.want) {
			t.Errorf("%s.%s: enum got %v, want %v", tt.tool, tt.param, enum, tt.want)
			continue
		}
		for i := range tt.want {
			if enum[i] != tt.want[i] {
				t.Errorf("%s.%s: enum[%d] got %s, want %s", tt.tool, tt.param, i, enum[i], tt.want[i])
			}
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
	}

	resp := s.handleToolsList(req)

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	expected := GetToolDefinitions()
	if len(toolsList) != len(expected) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(expected))
	}
}
