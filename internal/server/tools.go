package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorProperty is the schema shared by every argument that takes a color.
func colorProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description + " (color name like 'navy' or hex like '#000080')",
	}
}

// adjustSchema is shared by color_lighten and color_darken.
func adjustSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"color": colorProperty("Color to adjust"),
			"percent": map[string]interface{}{
				"type":        "number",
				"description": "Percentage of the full 0-255 range to shift by. Not range checked; results are clamped.",
			},
			"channels": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type": "string",
					"enum": []string{"red", "green", "blue"},
				},
				"description": "Channels to adjust (default all three)",
			},
		},
		"required": []string{"color", "percent"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Construction
		{
			Name:        "color_parse",
			Description: "Parse a color name or hex string and return its hex form, RGB components, brightness and luminosity.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty("Color to parse"),
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_from_rgb",
			Description: "Build a color from red, green and blue components. Values outside 0-255 are clamped and fractions truncated.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"r": map[string]interface{}{"type": "number", "description": "Red component (0-255)"},
					"g": map[string]interface{}{"type": "number", "description": "Green component (0-255)"},
					"b": map[string]interface{}{"type": "number", "description": "Blue component (0-255)"},
				},
				"required": []string{"r", "g", "b"},
			},
		},
		{
			Name:        "color_names",
			Description: "List every named color the other tools accept, in alphabetical order.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Manipulation
		{
			Name:        "color_lighten",
			Description: "Lighten a color by a percentage of the full channel range, optionally only some channels.",
			InputSchema: adjustSchema(),
		},
		{
			Name:        "color_darken",
			Description: "Darken a color by a percentage of the full channel range, optionally only some channels.",
			InputSchema: adjustSchema(),
		},

		// Contrast
		{
			Name:        "color_contrast",
			Description: "Choose the candidate that contrasts best with a color, e.g. a text color for a background. Scores each candidate from 0 to 3; ties go to the earlier candidate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty("Reference color, usually the background"),
					"candidates": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Candidate colors in order of preference (default black, white)",
					},
					"preview": map[string]interface{}{
						"type":        "boolean",
						"description": "Also render the candidates as a PNG strip (default false)",
					},
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_compare",
			Description: "Report channel difference, brightness difference, luminosity ratio, Euclidean distance and contrast coefficient between two colors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty("First color"),
					"other": colorProperty("Second color"),
				},
				"required": []string{"color", "other"},
			},
		},
		{
			Name:        "color_swatch",
			Description: "Render a PNG preview of a foreground block on a background and return it base64-encoded.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"background": colorProperty("Background color"),
					"foreground": colorProperty("Foreground color (default: the best contrasting of black and white)"),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Image width in pixels (default from server configuration)",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Image height in pixels (default from server configuration)",
					},
				},
				"required": []string{"background"},
			},
		},
		{
			Name:        "color_palette",
			Description: "Render a list of colors as a strip of square cells, left to right, and return it base64-encoded with details of each color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Colors in display order (names or hex strings)",
					},
					"cell": map[string]interface{}{
						"type":        "integer",
						"description": "Cell size in pixels (default: configured swatch height, reduced to fit long palettes)",
					},
				},
				"required": []string{"colors"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
