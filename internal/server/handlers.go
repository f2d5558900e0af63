package server

import (
	"encoding/json"
	"fmt"
	stdcolor "image/color"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/swatch"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_parse", "color_contrast").
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
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	entry := s.log.WithField("tool", params.Name)
	entry.Debug("tool call")

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		entry.WithError(err).Debug("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": s.marshalResult(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Parses color arguments (names or hex strings)
//  3. Applies default values for optional parameters
//  4. Calls the color/swatch function and returns its result
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Construction
	case "color_parse":
		return s.handleColorParse(args)
	case "color_from_rgb":
		return s.handleColorFromRGB(args)
	case "color_names":
		return s.handleColorNames(args)

	// Manipulation
	case "color_lighten":
		return s.handleColorAdjust(args, color.Color.LightenChannels)
	case "color_darken":
		return s.handleColorAdjust(args, color.Color.DarkenChannels)

	// Contrast
	case "color_contrast":
		return s.handleColorContrast(args)
	case "color_compare":
		return s.handleColorCompare(args)
	case "color_swatch":
		return s.handleColorSwatch(args)
	case "color_palette":
		return s.handleColorPalette(args)

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

// marshalResult converts a value to a pretty-printed JSON string. A value
// that cannot be marshaled is logged and yields an empty string.
func (s *Server) marshalResult(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.log.WithError(err).Warn("failed to marshal tool result")
		return ""
	}
	return string(b)
}

// decodeArgs unmarshals tool arguments. Missing arguments decode as an
// empty object so tools without required parameters can be called bare.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// parseColorArg parses a required color argument.
func parseColorArg(field, value string) (color.Color, error) {
	if value == "" {
		return color.Color{}, fmt.Errorf("%s is required", field)
	}
	c, err := color.Parse(value)
	if err != nil {
		return color.Color{}, fmt.Errorf("%s: %w", field, err)
	}
	return c, nil
}

// parseColorList parses a list argument, naming the offending element on
// failure.
func parseColorList(field string, values []string) ([]color.Color, error) {
	colors := make([]color.Color, len(values))
	for i, v := range values {
		c, err := parseColorArg(fmt.Sprintf("%s[%d]", field, i), v)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return colors, nil
}

// renderStrip draws colors as a strip. A zero cell uses the configured
// swatch height, shrunk so the strip stays within swatch.MaxDimension.
func (s *Server) renderStrip(colors []color.Color, cell int) (*swatch.Result, error) {
	if cell == 0 && len(colors) > 0 {
		cell = s.cfg.SwatchHeight
		if cell*len(colors) > swatch.MaxDimension {
			cell = swatch.MaxDimension / len(colors)
		}
	}

	cells := make([]stdcolor.Color, len(colors))
	for i, c := range colors {
		cells[i] = c
	}
	return swatch.Strip(cells, cell)
}

// === Result Types ===

// RGB holds the components of a color in tool results.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ColorInfo describes a single color in tool results.
type ColorInfo struct {
	Hex        string  `json:"hex"`
	Name       string  `json:"name,omitempty"` // Only set for an exact named color
	RGB        RGB     `json:"rgb"`
	Brightness float64 `json:"brightness"` // 0-255
	Luminosity float64 `json:"luminosity"` // 0-1
}

func newColorInfo(c color.Color) ColorInfo {
	return ColorInfo{
		Hex:        c.Hex(),
		Name:       c.Name(),
		RGB:        RGB{R: c.R(), G: c.G(), B: c.B()},
		Brightness: c.Brightness(),
		Luminosity: c.Luminosity(),
	}
}

// CandidateScore is the contrast coefficient of one candidate.
type CandidateScore struct {
	Hex   string `json:"hex"`
	Score int    `json:"score"` // 0-3
}

// ContrastResult is returned by color_contrast.
type ContrastResult struct {
	Color       ColorInfo        `json:"color"`
	Contrasting ColorInfo        `json:"contrasting"`
	Scores      []CandidateScore `json:"scores"`            // In candidate order
	Preview     *swatch.Result   `json:"preview,omitempty"` // Candidates as a strip, when requested
}

// CompareResult is returned by color_compare.
type CompareResult struct {
	Color string `json:"color"`
	Other string `json:"other"`
	color.Metrics
}

// NamesResult is returned by color_names.
type NamesResult struct {
	Count int      `json:"count"`
	Names []string `json:"names"`
}

// PaletteResult is returned by color_palette.
type PaletteResult struct {
	Colors []ColorInfo `json:"colors"`
	*swatch.Result
}

// SwatchResult is returned by color_swatch.
type SwatchResult struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	*swatch.Result
}

// === Construction Handlers ===

type colorParseArgs struct {
	Color string `json:"color"`
}

func (s *Server) handleColorParse(args json.RawMessage) (interface{}, error) {
	var a colorParseArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := parseColorArg("color", a.Color)
	if err != nil {
		return nil, err
	}
	return newColorInfo(c), nil
}

type colorFromRGBArgs struct {
	R *float64 `json:"r"`
	G *float64 `json:"g"`
	B *float64 `json:"b"`
}

func (s *Server) handleColorFromRGB(args json.RawMessage) (interface{}, error) {
	var a colorFromRGBArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.R == nil || a.G == nil || a.B == nil {
		return nil, fmt.Errorf("r, g and b are required")
	}
	return newColorInfo(color.NewFloat(*a.R, *a.G, *a.B)), nil
}

func (s *Server) handleColorNames(args json.RawMessage) (interface{}, error) {
	names := color.Names()
	return &NamesResult{Count: len(names), Names: names}, nil
}

// === Manipulation Handlers ===

type colorAdjustArgs struct {
	Color    string   `json:"color"`
	Percent  *float64 `json:"percent"`
	Channels []string `json:"channels,omitempty"`
}

func (s *Server) handleColorAdjust(args json.RawMessage, adjust func(color.Color, float64, color.ChannelSet) color.Color) (interface{}, error) {
	var a colorAdjustArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := parseColorArg("color", a.Color)
	if err != nil {
		return nil, err
	}
	if a.Percent == nil {
		return nil, fmt.Errorf("percent is required")
	}

	set := color.AllChannels
	if len(a.Channels) > 0 {
		chs := make([]color.Channel, len(a.Channels))
		for i, name := range a.Channels {
			ch, err := color.ParseChannel(name)
			if err != nil {
				return nil, err
			}
			chs[i] = ch
		}
		set = color.Channels(chs...)
	}

	return newColorInfo(adjust(c, *a.Percent, set)), nil
}

// === Contrast Handlers ===

type colorContrastArgs struct {
	Color      string   `json:"color"`
	Candidates []string `json:"candidates,omitempty"`
	Preview    bool     `json:"preview,omitempty"`
}

func (s *Server) handleColorContrast(args json.RawMessage) (interface{}, error) {
	var a colorContrastArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := parseColorArg("color", a.Color)
	if err != nil {
		return nil, err
	}

	candidates := color.DefaultCandidates()
	if len(a.Candidates) > 0 {
		if candidates, err = parseColorList("candidates", a.Candidates); err != nil {
			return nil, err
		}
	}

	scores := make([]CandidateScore, len(candidates))
	for i, cand := range candidates {
		scores[i] = CandidateScore{Hex: cand.Hex(), Score: c.ContrastCoefficient(cand)}
	}

	best := c.ContrastingColor(candidates...)
	s.log.WithFields(logrus.Fields{
		"color":       c.Hex(),
		"contrasting": best.Hex(),
	}).Debug("contrast chosen")

	result := &ContrastResult{
		Color:       newColorInfo(c),
		Contrasting: newColorInfo(best),
		Scores:      scores,
	}
	if a.Preview {
		if result.Preview, err = s.renderStrip(candidates, 0); err != nil {
			return nil, err
		}
	}
	return result, nil
}

type colorCompareArgs struct {
	Color string `json:"color"`
	Other string `json:"other"`
}

func (s *Server) handleColorCompare(args json.RawMessage) (interface{}, error) {
	var a colorCompareArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := parseColorArg("color", a.Color)
	if err != nil {
		return nil, err
	}
	other, err := parseColorArg("other", a.Other)
	if err != nil {
		return nil, err
	}
	return &CompareResult{
		Color:   c.Hex(),
		Other:   other.Hex(),
		Metrics: c.Compare(other),
	}, nil
}

type colorSwatchArgs struct {
	Background string `json:"background"`
	Foreground string `json:"foreground,omitempty"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = s.cfg.SwatchWidth
	}
	if a.Height == 0 {
		a.Height = s.cfg.SwatchHeight
	}

	bg, err := parseColorArg("background", a.Background)
	if err != nil {
		return nil, err
	}
	fg := bg.ContrastingColor()
	if a.Foreground != "" {
		if fg, err = parseColorArg("foreground", a.Foreground); err != nil {
			return nil, err
		}
	}

	result, err := swatch.Render(bg, fg, a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	return &SwatchResult{
		Background: bg.Hex(),
		Foreground: fg.Hex(),
		Result:     result,
	}, nil
}

type colorPaletteArgs struct {
	Colors []string `json:"colors"`
	Cell   int      `json:"cell"`
}

func (s *Server) handleColorPalette(args json.RawMessage) (interface{}, error) {
	var a colorPaletteArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if len(a.Colors) == 0 {
		return nil, fmt.Errorf("colors is required")
	}

	colors, err := parseColorList("colors", a.Colors)
	if err != nil {
		return nil, err
	}
	result, err := s.renderStrip(colors, a.Cell)
	if err != nil {
		return nil, err
	}

	infos := make([]ColorInfo, len(colors))
	for i, c := range colors {
		infos[i] = newColorInfo(c)
	}
	return &PaletteResult{Colors: infos, Result: result}, nil
}
