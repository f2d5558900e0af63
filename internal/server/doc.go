// Package server implements the MCP (Model Context Protocol) server for color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the color value type
// through the MCP protocol, so MCP clients can parse colors, adjust them and pick
// readable text colors for a background.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// Methods under notifications/ are accepted and never answered.
//
// # Available Tools
//
// Wherever a tool takes a color it accepts a CSS/X11 name ("navy") or a hex
// string ("#000080", "000080").
//
// Construction:
//   - color_parse: Parse a name or hex string
//   - color_from_rgb: Build a color from components (clamped to 0-255)
//   - color_names: List every known color name
//
// Manipulation:
//   - color_lighten: Lighten all or some channels by a percentage
//   - color_darken: Darken all or some channels by a percentage
//
// Contrast:
//   - color_contrast: Pick the best contrasting candidate (black or white by default)
//   - color_compare: Report every contrast metric between two colors
//   - color_swatch: Render a background/foreground preview as PNG
//   - color_palette: Render a list of colors as a PNG strip
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(cfg, logger, version)
//	if err := srv.Run(); err != nil {
//	    logger.Fatal(err)
//	}
package server
