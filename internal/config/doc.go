// Package config loads server settings from the environment.
//
// Every setting has a default, so an empty environment yields a valid
// Config. Values are parsed with caarlos0/env and then checked by
// Validate:
//
//	COLOR_MCP_LOG_LEVEL          logrus level name (default info)
//	COLOR_MCP_SWATCH_WIDTH       default swatch width (default 240)
//	COLOR_MCP_SWATCH_HEIGHT      default swatch height (default 120)
//	COLOR_MCP_MAX_REQUEST_BYTES  largest request line (default 1048576)
package config
