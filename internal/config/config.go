package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/color-tools-mcp/internal/swatch"
)

// Config holds the runtime settings of the MCP server.
type Config struct {
	// LogLevel is a logrus level name: debug, info, warn or error.
	LogLevel string `env:"COLOR_MCP_LOG_LEVEL" envDefault:"info"`

	// SwatchWidth and SwatchHeight are used by color_swatch when the
	// caller does not pass a size.
	SwatchWidth  int `env:"COLOR_MCP_SWATCH_WIDTH" envDefault:"240"`
	SwatchHeight int `env:"COLOR_MCP_SWATCH_HEIGHT" envDefault:"120"`

	// MaxRequestBytes limits the length of a single JSON-RPC line.
	MaxRequestBytes int `env:"COLOR_MCP_MAX_REQUEST_BYTES" envDefault:"1048576"`
}

// minRequestBytes keeps the scanner buffer large enough for a tools/call
// with a handful of arguments.
const minRequestBytes = 1024

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return load(env.Options{})
}

// LoadFrom reads the configuration from the given variables only.
func LoadFrom(environ map[string]string) (Config, error) {
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		LogLevel:        "info",
		SwatchWidth:     240,
		SwatchHeight:    120,
		MaxRequestBytes: 1048576,
	}
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.SwatchWidth < 1 || c.SwatchWidth > swatch.MaxDimension {
		return fmt.Errorf("swatch width %d outside 1..%d", c.SwatchWidth, swatch.MaxDimension)
	}
	if c.SwatchHeight < 1 || c.SwatchHeight > swatch.MaxDimension {
		return fmt.Errorf("swatch height %d outside 1..%d", c.SwatchHeight, swatch.MaxDimension)
	}
	if c.MaxRequestBytes < minRequestBytes {
		return fmt.Errorf("max request bytes %d below %d", c.MaxRequestBytes, minRequestBytes)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
