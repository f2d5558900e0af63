package main

import (
	"errors"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/ironsheep/color-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type options struct {
	Version  bool   `short:"v" long:"version" description:"Print version information"`
	LogLevel string `long:"log-level" description:"Log level (debug, info, warn, error); overrides COLOR_MCP_LOG_LEVEL"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "color-tools-mcp"
	parser.LongDescription = `MCP server for color parsing, adjustment and contrast checks.

This server communicates via MCP protocol over stdin/stdout.
Configure it in your MCP client (e.g., Claude Desktop).

Environment variables:
  COLOR_MCP_LOG_LEVEL=debug          Log level (default info)
  COLOR_MCP_SWATCH_WIDTH=240         Default swatch width
  COLOR_MCP_SWATCH_HEIGHT=120        Default swatch height
  COLOR_MCP_MAX_REQUEST_BYTES=1048576  Largest accepted request line`

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	if opts.Version {
		fmt.Printf("color-tools-mcp %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	// Logging goes to stderr (stdout is for MCP protocol)
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Configuration error: %v", err)
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	level, err := cfg.Level()
	if err != nil {
		logger.Fatalf("Configuration error: %v", err)
	}
	logger.SetLevel(level)

	logger.WithFields(logrus.Fields{
		"version": Version,
		"built":   BuildTime,
		"commit":  GitCommit,
	}).Info("Color MCP Server starting")

	srv := server.New(cfg, logger, Version)
	if err := srv.Run(); err != nil {
		logger.Fatalf("Server error: %v", err)
	}
}
