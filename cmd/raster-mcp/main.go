package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ironsheep/raster-tools-mcp/internal/logging"
	"github.com/ironsheep/raster-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("raster-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("raster-tools-mcp - MCP server for color quantization and raster transforms")
			fmt.Println()
			fmt.Println("Usage: raster-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  RASTER_MCP_LOG_LEVEL=debug|info|warn|error    Log level (default info)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Logs go to stderr, stdout is for MCP protocol
	if err := logging.Setup(os.Stderr, os.Getenv("RASTER_MCP_LOG_LEVEL")); err != nil {
		fmt.Fprintf(os.Stderr, "raster-mcp: %v\n", err)
		os.Exit(2)
	}

	if Version != "dev" {
		server.Version = Version
	}
	slog.Debug("starting", "version", Version, "built", BuildTime, "commit", GitCommit)

	srv := server.New()
	if err := srv.Run(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
