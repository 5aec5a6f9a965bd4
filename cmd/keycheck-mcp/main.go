// Command keycheck-mcp runs the MCP tool server for translation key checks.
// Uses stdio transport for integration with AI assistants.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/finops-claw-gang/keycheck/internal/config"
	"github.com/finops-claw-gang/keycheck/internal/mcpserver"
	"github.com/finops-claw-gang/keycheck/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// stdout carries the MCP protocol, so logs go to stderr.
	logger := observability.InitLogger(cfg.LogLevel, os.Stderr)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "keycheck",
		Version: "v1.0.0",
	}, nil)
	mcpserver.RegisterTools(server, cfg, logger)

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatalf("mcp server error: %v", err)
	}
}
