// Package mcpserver exposes the translation key check as an MCP tool.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/finops-claw-gang/keycheck/internal/checker"
	"github.com/finops-claw-gang/keycheck/internal/config"
	"github.com/finops-claw-gang/keycheck/internal/domain"
	"github.com/finops-claw-gang/keycheck/internal/report"
)

// ToolName is the name of the key check tool.
const ToolName = "check_translation_keys"

// RegisterTools registers the keycheck tools on the given server. base is
// the configuration each call starts from before applying its overrides.
func RegisterTools(server *mcp.Server, base config.Config, logger *slog.Logger) {
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        ToolName,
			Description: "Check that every locale translation file has exactly the reference locale's keys",
		},
		checkHandler(base, logger),
	)
}

type checkInput struct {
	Root      string   `json:"root,omitempty" jsonschema:"root directory containing the locales directory"`
	Locales   []string `json:"locales,omitempty" jsonschema:"locale identifiers to check"`
	Reference string   `json:"reference,omitempty" jsonschema:"reference locale"`
	Ignore    []string `json:"ignore,omitempty" jsonschema:"glob patterns of keys to exclude"`
}

func (in checkInput) apply(cfg config.Config) config.Config {
	if in.Root != "" {
		cfg.RootDir = in.Root
	}
	if len(in.Locales) > 0 {
		cfg.Locales = in.Locales
	}
	if in.Reference != "" {
		cfg.Reference = in.Reference
	}
	if len(in.Ignore) > 0 {
		cfg.Ignore = in.Ignore
	}
	return cfg
}

func checkHandler(base config.Config, logger *slog.Logger) mcp.ToolHandlerFor[checkInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input checkInput) (*mcp.CallToolResult, any, error) {
		c, err := checker.New(input.apply(base), checker.WithLogger(logger))
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}

		result, err := c.Run(ctx)
		rep := report.Build(result, err)
		out, _, merr := textResult(rep)
		if merr != nil {
			return nil, nil, fmt.Errorf("%s: %w", ToolName, merr)
		}
		out.IsError = rep.Status != domain.StatusPass
		return out, nil, nil
	}
}

func textResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}
