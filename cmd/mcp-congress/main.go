// Command mcp-congress runs the MCP tool server for congress.gov lookups.
// Uses stdio transport for integration with AI assistants, so logs go to
// stderr.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cdg-go/cdg/api"
	"github.com/cdg-go/cdg/cdg"
	"github.com/cdg-go/cdg/internal/config"
	"github.com/cdg-go/cdg/internal/mcpserver"
	"github.com/cdg-go/cdg/internal/observability"
	"github.com/cdg-go/cdg/internal/version"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}

	logger := observability.InitLoggerTo(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tool results are JSON regardless of CDG_FORMAT.
	opts := append(cfg.ClientOptions(),
		cdg.WithFormat(api.FormatJSON),
		cdg.WithLogger(logger),
	)
	if cfg.OTelEnabled {
		metrics, shutdown, err := observability.InitTelemetry(ctx, cfg.ServiceName, version.String())
		if err != nil {
			logger.Error("otel init failed", "error", err)
		} else {
			opts = append(opts, cdg.WithRecorder(metrics))
			defer shutdown(context.Background())
		}
	}

	client, err := cdg.New(cdg.Token(cfg.APIKey), opts...)
	if err != nil {
		logger.Error("unable to create congress.gov client", "error", err)
		os.Exit(1)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "cdg",
		Version: version.String(),
	}, nil)
	mcpserver.RegisterTools(server, client)

	logger.Info("starting MCP server", "config", cfg)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		logger.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
