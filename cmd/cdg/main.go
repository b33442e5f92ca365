// Command cdg queries the congress.gov v3 API from the command line.
//
// Usage:
//
//	cdg bills --congress 118 --type hr --limit 5
//	cdg bill 117 hr 3076 --part actions
//	cdg member L000174 --sponsored
//	cdg members --state VT --current
//	cdg congress
//	cdg law 117 108
//	cdg batch 117/hr/3076 118/s/1 --concurrency 4
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/cdg-go/cdg/api"
	"github.com/cdg-go/cdg/cdg"
	"github.com/cdg-go/cdg/internal/config"
	"github.com/cdg-go/cdg/internal/observability"
	"github.com/cdg-go/cdg/internal/version"
)

// Globals are accepted by every command.
type Globals struct {
	Format string `help:"Response format: json or xml. Overrides CDG_FORMAT." short:"f"`
	Offset int    `help:"Skip this many results on list endpoints."`
	Limit  int    `help:"Return at most this many results on list endpoints (API maximum 250)." short:"n"`
}

type CLI struct {
	Globals

	Bills     BillsCmd     `cmd:"" help:"List bills, optionally by congress and type."`
	Bill      BillCmd      `cmd:"" help:"Get a bill or one of its sub-resources."`
	Summaries SummariesCmd `cmd:"" help:"List bill summaries."`
	Member    MemberCmd    `cmd:"" help:"Get a member by bioguide ID."`
	Members   MembersCmd   `cmd:"" help:"List members by congress, state or district."`
	Congress  CongressCmd  `cmd:"" help:"Get a congress; the current one when no number is given."`
	Law       LawCmd       `cmd:"" help:"Get a law, or list the laws of a congress."`
	Batch     BatchCmd     `cmd:"" help:"Fetch several bills concurrently."`
	Version   VersionCmd   `cmd:"" help:"Print version information."`
}

func main() {
	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("cdg"),
		kong.Description("Command line client for the congress.gov v3 API."),
		kong.UsageOnError(),
	)

	if kctx.Command() == "version" {
		kctx.FatalIfErrorf(kctx.Run())
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e, shutdown, err := setup(ctx, &cli.Globals)
	kctx.FatalIfErrorf(err)
	defer shutdown()

	kctx.FatalIfErrorf(kctx.Run(e))
}

func setup(ctx context.Context, g *Globals) (*env, func(), error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, nil, err
	}
	if g.Format != "" {
		cfg.Format = api.Format(strings.ToLower(g.Format))
	}

	logger := observability.InitLoggerTo(os.Stderr, cfg.LogLevel)
	logger.Debug("configuration loaded", "config", cfg)

	opts := append(cfg.ClientOptions(), cdg.WithLogger(logger))
	shutdown := func() {}
	if cfg.OTelEnabled {
		metrics, stop, err := observability.InitTelemetry(ctx, cfg.ServiceName, version.String())
		if err != nil {
			logger.Error("otel init failed", "error", err)
		} else {
			opts = append(opts, cdg.WithRecorder(metrics))
			shutdown = func() { _ = stop(context.Background()) }
		}
	}

	client, err := cdg.New(cdg.Token(cfg.APIKey), opts...)
	if err != nil {
		shutdown()
		return nil, nil, err
	}

	return &env{
		ctx:    ctx,
		client: client,
		format: cfg.Format,
		offset: g.Offset,
		limit:  g.Limit,
		out:    os.Stdout,
	}, shutdown, nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	_, err := os.Stdout.WriteString(version.String() + "\n")
	return err
}
