package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"

	"github.com/mfdorneles/trendmood/config"
	"github.com/mfdorneles/trendmood/internal/clients"
	"github.com/mfdorneles/trendmood/internal/collector"
	"github.com/mfdorneles/trendmood/internal/dataset"
	"github.com/mfdorneles/trendmood/internal/logging"
)

type Options struct {
	ConfigFile      string `short:"c" long:"config" env:"TRENDMOOD_CONFIG" default:"collector.yml" description:"Path to the run configuration file"`
	CredentialsFile string `long:"credentials" env:"REDDIT_CREDENTIALS" description:"Path to the Reddit credentials file (overrides config)"`
	DataDir         string `long:"data-dir" env:"TRENDMOOD_DATA_DIR" description:"Directory artifacts are written to (overrides config)"`
	Debug           bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	config.LoadEnv()
	logging.InitLogger(opts.Debug)

	cfg := config.Default()
	if _, err := os.Stat(opts.ConfigFile); err == nil {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			slog.Error("[Collector] Invalid configuration", slog.String("error", err.Error()))
			os.Exit(1)
		}
		cfg = loaded
	} else {
		slog.Info("[Collector] No config file found, using defaults",
			slog.String("path", opts.ConfigFile))
	}
	if opts.CredentialsFile != "" {
		cfg.CredentialsFile = opts.CredentialsFile
	}
	if opts.DataDir != "" {
		cfg.DataDir = opts.DataDir
	}

	creds, err := config.LoadCredentials(cfg.CredentialsFile)
	if err != nil {
		slog.Error("[Collector] Cannot load credentials", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redditClient := clients.NewRedditClient(creds)
	if err := redditClient.Authenticate(ctx); err != nil {
		slog.Error("[Collector] Reddit authentication failed, check the credentials file",
			slog.String("path", cfg.CredentialsFile),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("[Collector] Connected to Reddit")

	col := collector.New(redditClient, cfg.Subreddits, cfg.PostLimit)
	materializer := dataset.NewMaterializer(col, cfg.DataDir)

	// Topics run sequentially; one topic's failure never aborts the rest.
	failed := 0
	for _, topic := range cfg.Topics {
		if ctx.Err() != nil {
			slog.Warn("[Collector] Interrupted, stopping")
			break
		}

		slog.Info("[Collector] Processing topic", slog.String("topic", topic))

		result, err := materializer.Materialize(ctx, topic)
		if err != nil {
			failed++
			slog.Error("[Collector] Topic failed",
				slog.String("topic", topic),
				slog.String("error", err.Error()))
			continue
		}

		switch result.Outcome {
		case dataset.OutcomeCached:
			slog.Info("[Collector] Artifact already exists, collection skipped",
				slog.String("topic", topic))
		case dataset.OutcomeSkippedEmpty:
			slog.Warn("[Collector] No comments found, nothing written",
				slog.String("topic", topic))
		case dataset.OutcomeMaterialized:
			slog.Info("[Collector] Topic done",
				slog.String("topic", topic),
				slog.Int("rows", result.Rows))
		}
	}

	slog.Info("[Collector] All topics processed",
		slog.Int("topics", len(cfg.Topics)),
		slog.Int("failed", failed))
}
