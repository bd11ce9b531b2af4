package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gridironhq/gridiron-sync/internal/app"
	"github.com/gridironhq/gridiron-sync/internal/config"
	"github.com/gridironhq/gridiron-sync/internal/observability"
	"github.com/gridironhq/gridiron-sync/internal/platform/logging"
	"github.com/gridironhq/gridiron-sync/internal/usecase"
)

func main() {
	var startDate, endDate, span string
	flag.StringVar(&startDate, "start", "", "first day to sync, YYYY-MM-DD")
	flag.StringVar(&startDate, "s", "", "shorthand for -start")
	flag.StringVar(&endDate, "end", "", "last day to sync, YYYY-MM-DD (inclusive)")
	flag.StringVar(&endDate, "e", "", "shorthand for -end")
	flag.StringVar(&span, "span", "", `window span from the start day: "week" or "month"`)
	flag.StringVar(&span, "t", "", "shorthand for -span")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer logger.Sync()
	logging.SetDefault(logger)

	// Argument problems are fatal before any network or database work.
	window, err := usecase.ResolveWindow(startDate, endDate, span)
	if err != nil {
		logger.Error("invalid date window", "start", startDate, "end", endDate, "span", span, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := stopProfiler(); err != nil {
			logger.Warn("stop pyroscope", "error", err)
		}
	}()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("shutdown tracing", "error", err)
		}
	}()

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}
	defer application.Close()

	logger.InfoContext(ctx, "event sync starting",
		"window_start", window.Start.Format("2006-01-02"),
		"window_end", window.End.Format("2006-01-02"),
		"sport_prefix", cfg.SportPrefix,
	)

	summary, err := application.Sync.Run(ctx, window)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.WarnContext(ctx, "event sync interrupted")
		} else {
			logger.ErrorContext(ctx, "event sync failed", "error", err)
		}
		os.Exit(1)
	}

	logger.InfoContext(ctx, "event sync finished",
		"days_processed", summary.DaysProcessed,
		"days_skipped", summary.DaysSkipped,
		"games_synced", summary.GamesSynced,
		"games_failed", summary.GamesFailed,
		"teams_created", summary.TeamsCreated,
	)
	for _, failure := range summary.Failures {
		logger.WarnContext(ctx, "game skipped",
			"date", failure.Date,
			"external_id", failure.ExternalID,
			"reason", failure.Reason,
		)
	}
}
