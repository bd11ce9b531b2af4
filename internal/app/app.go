package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/gridironhq/gridiron-sync/external/scoreboard"
	"github.com/gridironhq/gridiron-sync/internal/config"
	"github.com/gridironhq/gridiron-sync/internal/infrastructure/repository/postgres"
	"github.com/gridironhq/gridiron-sync/internal/platform/blob"
	"github.com/gridironhq/gridiron-sync/internal/platform/logging"
	"github.com/gridironhq/gridiron-sync/internal/usecase"
)

// Application holds the wired components of the sync job.
type Application struct {
	Config config.Config
	Logger *logging.Logger
	DB     *sqlx.DB
	Sync   *usecase.EventSyncService
	Events *usecase.EventQueryService
}

func New(cfg config.Config, logger *logging.Logger) (*Application, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	assetStore, err := blob.NewFSStore(cfg.AssetRoot)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("open asset store: %w", err)
	}

	feedClient := scoreboard.NewClient(scoreboard.ClientConfig{
		HTTPClient: &http.Client{
			Timeout:   cfg.FeedTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		BaseURL:    cfg.FeedBaseURL,
		MaxRetries: cfg.FeedMaxRetries,
		Logger:     logger,
	})

	teamRepo := postgres.NewTeamRepository(db)
	eventRepo := postgres.NewEventRepository(db)

	syncSvc := usecase.NewEventSyncService(
		feedClient,
		teamRepo,
		eventRepo,
		assetStore,
		usecase.EventSyncConfig{
			SportPrefix:  cfg.SportPrefix,
			LeagueID:     cfg.LeagueID,
			FetchWorkers: cfg.FetchWorkers,
		},
		logger,
	)

	return &Application{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Sync:   syncSvc,
		Events: usecase.NewEventQueryService(eventRepo),
	}, nil
}

func (a *Application) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(4)

	return db, nil
}
