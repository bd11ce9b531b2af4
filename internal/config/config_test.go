package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	t.Setenv("FEED_BASE_URL", "http://localhost:8089")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_FeedBaseURLRequired(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FEED_BASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when FEED_BASE_URL is empty")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FEED_BASE_URL", "http://localhost:8089")
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_FeedConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FEED_BASE_URL", "http://feed.internal/ncaaf/")
	t.Setenv("FEED_TIMEOUT", "7s")
	t.Setenv("FEED_MAX_RETRIES", "4")
	t.Setenv("FETCH_WORKERS", "3")
	t.Setenv("LEAGUE_ID", "12")
	t.Setenv("SPORT_PREFIX", "cfb")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.FeedBaseURL != "http://feed.internal/ncaaf/" {
		t.Fatalf("unexpected FeedBaseURL: %q", cfg.FeedBaseURL)
	}
	if cfg.FeedTimeout != 7*time.Second {
		t.Fatalf("unexpected FeedTimeout: %s", cfg.FeedTimeout)
	}
	if cfg.FeedMaxRetries != 4 {
		t.Fatalf("unexpected FeedMaxRetries: %d", cfg.FeedMaxRetries)
	}
	if cfg.FetchWorkers != 3 {
		t.Fatalf("unexpected FetchWorkers: %d", cfg.FetchWorkers)
	}
	if cfg.LeagueID != 12 {
		t.Fatalf("unexpected LeagueID: %d", cfg.LeagueID)
	}
	if cfg.SportPrefix != "cfb" {
		t.Fatalf("unexpected SportPrefix: %q", cfg.SportPrefix)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FEED_BASE_URL", "http://localhost:8089")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceName != "gridiron-sync" {
		t.Fatalf("unexpected ServiceName: %q", cfg.ServiceName)
	}
	if cfg.SportPrefix != "ncaaf" {
		t.Fatalf("unexpected SportPrefix: %q", cfg.SportPrefix)
	}
	if cfg.AssetRoot != "assets" {
		t.Fatalf("unexpected AssetRoot: %q", cfg.AssetRoot)
	}
	if cfg.FetchWorkers != 1 {
		t.Fatalf("unexpected FetchWorkers: %d", cfg.FetchWorkers)
	}
	if !cfg.DBDisablePreparedBinary {
		t.Fatalf("expected DBDisablePreparedBinary=true by default")
	}
	if cfg.LogLevel.String() != "info" {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
}

func TestLoad_RejectsZeroFetchWorkers(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FEED_BASE_URL", "http://localhost:8089")
	t.Setenv("FETCH_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for FETCH_WORKERS=0")
	}
}
