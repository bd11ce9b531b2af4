package usecase

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/panjf2000/ants/v2"

	"github.com/gridironhq/gridiron-sync/internal/domain/event"
	"github.com/gridironhq/gridiron-sync/internal/domain/team"
	"github.com/gridironhq/gridiron-sync/internal/platform/blob"
	"github.com/gridironhq/gridiron-sync/internal/platform/logging"
)

type EventSyncConfig struct {
	// SportPrefix namespaces logo asset keys, e.g. "ncaaf".
	SportPrefix string
	// LeagueID, when set, is stamped on every upserted event row.
	LeagueID int64
	// FetchWorkers bounds the day-batch prefetch pool. Prefetching is
	// read-only; all store writes stay on the caller's goroutine.
	FetchWorkers int
}

// EventSyncService walks a date window, resolves the two teams of every
// fetched game (creating them and uploading their logos on first sight)
// and upserts event rows keyed by the feed's external id. One bad game
// never aborts a run.
type EventSyncService struct {
	feed     FeedClient
	teams    team.Repository
	events   event.Repository
	assets   blob.Store
	validate *validator.Validate
	cfg      EventSyncConfig
	logger   *logging.Logger
}

func NewEventSyncService(
	feed FeedClient,
	teams team.Repository,
	events event.Repository,
	assets blob.Store,
	cfg EventSyncConfig,
	logger *logging.Logger,
) *EventSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.SportPrefix == "" {
		cfg.SportPrefix = "ncaaf"
	}
	if cfg.FetchWorkers <= 0 {
		cfg.FetchWorkers = 1
	}

	return &EventSyncService{
		feed:     feed,
		teams:    teams,
		events:   events,
		assets:   assets,
		validate: validator.New(),
		cfg:      cfg,
		logger:   logger,
	}
}

type RunSummary struct {
	DaysProcessed int
	DaysSkipped   int
	GamesSynced   int
	GamesFailed   int
	TeamsCreated  int
	Failures      []GameFailure
}

type GameFailure struct {
	Date       string
	ExternalID string
	Reason     string
}

// Run synchronizes every day of the window in chronological order.
// Per-game failures are collected into the summary; only day-batch fetch
// failures and context cancellation abort the run.
func (s *EventSyncService) Run(ctx context.Context, window Window) (RunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventSyncService.Run")
	defer span.End()

	var summary RunSummary

	if s.feed == nil || s.teams == nil || s.events == nil || s.assets == nil {
		return summary, fmt.Errorf("%w: event sync service is not fully configured", ErrDependencyUnavailable)
	}

	days := window.Days()
	batches, err := s.fetchBatches(ctx, days)
	if err != nil {
		return summary, err
	}

	for i, day := range days {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		batch := batches[i]
		if len(batch.Games) == 0 {
			// No games scheduled that day.
			summary.DaysSkipped++
			s.logger.DebugContext(ctx, "no games for day", "date", day.Format(dayLayout))
			continue
		}

		summary.DaysProcessed++
		s.logger.InfoContext(ctx, "processing day",
			"date", day.Format(dayLayout),
			"games", len(batch.Games),
		)

		for _, game := range batch.Games {
			created, err := s.syncGame(ctx, game)
			summary.TeamsCreated += created
			if err != nil {
				summary.GamesFailed++
				summary.Failures = append(summary.Failures, GameFailure{
					Date:       day.Format(dayLayout),
					ExternalID: game.ID,
					Reason:     err.Error(),
				})
				s.logger.ErrorContext(ctx, "sync game failed",
					"date", day.Format(dayLayout),
					"external_id", game.ID,
					"home_location", game.HomeTeam.Location,
					"away_location", game.AwayTeam.Location,
					"error", err,
				)
				continue
			}
			summary.GamesSynced++
		}
	}

	s.logger.InfoContext(ctx, "event sync finished",
		"days_processed", summary.DaysProcessed,
		"days_skipped", summary.DaysSkipped,
		"games_synced", summary.GamesSynced,
		"games_failed", summary.GamesFailed,
		"teams_created", summary.TeamsCreated,
	)

	return summary, nil
}

// fetchBatches downloads each day's batch, concurrently when configured.
// Results come back indexed by day so processing order stays ascending.
func (s *EventSyncService) fetchBatches(ctx context.Context, days []time.Time) ([]ExternalScoreboard, error) {
	results := make([]ExternalScoreboard, len(days))
	errs := make([]error, len(days))

	if s.cfg.FetchWorkers <= 1 || len(days) <= 1 {
		for i, day := range days {
			results[i], errs[i] = s.feed.GetEventsByDate(ctx, day)
		}
	} else {
		pool, err := ants.NewPool(s.cfg.FetchWorkers)
		if err != nil {
			return nil, fmt.Errorf("create fetch pool: %w", err)
		}
		defer pool.Release()

		var wg sync.WaitGroup
		for i, day := range days {
			i, day := i, day
			wg.Add(1)
			if err := pool.Submit(func() {
				defer wg.Done()
				results[i], errs[i] = s.feed.GetEventsByDate(ctx, day)
			}); err != nil {
				wg.Done()
				errs[i] = fmt.Errorf("submit fetch task: %w", err)
			}
		}
		wg.Wait()
	}

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("fetch events for %s: %w", days[i].Format(dayLayout), err)
		}
	}

	return results, nil
}

func (s *EventSyncService) syncGame(ctx context.Context, game ExternalGame) (teamsCreated int, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventSyncService.syncGame")
	defer span.End()

	if err := s.validate.StructCtx(ctx, game); err != nil {
		return 0, fmt.Errorf("%w: game payload failed validation: %v", ErrInvalidInput, err)
	}

	externalID, err := strconv.ParseInt(game.ID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: game id %q is not numeric", ErrInvalidInput, game.ID)
	}

	startsAt, err := parseEventTime(game.Date)
	if err != nil {
		return 0, err
	}

	homeID, homeCreated, err := s.resolveTeam(ctx, game.HomeTeam)
	if homeCreated {
		teamsCreated++
	}
	if err != nil {
		return teamsCreated, fmt.Errorf("resolve home team %q: %w", game.HomeTeam.Location, err)
	}

	awayID, awayCreated, err := s.resolveTeam(ctx, game.AwayTeam)
	if awayCreated {
		teamsCreated++
	}
	if err != nil {
		return teamsCreated, fmt.Errorf("resolve away team %q: %w", game.AwayTeam.Location, err)
	}

	if err := s.upsertEvent(ctx, game, externalID, startsAt, homeID, awayID); err != nil {
		return teamsCreated, err
	}

	return teamsCreated, nil
}

// resolveTeam returns the durable id for a team payload, creating the team
// and uploading its logo the first time the location is seen. An existing
// team is returned untouched: no image fetch, no write.
func (s *EventSyncService) resolveTeam(ctx context.Context, payload ExternalTeam) (int64, bool, error) {
	existing, found, err := s.teams.FindByLocation(ctx, payload.Location)
	if err != nil {
		return 0, false, fmt.Errorf("find team by location: %w", err)
	}
	if found {
		return existing.ID, false, nil
	}

	logo, err := s.feed.GetImageBuffer(ctx, payload.LogoURL)
	if err != nil {
		return 0, false, fmt.Errorf("fetch logo %s: %w", payload.LogoURL, err)
	}

	key, err := LogoObjectKey(s.cfg.SportPrefix, payload.LogoURL)
	if err != nil {
		return 0, false, err
	}

	if err := s.assets.Write(ctx, key, logo); err != nil {
		return 0, false, fmt.Errorf("store logo %s: %w", key, err)
	}

	item := team.Team{
		Location:               payload.Location,
		Name:                   payload.Name,
		FullName:               payload.DisplayName,
		Abbreviation:           payload.Abbreviation,
		Color:                  payload.Color,
		LogoURL:                payload.LogoURL,
		LogoObjectKey:          key,
		StatsURL:               payload.StatsURL,
		ScheduleURL:            payload.ScheduleURL,
		ScoresURL:              payload.ScoresURL,
		ConferenceName:         payload.ConferenceName,
		ConferenceAbbreviation: payload.ConferenceAbbreviation,
	}
	if err := item.Validate(); err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Conflict on location: a concurrent duplicate insert degrades to an
	// update instead of an error.
	id, err := s.teams.Upsert(ctx, item)
	if err != nil {
		return 0, false, fmt.Errorf("upsert team: %w", err)
	}

	s.logger.InfoContext(ctx, "created team",
		"location", item.Location,
		"team_id", id,
		"logo_key", key,
	)

	return id, true, nil
}

func (s *EventSyncService) upsertEvent(
	ctx context.Context,
	game ExternalGame,
	externalID int64,
	startsAt time.Time,
	homeID, awayID int64,
) error {
	raw, err := sonic.MarshalString(game)
	if err != nil {
		return fmt.Errorf("encode game payload: %w", err)
	}

	item := event.Event{
		ExternalID:     externalID,
		HomeTeamID:     homeID,
		VisitingTeamID: awayID,
		EventType:      game.Type,
		HomeScore:      game.Scores.Home,
		VisitingScore:  game.Scores.Away,
		CurrentPeriod:  game.Status.Period,
		CurrentClock:   game.Status.Clock,
		Status:         game.Status.Type,
		StartsAt:       startsAt,
		RawPayload:     raw,
	}
	if s.cfg.LeagueID > 0 {
		leagueID := s.cfg.LeagueID
		item.LeagueID = &leagueID
	}
	if game.Odds != nil {
		spread := game.Odds.Spread
		overUnder := game.Odds.OverUnder
		item.OddsSpread = &spread
		item.OddsOverUnder = &overUnder
	}
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.events.Upsert(ctx, item); err != nil {
		return fmt.Errorf("upsert event external_id=%d: %w", externalID, err)
	}

	return nil
}

var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02",
}

func parseEventTime(value string) (time.Time, error) {
	for _, layout := range eventTimeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable event date %q", ErrInvalidInput, value)
}
