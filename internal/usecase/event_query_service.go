package usecase

import (
	"context"
	"fmt"

	"github.com/gridironhq/gridiron-sync/internal/domain/event"
)

// EventQueryService serves read-only event listings joined with team
// display metadata, ordered by event timestamp ascending.
type EventQueryService struct {
	events event.Repository
}

func NewEventQueryService(events event.Repository) *EventQueryService {
	return &EventQueryService{events: events}
}

func (s *EventQueryService) ListByLeague(ctx context.Context, leagueID int64) ([]event.WithTeams, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventQueryService.ListByLeague")
	defer span.End()

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id must be greater than zero", ErrInvalidInput)
	}

	out, err := s.events.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list events by league: %w", err)
	}

	return out, nil
}

func (s *EventQueryService) ListByTeam(ctx context.Context, teamID int64) ([]event.WithTeams, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventQueryService.ListByTeam")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}

	out, err := s.events.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list events by team: %w", err)
	}

	return out, nil
}
