package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gridironhq/gridiron-sync/internal/domain/event"
	"github.com/gridironhq/gridiron-sync/internal/domain/team"
	"github.com/gridironhq/gridiron-sync/internal/infrastructure/repository/memory"
)

func TestEventQueryService(t *testing.T) {
	teams := memory.NewTeamRepository([]team.Team{
		{ID: 1, Location: "Springfield", Name: "Atoms", FullName: "Springfield Atoms"},
		{ID: 2, Location: "Shelbyville", Name: "Sharks", FullName: "Shelbyville Sharks"},
		{ID: 3, Location: "Ogdenville", Name: "Owls", FullName: "Ogdenville Owls"},
	})
	events := memory.NewEventRepository(teams)

	leagueID := int64(9)
	seed := []event.Event{
		{ExternalID: 2, LeagueID: &leagueID, HomeTeamID: 1, VisitingTeamID: 2, StartsAt: time.Date(2023, time.September, 9, 19, 0, 0, 0, time.UTC)},
		{ExternalID: 1, LeagueID: &leagueID, HomeTeamID: 2, VisitingTeamID: 3, StartsAt: time.Date(2023, time.September, 2, 19, 0, 0, 0, time.UTC)},
		{ExternalID: 3, HomeTeamID: 1, VisitingTeamID: 3, StartsAt: time.Date(2023, time.September, 16, 19, 0, 0, 0, time.UTC)},
	}
	for _, item := range seed {
		if _, err := events.Upsert(context.Background(), item); err != nil {
			t.Fatalf("seed event: %v", err)
		}
	}

	svc := NewEventQueryService(events)

	t.Run("list by league ascending with team metadata", func(t *testing.T) {
		listed, err := svc.ListByLeague(context.Background(), leagueID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(listed) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(listed))
		}
		if listed[0].ExternalID != 1 || listed[1].ExternalID != 2 {
			t.Fatalf("rows out of order: %d then %d", listed[0].ExternalID, listed[1].ExternalID)
		}
		if listed[0].HomeFullName != "Shelbyville Sharks" {
			t.Fatalf("unexpected home metadata: %q", listed[0].HomeFullName)
		}
		if listed[0].VisitingFullName != "Ogdenville Owls" {
			t.Fatalf("unexpected visiting metadata: %q", listed[0].VisitingFullName)
		}
	})

	t.Run("list by team covers home and away sides", func(t *testing.T) {
		listed, err := svc.ListByTeam(context.Background(), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(listed) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(listed))
		}
		if listed[0].ExternalID != 1 || listed[1].ExternalID != 3 {
			t.Fatalf("rows out of order: %d then %d", listed[0].ExternalID, listed[1].ExternalID)
		}
	})

	t.Run("rejects non-positive ids", func(t *testing.T) {
		if _, err := svc.ListByLeague(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
		if _, err := svc.ListByTeam(context.Background(), -1); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}
