package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gridironhq/gridiron-sync/internal/domain/event"
)

// EventRepository is an in-memory event.Repository for tests. Joined
// listings resolve team metadata through the paired TeamRepository.
type EventRepository struct {
	mu           sync.RWMutex
	byExternalID map[int64]event.Event
	nextID       int64
	teams        *TeamRepository
}

func NewEventRepository(teams *TeamRepository) *EventRepository {
	return &EventRepository{
		byExternalID: make(map[int64]event.Event),
		nextID:       1,
		teams:        teams,
	}
}

func (r *EventRepository) Upsert(_ context.Context, item event.Event) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byExternalID[item.ExternalID]; ok {
		item.ID = existing.ID
		item.CreatedAt = existing.CreatedAt
		r.byExternalID[item.ExternalID] = item
		return item.ID, nil
	}

	item.ID = r.nextID
	r.nextID++
	r.byExternalID[item.ExternalID] = item

	return item.ID, nil
}

func (r *EventRepository) ListByLeague(_ context.Context, leagueID int64) ([]event.WithTeams, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.WithTeams, 0)
	for _, item := range r.byExternalID {
		if item.LeagueID == nil || *item.LeagueID != leagueID {
			continue
		}
		out = append(out, r.joined(item))
	}
	sortByTimestamp(out)

	return out, nil
}

func (r *EventRepository) ListByTeam(_ context.Context, teamID int64) ([]event.WithTeams, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.WithTeams, 0)
	for _, item := range r.byExternalID {
		if item.HomeTeamID != teamID && item.VisitingTeamID != teamID {
			continue
		}
		out = append(out, r.joined(item))
	}
	sortByTimestamp(out)

	return out, nil
}

func (r *EventRepository) GetByExternalID(externalID int64) (event.Event, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byExternalID[externalID]
	return item, ok
}

func (r *EventRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byExternalID)
}

func (r *EventRepository) joined(item event.Event) event.WithTeams {
	out := event.WithTeams{Event: item}
	if r.teams == nil {
		return out
	}

	if home, ok := r.teams.GetByID(item.HomeTeamID); ok {
		out.HomeFullName = home.FullName
		out.HomeAbbreviation = home.Abbreviation
		out.HomeLocation = home.Location
		out.HomeColor = home.Color
		out.HomeLogoURL = home.LogoURL
		out.HomeConferenceAbbreviation = home.ConferenceAbbreviation
	}
	if visiting, ok := r.teams.GetByID(item.VisitingTeamID); ok {
		out.VisitingFullName = visiting.FullName
		out.VisitingAbbreviation = visiting.Abbreviation
		out.VisitingLocation = visiting.Location
		out.VisitingColor = visiting.Color
		out.VisitingLogoURL = visiting.LogoURL
		out.VisitingConferenceAbbreviation = visiting.ConferenceAbbreviation
	}

	return out
}

func sortByTimestamp(items []event.WithTeams) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].StartsAt.Equal(items[j].StartsAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].StartsAt.Before(items[j].StartsAt)
	})
}
