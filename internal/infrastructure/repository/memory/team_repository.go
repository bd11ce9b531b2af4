package memory

import (
	"context"
	"sync"

	"github.com/gridironhq/gridiron-sync/internal/domain/team"
)

// TeamRepository is an in-memory team.Repository for tests.
type TeamRepository struct {
	mu         sync.RWMutex
	byLocation map[string]team.Team
	nextID     int64
}

func NewTeamRepository(seed []team.Team) *TeamRepository {
	repo := &TeamRepository{
		byLocation: make(map[string]team.Team, len(seed)),
		nextID:     1,
	}
	for _, item := range seed {
		if item.ID >= repo.nextID {
			repo.nextID = item.ID + 1
		}
		repo.byLocation[item.Location] = item
	}

	return repo
}

func (r *TeamRepository) FindByLocation(_ context.Context, location string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byLocation[location]
	return item, ok, nil
}

func (r *TeamRepository) Upsert(_ context.Context, item team.Team) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byLocation[item.Location]; ok {
		item.ID = existing.ID
		r.byLocation[item.Location] = item
		return item.ID, nil
	}

	item.ID = r.nextID
	r.nextID++
	r.byLocation[item.Location] = item

	return item.ID, nil
}

func (r *TeamRepository) GetByID(id int64) (team.Team, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.byLocation {
		if item.ID == id {
			return item, true
		}
	}

	return team.Team{}, false
}

func (r *TeamRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byLocation)
}
