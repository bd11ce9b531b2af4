package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	// FindByLocation looks a team up by its natural key. A miss is
	// (zero, false, nil); only store failures return an error.
	FindByLocation(ctx context.Context, location string) (Team, bool, error)

	// Upsert inserts the team or, when a row with the same location
	// already exists, updates it in place. Returns the durable id.
	Upsert(ctx context.Context, item Team) (int64, error)
}
