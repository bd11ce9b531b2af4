package event

import "context"

// Repository describes event persistence needs from use cases.
type Repository interface {
	// Upsert inserts the event or updates the existing row carrying the
	// same external id. Returns the durable id.
	Upsert(ctx context.Context, item Event) (int64, error)

	// ListByLeague returns events joined with team display metadata for
	// one league, ordered by event timestamp ascending.
	ListByLeague(ctx context.Context, leagueID int64) ([]WithTeams, error)

	// ListByTeam returns events where the team played on either side,
	// ordered by event timestamp ascending.
	ListByTeam(ctx context.Context, teamID int64) ([]WithTeams, error)
}
