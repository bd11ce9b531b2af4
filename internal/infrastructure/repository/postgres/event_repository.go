package postgres

import (
	"context"
	"fmt"

	"github.com/gridironhq/gridiron-sync/internal/domain/event"
	qb "github.com/gridironhq/gridiron-sync/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

const eventsTable = "events"

// eventConflictColumn is the feed's external event id; repeated runs over
// overlapping date windows converge on the latest observed state.
const eventConflictColumn = "api_uid"

const eventsJoinedTable = "events AS e " +
	"INNER JOIN teams AS th ON th.id = e.home_team_id " +
	"INNER JOIN teams AS tv ON tv.id = e.visiting_team_id"

var eventsJoinedColumns = []string{
	"th.full_name AS home_full_name",
	"th.abbreviation AS home_abbreviation",
	"th.location AS home_location",
	"th.team_color AS home_team_color",
	"th.logo_url AS home_logo_url",
	"th.conference_abbreviation AS home_conference_abbreviation",
	"tv.full_name AS visiting_full_name",
	"tv.abbreviation AS visiting_abbreviation",
	"tv.location AS visiting_location",
	"tv.team_color AS visiting_team_color",
	"tv.logo_url AS visiting_logo_url",
	"tv.conference_abbreviation AS visiting_conference_abbreviation",
	"e.*",
}

type EventRepository struct {
	db  *sqlx.DB
	rec *Record[eventTableModel, eventInsertModel]
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{
		db:  db,
		rec: NewRecord[eventTableModel, eventInsertModel](db, eventsTable),
	}
}

func (r *EventRepository) Upsert(ctx context.Context, item event.Event) (int64, error) {
	return r.rec.Upsert(ctx, eventInsertModel{
		ExternalID:     item.ExternalID,
		LeagueID:       ptrToNullInt64(item.LeagueID),
		HomeTeamID:     item.HomeTeamID,
		VisitingTeamID: item.VisitingTeamID,
		EventType:      item.EventType,
		HomeScore:      item.HomeScore,
		VisitingScore:  item.VisitingScore,
		CurrentPeriod:  item.CurrentPeriod,
		CurrentClock:   item.CurrentClock,
		Status:         item.Status,
		OddsSpread:     ptrToNullFloat64(item.OddsSpread),
		OddsOverUnder:  ptrToNullFloat64(item.OddsOverUnder),
		StartsAt:       item.StartsAt,
		RawPayload:     item.RawPayload,
	}, eventConflictColumn)
}

func (r *EventRepository) ListByLeague(ctx context.Context, leagueID int64) ([]event.WithTeams, error) {
	query, args, err := qb.Select(eventsJoinedColumns...).
		From(eventsJoinedTable).
		Where(qb.Eq("e.league_id", leagueID)).
		OrderBy("e.event_timestamp", "e.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select events by league query: %w", err)
	}

	return r.selectJoined(ctx, query, args)
}

func (r *EventRepository) ListByTeam(ctx context.Context, teamID int64) ([]event.WithTeams, error) {
	query, args, err := qb.Select(eventsJoinedColumns...).
		From(eventsJoinedTable).
		Where(qb.Expr("(th.id = ? OR tv.id = ?)", teamID, teamID)).
		OrderBy("e.event_timestamp", "e.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select events by team query: %w", err)
	}

	return r.selectJoined(ctx, query, args)
}

func (r *EventRepository) selectJoined(ctx context.Context, query string, args []any) ([]event.WithTeams, error) {
	var rows []eventWithTeamsRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select joined events: %w", err)
	}

	out := make([]event.WithTeams, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapEventWithTeamsRow(row))
	}

	return out, nil
}

func mapEventRow(row eventTableModel) event.Event {
	return event.Event{
		ID:             row.ID,
		ExternalID:     row.ExternalID,
		LeagueID:       nullInt64ToPtr(row.LeagueID),
		HomeTeamID:     row.HomeTeamID,
		VisitingTeamID: row.VisitingTeamID,
		EventType:      row.EventType,
		HomeScore:      row.HomeScore,
		VisitingScore:  row.VisitingScore,
		CurrentPeriod:  row.CurrentPeriod,
		CurrentClock:   row.CurrentClock,
		Status:         row.Status,
		OddsSpread:     nullFloat64ToPtr(row.OddsSpread),
		OddsOverUnder:  nullFloat64ToPtr(row.OddsOverUnder),
		StartsAt:       row.StartsAt,
		RawPayload:     row.RawPayload,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func mapEventWithTeamsRow(row eventWithTeamsRow) event.WithTeams {
	return event.WithTeams{
		Event:                          mapEventRow(row.eventTableModel),
		HomeFullName:                   row.HomeFullName,
		HomeAbbreviation:               row.HomeAbbreviation,
		HomeLocation:                   row.HomeLocation,
		HomeColor:                      row.HomeColor,
		HomeLogoURL:                    row.HomeLogoURL,
		HomeConferenceAbbreviation:     row.HomeConferenceAbbreviation,
		VisitingFullName:               row.VisitingFullName,
		VisitingAbbreviation:           row.VisitingAbbreviation,
		VisitingLocation:               row.VisitingLocation,
		VisitingColor:                  row.VisitingColor,
		VisitingLogoURL:                row.VisitingLogoURL,
		VisitingConferenceAbbreviation: row.VisitingConferenceAbbreviation,
	}
}
