package postgres

import (
	"context"

	"github.com/gridironhq/gridiron-sync/internal/domain/team"
	"github.com/jmoiron/sqlx"
)

const teamsTable = "teams"

// teamConflictColumn is the natural key; the schema enforces its
// uniqueness so concurrent duplicate inserts degrade to updates.
const teamConflictColumn = "location"

type TeamRepository struct {
	rec *Record[teamTableModel, teamInsertModel]
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{rec: NewRecord[teamTableModel, teamInsertModel](db, teamsTable)}
}

func (r *TeamRepository) FindByLocation(ctx context.Context, location string) (team.Team, bool, error) {
	row, found, err := r.rec.FindByColumn(ctx, teamConflictColumn, location)
	if err != nil || !found {
		return team.Team{}, false, err
	}

	return mapTeamRow(row), true, nil
}

func (r *TeamRepository) Upsert(ctx context.Context, item team.Team) (int64, error) {
	return r.rec.Upsert(ctx, teamInsertModel{
		Location:               item.Location,
		Name:                   item.Name,
		FullName:               item.FullName,
		Abbreviation:           item.Abbreviation,
		Color:                  item.Color,
		LogoURL:                item.LogoURL,
		LogoObjectKey:          item.LogoObjectKey,
		StatsURL:               item.StatsURL,
		ScheduleURL:            item.ScheduleURL,
		ScoresURL:              item.ScoresURL,
		ConferenceName:         item.ConferenceName,
		ConferenceAbbreviation: item.ConferenceAbbreviation,
	}, teamConflictColumn)
}

func mapTeamRow(row teamTableModel) team.Team {
	return team.Team{
		ID:                     row.ID,
		Location:               row.Location,
		Name:                   row.Name,
		FullName:               row.FullName,
		Abbreviation:           row.Abbreviation,
		Color:                  row.Color,
		LogoURL:                row.LogoURL,
		LogoObjectKey:          row.LogoObjectKey,
		StatsURL:               row.StatsURL,
		ScheduleURL:            row.ScheduleURL,
		ScoresURL:              row.ScoresURL,
		ConferenceName:         row.ConferenceName,
		ConferenceAbbreviation: row.ConferenceAbbreviation,
		CreatedAt:              row.CreatedAt,
		UpdatedAt:              row.UpdatedAt,
	}
}
