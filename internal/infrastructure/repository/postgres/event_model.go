package postgres

import (
	"database/sql"
	"time"
)

type eventTableModel struct {
	ID             int64           `db:"id"`
	ExternalID     int64           `db:"api_uid"`
	LeagueID       sql.NullInt64   `db:"league_id"`
	HomeTeamID     int64           `db:"home_team_id"`
	VisitingTeamID int64           `db:"visiting_team_id"`
	EventType      string          `db:"event_type"`
	HomeScore      int             `db:"home_team_score"`
	VisitingScore  int             `db:"visiting_team_score"`
	CurrentPeriod  int             `db:"current_period"`
	CurrentClock   string          `db:"current_clock"`
	Status         string          `db:"event_status"`
	OddsSpread     sql.NullFloat64 `db:"odds_spread"`
	OddsOverUnder  sql.NullFloat64 `db:"odds_over_under"`
	StartsAt       time.Time       `db:"event_timestamp"`
	RawPayload     string          `db:"complete_json"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

type eventInsertModel struct {
	ExternalID     int64           `db:"api_uid"`
	LeagueID       sql.NullInt64   `db:"league_id"`
	HomeTeamID     int64           `db:"home_team_id"`
	VisitingTeamID int64           `db:"visiting_team_id"`
	EventType      string          `db:"event_type"`
	HomeScore      int             `db:"home_team_score"`
	VisitingScore  int             `db:"visiting_team_score"`
	CurrentPeriod  int             `db:"current_period"`
	CurrentClock   string          `db:"current_clock"`
	Status         string          `db:"event_status"`
	OddsSpread     sql.NullFloat64 `db:"odds_spread"`
	OddsOverUnder  sql.NullFloat64 `db:"odds_over_under"`
	StartsAt       time.Time       `db:"event_timestamp"`
	RawPayload     string          `db:"complete_json"`
}

// eventWithTeamsRow carries one event joined with both programs' display
// metadata, column aliases matching the listing queries.
type eventWithTeamsRow struct {
	eventTableModel
	HomeFullName                   string `db:"home_full_name"`
	HomeAbbreviation               string `db:"home_abbreviation"`
	HomeLocation                   string `db:"home_location"`
	HomeColor                      string `db:"home_team_color"`
	HomeLogoURL                    string `db:"home_logo_url"`
	HomeConferenceAbbreviation     string `db:"home_conference_abbreviation"`
	VisitingFullName               string `db:"visiting_full_name"`
	VisitingAbbreviation           string `db:"visiting_abbreviation"`
	VisitingLocation               string `db:"visiting_location"`
	VisitingColor                  string `db:"visiting_team_color"`
	VisitingLogoURL                string `db:"visiting_logo_url"`
	VisitingConferenceAbbreviation string `db:"visiting_conference_abbreviation"`
}
