package postgres

import "time"

type teamTableModel struct {
	ID                     int64     `db:"id"`
	Location               string    `db:"location"`
	Name                   string    `db:"name"`
	FullName               string    `db:"full_name"`
	Abbreviation           string    `db:"abbreviation"`
	Color                  string    `db:"team_color"`
	LogoURL                string    `db:"logo_url"`
	LogoObjectKey          string    `db:"logo_local_filename"`
	StatsURL               string    `db:"stats_url"`
	ScheduleURL            string    `db:"schedule_url"`
	ScoresURL              string    `db:"scores_url"`
	ConferenceName         string    `db:"conference_name"`
	ConferenceAbbreviation string    `db:"conference_abbreviation"`
	CreatedAt              time.Time `db:"created_at"`
	UpdatedAt              time.Time `db:"updated_at"`
}

type teamInsertModel struct {
	Location               string `db:"location"`
	Name                   string `db:"name"`
	FullName               string `db:"full_name"`
	Abbreviation           string `db:"abbreviation"`
	Color                  string `db:"team_color"`
	LogoURL                string `db:"logo_url"`
	LogoObjectKey          string `db:"logo_local_filename"`
	StatsURL               string `db:"stats_url"`
	ScheduleURL            string `db:"schedule_url"`
	ScoresURL              string `db:"scores_url"`
	ConferenceName         string `db:"conference_name"`
	ConferenceAbbreviation string `db:"conference_abbreviation"`
}
