package team

import (
	"fmt"
	"time"
)

// Team is one program keyed by its location, e.g. "Springfield".
// Teams are created the first time a feed game references them and are
// never rewritten by the sync pipeline afterwards.
type Team struct {
	ID                     int64
	Location               string
	Name                   string
	FullName               string
	Abbreviation           string
	Color                  string
	LogoURL                string
	LogoObjectKey          string
	StatsURL               string
	ScheduleURL            string
	ScoresURL              string
	ConferenceName         string
	ConferenceAbbreviation string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (t Team) Validate() error {
	if t.Location == "" {
		return fmt.Errorf("team location is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
