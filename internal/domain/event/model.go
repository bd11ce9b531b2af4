package event

import (
	"fmt"
	"time"
)

// Event is one game as last observed from the feed. Rows converge to the
// latest observed state: scores and status change over a game's lifetime,
// so the same external id is written again on every run that sees it.
type Event struct {
	ID             int64
	ExternalID     int64
	LeagueID       *int64
	HomeTeamID     int64
	VisitingTeamID int64
	EventType      string
	HomeScore      int
	VisitingScore  int
	CurrentPeriod  int
	CurrentClock   string
	Status         string
	OddsSpread     *float64
	OddsOverUnder  *float64
	StartsAt       time.Time
	RawPayload     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (e Event) Validate() error {
	if e.ExternalID <= 0 {
		return fmt.Errorf("event external id must be greater than zero")
	}
	if e.HomeTeamID <= 0 || e.VisitingTeamID <= 0 {
		return fmt.Errorf("event team ids must be greater than zero")
	}
	if e.StartsAt.IsZero() {
		return fmt.Errorf("event start time is required")
	}

	return nil
}

// WithTeams is the read model for event listings: one event joined with
// display metadata for both programs, ordered by start time.
type WithTeams struct {
	Event
	HomeFullName                   string
	HomeAbbreviation               string
	HomeLocation                   string
	HomeColor                      string
	HomeLogoURL                    string
	HomeConferenceAbbreviation     string
	VisitingFullName               string
	VisitingAbbreviation           string
	VisitingLocation               string
	VisitingColor                  string
	VisitingLogoURL                string
	VisitingConferenceAbbreviation string
}
