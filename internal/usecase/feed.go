package usecase

import (
	"context"
	"time"
)

// FeedClient is the external scoreboard feed as the sync engine sees it.
type FeedClient interface {
	// GetEventsByDate fetches the batch of games scheduled on one
	// calendar day. A day with no games returns an empty Games slice,
	// not an error.
	GetEventsByDate(ctx context.Context, date time.Time) (ExternalScoreboard, error)

	// GetImageBuffer downloads one image verbatim.
	GetImageBuffer(ctx context.Context, url string) ([]byte, error)
}

type ExternalScoreboard struct {
	Games []ExternalGame
}

// ExternalGame mirrors one game payload from the feed. Validation tags
// gate the write path: a payload missing any required piece fails that
// game only, never the batch.
type ExternalGame struct {
	ID       string          `validate:"required"`
	Date     string          `validate:"required"`
	HomeTeam ExternalTeam    `validate:"required"`
	AwayTeam ExternalTeam    `validate:"required"`
	Scores   *ExternalScores `validate:"required"`
	Status   *ExternalStatus `validate:"required"`
	Odds     *ExternalOdds
	Type     string
}

type ExternalTeam struct {
	Location               string `validate:"required"`
	Name                   string `validate:"required"`
	DisplayName            string
	Abbreviation           string
	Color                  string
	LogoURL                string `validate:"required,url"`
	StatsURL               string
	ScheduleURL            string
	ScoresURL              string
	ConferenceName         string
	ConferenceAbbreviation string
}

type ExternalScores struct {
	Home int
	Away int
}

type ExternalStatus struct {
	Period int
	Clock  string
	Type   string
}

type ExternalOdds struct {
	Spread    float64
	OverUnder float64
}
