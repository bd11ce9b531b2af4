package scoreboard

import "github.com/gridironhq/gridiron-sync/internal/usecase"

// Wire shapes for the scoreboard feed. A day's response nests games under
// a "games" collection; a day without scheduled games omits it entirely.
type scoreboardEnvelope struct {
	Games []gamePayload `json:"games"`
}

type gamePayload struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Date     string         `json:"date"`
	HomeTeam teamPayload    `json:"homeTeam"`
	AwayTeam teamPayload    `json:"awayTeam"`
	Scores   *scoresPayload `json:"scores"`
	Status   *statusPayload `json:"status"`
	Odds     *oddsPayload   `json:"odds"`
}

type teamPayload struct {
	Location     string            `json:"location"`
	Name         string            `json:"name"`
	DisplayName  string            `json:"displayName"`
	Abbreviation string            `json:"abbreviation"`
	Color        string            `json:"color"`
	LogoURL      string            `json:"logoUrl"`
	Conference   conferencePayload `json:"conference"`
	Links        linksPayload      `json:"links"`
}

type conferencePayload struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type linksPayload struct {
	Stats    string `json:"stats"`
	Schedule string `json:"schedule"`
	Scores   string `json:"scores"`
}

type scoresPayload struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type statusPayload struct {
	Period int    `json:"period"`
	Clock  string `json:"clock"`
	Type   string `json:"type"`
}

type oddsPayload struct {
	Spread    float64 `json:"spread"`
	OverUnder float64 `json:"overUnder"`
}

func mapScoreboard(envelope scoreboardEnvelope) usecase.ExternalScoreboard {
	out := usecase.ExternalScoreboard{}
	if len(envelope.Games) == 0 {
		return out
	}

	out.Games = make([]usecase.ExternalGame, 0, len(envelope.Games))
	for _, game := range envelope.Games {
		out.Games = append(out.Games, mapGame(game))
	}

	return out
}

func mapGame(game gamePayload) usecase.ExternalGame {
	mapped := usecase.ExternalGame{
		ID:       game.ID,
		Type:     game.Type,
		Date:     game.Date,
		HomeTeam: mapTeam(game.HomeTeam),
		AwayTeam: mapTeam(game.AwayTeam),
	}
	if game.Scores != nil {
		mapped.Scores = &usecase.ExternalScores{Home: game.Scores.Home, Away: game.Scores.Away}
	}
	if game.Status != nil {
		mapped.Status = &usecase.ExternalStatus{
			Period: game.Status.Period,
			Clock:  game.Status.Clock,
			Type:   game.Status.Type,
		}
	}
	if game.Odds != nil {
		mapped.Odds = &usecase.ExternalOdds{
			Spread:    game.Odds.Spread,
			OverUnder: game.Odds.OverUnder,
		}
	}

	return mapped
}

func mapTeam(team teamPayload) usecase.ExternalTeam {
	return usecase.ExternalTeam{
		Location:               team.Location,
		Name:                   team.Name,
		DisplayName:            team.DisplayName,
		Abbreviation:           team.Abbreviation,
		Color:                  team.Color,
		LogoURL:                team.LogoURL,
		StatsURL:               team.Links.Stats,
		ScheduleURL:            team.Links.Schedule,
		ScoresURL:              team.Links.Scores,
		ConferenceName:         team.Conference.Name,
		ConferenceAbbreviation: team.Conference.Abbreviation,
	}
}
