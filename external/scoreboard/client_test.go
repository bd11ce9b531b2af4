package scoreboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const scoreboardFixture = `{
	"games": [
		{
			"id": "401520163",
			"type": "regular",
			"date": "2023-09-02T19:30Z",
			"homeTeam": {
				"location": "Springfield",
				"name": "Atoms",
				"displayName": "Springfield Atoms",
				"abbreviation": "SPR",
				"color": "00274c",
				"logoUrl": "https://cdn.example.com/logos/springfield.png",
				"conference": {"name": "Big Ten", "abbreviation": "B1G"},
				"links": {
					"stats": "https://example.com/springfield/stats",
					"schedule": "https://example.com/springfield/schedule",
					"scores": "https://example.com/springfield/scores"
				}
			},
			"awayTeam": {
				"location": "Shelbyville",
				"name": "Sharks",
				"logoUrl": "https://cdn.example.com/logos/shelbyville.png",
				"conference": {"name": "Big Ten", "abbreviation": "B1G"}
			},
			"scores": {"home": 10, "away": 3},
			"status": {"period": 4, "clock": "0:00", "type": "final"},
			"odds": {"spread": -6.5, "overUnder": 48.5}
		}
	]
}`

func TestGetEventsByDate_MapsPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("date"); got != "2023-09-02" {
			t.Errorf("expected date=2023-09-02, got=%q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(scoreboardFixture))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, HTTPClient: server.Client()})

	day := time.Date(2023, time.September, 2, 0, 0, 0, 0, time.UTC)
	board, err := client.GetEventsByDate(context.Background(), day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(board.Games) != 1 {
		t.Fatalf("expected one game, got=%d", len(board.Games))
	}

	game := board.Games[0]
	if game.ID != "401520163" {
		t.Fatalf("expected id=401520163, got=%q", game.ID)
	}
	if game.HomeTeam.Location != "Springfield" || game.HomeTeam.Name != "Atoms" {
		t.Fatalf("unexpected home team %+v", game.HomeTeam)
	}
	if game.HomeTeam.ConferenceAbbreviation != "B1G" {
		t.Fatalf("expected conference abbreviation B1G, got=%q", game.HomeTeam.ConferenceAbbreviation)
	}
	if game.HomeTeam.StatsURL != "https://example.com/springfield/stats" {
		t.Fatalf("unexpected stats link %q", game.HomeTeam.StatsURL)
	}
	if game.Scores == nil || game.Scores.Home != 10 || game.Scores.Away != 3 {
		t.Fatalf("unexpected scores %+v", game.Scores)
	}
	if game.Status == nil || game.Status.Type != "final" || game.Status.Period != 4 {
		t.Fatalf("unexpected status %+v", game.Status)
	}
	if game.Odds == nil || game.Odds.Spread != -6.5 || game.Odds.OverUnder != 48.5 {
		t.Fatalf("unexpected odds %+v", game.Odds)
	}
}

func TestGetEventsByDate_EmptyDay(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, HTTPClient: server.Client()})

	board, err := client.GetEventsByDate(context.Background(), time.Date(2023, time.July, 4, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(board.Games) != 0 {
		t.Fatalf("expected no games, got=%d", len(board.Games))
	}
}

func TestGetEventsByDate_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"games":[]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, HTTPClient: server.Client(), MaxRetries: 2})

	_, err := client.GetEventsByDate(context.Background(), time.Date(2023, time.September, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error after retry: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 requests, got=%d", got)
	}
}

func TestGetEventsByDate_NonRetryableStatusFailsFast(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, HTTPClient: server.Client(), MaxRetries: 3})

	_, err := client.GetEventsByDate(context.Background(), time.Date(2023, time.September, 2, 0, 0, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("expected error for status 404")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single request, got=%d", got)
	}
}

func TestGetImageBuffer(t *testing.T) {
	t.Parallel()

	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, HTTPClient: server.Client()})

	raw, err := client.GetImageBuffer(context.Background(), server.URL+"/logos/springfield.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != string(payload) {
		t.Fatalf("image bytes mismatch: got=%v", raw)
	}
}

func TestGetImageBuffer_RejectsRelativeURL(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{BaseURL: "http://example.invalid"})
	if _, err := client.GetImageBuffer(context.Background(), "/logos/springfield.png"); err == nil {
		t.Fatal("expected error for relative url")
	}
}
