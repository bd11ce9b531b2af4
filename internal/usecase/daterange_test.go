package usecase

import (
	"errors"
	"testing"
	"time"
)

func TestResolveWindow(t *testing.T) {
	t.Run("explicit start and end", func(t *testing.T) {
		window, err := ResolveWindow("2023-09-01", "2023-09-03", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !window.Start.Equal(time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected start: %s", window.Start)
		}
		if !window.End.Equal(time.Date(2023, time.September, 3, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected end: %s", window.End)
		}
	})

	t.Run("week span derives end", func(t *testing.T) {
		window, err := ResolveWindow("2023-09-01", "", SpanWeek)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !window.End.Equal(time.Date(2023, time.September, 8, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected end: %s", window.End)
		}
	})

	t.Run("month span derives end", func(t *testing.T) {
		window, err := ResolveWindow("2023-09-01", "", SpanMonth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !window.End.Equal(time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected end: %s", window.End)
		}
	})

	t.Run("span beats explicit end", func(t *testing.T) {
		window, err := ResolveWindow("2023-09-01", "2023-12-31", SpanWeek)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !window.End.Equal(time.Date(2023, time.September, 8, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected end: %s", window.End)
		}
	})

	t.Run("missing start is invalid", func(t *testing.T) {
		_, err := ResolveWindow("", "2023-09-03", "")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("missing end without span is invalid", func(t *testing.T) {
		_, err := ResolveWindow("2023-09-01", "", "")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("malformed date is invalid", func(t *testing.T) {
		_, err := ResolveWindow("09/01/2023", "2023-09-03", "")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown span is invalid", func(t *testing.T) {
		_, err := ResolveWindow("2023-09-01", "", "fortnight")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("end before start is invalid", func(t *testing.T) {
		_, err := ResolveWindow("2023-09-03", "2023-09-01", "")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestWindowDays(t *testing.T) {
	t.Run("ascending inclusive", func(t *testing.T) {
		window, err := ResolveWindow("2023-09-01", "", SpanWeek)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		days := window.Days()
		if len(days) != 8 {
			t.Fatalf("expected 8 days, got %d", len(days))
		}
		if got := days[0].Format("2006-01-02"); got != "2023-09-01" {
			t.Fatalf("unexpected first day: %s", got)
		}
		if got := days[len(days)-1].Format("2006-01-02"); got != "2023-09-08" {
			t.Fatalf("unexpected last day: %s", got)
		}
		for i := 1; i < len(days); i++ {
			if !days[i].After(days[i-1]) {
				t.Fatalf("days out of order at index %d: %s then %s", i, days[i-1], days[i])
			}
		}
	})

	t.Run("single day window", func(t *testing.T) {
		window, err := ResolveWindow("2023-09-01", "2023-09-01", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if days := window.Days(); len(days) != 1 {
			t.Fatalf("expected a single day, got %d", len(days))
		}
	})

	t.Run("zero window yields nothing", func(t *testing.T) {
		if days := (Window{}).Days(); days != nil {
			t.Fatalf("expected nil days, got %v", days)
		}
	})
}
