package usecase

import (
	"fmt"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

const (
	SpanWeek  = "week"
	SpanMonth = "month"
)

// Window spans whole calendar days, Start through End inclusive, at
// midnight UTC.
type Window struct {
	Start time.Time
	End   time.Time
}

// ResolveWindow turns the invocation arguments into a concrete day window.
// A span keyword derives the end from the start; otherwise an explicit end
// date is required. Any failure here is fatal for the run and happens
// before the first feed fetch or store write.
func ResolveWindow(start, end, span string) (Window, error) {
	startDay, err := parseDay(start)
	if err != nil {
		return Window{}, fmt.Errorf("%w: start date %q: dates must be in the form YYYY-MM-DD", ErrInvalidInput, start)
	}

	var endDay time.Time
	switch strings.ToLower(strings.TrimSpace(span)) {
	case SpanWeek:
		endDay = startDay.AddDate(0, 0, 7)
	case SpanMonth:
		endDay = startDay.AddDate(0, 1, 0)
	case "":
		endDay, err = parseDay(end)
		if err != nil {
			return Window{}, fmt.Errorf("%w: end date %q: dates must be in the form YYYY-MM-DD", ErrInvalidInput, end)
		}
	default:
		return Window{}, fmt.Errorf("%w: unknown span %q, valid spans are %s and %s", ErrInvalidInput, span, SpanWeek, SpanMonth)
	}

	if endDay.Before(startDay) {
		return Window{}, fmt.Errorf("%w: end date %s is before start date %s", ErrInvalidInput, endDay.Format(dayLayout), startDay.Format(dayLayout))
	}

	return Window{Start: startDay, End: endDay}, nil
}

// Days lists every calendar day of the window in chronological ascending
// order. Downstream consumers expect monotonic event timestamps, so the
// iteration order is part of the contract.
func (w Window) Days() []time.Time {
	if w.Start.IsZero() || w.End.Before(w.Start) {
		return nil
	}

	out := make([]time.Time, 0, int(w.End.Sub(w.Start).Hours()/24)+1)
	for day := w.Start; !day.After(w.End); day = day.AddDate(0, 0, 1) {
		out = append(out, day)
	}

	return out
}

func parseDay(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(dayLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}
