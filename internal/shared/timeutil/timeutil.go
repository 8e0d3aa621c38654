// Package timeutil centralizes every timestamp interpretation rule of
// the punch clock. All day keys and clock renderings are pinned to UTC
// so results never depend on the server's local timezone.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	dayLayout = "2006-01-02"
	// clockLayout mirrors the HH:MM rendering the web client shows.
	clockLayout = "15:04"
)

var clientLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseClientTimestamp interprets a wall-clock string sent by the
// client as an instant already expressed in UTC. The string carries no
// offset marker on purpose: "09:00" from the client must stay "09:00"
// in storage, with no conversion in between.
func ParseClientTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(strings.TrimSuffix(s, "Z"))
	for _, layout := range clientLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// DayKey truncates an instant to its UTC calendar date.
func DayKey(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current UTC day key.
func Today() time.Time {
	return DayKey(time.Now())
}

// ParseDay parses a YYYY-MM-DD query parameter as a UTC day key.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dayLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

func FormatDay(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// FormatClock renders the HH:MM of an instant in UTC regardless of the
// process timezone.
func FormatClock(t time.Time) string {
	return t.UTC().Format(clockLayout)
}
