package program

import (
	"errors"
	"sort"
	"strings"
	"time"

	"colloque/internal/domain/i18n"
)

// Entry kind constants
const (
	KindKeynote  = "keynote"
	KindPanel    = "panel"
	KindWorkshop = "workshop"
	KindSession  = "session"
	KindBreak    = "break"
)

// ValidKinds contains all valid entry kinds.
var ValidKinds = []string{KindKeynote, KindPanel, KindWorkshop, KindSession, KindBreak}

// Layouts for the stored day and clock values.
const (
	DayLayout   = "2006-01-02"
	ClockLayout = "15:04"
)

// Domain errors
var (
	ErrEmptyTitle   = errors.New("entry needs both a French and an English title")
	ErrInvalidKind  = errors.New("entry kind is not recognised")
	ErrInvalidDay   = errors.New("entry day must be YYYY-MM-DD")
	ErrInvalidClock = errors.New("entry times must be HH:MM")
	ErrEndNotAfter  = errors.New("entry must end after it starts")
)

// Entry is one slot of the conference program.
type Entry struct {
	ID      string
	Day     string // YYYY-MM-DD
	Start   string // HH:MM
	End     string // HH:MM
	TitleFR string
	TitleEN string
	Speaker string
	Room    string
	Kind    string
}

// Validate checks if the Entry has valid data.
// PRE: Entry struct is populated
// POST: Returns nil if valid, the first failing rule otherwise
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.TitleFR) == "" || strings.TrimSpace(e.TitleEN) == "" {
		return ErrEmptyTitle
	}
	if !isValidKind(e.Kind) {
		return ErrInvalidKind
	}
	if _, err := time.Parse(DayLayout, e.Day); err != nil {
		return ErrInvalidDay
	}
	start, err := time.Parse(ClockLayout, e.Start)
	if err != nil {
		return ErrInvalidClock
	}
	end, err := time.Parse(ClockLayout, e.End)
	if err != nil {
		return ErrInvalidClock
	}
	if !end.After(start) {
		return ErrEndNotAfter
	}
	return nil
}

// Title returns the title in lang.
func (e Entry) Title(lang i18n.Lang) string {
	if lang == i18n.EN {
		return e.TitleEN
	}
	return e.TitleFR
}

// Date returns the parsed day, or the zero time if Day is malformed.
func (e Entry) Date() time.Time {
	d, _ := time.Parse(DayLayout, e.Day)
	return d
}

// Sort orders entries by day, then start time, then French title.
// The fixed-width layouts make string comparison chronological.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.TitleFR < b.TitleFR
	})
}

// GroupByDay splits sorted entries into per-day runs, preserving order.
func GroupByDay(entries []Entry) [][]Entry {
	var days [][]Entry
	for _, e := range entries {
		if n := len(days); n > 0 && days[n-1][0].Day == e.Day {
			days[n-1] = append(days[n-1], e)
			continue
		}
		days = append(days, []Entry{e})
	}
	return days
}

func isValidKind(k string) bool {
	for _, v := range ValidKinds {
		if v == k {
			return true
		}
	}
	return false
}
