package models

import "time"

// RoundDefinition is one configured reservation round within a season.
// Exactly one of DurationWeeks or SubRoundBookerIDs must be set: a fixed
// length round, or a round-robin round with one week per listed booker.
type RoundDefinition struct {
	Position               int      `firestore:"position" json:"position"`
	Name                   string   `firestore:"name" json:"name"`
	DurationWeeks          int      `firestore:"durationWeeks,omitempty" json:"durationWeeks,omitempty"`
	SubRoundBookerIDs      []string `firestore:"subRoundBookerIds,omitempty" json:"subRoundBookerIds,omitempty"`
	BookedWeeksLimit       int      `firestore:"bookedWeeksLimit,omitempty" json:"bookedWeeksLimit,omitempty"`
	AllowDailyReservations bool     `firestore:"allowDailyReservations" json:"allowDailyReservations"`
}

// RoundsConfig is the season-level round configuration. One document per
// year; a missing document behaves like an empty config starting January 1.
type RoundsConfig struct {
	Year      int               `firestore:"year" json:"year"`
	StartDate string            `firestore:"startDate" json:"startDate"`
	Rounds    []RoundDefinition `firestore:"rounds" json:"rounds"`
}

// EmptyRoundsConfig is the config assumed for a year with no stored document.
func EmptyRoundsConfig(year int) RoundsConfig {
	return RoundsConfig{
		Year:      year,
		StartDate: FormatDate(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)),
	}
}

// Round is a projected round with absolute inclusive dates. Rounds are
// derived on every read and never persisted.
type Round struct {
	Position               int       `json:"position"`
	Name                   string    `json:"name"`
	StartDate              time.Time `json:"startDate"`
	EndDate                time.Time `json:"endDate"`
	SubRoundBookerIDs      []string  `json:"subRoundBookerIds"`
	BookedWeeksLimit       int       `json:"bookedWeeksLimit"`
	AllowDailyReservations bool      `json:"allowDailyReservations"`
}

// Contains reports whether the given day falls inside the round's inclusive
// date range.
func (r Round) Contains(day time.Time) bool {
	return !day.Before(r.StartDate) && !day.After(r.EndDate)
}
