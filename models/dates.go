package models

import "time"

// DateLayout is the ISO calendar-date form used for every date stored in
// Firestore documents. Comparisons on these strings sort chronologically,
// which the year-scoped queries rely on.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date into a UTC midnight time.Time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders a time as an ISO calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddDays advances a civil date. All dates are UTC midnights so a fixed
// 24h step never crosses a DST boundary.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
