package models

import "time"

// DateLayout is the YYYY-MM-DD format used for every date in the API and in
// storage.
const DateLayout = "2006-01-02"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// IsAfterDay reports whether date falls on a later calendar day than now.
func IsAfterDay(date time.Time, now time.Time) bool {
	return date.After(truncateDay(now))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
