package utils

import (
	"time"
)

// DateLayout is the ISO date format used in curve definitions.
const DateLayout = "2006-01-02"

// ParseDate converts YYYY-MM-DD to time.Time.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Days returns the day count fraction in days between two dates.
func Days(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24
}
