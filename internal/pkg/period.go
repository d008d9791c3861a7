package pkg

import (
	"time"
)

// ReportDateLayout is the DD-MM-YYYY layout used by the performance endpoints.
const ReportDateLayout = "02-01-2006"

// DateOnly truncates t to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthStart returns the first day of t's month as a date-only value.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// NextMonth returns the first day of the month following period. December
// rolls over to January of the next year. period is expected to already be a
// first-of-month value; callers normalize with MonthStart.
func NextMonth(period time.Time) time.Time {
	return time.Date(period.Year(), period.Month()+1, 1, 0, 0, 0, 0, time.UTC)
}

// ParseReportDate parses a DD-MM-YYYY path parameter into a date-only value.
func ParseReportDate(s string) (time.Time, error) {
	t, err := time.Parse(ReportDateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}
