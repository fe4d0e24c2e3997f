package common

import (
	"fmt"
	"time"
)

// DateLayout
const (
	DateFormatYYYYMMDD         = "2006-01-02"
	DateFormatYYYYMMDDWithTime = "2006-01-02 15:04:05"
)

// HOUR FORMAT
const (
	HourFormat000000 = "00:00:00"
	HourFormat235959 = "23:59:59"
)

func ParseStringToDatetime(layout, value string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidFormatDate, value)
	}
	return t, nil
}

// StartOfDay truncates t to 00:00:00 in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of t's calendar day. Journal dates are compared
// with second precision, so the last second is inclusive.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}

func FormatDate(t time.Time) string {
	return t.Format(DateFormatYYYYMMDD)
}
