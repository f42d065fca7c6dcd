package usecase

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Layouts accepted for appointment date-times. Layouts without an offset are
// read in the configured location.
var (
	offsetLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
	}
	localLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
	}
)

var errUnparseableDateTime = errors.New("unparseable date-time")

// parseDateTime normalizes a date-time string to UTC.
func parseDateTime(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errUnparseableDateTime
	}

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, errUnparseableDateTime
}

// parseDate reads a calendar date (YYYY-MM-DD).
func parseDate(value string) (datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}
