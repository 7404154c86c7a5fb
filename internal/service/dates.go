package service

import (
	"fmt"
	"strings"
	"time"

	"sales-tracker/internal/domain"
)

// dueDateLayouts are the extended ISO-8601 shapes accepted for due dates,
// with and without fractional seconds and an explicit offset. Timestamps
// without an offset are taken as UTC.
var dueDateLayouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// parseCloseDate parses a calendar date in YYYY-MM-DD form with no time
// component.
func parseCloseDate(value string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected_close_date must be a YYYY-MM-DD date", domain.ErrValidation)
	}
	return t, nil
}

// parseDueDate parses a full ISO-8601 timestamp. A trailing literal "Z" is
// normalized to an explicit "+00:00" offset before parsing.
func parseDueDate(value string) (time.Time, error) {
	if strings.HasSuffix(value, "Z") {
		value = strings.TrimSuffix(value, "Z") + "+00:00"
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: due_date must be an ISO-8601 timestamp", domain.ErrValidation)
}
