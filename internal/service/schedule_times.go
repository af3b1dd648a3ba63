package service

import (
	"fmt"
	"time"

	"github.com/workroster/workroster-api/internal/models"
	appErrors "github.com/workroster/workroster-api/pkg/errors"
)

var clockLayouts = []string{"15:04", "15:04:05"}

func parseClock(value string) (time.Time, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time value %q", value)
}

// ValidateDayTimes checks the within-day invariant: every present value must
// parse as a wall-clock time and the present values must be non-decreasing in
// the order start, break_start, break_end, end. Absent fields are skipped, so
// partial days (e.g. no break) are fine.
func ValidateDayTimes(day models.Weekday, times models.DayTimes) error {
	fields := []*string{times.Start, times.BreakStart, times.BreakEnd, times.End}

	var prev *time.Time
	for _, field := range fields {
		if field == nil || *field == "" {
			continue
		}
		parsed, err := parseClock(*field)
		if err != nil {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid time value %q on %s", *field, day))
		}
		if prev != nil && parsed.Before(*prev) {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid time ordering on %s", day))
		}
		prev = &parsed
	}
	return nil
}
