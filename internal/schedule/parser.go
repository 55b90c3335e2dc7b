// Package schedule lets a validation run be deferred to a later clock time,
// e.g. to start a long examples suite outside business hours.
package schedule

import (
	"fmt"
	"time"
)

// ParseSchedule parses a --start-at value into a time.Time.
// Supported formats:
//   - YYYY-MM-DDTHH:MM (ISO 8601)
//   - "YYYY-MM-DD HH:MM"
//   - YYYY-MM-DD (midnight of that date)
//   - HH:MM (today if still ahead, otherwise tomorrow)
func ParseSchedule(input string) (time.Time, error) {
	now := time.Now()
	local := now.Location()

	if t, err := time.ParseInLocation("2006-01-02T15:04", input, local); err == nil {
		return t, nil
	}

	if t, err := time.ParseInLocation("2006-01-02 15:04", input, local); err == nil {
		return t, nil
	}

	if t, err := time.ParseInLocation("2006-01-02", input, local); err == nil {
		return t, nil
	}

	if t, err := time.ParseInLocation("15:04", input, local); err == nil {
		scheduled := time.Date(now.Year(), now.Month(), now.Day(),
			t.Hour(), t.Minute(), 0, 0, local)
		if scheduled.Before(now) {
			scheduled = scheduled.AddDate(0, 0, 1)
		}
		return scheduled, nil
	}

	return time.Time{}, fmt.Errorf("invalid schedule format: %q (supported: YYYY-MM-DD, HH:MM, \"YYYY-MM-DD HH:MM\", YYYY-MM-DDTHH:MM)", input)
}
