package utils

import (
	"fmt"
	"time"
)

// ScheduleLayout is the wire format for posting schedules: DD/MM/AAAA HH:MM.
const ScheduleLayout = "02/01/2006 15:04"

// ParseSchedule parses a posting's date/time in the fixed day/month/year
// format the mobile client sends. Anything else is rejected.
func ParseSchedule(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(ScheduleLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid schedule %q: %w", value, err)
	}
	return parsed, nil
}
