package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock times are "HH:MM" strings with minute resolution. "24:00" is a
// valid sentinel meaning end-of-day (1440 minutes); it only ever appears
// as an end time, produced by cross-midnight segmentation.

const (
	StartOfDay     = "00:00"
	EndOfDay       = "24:00"
	MinutesPerDay  = 1440
	MinutesPerHour = 60
)

// ClockToMinutes converts "HH:MM" to minutes since midnight.
func ClockToMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", clock)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 24 {
		return 0, fmt.Errorf("invalid time %q: hours must be 0-24", clock)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q: minutes must be 0-59", clock)
	}

	total := hours*MinutesPerHour + minutes
	if total > MinutesPerDay {
		return 0, fmt.Errorf("invalid time %q: past end of day", clock)
	}

	return total, nil
}

// MinutesToClock converts minutes since midnight back to "HH:MM",
// rendering 1440 as "24:00".
func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/MinutesPerHour, minutes%MinutesPerHour)
}
