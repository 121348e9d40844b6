package schedule

import (
	"fmt"
)

// CheckDailyLimit rejects an edit that would push an employee past the
// daily hour limit. Hours already scheduled on the day plus the new
// shift's hours must not exceed the limit.
func CheckDailyLimit(existingDayHours, newShiftHours, limit float64) error {
	if existingDayHours+newShiftHours > limit {
		return fmt.Errorf("daily hour limit exceeded: %.1fh scheduled + %.1fh new > %.1fh allowed",
			existingDayHours, newShiftHours, limit)
	}
	return nil
}
