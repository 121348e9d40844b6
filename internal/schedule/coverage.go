package schedule

import (
	"shift-planner-bot/internal/models"
)

// MinOverlapMinutes is the minimum overlap between a shift and an hour
// bucket for the shift to count toward that hour's coverage. A shift
// grazing a bucket for less than this is not "meaningfully present".
const MinOverlapMinutes = 30

// HoursPerDay is the number of hour buckets per day.
const HoursPerDay = 24

// CountForHour counts how many of the given (already segmented, same-day)
// shifts overlap the hour bucket [hour:00, hour+1:00) by at least
// MinOverlapMinutes. Distinct shifts from the same employee all count;
// per-employee dedupe, if wanted, is the caller's concern.
func CountForHour(shiftsForDay []models.Shift, hour int) int {
	windowStart := hour * models.MinutesPerHour
	windowEnd := windowStart + models.MinutesPerHour

	count := 0
	for i := range shiftsForDay {
		start, err := shiftsForDay[i].StartMinutes()
		if err != nil {
			continue
		}
		end, err := shiftsForDay[i].EndMinutes()
		if err != nil {
			continue
		}

		overlap := min(end, windowEnd) - max(start, windowStart)
		if overlap >= MinOverlapMinutes {
			count++
		}
	}

	return count
}

// DayCounts returns the 24 hourly coverage counts for one day's
// segmented shifts.
func DayCounts(shiftsForDay []models.Shift) [HoursPerDay]int {
	var counts [HoursPerDay]int
	for hour := 0; hour < HoursPerDay; hour++ {
		counts[hour] = CountForHour(shiftsForDay, hour)
	}
	return counts
}

// WeekCounts groups segmented shifts by day and returns per-day hourly
// coverage for the whole week.
func WeekCounts(shifts []models.Shift) map[models.DayName][HoursPerDay]int {
	byDay := make(map[models.DayName][]models.Shift)
	for _, s := range shifts {
		byDay[s.Day] = append(byDay[s.Day], s)
	}

	counts := make(map[models.DayName][HoursPerDay]int, len(byDay))
	for day, dayShifts := range byDay {
		counts[day] = DayCounts(dayShifts)
	}
	return counts
}
