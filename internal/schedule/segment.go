package schedule

import (
	"shift-planner-bot/internal/models"
)

// Segment expands cross-midnight shifts into day-bound rows. A shift
// whose end is not strictly after its start (in minutes) is split into a
// same-day segment ending "24:00" and a next-day segment starting
// "00:00" with the original end time. When the original end is exactly
// "00:00" the next-day segment would be zero-length and is suppressed.
// Any segment that still ends at or before its start is dropped. Other
// shifts pass through unchanged; input order is preserved modulo the
// split. Both halves keep the source row's id and week code; segments
// are a derived view and are never persisted.
func Segment(shifts []models.Shift) ([]models.Shift, error) {
	out := make([]models.Shift, 0, len(shifts))

	for _, s := range shifts {
		start, err := s.StartMinutes()
		if err != nil {
			return nil, err
		}
		end, err := s.EndMinutes()
		if err != nil {
			return nil, err
		}

		if end > start {
			out = append(out, s)
			continue
		}

		first := s
		first.EndTime = models.EndOfDay
		out = appendSegment(out, first)

		if end == 0 {
			continue
		}

		second := s
		second.Day = s.Day.Next()
		second.StartTime = models.StartOfDay
		out = appendSegment(out, second)
	}

	return out, nil
}

// SegmentView expands cross-midnight entries of a decorated week view
// into day-bound entries. Template linkage is carried onto both halves,
// so a split recurring occurrence stays marked static on each side of
// midnight.
func SegmentView(view []DecoratedShift) ([]DecoratedShift, error) {
	out := make([]DecoratedShift, 0, len(view))

	for _, d := range view {
		halves, err := Segment([]models.Shift{d.Shift})
		if err != nil {
			return nil, err
		}
		for _, half := range halves {
			seg := d
			seg.Shift = half
			out = append(out, seg)
		}
	}

	return out, nil
}

// appendSegment keeps only segments with positive length.
func appendSegment(out []models.Shift, s models.Shift) []models.Shift {
	start, err := s.StartMinutes()
	if err != nil {
		return out
	}
	end, err := s.EndMinutes()
	if err != nil {
		return out
	}
	if end <= start {
		return out
	}
	return append(out, s)
}
