package schedule

import (
	"fmt"

	"shift-planner-bot/internal/models"
	"shift-planner-bot/pkg/weekcode"
)

// ShiftKind distinguishes decorated entries that came from a stored row
// from occurrences synthesized out of a recurring template.
type ShiftKind int

const (
	KindNormal ShiftKind = iota
	KindSynthetic
)

// RecurringNote marks synthesized occurrences in the weekly view.
const RecurringNote = "recurring"

// DecoratedShift is a weekly-view entry: a normal shift row annotated
// with its recurring-template linkage, or a synthesized occurrence of a
// template that has no stored row this week. Decorated values are
// derived on every load and never persisted.
type DecoratedShift struct {
	models.Shift

	Kind          ShiftKind
	IsStatic      bool
	StaticID      uint // 0 when not linked to a template
	StartWeekCode string
	EndWeekCode   string
}

// DisplayID returns the externally visible identifier: the stored row id
// for normal entries, "static-<templateID>" for synthesized ones.
func (d *DecoratedShift) DisplayID() string {
	if d.Kind == KindSynthetic {
		return fmt.Sprintf("static-%d", d.StaticID)
	}
	return fmt.Sprintf("%d", d.ID)
}

// occurrenceKey matches normal rows to templates. Matching is by
// (employee, day, start, end), not by id, so two independently created
// rows with identical timing are indistinguishable here. That is the
// documented matching rule; swapping in id-based matching would only
// touch this type and its call sites in Reconcile.
type occurrenceKey struct {
	EmployeeID uint
	Day        models.DayName
	StartTime  string
	EndTime    string
}

func shiftKey(s *models.Shift) occurrenceKey {
	return occurrenceKey{
		EmployeeID: s.EmployeeID,
		Day:        s.Day,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
	}
}

func templateKey(t *models.StaticShift) occurrenceKey {
	return occurrenceKey{
		EmployeeID: t.EmployeeID,
		Day:        t.Day,
		StartTime:  t.StartTime,
		EndTime:    t.EndTime,
	}
}

// Reconcile merges recurring templates into the normal rows of one week.
// Normal rows matched by an applicable template are decorated with its
// linkage; applicable templates with no matching row produce exactly one
// synthesized occurrence each (at most one per key). Normal rows are
// never deduplicated against each other; managers may create
// overlapping rows on purpose. Output is decorated normal rows in input
// order followed by synthesized occurrences in template order.
func Reconcile(normal []models.Shift, templates []models.StaticShift, week weekcode.WeekCode) []DecoratedShift {
	applicable := make(map[occurrenceKey]*models.StaticShift)
	order := make([]occurrenceKey, 0, len(templates))
	for i := range templates {
		t := &templates[i]
		if !t.AppliesTo(week) {
			continue
		}
		key := templateKey(t)
		if _, dup := applicable[key]; dup {
			continue
		}
		applicable[key] = t
		order = append(order, key)
	}

	out := make([]DecoratedShift, 0, len(normal)+len(applicable))
	matched := make(map[occurrenceKey]bool)

	for _, s := range normal {
		d := DecoratedShift{Shift: s, Kind: KindNormal}
		if t, ok := applicable[shiftKey(&s)]; ok {
			d.IsStatic = true
			d.StaticID = t.ID
			d.StartWeekCode = t.StartWeekCode
			d.EndWeekCode = t.EndWeekCode
			matched[shiftKey(&s)] = true
		}
		out = append(out, d)
	}

	for _, key := range order {
		if matched[key] {
			continue
		}
		t := applicable[key]
		out = append(out, DecoratedShift{
			Shift: models.Shift{
				WeekCode:    week.String(),
				Day:         t.Day,
				EmployeeID:  t.EmployeeID,
				StartTime:   t.StartTime,
				EndTime:     t.EndTime,
				Note:        RecurringNote,
				IsSent:      true,
				IsPublished: false,
			},
			Kind:          KindSynthetic,
			IsStatic:      true,
			StaticID:      t.ID,
			StartWeekCode: t.StartWeekCode,
			EndWeekCode:   t.EndWeekCode,
		})
	}

	return out
}
