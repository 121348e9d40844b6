package handler

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// makeRecurring turns a stored shift into a weekly recurring one.
// Format: /recur shift_id [week]
func (h *Handler) makeRecurring(message *tgbotapi.Message, args string) {
	employee := h.requireProfile(message)
	if employee == nil {
		return
	}

	parts := strings.Fields(args)
	if len(parts) < 1 {
		h.send(message.Chat.ID, "❌ Format: /recur shift_id [week]")
		return
	}

	id, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		h.send(message.Chat.ID, "❌ Bad shift id")
		return
	}

	weekArg := ""
	if len(parts) > 1 {
		weekArg = parts[1]
	}
	week, err := h.resolveWeek(weekArg)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	shift, err := h.shiftService.GetShift(uint(id))
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}
	if !employee.IsManager() && shift.EmployeeID != employee.ID {
		h.send(message.Chat.ID, "❌ You can only make your own shifts recurring.")
		return
	}
	if h.refuseIfLockedForEmployee(employee, week) {
		return
	}

	template, err := h.recurringService.MakeRecurring(uint(id), week)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.send(message.Chat.ID, fmt.Sprintf(
		"🔁 Shift now recurs every %s %s-%s from week %s on (template %d).",
		template.Day, template.StartTime, template.EndTime, template.StartWeekCode, template.ID))
}

// stopRecurring ends a recurrence from the viewed week forward.
// Format: /stoprecur template_id [week]
func (h *Handler) stopRecurring(message *tgbotapi.Message, args string) {
	employee := h.requireProfile(message)
	if employee == nil {
		return
	}

	parts := strings.Fields(args)
	if len(parts) < 1 {
		h.send(message.Chat.ID, "❌ Format: /stoprecur template_id [week]")
		return
	}

	id, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		h.send(message.Chat.ID, "❌ Bad template id")
		return
	}

	weekArg := ""
	if len(parts) > 1 {
		weekArg = parts[1]
	}
	week, err := h.resolveWeek(weekArg)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	template, err := h.recurringService.GetTemplate(uint(id))
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}
	if !employee.IsManager() && template.EmployeeID != employee.ID {
		h.send(message.Chat.ID, "❌ You can only stop your own recurring shifts.")
		return
	}
	if h.refuseIfLockedForEmployee(employee, week) {
		return
	}

	ended, err := h.recurringService.StopRecurring(uint(id), week)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.send(message.Chat.ID, fmt.Sprintf(
		"🛑 Recurrence %d ended: last occurrence in week %s. Past weeks are unchanged.",
		ended.ID, ended.EndWeekCode))
}

// showTemplates lists recurring templates.
func (h *Handler) showTemplates(message *tgbotapi.Message) {
	if h.requireProfile(message) == nil {
		return
	}

	templates, err := h.recurringService.ListTemplates(false)
	if err != nil {
		h.send(message.Chat.ID, "❌ Failed to list templates: "+err.Error())
		return
	}

	if len(templates) == 0 {
		h.send(message.Chat.ID, "📭 No recurring shift templates.")
		return
	}

	names := h.employeeNames()

	var b strings.Builder
	b.WriteString("🔁 Recurring shift templates:\n\n")
	for _, t := range templates {
		name := names[t.EmployeeID]
		if name == "" {
			name = fmt.Sprintf("employee %d", t.EmployeeID)
		}

		b.WriteString(fmt.Sprintf("[%d] %s %s-%s %s", t.ID, t.Day, t.StartTime, t.EndTime, name))
		if t.StartWeekCode != "" {
			b.WriteString(" from " + t.StartWeekCode)
		}
		if t.Ended() {
			b.WriteString(" until " + t.EndWeekCode + " (ended)")
		}
		if !t.IsActive {
			b.WriteString(" (inactive)")
		}
		b.WriteString("\n")
	}

	h.send(message.Chat.ID, b.String())
}
