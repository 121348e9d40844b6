package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"shift-planner-bot/internal/models"
	"shift-planner-bot/internal/schedule"
	"shift-planner-bot/pkg/weekcode"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// showWeek renders the reconciled weekly schedule.
func (h *Handler) showWeek(message *tgbotapi.Message, args string) {
	if h.requireProfile(message) == nil {
		return
	}

	week, err := h.resolveWeek(strings.TrimSpace(args))
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	view, err := h.shiftService.WeekView(week)
	if err != nil {
		h.send(message.Chat.ID, "❌ Failed to load week: "+err.Error())
		return
	}

	status, err := h.weekStatusService.Status(week)
	if err != nil {
		h.send(message.Chat.ID, "❌ Failed to load week status: "+err.Error())
		return
	}

	h.send(message.Chat.ID, h.formatWeek(week, view, status.Locked, status.IsPublished))
}

func (h *Handler) formatWeek(week weekcode.WeekCode, view []schedule.DecoratedShift, locked, published bool) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📅 Week %s", week))
	if locked {
		b.WriteString(" 🔒")
	}
	if published {
		b.WriteString(" 📢")
	}
	b.WriteString("\n")

	if len(view) == 0 {
		b.WriteString("\n📭 No shifts scheduled.")
		return b.String()
	}

	names := h.employeeNames()

	byDay := make(map[models.DayName][]schedule.DecoratedShift)
	for _, d := range view {
		byDay[d.Day] = append(byDay[d.Day], d)
	}

	for day := models.Sunday; day <= models.Saturday; day++ {
		shifts, ok := byDay[day]
		if !ok {
			continue
		}

		b.WriteString(fmt.Sprintf("\n%s (%s):\n", day, week.DateForDay(int(day), time.Local).Format("02.01")))
		for _, d := range shifts {
			name := names[d.EmployeeID]
			if name == "" {
				name = fmt.Sprintf("employee %d", d.EmployeeID)
			}

			b.WriteString(fmt.Sprintf("  [%s] %s-%s %s", d.DisplayID(), d.StartTime, d.EndTime, name))
			if d.IsStatic {
				b.WriteString(" 🔁")
			}
			if d.Note != "" {
				b.WriteString(", " + d.Note)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (h *Handler) employeeNames() map[uint]string {
	names := make(map[uint]string)
	employees, err := h.employeeService.GetAllEmployees()
	if err != nil {
		return names
	}
	for _, e := range employees {
		names[e.ID] = e.FullName()
	}
	return names
}

// addShift creates a shift for the sender.
// Format: /addshift week day start end [note]
func (h *Handler) addShift(message *tgbotapi.Message, args string) {
	employee := h.requireProfile(message)
	if employee == nil {
		return
	}

	parts := strings.Fields(args)
	if len(parts) < 4 {
		h.send(message.Chat.ID, "❌ Format: /addshift week day start end [note]\nExample: /addshift . mon 09:00 17:00")
		return
	}

	week, err := h.resolveWeek(parts[0])
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	day, err := models.ParseDay(parts[1])
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	if h.refuseIfLockedForEmployee(employee, week) {
		return
	}

	note := strings.Join(parts[4:], " ")

	shift, err := h.shiftService.CreateShift(week, employee.ID, day, parts[2], parts[3], note)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.send(message.Chat.ID, fmt.Sprintf("✅ Shift %d added: %s %s %s-%s",
		shift.ID, week, day, shift.StartTime, shift.EndTime))
}

// editShift changes a shift's timing.
// Format: /editshift id day start end [note]
func (h *Handler) editShift(message *tgbotapi.Message, args string) {
	employee := h.requireProfile(message)
	if employee == nil {
		return
	}

	parts := strings.Fields(args)
	if len(parts) < 4 {
		h.send(message.Chat.ID, "❌ Format: /editshift id day start end [note]")
		return
	}

	id, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		h.send(message.Chat.ID, "❌ Bad shift id")
		return
	}

	shift, err := h.shiftService.GetShift(uint(id))
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	if !employee.IsManager() && shift.EmployeeID != employee.ID {
		h.send(message.Chat.ID, "❌ You can only edit your own shifts.")
		return
	}

	week, err := weekcode.Parse(shift.WeekCode)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}
	if h.refuseIfLockedForEmployee(employee, week) {
		return
	}

	day, err := models.ParseDay(parts[1])
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	note := strings.Join(parts[4:], " ")

	updated, err := h.shiftService.UpdateShift(uint(id), day, parts[2], parts[3], note)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.send(message.Chat.ID, fmt.Sprintf("✅ Shift %d updated: %s %s-%s",
		updated.ID, day, updated.StartTime, updated.EndTime))
}

// deleteShift asks for confirmation, then deletes via callback.
func (h *Handler) deleteShift(message *tgbotapi.Message, args string) {
	employee := h.requireProfile(message)
	if employee == nil {
		return
	}

	idStr := strings.TrimSpace(args)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		h.send(message.Chat.ID, "❌ Format: /delshift id")
		return
	}

	shift, err := h.shiftService.GetShift(uint(id))
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	if !employee.IsManager() && shift.EmployeeID != employee.ID {
		h.send(message.Chat.ID, "❌ You can only delete your own shifts.")
		return
	}

	week, err := weekcode.Parse(shift.WeekCode)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}
	if h.refuseIfLockedForEmployee(employee, week) {
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Yes, delete", fmt.Sprintf("confirm_delete_shift_%d", id)),
			tgbotapi.NewInlineKeyboardButtonData("❌ No, cancel", "cancel_delete_shift"),
		),
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, fmt.Sprintf(
		"⚠️ Delete shift %d (%s %s %s-%s)?", shift.ID, shift.WeekCode, shift.Day, shift.StartTime, shift.EndTime))
	msg.ReplyMarkup = keyboard
	h.client.Bot.Send(msg)
}
