package handler

import (
	"fmt"
	"strconv"
	"strings"

	"shift-planner-bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// promoteToManager gives a chat the manager role.
// Format: /promote chat_id
func (h *Handler) promoteToManager(message *tgbotapi.Message, args string) {
	if h.requireManager(message) == nil {
		return
	}

	chatID, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil {
		h.send(message.Chat.ID, "❌ Format: /promote chat_id")
		return
	}

	if err := h.employeeService.UpdateRole(message.Chat.ID, chatID, models.Role(models.RoleManager)); err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.send(message.Chat.ID, fmt.Sprintf("✅ %d is now a manager.", chatID))
}

// demoteToEmployee removes the manager role.
// Format: /demote chat_id
func (h *Handler) demoteToEmployee(message *tgbotapi.Message, args string) {
	if h.requireManager(message) == nil {
		return
	}

	chatID, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil {
		h.send(message.Chat.ID, "❌ Format: /demote chat_id")
		return
	}

	if err := h.employeeService.UpdateRole(message.Chat.ID, chatID, models.Role(models.RoleEmployee)); err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.send(message.Chat.ID, fmt.Sprintf("✅ %d is now a regular employee.", chatID))
}

// showManagers lists all managers.
func (h *Handler) showManagers(message *tgbotapi.Message) {
	if h.requireManager(message) == nil {
		return
	}

	managers, err := h.employeeService.GetManagers()
	if err != nil {
		h.send(message.Chat.ID, "❌ Failed to list managers: "+err.Error())
		return
	}

	h.send(message.Chat.ID, h.employeeService.FormatEmployeeList(managers))
}

// setEmployeeLimit sets a personal daily hour override.
// Format: /setlimit chat_id hours
func (h *Handler) setEmployeeLimit(message *tgbotapi.Message, args string) {
	if h.requireManager(message) == nil {
		return
	}

	parts := strings.Fields(args)
	if len(parts) != 2 {
		h.send(message.Chat.ID, "❌ Format: /setlimit chat_id hours (0 clears the override)")
		return
	}

	chatID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		h.send(message.Chat.ID, "❌ Bad chat id")
		return
	}

	hours, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		h.send(message.Chat.ID, "❌ Bad hours value")
		return
	}

	if err := h.employeeService.SetDailyHourLimit(message.Chat.ID, chatID, hours); err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	if hours == 0 {
		h.send(message.Chat.ID, fmt.Sprintf("✅ Personal limit for %d cleared, company default applies.", chatID))
	} else {
		h.send(message.Chat.ID, fmt.Sprintf("✅ Personal daily limit for %d set to %.1fh.", chatID, hours))
	}
}

// setCompanyDayLimit sets the company default limit for one weekday.
// Format: /setdaylimit day hours
func (h *Handler) setCompanyDayLimit(message *tgbotapi.Message, args string) {
	if h.requireManager(message) == nil {
		return
	}

	parts := strings.Fields(args)
	if len(parts) != 2 {
		h.send(message.Chat.ID, "❌ Format: /setdaylimit day hours")
		return
	}

	day, err := models.ParseDay(parts[0])
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	hours, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		h.send(message.Chat.ID, "❌ Bad hours value")
		return
	}

	if err := h.hourLimitService.SetCompanyDayLimit(day, hours); err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.send(message.Chat.ID, fmt.Sprintf("✅ Company default for %s set to %.1fh.", day, hours))
}

// showLimits shows the company per-day defaults.
func (h *Handler) showLimits(message *tgbotapi.Message) {
	if h.requireManager(message) == nil {
		return
	}

	settings, err := h.hourLimitService.CompanySettings()
	if err != nil {
		h.send(message.Chat.ID, "❌ Failed to load company settings: "+err.Error())
		return
	}

	var b strings.Builder
	b.WriteString("⏰ Company daily hour limits:\n\n")
	for day := models.Sunday; day <= models.Saturday; day++ {
		hours := settings.HoursFor(day)
		if hours > 0 {
			b.WriteString(fmt.Sprintf("%s: %.1fh\n", day, hours))
		} else {
			b.WriteString(fmt.Sprintf("%s: fallback (%dh)\n", day, models.FallbackDailyHourLimit))
		}
	}

	h.send(message.Chat.ID, b.String())
}
