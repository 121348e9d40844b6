package handler

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// showWeekStatus shows the lock/publish state of a week.
func (h *Handler) showWeekStatus(message *tgbotapi.Message, args string) {
	if h.requireProfile(message) == nil {
		return
	}

	week, err := h.resolveWeek(strings.TrimSpace(args))
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	status, err := h.weekStatusService.Status(week)
	if err != nil {
		h.send(message.Chat.ID, "❌ Failed to load week status: "+err.Error())
		return
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📅 Week %s\n", week))

	if status.Locked {
		b.WriteString("🔒 Locked")
		if status.LockDate != nil {
			b.WriteString(" since " + status.LockDate.Format("02.01.2006 15:04"))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("🔓 Unlocked\n")
	}

	if status.IsPublished {
		b.WriteString("📢 Published\n")
	} else {
		b.WriteString("📝 Not published\n")
	}

	h.send(message.Chat.ID, b.String())
}

func (h *Handler) lockWeek(message *tgbotapi.Message, args string) {
	if h.requireManager(message) == nil {
		return
	}

	week, err := h.resolveWeek(strings.TrimSpace(args))
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	if _, err := h.weekStatusService.SetLocked(week, true); err != nil {
		h.send(message.Chat.ID, "❌ Failed to lock week: "+err.Error())
		return
	}

	h.send(message.Chat.ID, fmt.Sprintf("🔒 Week %s locked. Employees can no longer change their shifts.", week))
}

func (h *Handler) unlockWeek(message *tgbotapi.Message, args string) {
	if h.requireManager(message) == nil {
		return
	}

	week, err := h.resolveWeek(strings.TrimSpace(args))
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	if _, err := h.weekStatusService.SetLocked(week, false); err != nil {
		h.send(message.Chat.ID, "❌ Failed to unlock week: "+err.Error())
		return
	}

	h.send(message.Chat.ID, fmt.Sprintf("🔓 Week %s unlocked.", week))
}

func (h *Handler) publishWeek(message *tgbotapi.Message, args string) {
	if h.requireManager(message) == nil {
		return
	}

	week, err := h.resolveWeek(strings.TrimSpace(args))
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	if _, err := h.weekStatusService.Publish(week); err != nil {
		h.send(message.Chat.ID, "❌ Failed to publish week: "+err.Error())
		return
	}

	h.send(message.Chat.ID, fmt.Sprintf("📢 Week %s published.", week))
}
