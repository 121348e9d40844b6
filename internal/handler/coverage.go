package handler

import (
	"fmt"
	"strconv"
	"strings"

	"shift-planner-bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// showCoverage renders computed vs wanted hourly coverage for a week.
func (h *Handler) showCoverage(message *tgbotapi.Message, args string) {
	if h.requireProfile(message) == nil {
		return
	}

	week, err := h.resolveWeek(strings.TrimSpace(args))
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	coverage, err := h.coverageService.ForWeek(week)
	if err != nil {
		h.send(message.Chat.ID, "❌ Failed to compute coverage: "+err.Error())
		return
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 Coverage for week %s\n", week))

	any := false
	for day := models.Sunday; day <= models.Saturday; day++ {
		counts, hasCounts := coverage.Counts[day]
		wanted, hasWanted := coverage.WantedHours[day]
		if !hasCounts && !hasWanted {
			continue
		}
		any = true

		b.WriteString(fmt.Sprintf("\n%s", day))
		if total, ok := coverage.WantedDaily[day]; ok {
			b.WriteString(fmt.Sprintf(" (wanted total: %d)", total))
		}
		b.WriteString(":\n")

		for hour := 0; hour < len(counts); hour++ {
			if counts[hour] == 0 && wanted[hour] == 0 {
				continue
			}

			marker := "✅"
			if counts[hour] < wanted[hour] {
				marker = "⚠️"
			}
			b.WriteString(fmt.Sprintf("  %02d:00  %d", hour, counts[hour]))
			if wanted[hour] > 0 {
				b.WriteString(fmt.Sprintf(" / %d %s", wanted[hour], marker))
			}
			b.WriteString("\n")
		}
	}

	if !any {
		b.WriteString("\n📭 Nothing scheduled and no targets set.")
	}

	h.send(message.Chat.ID, b.String())
}

// setWantedHour stores a target headcount for one hour bucket.
// Format: /setwanted week day hour count
func (h *Handler) setWantedHour(message *tgbotapi.Message, args string) {
	if h.requireManager(message) == nil {
		return
	}

	parts := strings.Fields(args)
	if len(parts) != 4 {
		h.send(message.Chat.ID, "❌ Format: /setwanted week day hour count\nExample: /setwanted . mon 9 3")
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

	hour, err := strconv.Atoi(parts[2])
	if err != nil || hour < 0 || hour > 23 {
		h.send(message.Chat.ID, "❌ Hour must be between 0 and 23")
		return
	}

	count, err := strconv.Atoi(parts[3])
	if err != nil || count < 0 {
		h.send(message.Chat.ID, "❌ Count must be a non-negative number")
		return
	}

	if err := h.coverageService.SetWantedHour(week, day, hour, count); err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.send(message.Chat.ID, fmt.Sprintf("✅ Wanted coverage for %s %s %02d:00 set to %d.", week, day, hour, count))
}

// setWantedDaily stores a target total for one day.
// Format: /setwanteddaily week day total
func (h *Handler) setWantedDaily(message *tgbotapi.Message, args string) {
	if h.requireManager(message) == nil {
		return
	}

	parts := strings.Fields(args)
	if len(parts) != 3 {
		h.send(message.Chat.ID, "❌ Format: /setwanteddaily week day total")
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

	total, err := strconv.Atoi(parts[2])
	if err != nil || total < 0 {
		h.send(message.Chat.ID, "❌ Total must be a non-negative number")
		return
	}

	if err := h.coverageService.SetWantedDaily(week, day, total); err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.send(message.Chat.ID, fmt.Sprintf("✅ Wanted daily total for %s %s set to %d.", week, day, total))
}
