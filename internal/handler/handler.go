package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"shift-planner-bot/internal/config"
	"shift-planner-bot/internal/models"
	"shift-planner-bot/internal/service"
	"shift-planner-bot/pkg/telegram"
	"shift-planner-bot/pkg/weekcode"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	client            *telegram.Client
	employeeService   *service.EmployeeService
	shiftService      *service.ShiftService
	recurringService  *service.RecurringService
	coverageService   *service.CoverageService
	weekStatusService *service.WeekStatusService
	hourLimitService  *service.HourLimitService
	userStates        map[int64]string
	config            *config.BotConfig
}

func NewHandler(
	client *telegram.Client,
	employeeService *service.EmployeeService,
	shiftService *service.ShiftService,
	recurringService *service.RecurringService,
	coverageService *service.CoverageService,
	weekStatusService *service.WeekStatusService,
	hourLimitService *service.HourLimitService,
	cfg *config.BotConfig,
) *Handler {
	return &Handler{
		client:            client,
		employeeService:   employeeService,
		shiftService:      shiftService,
		recurringService:  recurringService,
		coverageService:   coverageService,
		weekStatusService: weekStatusService,
		hourLimitService:  hourLimitService,
		userStates:        make(map[int64]string),
		config:            cfg,
	}
}

func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.CallbackQuery != nil {
			h.handleCallbackQuery(update.CallbackQuery)
			continue
		}

		if update.Message == nil {
			continue
		}

		h.handleMessage(update.Message)
	}
}

// handleCallbackQuery handles inline keyboard buttons.
func (h *Handler) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	data := callback.Data

	// Remove the keyboard from the prompt message.
	editMsg := tgbotapi.NewEditMessageReplyMarkup(chatID, callback.Message.MessageID, tgbotapi.NewInlineKeyboardMarkup())
	h.client.Bot.Send(editMsg)

	switch {
	case data == "confirm_delete_profile":
		if err := h.employeeService.DeleteEmployee(chatID); err != nil {
			h.send(chatID, "❌ Failed to delete profile: "+err.Error())
		} else {
			h.send(chatID, "✅ Your profile has been deleted.")
		}

	case data == "cancel_delete_profile":
		h.send(chatID, "❌ Profile deletion cancelled.")

	case strings.HasPrefix(data, "confirm_delete_shift_"):
		idStr := strings.TrimPrefix(data, "confirm_delete_shift_")
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			h.send(chatID, "❌ Bad shift id in confirmation.")
			break
		}
		if err := h.shiftService.DeleteShift(uint(id)); err != nil {
			h.send(chatID, "❌ Failed to delete shift: "+err.Error())
		} else {
			h.send(chatID, "✅ Shift deleted.")
		}

	case data == "cancel_delete_shift":
		h.send(chatID, "❌ Shift deletion cancelled.")
	}

	// Stop the button spinner.
	callbackConfig := tgbotapi.NewCallback(callback.ID, "")
	h.client.Bot.Send(callbackConfig)
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	logrus.Infof("[%s] %s", message.From.UserName, message.Text)

	chatID := message.Chat.ID

	// Profile creation/update conversation in progress?
	if state, exists := h.userStates[chatID]; exists {
		h.handleProfileState(message, state)
		return
	}

	if message.IsCommand() {
		h.handleCommand(message)
		return
	}

	h.send(chatID, "Use /help for the list of commands.")
}

func (h *Handler) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	h.client.Bot.Send(msg)
}

// requireProfile resolves the sender's profile, prompting them to create
// one when missing.
func (h *Handler) requireProfile(message *tgbotapi.Message) *models.Employee {
	employee, err := h.employeeService.GetEmployee(message.Chat.ID)
	if err != nil || employee == nil {
		h.send(message.Chat.ID, "❌ Profile not found.\nUse /createprofile first.")
		return nil
	}
	return employee
}

// requireManager resolves the sender and refuses non-managers.
func (h *Handler) requireManager(message *tgbotapi.Message) *models.Employee {
	employee := h.requireProfile(message)
	if employee == nil {
		return nil
	}
	if !employee.IsManager() {
		h.send(message.Chat.ID, "❌ This command is for managers only.")
		return nil
	}
	return employee
}

// resolveWeek turns a week argument into a WeekCode: empty or "." is the
// current week, "+n"/"-n" offsets from it, anything else is a literal
// "YYYY-Wnn" code. Forward navigation is bounded by MAX_WEEKS_AHEAD.
func (h *Handler) resolveWeek(arg string) (weekcode.WeekCode, error) {
	current := weekcode.Current(time.Now())

	var target weekcode.WeekCode
	switch {
	case arg == "" || arg == ".":
		target = current
	case strings.HasPrefix(arg, "+") || strings.HasPrefix(arg, "-"):
		n, err := strconv.Atoi(arg)
		if err != nil {
			return weekcode.WeekCode{}, fmt.Errorf("bad week offset %q", arg)
		}
		target = current.Offset(n)
	default:
		parsed, err := weekcode.Parse(arg)
		if err != nil {
			return weekcode.WeekCode{}, err
		}
		target = parsed
	}

	if !weekcode.WithinFutureBound(current, target, h.config.MaxWeeksAhead) {
		return weekcode.WeekCode{}, fmt.Errorf("week %s is more than %d weeks ahead", target, h.config.MaxWeeksAhead)
	}

	return target, nil
}

// refuseIfLockedForEmployee applies the week lock gate: employee-side
// mutations on a locked week are refused here, before any service call,
// so the manager override path stays open.
func (h *Handler) refuseIfLockedForEmployee(employee *models.Employee, week weekcode.WeekCode) bool {
	if employee.IsManager() {
		return false
	}

	locked, err := h.weekStatusService.IsLocked(week)
	if err != nil {
		h.send(employee.ChatID, "❌ Failed to check week lock: "+err.Error())
		return true
	}
	if locked {
		h.send(employee.ChatID, fmt.Sprintf("🔒 Week %s is locked. Ask a manager to change it.", week))
		return true
	}

	return false
}
