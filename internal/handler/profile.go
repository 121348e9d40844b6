package handler

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// startProfileCreation begins the profile conversation.
func (h *Handler) startProfileCreation(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	employee, err := h.employeeService.GetEmployee(chatID)
	if err == nil && employee != nil {
		h.send(chatID, "❌ You already have a profile.\nUse /myprofile to see it or /updateprofile to change it.")
		return
	}

	h.userStates[chatID] = "awaiting_first_name"

	text := `👤 Creating your profile

Step 1 of 2:
✏️ Please send your first name:`

	h.send(chatID, text)
}

// handleProfileState drives the create/update conversation.
func (h *Handler) handleProfileState(message *tgbotapi.Message, state string) {
	chatID := message.Chat.ID
	text := message.Text

	if state == "awaiting_first_name" {
		h.userStates[chatID] = "awaiting_last_name:" + text

		h.send(chatID, fmt.Sprintf(
			`Step 2 of 2:
✅ First name saved: %s
✏️ Now send your last name (or "-" if you have none):`,
			text))
	} else if strings.HasPrefix(state, "awaiting_last_name") {
		firstName := strings.TrimPrefix(state, "awaiting_last_name:")
		lastName := text
		if lastName == "-" {
			lastName = ""
		}

		username := message.From.UserName

		employee, err := h.employeeService.CreateEmployee(chatID, username, firstName, lastName)
		if err != nil {
			delete(h.userStates, chatID)
			h.send(chatID, "❌ Failed to create profile: "+err.Error())
			return
		}

		delete(h.userStates, chatID)

		h.send(chatID, fmt.Sprintf(`🎉 Profile created!

%s
Use /week to see the schedule.`, h.employeeService.FormatEmployeeInfo(employee)))
	} else if state == "awaiting_update" {
		delete(h.userStates, chatID)

		parts := strings.Fields(text)
		if len(parts) < 1 {
			h.send(chatID, "❌ Bad format. Send a first name and optionally a last name.")
			return
		}

		firstName := parts[0]
		lastName := ""
		if len(parts) > 1 {
			lastName = parts[1]
		}

		employee, err := h.employeeService.UpdateEmployee(chatID, message.From.UserName, firstName, lastName)
		if err != nil {
			h.send(chatID, "❌ Failed to update profile: "+err.Error())
			return
		}

		h.send(chatID, fmt.Sprintf(`✅ Profile updated!

%s`, h.employeeService.FormatEmployeeInfo(employee)))
	}
}

// showProfile shows the sender's profile.
func (h *Handler) showProfile(message *tgbotapi.Message) {
	employee := h.requireProfile(message)
	if employee == nil {
		return
	}

	h.send(message.Chat.ID, h.employeeService.FormatEmployeeInfo(employee))
}

// startProfileUpdate begins the update conversation.
func (h *Handler) startProfileUpdate(message *tgbotapi.Message) {
	employee := h.requireProfile(message)
	if employee == nil {
		return
	}

	text := `✏️ Updating your profile

Send the new data as:
FirstName LastName

For example: John Smith
Or just: John (to update only the first name)`

	h.send(message.Chat.ID, text)
	h.userStates[message.Chat.ID] = "awaiting_update"
}

// deleteProfile asks for confirmation before deleting.
func (h *Handler) deleteProfile(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Yes, delete", "confirm_delete_profile"),
			tgbotapi.NewInlineKeyboardButtonData("❌ No, cancel", "cancel_delete_profile"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, "⚠️ Are you sure you want to delete your profile?\nThis cannot be undone.")
	msg.ReplyMarkup = keyboard
	h.client.Bot.Send(msg)
}

// showAllEmployees lists every registered employee.
func (h *Handler) showAllEmployees(message *tgbotapi.Message) {
	if h.requireManager(message) == nil {
		return
	}

	employees, err := h.employeeService.GetAllEmployees()
	if err != nil {
		h.send(message.Chat.ID, "❌ Failed to list employees: "+err.Error())
		return
	}

	h.send(message.Chat.ID, h.employeeService.FormatEmployeeList(employees))
}
