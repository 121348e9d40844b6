package handler

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) handleCommand(message *tgbotapi.Message) {
	command := message.Command()
	args := message.CommandArguments()

	switch command {
	case "start":
		h.sendStartMessage(message)
	case "help":
		h.sendHelpMessage(message)
	case "helpmanager":
		h.sendManagerHelpMessage(message)

	// Profile
	case "createprofile":
		h.startProfileCreation(message)
	case "myprofile":
		h.showProfile(message)
	case "updateprofile":
		h.startProfileUpdate(message)
	case "deleteprofile":
		h.deleteProfile(message)
	case "employees":
		h.showAllEmployees(message)

	// Weekly schedule (everyone)
	case "week":
		h.showWeek(message, args)
	case "addshift":
		h.addShift(message, args)
	case "editshift":
		h.editShift(message, args)
	case "delshift":
		h.deleteShift(message, args)

	// Recurring shifts
	case "recur":
		h.makeRecurring(message, args)
	case "stoprecur":
		h.stopRecurring(message, args)
	case "templates":
		h.showTemplates(message)

	// Coverage
	case "coverage":
		h.showCoverage(message, args)
	case "setwanted":
		h.setWantedHour(message, args)
	case "setwanteddaily":
		h.setWantedDaily(message, args)

	// Week administration (managers)
	case "weekstatus":
		h.showWeekStatus(message, args)
	case "lockweek":
		h.lockWeek(message, args)
	case "unlockweek":
		h.unlockWeek(message, args)
	case "publishweek":
		h.publishWeek(message, args)

	// Roles and limits (managers)
	case "promote":
		h.promoteToManager(message, args)
	case "demote":
		h.demoteToEmployee(message, args)
	case "managers":
		h.showManagers(message)
	case "setlimit":
		h.setEmployeeLimit(message, args)
	case "setdaylimit":
		h.setCompanyDayLimit(message, args)
	case "limits":
		h.showLimits(message)

	default:
		h.sendUnknownCommand(message)
	}
}

func (h *Handler) sendUnknownCommand(message *tgbotapi.Message) {
	h.send(message.Chat.ID, "❌ Unknown command. Use /help for the list of commands.")
}

func (h *Handler) sendStartMessage(message *tgbotapi.Message) {
	text := `👋 Welcome to the shift planner!

1. Create a profile with /createprofile
2. Browse the weekly schedule with /week
3. Add your shifts with /addshift
4. Mark a shift recurring with /recur

Use /help for all commands.`

	h.send(message.Chat.ID, text)
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	text := `📋 Available commands:

👤 Profile:
/createprofile - Create your profile
/myprofile - Show your profile
/updateprofile - Update your profile
/deleteprofile - Delete your profile

📅 Weekly schedule:
/week [code] - Show a week (default: current)
    Examples: /week, /week 2026-W07, /week +1, /week -2
/addshift week day start end [note] - Add a shift
    Example: /addshift . mon 09:00 17:00 front desk
    Use "." for the current week. Shifts may cross midnight
    (e.g. 22:00 02:00).
/editshift id day start end [note] - Change a shift
/delshift id - Delete a shift

🔁 Recurring shifts:
/recur shift_id [week] - Repeat a shift every week from the
    given week on (default: current)
/stoprecur template_id [week] - Stop the recurrence from the
    given week forward; past weeks keep their occurrences
/templates - List recurring shift templates

📊 Coverage:
/coverage [week] - Hourly headcount vs wanted numbers

Managers: see /helpmanager.`

	h.send(message.Chat.ID, text)
}

func (h *Handler) sendManagerHelpMessage(message *tgbotapi.Message) {
	text := `🛠 Manager commands:

📅 Week administration:
/weekstatus [week] - Lock/publish state of a week
/lockweek [week] - Lock a week against employee edits
/unlockweek [week] - Unlock a week
/publishweek [week] - Publish a week's schedule

📊 Wanted coverage:
/setwanted week day hour count - Target headcount for an hour
    Example: /setwanted . mon 9 3
/setwanteddaily week day total - Target total for a day

⏰ Hour limits:
/setlimit chat_id hours - Personal daily limit (0 clears it)
/setdaylimit day hours - Company default for a weekday
/limits - Show company defaults

👥 People:
/employees - List all employees
/managers - List managers
/promote chat_id - Make an employee a manager
/demote chat_id - Make a manager an employee`

	h.send(message.Chat.ID, text)
}
