package handler

import (
	"hrbot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// textSaveFailed is sent instead of the thanks message when the record
// could not be written
const textSaveFailed = "❌ Xatolik yuz berdi. Iltimos, /start bilan qayta urinib ko'ring."

// Language selection inline buttons
var (
	btnLangUz = tele.Btn{
		Unique: "lang_uz",
		Text:   "O'zbekcha",
	}
	btnLangRu = tele.Btn{
		Unique: "lang_ru",
		Text:   "Русский",
	}
)

// langMarkup returns the language selection keyboard
func langMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnLangUz),
		menu.Row(btnLangRu),
	)
	return menu
}

// roleMarkup returns the position selection keyboard
func roleMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text("Tur agent"), menu.Text("Sotuv manageri"), menu.Text("Boshqa")),
	)
	return menu
}

// yesNoMarkup returns the Ha/Yo'q keyboard
func yesNoMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text("Ha"), menu.Text("Yo'q")),
	)
	return menu
}

// startMarkup returns the restart keyboard shown after completion
func startMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text("/start")),
	)
	return menu
}

// markupFor maps a prompt keyboard to its telebot markup, nil for none
func markupFor(k domain.Keyboard) *tele.ReplyMarkup {
	switch k {
	case domain.KeyboardRemove:
		return &tele.ReplyMarkup{RemoveKeyboard: true}
	case domain.KeyboardLang:
		return langMarkup()
	case domain.KeyboardRole:
		return roleMarkup()
	case domain.KeyboardYesNo:
		return yesNoMarkup()
	case domain.KeyboardStart:
		return startMarkup()
	default:
		return nil
	}
}
