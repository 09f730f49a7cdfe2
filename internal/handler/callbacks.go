package handler

import (
	"strings"

	"hrbot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// handleLang handles the language selection buttons
func (h *Handler) handleLang(c tele.Context) error {
	lang := langFromCallback(c.Callback())

	// Stop the button spinner before answering
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback")
	}

	return h.dispatch(c, domain.Event{
		Kind: domain.EventCallback,
		Data: lang,
	})
}

// langFromCallback extracts the language code from a button callback
func langFromCallback(cb *tele.Callback) string {
	if cb == nil {
		return ""
	}
	unique := strings.TrimPrefix(cb.Unique, "lang_")
	if unique == "uz" || unique == "ru" {
		return unique
	}
	return ""
}
