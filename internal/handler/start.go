package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started intake",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	outcome := h.flow.Start(userID)
	return h.sendPrompts(c, outcome.Prompts)
}
