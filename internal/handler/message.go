package handler

import (
	"strings"

	"hrbot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// handleText handles all plain text messages
func (h *Handler) handleText(c tele.Context) error {
	text := c.Text()

	// Commands other than /start are not part of the flow
	if strings.HasPrefix(text, "/") {
		return nil
	}

	return h.dispatch(c, domain.Event{
		Kind: domain.EventText,
		Text: text,
	})
}

// handleVideo handles regular video uploads
func (h *Handler) handleVideo(c tele.Context) error {
	video := c.Message().Video
	return h.dispatch(c, domain.Event{
		Kind:     domain.EventVideo,
		FileID:   video.FileID,
		Duration: video.Duration,
	})
}

// handleVideoNote handles round video notes
func (h *Handler) handleVideoNote(c tele.Context) error {
	note := c.Message().VideoNote
	return h.dispatch(c, domain.Event{
		Kind:     domain.EventVideoNote,
		FileID:   note.FileID,
		Duration: note.Duration,
	})
}

// handleVoice handles voice messages
func (h *Handler) handleVoice(c tele.Context) error {
	voice := c.Message().Voice
	return h.dispatch(c, domain.Event{
		Kind:   domain.EventVoice,
		FileID: voice.FileID,
	})
}
