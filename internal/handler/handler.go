package handler

import (
	"hrbot/internal/domain"
	"hrbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot    *tele.Bot
	flow   *service.FlowService
	intake *service.IntakeService
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	flow *service.FlowService,
	intake *service.IntakeService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:    bot,
		flow:   flow,
		intake: intake,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Language selection (inline buttons)
	h.bot.Handle(&btnLangUz, h.handleLang)
	h.bot.Handle(&btnLangRu, h.handleLang)

	// Text and media messages
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnVideo, h.handleVideo)
	h.bot.Handle(tele.OnVideoNote, h.handleVideoNote)
	h.bot.Handle(tele.OnVoice, h.handleVoice)
}

// dispatch runs one normalized event through the walker and answers
// with the resulting prompts. On completion the finalizer runs before
// the thanks message goes out; a failed write replaces it with an
// error message.
func (h *Handler) dispatch(c tele.Context, ev domain.Event) error {
	userID := c.Sender().ID
	outcome := h.flow.Advance(userID, ev)

	if outcome.Completed {
		applicant := domain.ApplicantFromFields(userID, outcome.Fields)
		if err := h.intake.Finalize(applicant); err != nil {
			h.logger.Error("Failed to finalize application",
				zap.Error(err),
				zap.Int64("user_id", userID),
			)
			return c.Send(textSaveFailed)
		}
	}

	return h.sendPrompts(c, outcome.Prompts)
}

// sendPrompts sends each prompt in order with its keyboard
func (h *Handler) sendPrompts(c tele.Context, prompts []domain.Prompt) error {
	for _, p := range prompts {
		var err error
		if markup := markupFor(p.Keyboard); markup != nil {
			err = c.Send(p.Text, markup)
		} else {
			err = c.Send(p.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
