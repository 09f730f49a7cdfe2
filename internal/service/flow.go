package service

import (
	"strings"

	"hrbot/internal/domain"
	"hrbot/internal/session"

	"go.uber.org/zap"
)

// videoMaxSeconds is the longest accepted self-introduction video
const videoMaxSeconds = 60

// Outcome is the walker's answer to one inbound event
type Outcome struct {
	Prompts   []domain.Prompt
	Completed bool
	// Fields holds the collected record snapshot when Completed is set
	Fields map[string]string
}

// transition describes one step of the intake flow
type transition struct {
	field string      // field recorded on accept
	next  domain.Step // successor step, StepNone for the terminal step
}

// transitions is the full intake flow in order. Steps not listed here
// (video, voice, lang) carry extra validation and are handled explicitly.
var transitions = map[domain.Step]transition{
	domain.StepLang:       {field: domain.FieldLang, next: domain.StepName},
	domain.StepName:       {field: domain.FieldName, next: domain.StepPhone},
	domain.StepPhone:      {field: domain.FieldPhone, next: domain.StepRole},
	domain.StepRole:       {field: domain.FieldRole, next: domain.StepExperience},
	domain.StepExperience: {field: domain.FieldExperience, next: domain.StepPrevPlace},
	domain.StepPrevPlace:  {field: domain.FieldPrevPlace, next: domain.StepVideo},
	domain.StepVideo:      {field: domain.FieldVideoFileID, next: domain.StepVoice},
	domain.StepVoice:      {field: domain.FieldVoiceFileID, next: domain.StepBirth},
	domain.StepBirth:      {field: domain.FieldBirth, next: domain.StepCity},
	domain.StepCity:       {field: domain.FieldCity, next: domain.StepRussian},
	domain.StepRussian:    {field: domain.FieldRussian, next: domain.StepMarriage},
	domain.StepMarriage:   {field: domain.FieldMarriage, next: domain.StepSalary},
	domain.StepSalary:     {field: domain.FieldSalary, next: domain.StepNone},
}

// FlowService walks users through the intake conversation.
// It performs no I/O and always answers with at least one prompt.
type FlowService struct {
	store  session.Store
	logger *zap.Logger
}

// NewFlowService creates a new flow service
func NewFlowService(store session.Store, logger *zap.Logger) *FlowService {
	return &FlowService{
		store:  store,
		logger: logger,
	}
}

// Start begins a fresh intake session, discarding any previous one
func (s *FlowService) Start(userID int64) Outcome {
	s.store.Clear(userID)
	s.store.Set(domain.NewSession(userID))

	return Outcome{
		Prompts: []domain.Prompt{
			{Text: textChooseLang, Keyboard: domain.KeyboardRemove},
			{Text: textLangKeyboard, Keyboard: domain.KeyboardLang},
		},
	}
}

// Advance applies one inbound event to the user's session
func (s *FlowService) Advance(userID int64, ev domain.Event) Outcome {
	sess := s.store.Get(userID)
	if sess == nil {
		return fallback()
	}

	switch sess.Step {
	case domain.StepLang:
		return s.advanceLang(sess, ev)
	case domain.StepVideo:
		return s.advanceVideo(sess, ev)
	case domain.StepVoice:
		return s.advanceVoice(sess, ev)
	default:
		return s.advanceText(sess, ev)
	}
}

// advanceLang handles the language selection step.
// Anything but a known language callback re-sends the keyboard, so the
// user is never left without an answer.
func (s *FlowService) advanceLang(sess *domain.Session, ev domain.Event) Outcome {
	if ev.Kind != domain.EventCallback || (ev.Data != "uz" && ev.Data != "ru") {
		return Outcome{Prompts: []domain.Prompt{
			{Text: textLangKeyboard, Keyboard: domain.KeyboardLang},
		}}
	}
	return s.accept(sess, domain.FieldLang, ev.Data)
}

func (s *FlowService) advanceVideo(sess *domain.Session, ev domain.Event) Outcome {
	switch ev.Kind {
	case domain.EventVideoNote:
		if ev.Duration > videoMaxSeconds {
			return reprompt(textVideoNoteLong)
		}
	case domain.EventVideo:
		if ev.Duration > videoMaxSeconds {
			return reprompt(textVideoLong)
		}
	default:
		return reprompt(textWantVideo)
	}
	return s.accept(sess, domain.FieldVideoFileID, ev.FileID)
}

func (s *FlowService) advanceVoice(sess *domain.Session, ev domain.Event) Outcome {
	if ev.Kind != domain.EventVoice {
		return reprompt(textWantVoice)
	}
	return s.accept(sess, domain.FieldVoiceFileID, ev.FileID)
}

// advanceText handles all plain text steps. Any text is accepted as-is
// after trimming; other event kinds get the generic fallback.
func (s *FlowService) advanceText(sess *domain.Session, ev domain.Event) Outcome {
	if ev.Kind != domain.EventText {
		return fallback()
	}
	tr, ok := transitions[sess.Step]
	if !ok {
		s.logger.Warn("Session in unknown step, resetting",
			zap.Int64("user_id", sess.UserID),
			zap.String("step", string(sess.Step)),
		)
		s.store.Clear(sess.UserID)
		return fallback()
	}
	return s.accept(sess, tr.field, strings.TrimSpace(ev.Text))
}

// accept records the field value and moves the session to the next step.
// On the terminal step the session is cleared before the snapshot is
// returned, so a redelivered terminal event cannot complete twice.
func (s *FlowService) accept(sess *domain.Session, field, value string) Outcome {
	sess.Fields[field] = value

	next := transitions[sess.Step].next
	if next == domain.StepNone {
		fields := sess.Fields
		s.store.Clear(sess.UserID)
		return Outcome{
			Prompts: []domain.Prompt{
				{Text: textThanks, Keyboard: domain.KeyboardStart},
			},
			Completed: true,
			Fields:    fields,
		}
	}

	sess.Step = next
	s.store.Set(sess)
	return Outcome{
		Prompts: []domain.Prompt{promptFor(next, sess.Fields[domain.FieldLang])},
	}
}

func reprompt(text string) Outcome {
	return Outcome{Prompts: []domain.Prompt{{Text: text}}}
}

func fallback() Outcome {
	return reprompt(textFallback)
}
