package service

import (
	"fmt"

	"hrbot/internal/domain"
	"hrbot/internal/repository"

	"go.uber.org/zap"
)

// AdminNotifier delivers messages to the administrative chat
type AdminNotifier interface {
	SendText(text string) error
	SendVideo(fileID string) error
	SendVoice(fileID string) error
}

// IntakeService finalizes completed applications: it persists the record
// and best-effort notifies the administrative chat.
type IntakeService struct {
	repo     repository.ApplicantRepository
	notifier AdminNotifier // nil disables notifications
	logger   *zap.Logger
}

// NewIntakeService creates a new intake service
func NewIntakeService(repo repository.ApplicantRepository, notifier AdminNotifier, logger *zap.Logger) *IntakeService {
	return &IntakeService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// Finalize persists the applicant and notifies the admin chat.
// Only the storage write can fail the call; every notification send is
// fault-isolated and merely logged.
func (s *IntakeService) Finalize(a *domain.Applicant) error {
	id, err := s.repo.Save(a)
	if err != nil {
		return fmt.Errorf("save applicant: %w", err)
	}

	s.logger.Info("Applicant saved",
		zap.Int64("id", id),
		zap.Int64("telegram_id", a.TelegramID),
	)

	s.notifyAdmin(a)
	return nil
}

func (s *IntakeService) notifyAdmin(a *domain.Applicant) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.SendText(a.Summary()); err != nil {
		s.logger.Warn("Failed to send admin summary", zap.Error(err))
	}

	if a.VideoFileID != "" {
		if err := s.notifier.SendVideo(a.VideoFileID); err != nil {
			s.logger.Warn("Failed to forward video to admin", zap.Error(err))
		}
	}

	if a.VoiceFileID != "" {
		if err := s.notifier.SendVoice(a.VoiceFileID); err != nil {
			s.logger.Warn("Failed to forward voice to admin", zap.Error(err))
		}
	}
}
