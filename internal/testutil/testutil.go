package testutil

import (
	"hrbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestApplicant creates a fully populated applicant
func NewTestApplicant(telegramID int64) *domain.Applicant {
	return &domain.Applicant{
		TelegramID:  telegramID,
		Lang:        "uz",
		Name:        "Ali Valiyev",
		Phone:       "+998901234567",
		Role:        "Sotuv menejeri",
		Experience:  "3 yil",
		PrevPlace:   "ABC kompaniya",
		VideoFileID: "video-file-id",
		VoiceFileID: "voice-file-id",
		Birth:       "01.01.2000",
		City:        "Tashkent",
		Russian:     "Ha",
		Marriage:    "Yo'q",
		Salary:      "500 USD",
	}
}
