package testutil

import (
	"hrbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockApplicantRepository is a mock for ApplicantRepository
type MockApplicantRepository struct {
	mock.Mock
}

func (m *MockApplicantRepository) Save(a *domain.Applicant) (int64, error) {
	args := m.Called(a)
	return args.Get(0).(int64), args.Error(1)
}

// MockAdminNotifier is a mock for the intake service's AdminNotifier
type MockAdminNotifier struct {
	mock.Mock
}

func (m *MockAdminNotifier) SendText(text string) error {
	args := m.Called(text)
	return args.Error(0)
}

func (m *MockAdminNotifier) SendVideo(fileID string) error {
	args := m.Called(fileID)
	return args.Error(0)
}

func (m *MockAdminNotifier) SendVoice(fileID string) error {
	args := m.Called(fileID)
	return args.Error(0)
}
