package service

import (
	"errors"
	"testing"

	"hrbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestIntakeService_Finalize(t *testing.T) {
	applicant := testutil.NewTestApplicant(42)

	repo := new(testutil.MockApplicantRepository)
	notifier := new(testutil.MockAdminNotifier)

	repo.On("Save", applicant).Return(int64(1), nil)
	notifier.On("SendText", applicant.Summary()).Return(nil)
	notifier.On("SendVideo", applicant.VideoFileID).Return(nil)
	notifier.On("SendVoice", applicant.VoiceFileID).Return(nil)

	svc := NewIntakeService(repo, notifier, testutil.NewTestLogger())

	err := svc.Finalize(applicant)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestIntakeService_FinalizeSaveError(t *testing.T) {
	applicant := testutil.NewTestApplicant(42)

	repo := new(testutil.MockApplicantRepository)
	notifier := new(testutil.MockAdminNotifier)

	repo.On("Save", applicant).Return(int64(0), errors.New("connection refused"))

	svc := NewIntakeService(repo, notifier, testutil.NewTestLogger())

	err := svc.Finalize(applicant)

	assert.Error(t, err)
	// Nothing is sent to the admin when the record was not written
	notifier.AssertNotCalled(t, "SendText", mock.Anything)
	notifier.AssertNotCalled(t, "SendVideo", mock.Anything)
	notifier.AssertNotCalled(t, "SendVoice", mock.Anything)
}

func TestIntakeService_FinalizeNotificationFailuresIsolated(t *testing.T) {
	tests := []struct {
		name     string
		textErr  error
		videoErr error
		voiceErr error
	}{
		{name: "summary fails", textErr: errors.New("blocked")},
		{name: "video forward fails", videoErr: errors.New("file expired")},
		{name: "voice forward fails", voiceErr: errors.New("file expired")},
		{
			name:     "everything fails",
			textErr:  errors.New("blocked"),
			videoErr: errors.New("file expired"),
			voiceErr: errors.New("file expired"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applicant := testutil.NewTestApplicant(42)

			repo := new(testutil.MockApplicantRepository)
			notifier := new(testutil.MockAdminNotifier)

			repo.On("Save", applicant).Return(int64(7), nil)
			notifier.On("SendText", mock.Anything).Return(tt.textErr)
			notifier.On("SendVideo", applicant.VideoFileID).Return(tt.videoErr)
			notifier.On("SendVoice", applicant.VoiceFileID).Return(tt.voiceErr)

			svc := NewIntakeService(repo, notifier, testutil.NewTestLogger())

			// A failed send never fails the call and never blocks
			// the remaining sends
			err := svc.Finalize(applicant)

			assert.NoError(t, err)
			notifier.AssertExpectations(t)
		})
	}
}

func TestIntakeService_FinalizeWithoutNotifier(t *testing.T) {
	applicant := testutil.NewTestApplicant(42)

	repo := new(testutil.MockApplicantRepository)
	repo.On("Save", applicant).Return(int64(1), nil)

	svc := NewIntakeService(repo, nil, testutil.NewTestLogger())

	err := svc.Finalize(applicant)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestIntakeService_FinalizeSkipsMissingMedia(t *testing.T) {
	applicant := testutil.NewTestApplicant(42)
	applicant.VideoFileID = ""
	applicant.VoiceFileID = ""

	repo := new(testutil.MockApplicantRepository)
	notifier := new(testutil.MockAdminNotifier)

	repo.On("Save", applicant).Return(int64(1), nil)
	notifier.On("SendText", mock.Anything).Return(nil)

	svc := NewIntakeService(repo, notifier, testutil.NewTestLogger())

	err := svc.Finalize(applicant)

	assert.NoError(t, err)
	notifier.AssertNotCalled(t, "SendVideo", mock.Anything)
	notifier.AssertNotCalled(t, "SendVoice", mock.Anything)
}
