package repository

import (
	"hrbot/internal/domain"
)

// ApplicantRepository defines applicant data operations
type ApplicantRepository interface {
	Save(a *domain.Applicant) (int64, error)
}
