package postgres

import (
	"database/sql"

	"hrbot/internal/domain"
)

// ApplicantRepo implements repository.ApplicantRepository
type ApplicantRepo struct {
	db *sql.DB
}

// NewApplicantRepo creates a new applicant repository
func NewApplicantRepo(db *sql.DB) *ApplicantRepo {
	return &ApplicantRepo{db: db}
}

// Save inserts a completed applicant record and returns its id
func (r *ApplicantRepo) Save(a *domain.Applicant) (int64, error) {
	query := `
		INSERT INTO applicants (
			telegram_id, lang, name, phone, role, experience, prev_place,
			video_file_id, voice_file_id, birth, city, russian, marriage, salary
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(query,
		a.TelegramID, a.Lang, a.Name, a.Phone, a.Role, a.Experience, a.PrevPlace,
		a.VideoFileID, a.VoiceFileID, a.Birth, a.City, a.Russian, a.Marriage, a.Salary,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}
