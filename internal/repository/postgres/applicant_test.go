package postgres

import (
	"errors"
	"testing"

	"hrbot/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestApplicantRepo_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewApplicantRepo(db)
	a := testutil.NewTestApplicant(42)

	mock.ExpectQuery("INSERT INTO applicants").
		WithArgs(
			a.TelegramID, a.Lang, a.Name, a.Phone, a.Role, a.Experience, a.PrevPlace,
			a.VideoFileID, a.VoiceFileID, a.Birth, a.City, a.Russian, a.Marriage, a.Salary,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(17)))

	id, err := repo.Save(a)

	assert.NoError(t, err)
	assert.Equal(t, int64(17), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicantRepo_SaveError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewApplicantRepo(db)
	a := testutil.NewTestApplicant(42)

	mock.ExpectQuery("INSERT INTO applicants").
		WillReturnError(errors.New("connection reset"))

	id, err := repo.Save(a)

	assert.Error(t, err)
	assert.Equal(t, int64(0), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
