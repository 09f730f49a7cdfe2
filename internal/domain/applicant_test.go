package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicantFromFields(t *testing.T) {
	fields := map[string]string{
		FieldLang:        "uz",
		FieldName:        "Ali Valiyev",
		FieldPhone:       "+998901234567",
		FieldRole:        "Sotuv menejeri",
		FieldExperience:  "3 yil",
		FieldPrevPlace:   "ABC kompaniya",
		FieldVideoFileID: "video-1",
		FieldVoiceFileID: "voice-1",
		FieldBirth:       "01.01.2000",
		FieldCity:        "Tashkent",
		FieldRussian:     "Ha",
		FieldMarriage:    "Yo'q",
		FieldSalary:      "500 USD",
	}

	a := ApplicantFromFields(42, fields)

	assert.Equal(t, int64(42), a.TelegramID)
	assert.Equal(t, "uz", a.Lang)
	assert.Equal(t, "Ali Valiyev", a.Name)
	assert.Equal(t, "+998901234567", a.Phone)
	assert.Equal(t, "Sotuv menejeri", a.Role)
	assert.Equal(t, "3 yil", a.Experience)
	assert.Equal(t, "ABC kompaniya", a.PrevPlace)
	assert.Equal(t, "video-1", a.VideoFileID)
	assert.Equal(t, "voice-1", a.VoiceFileID)
	assert.Equal(t, "01.01.2000", a.Birth)
	assert.Equal(t, "Tashkent", a.City)
	assert.Equal(t, "Ha", a.Russian)
	assert.Equal(t, "Yo'q", a.Marriage)
	assert.Equal(t, "500 USD", a.Salary)
}

func TestApplicantFromFields_PartialFields(t *testing.T) {
	a := ApplicantFromFields(42, map[string]string{FieldName: "Ali"})

	assert.Equal(t, "Ali", a.Name)
	assert.Empty(t, a.Phone)
	assert.Empty(t, a.VideoFileID)
}

func TestApplicant_Summary(t *testing.T) {
	a := &Applicant{
		TelegramID: 42,
		Name:       "Ali Valiyev",
		Phone:      "+998901234567",
		Role:       "Sotuv menejeri",
		Experience: "3 yil",
		City:       "Tashkent",
		Birth:      "01.01.2000",
		Salary:     "500 USD",
	}

	expected := "Yangi nomzod\n" +
		"Ism: Ali Valiyev\n" +
		"Tel: +998901234567\n" +
		"Lavozim: Sotuv menejeri\n" +
		"Taj: 3 yil\n" +
		"Sh: Tashkent\n" +
		"Yosh: 01.01.2000\n" +
		"Oylik kut: 500 USD\n" +
		"ID: 42"

	assert.Equal(t, expected, a.Summary())
}
