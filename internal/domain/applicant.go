package domain

import (
	"fmt"
	"time"
)

// Applicant represents a completed intake form
type Applicant struct {
	ID          int64
	TelegramID  int64
	Lang        string
	Name        string
	Phone       string
	Role        string
	Experience  string
	PrevPlace   string
	VideoFileID string
	VoiceFileID string
	Birth       string
	City        string
	Russian     string
	Marriage    string
	Salary      string
	CreatedAt   time.Time
}

// Field names, matching the applicants table columns
const (
	FieldLang        = "lang"
	FieldName        = "name"
	FieldPhone       = "phone"
	FieldRole        = "role"
	FieldExperience  = "experience"
	FieldPrevPlace   = "prev_place"
	FieldVideoFileID = "video_file_id"
	FieldVoiceFileID = "voice_file_id"
	FieldBirth       = "birth"
	FieldCity        = "city"
	FieldRussian     = "russian"
	FieldMarriage    = "marriage"
	FieldSalary      = "salary"
)

// ApplicantFromFields builds an Applicant from a session's collected fields
func ApplicantFromFields(telegramID int64, fields map[string]string) *Applicant {
	return &Applicant{
		TelegramID:  telegramID,
		Lang:        fields[FieldLang],
		Name:        fields[FieldName],
		Phone:       fields[FieldPhone],
		Role:        fields[FieldRole],
		Experience:  fields[FieldExperience],
		PrevPlace:   fields[FieldPrevPlace],
		VideoFileID: fields[FieldVideoFileID],
		VoiceFileID: fields[FieldVoiceFileID],
		Birth:       fields[FieldBirth],
		City:        fields[FieldCity],
		Russian:     fields[FieldRussian],
		Marriage:    fields[FieldMarriage],
		Salary:      fields[FieldSalary],
	}
}

// Summary renders the admin notification text
func (a *Applicant) Summary() string {
	return fmt.Sprintf(
		"Yangi nomzod\n"+
			"Ism: %s\n"+
			"Tel: %s\n"+
			"Lavozim: %s\n"+
			"Taj: %s\n"+
			"Sh: %s\n"+
			"Yosh: %s\n"+
			"Oylik kut: %s\n"+
			"ID: %d",
		a.Name, a.Phone, a.Role, a.Experience, a.City, a.Birth, a.Salary, a.TelegramID,
	)
}
