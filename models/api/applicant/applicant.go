package applicantapimodels

import (
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
	"time"
)

type ApplicantView struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Position     string              `json:"position"`
	Salary       int                 `json:"salary"`
	Address      string              `json:"address"`
	Phone        string              `json:"phone"`
	Email        string              `json:"email"`
	Avatar       string              `json:"avatar"`
	Stage        string              `json:"stage"`
	Note         models.PipelineNote `json:"note"`
	ScheduleDate *time.Time          `json:"schedule_date,omitempty"`
}

func ApplicantConvert(rec dbmodels.Applicant) ApplicantView {
	view := ApplicantView{
		ID:       rec.ID,
		Name:     rec.GetFullName(),
		Position: rec.Position,
		Salary:   rec.Salary,
		Address:  rec.Address,
		Phone:    rec.Phone,
		Email:    rec.Email,
		Avatar:   rec.AvatarPath,
	}
	if rec.Pipeline != nil {
		view.Stage = rec.Pipeline.CurrentStageID.ToHuman()
		view.Note = rec.Pipeline.Note
		view.ScheduleDate = rec.Pipeline.ScheduleDate
	}
	return view
}

type NoteData struct {
	Text string `json:"text"`
}

func (n NoteData) Validate() error {
	if n.Text == "" {
		return errEmptyNote
	}
	return nil
}
