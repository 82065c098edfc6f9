package dbmodels

import (
	"recruitment-backend/models"
	"time"
)

// ApplicantPipeline is the per-applicant singleton tracking the current hiring
// stage and its outcome note. Exactly one non-removed row exists per applicant.
type ApplicantPipeline struct {
	BaseSpaceModel
	ApplicantID    string              `gorm:"type:varchar(36);index"`
	CurrentStageID models.StageID      `gorm:"index"`
	Note           models.PipelineNote `gorm:"type:varchar(50)"`
	// NoteDescription carries the display text shown next to the note token,
	// kept separate so read paths never branch on free text.
	NoteDescription string `gorm:"type:varchar(255)"`
	ScheduleDate    *time.Time
	Removed         bool `gorm:"index"`
}

// IsAllowNoteChange validates a stage-scoped outcome transition.
func (p ApplicantPipeline) IsAllowNoteChange(newNote models.PipelineNote) (bool, error) {
	if !newNote.IsAllowedOn(p.CurrentStageID) {
		return false, nil
	}
	if p.Note == newNote {
		return false, nil
	}
	return true, nil
}
