package pipelineapimodels

import (
	"recruitment-backend/models"
	"time"

	"github.com/pkg/errors"
)

// ScheduleData moves the applicant to a stage and books the stage event date.
type ScheduleData struct {
	ApplicantPipelineID string    `json:"applicant_pipeline_id"`
	Stage               string    `json:"stage"` // stage name, e.g. "Initial Interview"
	ScheduleDate        time.Time `json:"schedule_date"`
}

func (d ScheduleData) Validate() error {
	if d.ApplicantPipelineID == "" {
		return errors.New("applicant pipeline id is required")
	}
	if d.Stage == "" {
		return errors.New("stage is required")
	}
	if d.ScheduleDate.IsZero() {
		return errors.New("schedule date is required")
	}
	return nil
}

type StatusData struct {
	Note        models.PipelineNote `json:"note"`
	Description string              `json:"description,omitempty"`
}

func (d StatusData) Validate() error {
	if d.Note == "" {
		return errors.New("note is required")
	}
	return nil
}

type StepState string

const (
	StepDone     StepState = "done"
	StepCurrent  StepState = "current"
	StepUpcoming StepState = "upcoming"
)

// DashboardStep is one entry of the applicant-facing progress strip.
type DashboardStep struct {
	Stage        string     `json:"stage"`
	State        StepState  `json:"state"`
	Message      string     `json:"message,omitempty"`
	ScheduleDate *time.Time `json:"schedule_date,omitempty"`
}
