package pipeline

import (
	"fmt"

	"recruitment-backend/db"
	"recruitment-backend/lib/cachever"
	pipelinestore "recruitment-backend/lib/pipeline/store"
	scorestore "recruitment-backend/lib/score/store"
	"recruitment-backend/models"
	pipelineapimodels "recruitment-backend/models/api/pipeline"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	UpdateSchedule(spaceID string, data pipelineapimodels.ScheduleData) (hMsg string, err error)
	UpdateStatus(spaceID, pipelineID string, data pipelineapimodels.StatusData) (hMsg string, err error)
	Cancel(spaceID, pipelineID string) (hMsg string, err error)
	GetByApplicant(spaceID, applicantID string) (*dbmodels.ApplicantPipeline, error)
	DashboardSteps(spaceID, applicantID string) ([]pipelineapimodels.DashboardStep, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct {
}

// UpdateSchedule moves the applicant to the named stage and books the event
// date. The stage being left has its score rows marked removed, matching the
// cleanup the offer chain does on hire; the note resets to pending.
func (i impl) UpdateSchedule(spaceID string, data pipelineapimodels.ScheduleData) (hMsg string, err error) {
	if err := data.Validate(); err != nil {
		return err.Error(), nil
	}
	stage, ok := models.StageByName(data.Stage)
	if !ok {
		return fmt.Sprintf("unknown stage %q", data.Stage), nil
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		pipelines := pipelinestore.NewInstance(tx)
		scores := scorestore.NewInstance(tx)

		pipeline, err := pipelines.GetByIDForUpdate(spaceID, data.ApplicantPipelineID)
		if err != nil {
			return errors.Wrap(err, "pipeline read")
		}
		if pipeline == nil {
			return models.ErrNotFound
		}
		if pipeline.Note == models.NoteCancelled {
			hMsg = "applicant pipeline is cancelled"
			return errors.New(hMsg)
		}

		if scoreType, exist := pipeline.CurrentStageID.ScoreType(); exist {
			if err := scores.MarkRemoved(spaceID, pipeline.ID, scoreType); err != nil {
				return errors.Wrap(err, "stale score cleanup")
			}
		}
		updMap := map[string]interface{}{
			"current_stage_id": stage,
			"schedule_date":    data.ScheduleDate,
			"note":             models.NotePending,
			"note_description": "",
		}
		if err := pipelines.Update(spaceID, pipeline.ID, updMap); err != nil {
			return errors.Wrap(err, "pipeline update")
		}
		cachever.NewHandlerWithTx(tx).Bump()
		return nil
	})
	if hMsg != "" && err != nil {
		return hMsg, nil
	}
	return "", err
}

// UpdateStatus writes the stage outcome token, rejecting tokens the current
// stage does not carry.
func (i impl) UpdateStatus(spaceID, pipelineID string, data pipelineapimodels.StatusData) (hMsg string, err error) {
	if err := data.Validate(); err != nil {
		return err.Error(), nil
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		pipelines := pipelinestore.NewInstance(tx)

		pipeline, err := pipelines.GetByIDForUpdate(spaceID, pipelineID)
		if err != nil {
			return errors.Wrap(err, "pipeline read")
		}
		if pipeline == nil {
			return models.ErrNotFound
		}
		allowed, err := pipeline.IsAllowNoteChange(data.Note)
		if err != nil {
			return err
		}
		if !allowed {
			hMsg = fmt.Sprintf("note %q is not applicable at the %v stage", data.Note, pipeline.CurrentStageID.ToHuman())
			return errors.New(hMsg)
		}
		updMap := map[string]interface{}{
			"note":             data.Note,
			"note_description": data.Description,
		}
		if err := pipelines.Update(spaceID, pipeline.ID, updMap); err != nil {
			return errors.Wrap(err, "pipeline update")
		}
		cachever.NewHandlerWithTx(tx).Bump()
		return nil
	})
	if hMsg != "" && err != nil {
		return hMsg, nil
	}
	return "", err
}

// Cancel marks the pipeline terminally cancelled. The row stays visible on
// the board with the cancelled overlay; it is not a removal.
func (i impl) Cancel(spaceID, pipelineID string) (hMsg string, err error) {
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		pipelines := pipelinestore.NewInstance(tx)

		pipeline, err := pipelines.GetByIDForUpdate(spaceID, pipelineID)
		if err != nil {
			return errors.Wrap(err, "pipeline read")
		}
		if pipeline == nil {
			return models.ErrNotFound
		}
		if pipeline.Note == models.NoteCancelled {
			return nil
		}
		updMap := map[string]interface{}{
			"note": models.NoteCancelled,
		}
		if err := pipelines.Update(spaceID, pipeline.ID, updMap); err != nil {
			return errors.Wrap(err, "pipeline update")
		}
		cachever.NewHandlerWithTx(tx).Bump()
		return nil
	})
	return "", err
}

func (i impl) GetByApplicant(spaceID, applicantID string) (*dbmodels.ApplicantPipeline, error) {
	return pipelinestore.NewInstance(db.DB).GetByApplicantID(spaceID, applicantID)
}

// DashboardSteps renders the applicant-facing progress strip: one step per
// stage, with the current stage carrying the outcome message.
func (i impl) DashboardSteps(spaceID, applicantID string) ([]pipelineapimodels.DashboardStep, error) {
	pipeline, err := pipelinestore.NewInstance(db.DB).GetByApplicantID(spaceID, applicantID)
	if err != nil {
		return nil, err
	}
	if pipeline == nil {
		return nil, models.ErrNotFound
	}
	return BuildDashboardSteps(*pipeline), nil
}

// BuildDashboardSteps derives the progress strip from the pipeline row alone.
// A passed current stage counts as done and the strip advances to the next
// stage, ahead of the schedule call that moves the pipeline row itself.
func BuildDashboardSteps(pipeline dbmodels.ApplicantPipeline) []pipelineapimodels.DashboardStep {
	current := pipeline.CurrentStageID
	note := pipeline.Note
	if note == models.NotePassed {
		if next, ok := current.Next(); ok {
			current = next
			note = models.NotePending
		}
	}
	steps := make([]pipelineapimodels.DashboardStep, 0, len(models.StageOrder))
	for _, stage := range models.StageOrder {
		step := pipelineapimodels.DashboardStep{
			Stage: stage.ToHuman(),
		}
		switch {
		case stage < current:
			step.State = pipelineapimodels.StepDone
			step.Message = stageDoneMessage(stage)
		case stage == current:
			step.State = pipelineapimodels.StepCurrent
			step.Message = currentStageMessage(stage, note)
			if stage == pipeline.CurrentStageID && pipeline.ScheduleDate != nil {
				date := *pipeline.ScheduleDate
				step.ScheduleDate = &date
			}
		default:
			step.State = pipelineapimodels.StepUpcoming
		}
		steps = append(steps, step)
	}
	return steps
}

func stageDoneMessage(stage models.StageID) string {
	switch stage {
	case models.StageAssessment:
		return "You passed the examination"
	case models.StageInitialInterview:
		return "You passed the initial interview"
	case models.StageFinalInterview:
		return "You passed the final interview"
	case models.StageHired:
		return "Your job offer is settled"
	}
	return ""
}

func currentStageMessage(stage models.StageID, note models.PipelineNote) string {
	switch note {
	case models.NoteCancelled:
		return "Your application was cancelled"
	case models.NoteFailed:
		switch stage {
		case models.StageAssessment:
			return "You did not pass the examination"
		case models.StageInitialInterview:
			return "You did not pass the initial interview"
		case models.StageFinalInterview:
			return "You did not pass the final interview"
		}
		return "Not passed"
	case models.NotePassed:
		return stageDoneMessage(stage)
	case models.NoteWaitingForApplicant:
		return "Your job offer awaits your response"
	case models.NoteAccepted:
		return "Congratulations, welcome aboard"
	case models.NoteDeclined:
		return "You declined the job offer"
	case models.NoteCompleted:
		return "Onboarding completed"
	}
	switch stage {
	case models.StageAssessment:
		return "Examination in progress"
	case models.StageInitialInterview:
		return "Initial interview scheduled"
	case models.StageFinalInterview:
		return "Final interview scheduled"
	case models.StageHired:
		return "Your job offer is in review"
	case models.StageOnboard:
		return "Onboarding in progress"
	}
	return ""
}
