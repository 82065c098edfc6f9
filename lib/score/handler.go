package score

import (
	"math"

	"recruitment-backend/db"
	applicantstore "recruitment-backend/lib/applicant/store"
	"recruitment-backend/lib/cachever"
	pipelinestore "recruitment-backend/lib/pipeline/store"
	scorestore "recruitment-backend/lib/score/store"
	"recruitment-backend/models"
	scoreapimodels "recruitment-backend/models/api/score"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	SubmitScore(spaceID, interviewerID string, data scoreapimodels.ScoreSubmitData) (hMsg string, err error)
	FinalizeInitialInterview(spaceID, interviewerID string, data scoreapimodels.InitialInterviewData) (hMsg string, err error)
	FinalizeFinalInterview(spaceID, interviewerID string, data scoreapimodels.FinalInterviewData) (result *scoreapimodels.FinalInterviewResult, hMsg string, err error)
	FinalizeExamScore(spaceID string, data scoreapimodels.ExamResultData) (hMsg string, err error)
	ListScores(spaceID, pipelineID string, scoreType models.ScoreType) ([]dbmodels.ApplicantPipelineScore, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct {
}

// SubmitScore upserts the rater's raw score for the stage. Passing an overall
// score overwrites the shared attainable ceiling for every rater of the same
// (pipeline, type) pair.
func (i impl) SubmitScore(spaceID, interviewerID string, data scoreapimodels.ScoreSubmitData) (hMsg string, err error) {
	if err := data.Validate(); err != nil {
		return err.Error(), nil
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		pipelines := pipelinestore.NewInstance(tx)
		scores := scorestore.NewInstance(tx)

		pipeline, err := pipelines.GetByID(spaceID, data.ApplicantPipelineID)
		if err != nil {
			return errors.Wrap(err, "pipeline read")
		}
		if pipeline == nil {
			return models.ErrNotFound
		}

		overall := float64(0)
		if data.OverallScore != nil {
			overall = *data.OverallScore
		} else {
			existing, err := scores.List(spaceID, data.ApplicantPipelineID, data.Type)
			if err != nil {
				return errors.Wrap(err, "score list")
			}
			if len(existing) > 0 {
				overall = existing[0].OverallScore
			}
		}

		rec := dbmodels.ApplicantPipelineScore{
			BaseSpaceModel:      dbmodels.BaseSpaceModel{SpaceID: spaceID},
			ApplicantPipelineID: data.ApplicantPipelineID,
			InterviewerID:       interviewerID,
			Type:                data.Type,
			RawScore:            data.RawScore,
			OverallScore:        overall,
		}
		if _, err := scores.Upsert(rec); err != nil {
			return errors.Wrap(err, "score upsert")
		}
		if data.OverallScore != nil {
			if err := scores.SetOverall(spaceID, data.ApplicantPipelineID, data.Type, overall); err != nil {
				return errors.Wrap(err, "overall propagate")
			}
		}
		cachever.NewHandlerWithTx(tx).Bump()
		return nil
	})
	return "", err
}

// FinalizeInitialInterview records the single rater's verdict and writes it
// straight onto the pipeline note. No quorum applies at this stage.
func (i impl) FinalizeInitialInterview(spaceID, interviewerID string, data scoreapimodels.InitialInterviewData) (hMsg string, err error) {
	if err := data.Validate(); err != nil {
		return err.Error(), nil
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
		if pipeline.CurrentStageID != models.StageInitialInterview {
			hMsg = "applicant is not at the initial interview stage"
			return errors.New(hMsg)
		}

		rec := dbmodels.ApplicantPipelineScore{
			BaseSpaceModel:      dbmodels.BaseSpaceModel{SpaceID: spaceID},
			ApplicantPipelineID: data.ApplicantPipelineID,
			InterviewerID:       interviewerID,
			Type:                models.ScoreTypeInitialInterview,
			RawScore:            data.RawScore,
			OverallScore:        data.OverallScore,
			Decision:            data.Decision,
			Comments:            data.Comments,
		}
		if _, err := scores.Upsert(rec); err != nil {
			return errors.Wrap(err, "score upsert")
		}

		note := models.NotePassed
		if data.Decision == models.DecisionFailed {
			note = models.NoteFailed
		}
		updMap := map[string]interface{}{
			"note": note,
		}
		if err := pipelines.Update(spaceID, pipeline.ID, updMap); err != nil {
			return errors.Wrap(err, "pipeline note update")
		}
		cachever.NewHandlerWithTx(tx).Bump()
		return nil
	})
	if hMsg != "" && err != nil {
		return hMsg, nil
	}
	return "", err
}

// FinalizeFinalInterview records one rater's final-interview verdict. The
// pipeline row is locked first so concurrent raters serialize; the second
// distinct rater closes the quorum and the verdict is written in the same
// transaction. Passing requires both raters to pass.
func (i impl) FinalizeFinalInterview(spaceID, interviewerID string, data scoreapimodels.FinalInterviewData) (result *scoreapimodels.FinalInterviewResult, hMsg string, err error) {
	if err := data.Validate(); err != nil {
		return nil, err.Error(), nil
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
		if pipeline.CurrentStageID != models.StageFinalInterview {
			hMsg = "applicant is not at the final interview stage"
			return errors.New(hMsg)
		}

		rawScore := float64(0)
		if data.Decision == models.DecisionPassed {
			rawScore = 1
		}
		rec := dbmodels.ApplicantPipelineScore{
			BaseSpaceModel:      dbmodels.BaseSpaceModel{SpaceID: spaceID},
			ApplicantPipelineID: data.ApplicantPipelineID,
			InterviewerID:       interviewerID,
			Type:                models.ScoreTypeFinalInterview,
			RawScore:            rawScore,
			OverallScore:        1,
			Decision:            data.Decision,
			Comments:            data.Comments,
		}
		if _, err := scores.Upsert(rec); err != nil {
			return errors.Wrap(err, "score upsert")
		}

		list, err := scores.List(spaceID, data.ApplicantPipelineID, models.ScoreTypeFinalInterview)
		if err != nil {
			return errors.Wrap(err, "score list")
		}
		approvals, submitted := tallyVerdicts(list)

		note, closed := finalVerdictNote(approvals, submitted)
		if closed {
			updMap := map[string]interface{}{
				"note": note,
			}
			if err := pipelines.Update(spaceID, pipeline.ID, updMap); err != nil {
				return errors.Wrap(err, "pipeline note update")
			}
		}
		result = &scoreapimodels.FinalInterviewResult{
			Approvals:       approvals,
			Submitted:       submitted,
			Note:            note,
			PipelineUpdated: closed,
		}
		cachever.NewHandlerWithTx(tx).Bump()
		return nil
	})
	if hMsg != "" && err != nil {
		return nil, hMsg, nil
	}
	if err != nil {
		return nil, "", err
	}
	return result, "", nil
}

// finalVerdictNote maps the verdict tally to the pipeline note. The note is
// written back only once the quorum closes; until then the pipeline row stays
// untouched and the in-progress note is reported to the caller alone.
func finalVerdictNote(approvals, submitted int) (note models.PipelineNote, closed bool) {
	if submitted < models.FinalInterviewQuorum {
		return models.NoteInProgress, false
	}
	if approvals == submitted {
		return models.NotePassed, true
	}
	return models.NoteFailed, true
}

// tallyVerdicts counts distinct raters and how many of them passed.
func tallyVerdicts(list []dbmodels.ApplicantPipelineScore) (approvals, submitted int) {
	seen := map[string]models.ScoreDecision{}
	for _, rec := range list {
		seen[rec.InterviewerID] = rec.Decision
	}
	for _, decision := range seen {
		submitted++
		if decision == models.DecisionPassed {
			approvals++
		}
	}
	return approvals, submitted
}

// FinalizeExamScore converts an assessment result to a pass/fail note. The
// threshold is ceil(totalQuestions * ratio): the applicant passes only when
// the score reaches the rounded-up mark.
func (i impl) FinalizeExamScore(spaceID string, data scoreapimodels.ExamResultData) (hMsg string, err error) {
	if err := data.Validate(); err != nil {
		return err.Error(), nil
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		applicants := applicantstore.NewInstance(tx)
		pipelines := pipelinestore.NewInstance(tx)
		scores := scorestore.NewInstance(tx)

		applicant, err := applicants.GetByID(spaceID, data.ApplicantID)
		if err != nil {
			return errors.Wrap(err, "applicant read")
		}
		if applicant == nil {
			return models.ErrNotFound
		}
		pipeline, err := pipelines.GetByApplicantID(spaceID, data.ApplicantID)
		if err != nil {
			return errors.Wrap(err, "pipeline read")
		}
		if pipeline == nil {
			return models.ErrNotFound
		}
		if pipeline.CurrentStageID != models.StageAssessment {
			hMsg = "applicant is not at the assessment stage"
			return errors.New(hMsg)
		}

		decision := models.DecisionFailed
		if ExamPassed(data.TotalScore, data.TotalQuestions) {
			decision = models.DecisionPassed
		}
		rec := dbmodels.ApplicantPipelineScore{
			BaseSpaceModel:      dbmodels.BaseSpaceModel{SpaceID: spaceID},
			ApplicantPipelineID: pipeline.ID,
			Type:                models.ScoreTypeExam,
			RawScore:            float64(data.TotalScore),
			OverallScore:        float64(data.TotalQuestions),
			Decision:            decision,
		}
		if _, err := scores.Upsert(rec); err != nil {
			return errors.Wrap(err, "score upsert")
		}

		note := models.NotePassed
		if decision == models.DecisionFailed {
			note = models.NoteFailed
		}
		updMap := map[string]interface{}{
			"note": note,
		}
		if err := pipelines.Update(spaceID, pipeline.ID, updMap); err != nil {
			return errors.Wrap(err, "pipeline note update")
		}
		cachever.NewHandlerWithTx(tx).Bump()
		return nil
	})
	if hMsg != "" && err != nil {
		return hMsg, nil
	}
	return "", err
}

// ExamPassed applies the rounded-up pass mark to an assessment result.
func ExamPassed(totalScore, totalQuestions int) bool {
	threshold := int(math.Ceil(float64(totalQuestions) * models.ExamPassRatio))
	return totalScore >= threshold
}

func (i impl) ListScores(spaceID, pipelineID string, scoreType models.ScoreType) ([]dbmodels.ApplicantPipelineScore, error) {
	return scorestore.NewInstance(db.DB).List(spaceID, pipelineID, scoreType)
}
