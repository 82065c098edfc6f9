package scoreapimodels

import (
	"recruitment-backend/models"

	"github.com/pkg/errors"
)

type ScoreSubmitData struct {
	ApplicantPipelineID string           `json:"applicant_pipeline_id"`
	Type                models.ScoreType `json:"type"`
	RawScore            float64          `json:"raw_score"`
	OverallScore        *float64         `json:"overall_score,omitempty"`
}

func (d ScoreSubmitData) Validate() error {
	if d.ApplicantPipelineID == "" {
		return errors.New("applicant pipeline id is required")
	}
	if !d.Type.IsValid() {
		return errors.New("unknown score type")
	}
	if d.RawScore < 0 {
		return errors.New("raw score must not be negative")
	}
	if d.OverallScore != nil && *d.OverallScore <= 0 {
		return errors.New("overall score must be positive")
	}
	return nil
}

type InitialInterviewData struct {
	ApplicantPipelineID string               `json:"applicant_pipeline_id"`
	RawScore            float64              `json:"raw_score"`
	OverallScore        float64              `json:"overall_score"`
	Decision            models.ScoreDecision `json:"decision"`
	Comments            string               `json:"comments"`
}

func (d InitialInterviewData) Validate() error {
	if d.ApplicantPipelineID == "" {
		return errors.New("applicant pipeline id is required")
	}
	if !d.Decision.IsValid() {
		return errors.New("decision must be passed or failed")
	}
	if d.RawScore < 0 || d.OverallScore <= 0 {
		return errors.New("invalid score values")
	}
	return nil
}

type FinalInterviewData struct {
	ApplicantPipelineID string               `json:"applicant_pipeline_id"`
	Decision            models.ScoreDecision `json:"decision"`
	Comments            string               `json:"comments"`
}

func (d FinalInterviewData) Validate() error {
	if d.ApplicantPipelineID == "" {
		return errors.New("applicant pipeline id is required")
	}
	if !d.Decision.IsValid() {
		return errors.New("decision must be passed or failed")
	}
	return nil
}

// FinalInterviewResult reports the quorum state after one rater's submission.
type FinalInterviewResult struct {
	Approvals       int                 `json:"approvals"`
	Submitted       int                 `json:"submitted"`
	Note            models.PipelineNote `json:"note"`
	PipelineUpdated bool                `json:"pipelineUpdated"`
}

type ExamResultData struct {
	ApplicantID    string `json:"applicant_id"`
	TotalScore     int    `json:"total_score"`
	TotalQuestions int    `json:"total_questions"`
}

func (d ExamResultData) Validate() error {
	if d.ApplicantID == "" {
		return errors.New("applicant id is required")
	}
	if d.TotalQuestions <= 0 {
		return errors.New("total questions must be positive")
	}
	if d.TotalScore < 0 || d.TotalScore > d.TotalQuestions {
		return errors.New("total score is out of range")
	}
	return nil
}
