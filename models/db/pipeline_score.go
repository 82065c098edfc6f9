package dbmodels

import (
	"recruitment-backend/models"
)

// ApplicantPipelineScore holds one rater's score per stage type.
// Uniqueness is per (pipeline, type, interviewer) via upsert semantics.
// OverallScore is the maximum attainable score and is shared across every row
// of the same (pipeline, type), not a per-rater value.
type ApplicantPipelineScore struct {
	BaseSpaceModel
	ApplicantPipelineID string               `gorm:"type:varchar(36);index:idx_pipeline_score"`
	InterviewerID       string               `gorm:"type:varchar(36);index"`
	Type                models.ScoreType     `gorm:"type:varchar(50);index:idx_pipeline_score"`
	RawScore            float64
	OverallScore        float64
	Decision            models.ScoreDecision `gorm:"type:varchar(20)"`
	Comments            string
	Removed             bool `gorm:"index"`
}
