package scorestore

import (
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Upsert(rec dbmodels.ApplicantPipelineScore) (id string, err error)
	List(spaceID, pipelineID string, scoreType models.ScoreType) ([]dbmodels.ApplicantPipelineScore, error)
	SetOverall(spaceID, pipelineID string, scoreType models.ScoreType, overall float64) error
	MarkRemoved(spaceID, pipelineID string, scoreType models.ScoreType) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Upsert writes the rater's row keyed (pipeline, type, interviewer). An
// existing non-removed row is overwritten in place.
func (i impl) Upsert(rec dbmodels.ApplicantPipelineScore) (id string, err error) {
	existing := dbmodels.ApplicantPipelineScore{}
	tx := i.db.
		Model(&dbmodels.ApplicantPipelineScore{}).
		Where("applicant_pipeline_id = ?", rec.ApplicantPipelineID).
		Where("type = ?", rec.Type).
		Where("interviewer_id = ?", rec.InterviewerID).
		Where("space_id = ?", rec.SpaceID).
		Where("removed = false").
		Limit(1).
		Find(&existing)
	if tx.Error != nil {
		return "", tx.Error
	}
	if tx.RowsAffected > 0 {
		updMap := map[string]interface{}{
			"raw_score":     rec.RawScore,
			"overall_score": rec.OverallScore,
			"decision":      rec.Decision,
			"comments":      rec.Comments,
		}
		err = i.db.
			Model(&dbmodels.ApplicantPipelineScore{}).
			Where("id = ?", existing.ID).
			Updates(updMap).
			Error
		if err != nil {
			return "", err
		}
		return existing.ID, nil
	}
	err = i.db.Omit(clause.Associations).Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(spaceID, pipelineID string, scoreType models.ScoreType) ([]dbmodels.ApplicantPipelineScore, error) {
	return i.list(i.db, spaceID, pipelineID, scoreType)
}

func (i impl) list(tx *gorm.DB, spaceID, pipelineID string, scoreType models.ScoreType) (list []dbmodels.ApplicantPipelineScore, err error) {
	list = []dbmodels.ApplicantPipelineScore{}
	err = tx.
		Where("space_id = ?", spaceID).
		Where("applicant_pipeline_id = ?", pipelineID).
		Where("type = ?", scoreType).
		Where("removed = false").
		Order("created_at asc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

// SetOverall overwrites the shared attainable ceiling on every row of the
// (pipeline, type) pair. The ceiling is type-global, not per-rater.
func (i impl) SetOverall(spaceID, pipelineID string, scoreType models.ScoreType, overall float64) error {
	return i.db.
		Model(&dbmodels.ApplicantPipelineScore{}).
		Where("space_id = ?", spaceID).
		Where("applicant_pipeline_id = ?", pipelineID).
		Where("type = ?", scoreType).
		Where("removed = false").
		Update("overall_score", overall).
		Error
}

func (i impl) MarkRemoved(spaceID, pipelineID string, scoreType models.ScoreType) error {
	return i.db.
		Model(&dbmodels.ApplicantPipelineScore{}).
		Where("space_id = ?", spaceID).
		Where("applicant_pipeline_id = ?", pipelineID).
		Where("type = ?", scoreType).
		Where("removed = false").
		Update("removed", true).
		Error
}
