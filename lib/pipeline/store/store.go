package pipelinestore

import (
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.ApplicantPipeline) (id string, err error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	GetByID(spaceID, id string) (*dbmodels.ApplicantPipeline, error)
	GetByIDForUpdate(spaceID, id string) (*dbmodels.ApplicantPipeline, error)
	GetByApplicantID(spaceID, applicantID string) (*dbmodels.ApplicantPipeline, error)
	ListByStage(spaceID string, stage models.StageID) ([]dbmodels.ApplicantPipeline, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApplicantPipeline) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(spaceID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.ApplicantPipeline{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) GetByID(spaceID, id string) (*dbmodels.ApplicantPipeline, error) {
	return i.getByID(i.db, spaceID, id)
}

// GetByIDForUpdate locks the pipeline row for the duration of the enclosing
// transaction, serializing concurrent multi-step mutations.
func (i impl) GetByIDForUpdate(spaceID, id string) (*dbmodels.ApplicantPipeline, error) {
	return i.getByID(i.db.Clauses(clause.Locking{Strength: "UPDATE"}), spaceID, id)
}

func (i impl) getByID(tx *gorm.DB, spaceID, id string) (*dbmodels.ApplicantPipeline, error) {
	rec := dbmodels.ApplicantPipeline{}
	err := tx.
		Model(&dbmodels.ApplicantPipeline{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Where("removed = false").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByApplicantID(spaceID, applicantID string) (*dbmodels.ApplicantPipeline, error) {
	rec := dbmodels.ApplicantPipeline{}
	err := i.db.
		Model(&dbmodels.ApplicantPipeline{}).
		Where("applicant_id = ?", applicantID).
		Where("space_id = ?", spaceID).
		Where("removed = false").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByStage(spaceID string, stage models.StageID) (list []dbmodels.ApplicantPipeline, err error) {
	list = []dbmodels.ApplicantPipeline{}
	err = i.db.
		Where("space_id = ?", spaceID).
		Where("current_stage_id = ?", stage).
		Where("removed = false").
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
