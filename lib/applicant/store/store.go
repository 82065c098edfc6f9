package applicantstore

import (
	"strings"

	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Applicant) (id string, err error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	GetByID(spaceID, id string) (*dbmodels.Applicant, error)
	List(spaceID string, filter dbmodels.ApplicantFilter) ([]dbmodels.Applicant, error)
	AddNote(rec dbmodels.RecruitmentNote) (id string, err error)
	ListNotes(spaceID, applicantID string) ([]dbmodels.RecruitmentNote, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Applicant) (id string, err error) {
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
		Model(&dbmodels.Applicant{}).
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

func (i impl) GetByID(spaceID, id string) (*dbmodels.Applicant, error) {
	rec := dbmodels.Applicant{}
	err := i.db.
		Model(&dbmodels.Applicant{}).
		Where("applicants.id = ?", id).
		Where("applicants.space_id = ?", spaceID).
		Where("applicants.removed = false").
		Preload("Pipeline", "removed = false").
		Preload("Notes").
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

func (i impl) List(spaceID string, filter dbmodels.ApplicantFilter) (list []dbmodels.Applicant, err error) {
	list = []dbmodels.Applicant{}
	tx := i.db.
		Model(dbmodels.Applicant{}).
		Where("space_id = ?", spaceID).
		Where("removed = false")
	if filter.Position != "" {
		tx.Where("LOWER(position) like ?", "%"+strings.ToLower(filter.Position)+"%")
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(CONCAT(last_name,' ', first_name, ' ' , middle_name)) like ? or LOWER(address) like ?", searchValue, searchValue)
	}
	err = tx.Preload("Pipeline", "removed = false").Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) AddNote(rec dbmodels.RecruitmentNote) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListNotes(spaceID, applicantID string) (list []dbmodels.RecruitmentNote, err error) {
	list = []dbmodels.RecruitmentNote{}
	err = i.db.
		Where("space_id = ?", spaceID).
		Where("applicant_id = ?", applicantID).
		Order("created_at desc").
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
