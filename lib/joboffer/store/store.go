package jobofferstore

import (
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.JobOffer) (id string, err error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	GetByID(spaceID, id string) (*dbmodels.JobOffer, error)
	// GetByIDForUpdate locks the offer row for the enclosing transaction,
	// excluding concurrent double-advancement of the chain.
	GetByIDForUpdate(spaceID, id string) (*dbmodels.JobOffer, error)
	GetLatestByStatus(spaceID string, status models.OfferStatus) (*dbmodels.JobOffer, error)
	// GetLatestNonTerminal returns the applicant's offer still in review, if any.
	GetLatestNonTerminal(spaceID, applicantID string) (*dbmodels.JobOffer, error)
	ListByApplicant(spaceID, applicantID string) ([]dbmodels.JobOffer, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobOffer) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
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
		Model(&dbmodels.JobOffer{}).
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

func (i impl) GetByID(spaceID, id string) (*dbmodels.JobOffer, error) {
	return i.getByID(i.db, spaceID, id)
}

func (i impl) GetByIDForUpdate(spaceID, id string) (*dbmodels.JobOffer, error) {
	return i.getByID(i.db.Clauses(clause.Locking{Strength: "UPDATE"}), spaceID, id)
}

func (i impl) getByID(tx *gorm.DB, spaceID, id string) (*dbmodels.JobOffer, error) {
	rec := dbmodels.JobOffer{}
	err := tx.
		Model(&dbmodels.JobOffer{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
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

// GetLatestByStatus returns the single most recently created offer sitting on
// the given chain position. Drives the CEO signature shortcut.
func (i impl) GetLatestByStatus(spaceID string, status models.OfferStatus) (*dbmodels.JobOffer, error) {
	rec := dbmodels.JobOffer{}
	err := i.db.
		Model(&dbmodels.JobOffer{}).
		Where("space_id = ?", spaceID).
		Where("status = ?", status).
		Order("created_at desc").
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

func (i impl) GetLatestNonTerminal(spaceID, applicantID string) (*dbmodels.JobOffer, error) {
	rec := dbmodels.JobOffer{}
	err := i.db.
		Model(&dbmodels.JobOffer{}).
		Where("space_id = ?", spaceID).
		Where("applicant_id = ?", applicantID).
		Where("status in ?", []models.OfferStatus{
			models.OfferStatusPendingManagement,
			models.OfferStatusPendingFM,
			models.OfferStatusPendingCEO,
			models.OfferStatusPendingApplicant,
		}).
		Order("created_at desc").
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

func (i impl) ListByApplicant(spaceID, applicantID string) (list []dbmodels.JobOffer, err error) {
	list = []dbmodels.JobOffer{}
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
