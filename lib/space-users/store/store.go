package spaceusersstore

import (
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	GetByID(id string) (*dbmodels.SpaceUser, error)
	GetByEmail(spaceID, email string) (*dbmodels.SpaceUser, error)
	// FindByEmail resolves a login email without a space hint.
	FindByEmail(email string) (*dbmodels.SpaceUser, error)
	GetByRole(spaceID string, role models.UserRole) (*dbmodels.SpaceUser, error)
	Update(id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id string) (*dbmodels.SpaceUser, error) {
	rec := dbmodels.SpaceUser{}
	err := i.db.
		Model(&dbmodels.SpaceUser{}).
		Where("id = ?", id).
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

func (i impl) GetByEmail(spaceID, email string) (*dbmodels.SpaceUser, error) {
	rec := dbmodels.SpaceUser{}
	err := i.db.
		Model(&dbmodels.SpaceUser{}).
		Where("space_id = ?", spaceID).
		Where("email = ?", email).
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

func (i impl) FindByEmail(email string) (*dbmodels.SpaceUser, error) {
	rec := dbmodels.SpaceUser{}
	err := i.db.
		Model(&dbmodels.SpaceUser{}).
		Where("email = ?", email).
		Where("is_active = true").
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

func (i impl) GetByRole(spaceID string, role models.UserRole) (*dbmodels.SpaceUser, error) {
	rec := dbmodels.SpaceUser{}
	err := i.db.
		Model(&dbmodels.SpaceUser{}).
		Where("space_id = ?", spaceID).
		Where("role = ?", role).
		Where("is_active = true").
		Order("created_at asc").
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.SpaceUser{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
