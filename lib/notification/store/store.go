package notificationstore

import (
	"time"

	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	ListUnsent(limit int) ([]dbmodels.Notification, error)
	MarkSent(ids []string) error
	ListUnsentByUser(userID string) ([]dbmodels.Notification, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListUnsent(limit int) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	err = i.db.
		Where("sent_at is null").
		Order("created_at asc").
		Limit(limit).
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

func (i impl) ListUnsentByUser(userID string) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	err = i.db.
		Where("sent_at is null").
		Where("user_id = ?", userID).
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

func (i impl) MarkSent(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("id in ?", ids).
		Update("sent_at", time.Now()).
		Error
}
