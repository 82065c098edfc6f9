package notification

import (
	"recruitment-backend/db"
	notificationstore "recruitment-backend/lib/notification/store"
	spaceusersstore "recruitment-backend/lib/space-users/store"
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Provider queues notifications as outbox rows. Enqueue from inside the
// mutating transaction; delivery happens after commit via the worker.
type Provider interface {
	NotifyRole(spaceID string, role models.UserRole, code models.NotifyCode, applicantName string) error
	NotifyApplicant(spaceID, email string, code models.NotifyCode, applicantName string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          notificationstore.NewInstance(db.DB),
		spaceUserStore: spaceusersstore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:          notificationstore.NewInstance(tx),
		spaceUserStore: spaceusersstore.NewInstance(tx),
	}
}

type impl struct {
	store          notificationstore.Provider
	spaceUserStore spaceusersstore.Provider
}

func (i impl) NotifyRole(spaceID string, role models.UserRole, code models.NotifyCode, applicantName string) error {
	user, err := i.spaceUserStore.GetByRole(spaceID, role)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.Errorf("no active staff member with role %v", role.ToHuman())
	}
	title, body, ok := models.NotifyMessage(code, applicantName)
	if !ok {
		return errors.Errorf("unknown notification code %v", code)
	}
	rec := dbmodels.Notification{
		SpaceID: spaceID,
		UserID:  user.ID,
		Email:   user.Email,
		Code:    code,
		Title:   title,
		Msg:     body,
	}
	_, err = i.store.Create(rec)
	return err
}

func (i impl) NotifyApplicant(spaceID, email string, code models.NotifyCode, applicantName string) error {
	title, body, ok := models.NotifyMessage(code, applicantName)
	if !ok {
		return errors.Errorf("unknown notification code %v", code)
	}
	rec := dbmodels.Notification{
		SpaceID: spaceID,
		Email:   email,
		Code:    code,
		Title:   title,
		Msg:     body,
	}
	_, err := i.store.Create(rec)
	return err
}
