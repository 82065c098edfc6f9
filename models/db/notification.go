package dbmodels

import (
	"recruitment-backend/models"
	"time"
)

// Notification is a transactional outbox row. It is written inside the same
// transaction as the mutation it reports and delivered by a worker only after
// commit, so a rolled-back state never produces a notification.
type Notification struct {
	BaseModel
	SpaceID string            `gorm:"type:varchar(36);index"`
	UserID  string            `gorm:"type:varchar(36);index"` // empty for applicant-facing mail
	Email   string            `gorm:"type:varchar(255)"`
	Code    models.NotifyCode `gorm:"type:varchar(100)"`
	Title   string            `gorm:"type:varchar(255)"`
	Msg     string
	SentAt  *time.Time `gorm:"index"`
}
