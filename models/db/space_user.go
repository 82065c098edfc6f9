package dbmodels

import (
	"fmt"
	"recruitment-backend/models"
	"time"
)

type SpaceUser struct {
	BaseModel
	SpaceID     string `gorm:"type:varchar(36);index"`
	Password    string `gorm:"type:varchar(128)"`
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	Email       string `gorm:"type:varchar(255);index"`
	IsActive    bool
	PhoneNumber string          `gorm:"type:varchar(15)"`
	Role        models.UserRole `gorm:"type:varchar(50);index"`
	// SignaturePath points at the stored signature image. It is uploaded once
	// per approver and reused by every offer that role ever approves.
	SignaturePath string `gorm:"type:varchar(512)"`
	LastLogin     time.Time
}

func (r SpaceUser) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

func (r SpaceUser) HasSignature() bool {
	return r.SignaturePath != ""
}
