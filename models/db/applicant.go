package dbmodels

import (
	"fmt"

	"github.com/pkg/errors"
)

type Applicant struct {
	BaseSpaceModel
	FirstName  string `gorm:"type:varchar(255)"`
	LastName   string `gorm:"type:varchar(255)"`
	MiddleName string `gorm:"type:varchar(255)"`
	Position   string `gorm:"type:varchar(255);index"` // desired position
	Salary     int
	Address    string
	Phone      string `gorm:"type:varchar(255)"`
	Email      string `gorm:"type:varchar(255)"`
	AvatarPath string `gorm:"type:varchar(512)"`
	// InActive keeps the legacy column name: true means the applicant is in the
	// active hiring flow and shows up on the board.
	InActive bool `gorm:"column:in_active;index"`
	Removed  bool `gorm:"index"`

	Pipeline *ApplicantPipeline `gorm:"foreignKey:ApplicantID"`
	Notes    []RecruitmentNote  `gorm:"foreignKey:ApplicantID"`
}

func (a Applicant) GetFullName() string {
	if a.MiddleName == "" {
		return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
	}
	return fmt.Sprintf("%s %s %s", a.FirstName, a.MiddleName, a.LastName)
}

type ApplicantFilter struct {
	Position string `json:"position"`
	Search   string `json:"search"`
}

type ApplicantData struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	MiddleName string `json:"middle_name"`
	Position   string `json:"position"`
	Salary     int    `json:"salary"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

func (a ApplicantData) Validate() error {
	if a.FirstName == "" || a.LastName == "" {
		return errors.New("applicant name is required")
	}
	if a.Position == "" {
		return errors.New("desired position is required")
	}
	return nil
}
