package dbmodels

import (
	"recruitment-backend/models"
	"time"
)

type OfferDetails struct {
	Position   string    `json:"position" gorm:"type:varchar(255)"`
	Department string    `json:"department" gorm:"type:varchar(255)"`
	Salary     int       `json:"salary"`
	StartDate  time.Time `json:"start_date"`
}

type JobOffer struct {
	BaseSpaceModel
	ApplicantID    string             `gorm:"type:varchar(36);index"`
	Status         models.OfferStatus `gorm:"type:varchar(50);index"`
	OfferDetails   OfferDetails       `gorm:"embedded;embeddedPrefix:offer_"`
	MngtApprovedAt *time.Time
	FmApprovedAt   *time.Time
	ApprovedAt     *time.Time
	DeclinedReason string `gorm:"type:varchar(512)"`
	DeclinedAt     *time.Time
	SignaturePath  string `gorm:"type:varchar(512)"`
}

// StampApproval records the step timestamp for the status the offer is leaving.
func (o *JobOffer) StampApproval(leaving models.OfferStatus, at time.Time) {
	switch leaving {
	case models.OfferStatusPendingManagement:
		o.MngtApprovedAt = &at
	case models.OfferStatusPendingFM:
		o.FmApprovedAt = &at
	case models.OfferStatusPendingCEO:
		o.ApprovedAt = &at
	}
}
