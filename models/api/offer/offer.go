package offerapimodels

import (
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type OfferDraft struct {
	Position   string    `json:"position"`
	Department string    `json:"department"`
	Salary     int       `json:"salary"`
	StartDate  time.Time `json:"startDate"`
}

type OfferCreateData struct {
	ApplicantID string             `json:"applicant_id"`
	Draft       OfferDraft         `json:"draft"`
	Status      models.OfferStatus `json:"status"`
	Signature   string             `json:"signature,omitempty"` // stored signature path of the drafting HR
}

func (d OfferCreateData) Validate() error {
	if d.ApplicantID == "" {
		return errors.New("applicant id is required")
	}
	if d.Draft.Position == "" || d.Draft.Department == "" {
		return errors.New("offer position and department are required")
	}
	if d.Draft.StartDate.IsZero() {
		return errors.New("offer start date is required")
	}
	if d.Status != "" && !d.Status.IsValid() {
		return errors.New("unknown offer status")
	}
	return nil
}

const (
	ActionApproved = "approved"
	ActionRejected = "rejected"
	ActionDeclined = "declined"
)

// OfferStatusData is the approver's decision payload.
type OfferStatusData struct {
	Status         string `json:"status"` // approved | rejected
	DeclinedReason string `json:"declined_reason,omitempty"`
}

func (d OfferStatusData) Validate() error {
	switch d.Status {
	case ActionApproved:
		return nil
	case ActionRejected:
		if d.DeclinedReason == "" {
			return errors.New("declined reason is required when rejecting")
		}
		return nil
	}
	return errors.New("status must be approved or rejected")
}

// ApplicantResponseData is the applicant's answer to a pending offer.
type ApplicantResponseData struct {
	Status         string `json:"status"` // approved | declined
	DeclinedReason string `json:"declined_reason,omitempty"`
}

func (d ApplicantResponseData) Validate() error {
	if d.Status != ActionApproved && d.Status != ActionDeclined {
		return errors.New("status must be approved or declined")
	}
	return nil
}

type OfferView struct {
	ID             string               `json:"id"`
	ApplicantID    string               `json:"applicant_id"`
	ApplicantName  string               `json:"applicant_name"`
	Status         models.OfferStatus   `json:"status"`
	Details        dbmodels.OfferDetails `json:"offer_details"`
	MngtApprovedAt *time.Time           `json:"mngt_approved_at,omitempty"`
	FmApprovedAt   *time.Time           `json:"fm_approved_at,omitempty"`
	ApprovedAt     *time.Time           `json:"approved_at,omitempty"`
	DeclinedReason string               `json:"declined_reason,omitempty"`
	DeclinedAt     *time.Time           `json:"declined_at,omitempty"`
	SignaturePath  string               `json:"signature_path,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

func OfferConvert(rec dbmodels.JobOffer, applicantName string) OfferView {
	return OfferView{
		ID:             rec.ID,
		ApplicantID:    rec.ApplicantID,
		ApplicantName:  applicantName,
		Status:         rec.Status,
		Details:        rec.OfferDetails,
		MngtApprovedAt: rec.MngtApprovedAt,
		FmApprovedAt:   rec.FmApprovedAt,
		ApprovedAt:     rec.ApprovedAt,
		DeclinedReason: rec.DeclinedReason,
		DeclinedAt:     rec.DeclinedAt,
		SignaturePath:  rec.SignaturePath,
		CreatedAt:      rec.CreatedAt,
	}
}
