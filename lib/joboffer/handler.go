package joboffer

import (
	"fmt"
	"time"

	"recruitment-backend/db"
	applicantstore "recruitment-backend/lib/applicant/store"
	"recruitment-backend/lib/cachever"
	jobofferstore "recruitment-backend/lib/joboffer/store"
	"recruitment-backend/lib/notification"
	pipelinestore "recruitment-backend/lib/pipeline/store"
	scorestore "recruitment-backend/lib/score/store"
	spaceusersstore "recruitment-backend/lib/space-users/store"
	"recruitment-backend/models"
	offerapimodels "recruitment-backend/models/api/offer"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(spaceID, userID string, data offerapimodels.OfferCreateData) (id string, hMsg string, err error)
	Approve(spaceID, userID, offerID string, data offerapimodels.OfferStatusData) (hMsg string, err error)
	ApplicantRespond(spaceID, offerID string, data offerapimodels.ApplicantResponseData) (hMsg string, err error)
	// AdvanceOnCEOSignature pushes the most recent offer stuck on the CEO step
	// forward once the CEO signature lands. Runs inside the signature upload
	// transaction.
	AdvanceOnCEOSignature(tx *gorm.DB, spaceID, signaturePath string) error
	Get(spaceID, offerID string) (*offerapimodels.OfferView, error)
	// GetRecords returns the raw offer and applicant rows, used by exports.
	GetRecords(spaceID, offerID string) (*dbmodels.JobOffer, *dbmodels.Applicant, error)
	ListByApplicant(spaceID, applicantID string) ([]offerapimodels.OfferView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct {
}

// Create drafts the offer and moves the applicant to the Hired stage in one
// transaction. The caller may place the offer at a later chain position when
// earlier approvals already happened out of band.
func (i impl) Create(spaceID, userID string, data offerapimodels.OfferCreateData) (id string, hMsg string, err error) {
	if err := data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	status := data.Status
	if status == "" {
		status = models.OfferStatusPendingManagement
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		applicants := applicantstore.NewInstance(tx)
		pipelines := pipelinestore.NewInstance(tx)
		offers := jobofferstore.NewInstance(tx)
		scores := scorestore.NewInstance(tx)

		applicant, err := applicants.GetByID(spaceID, data.ApplicantID)
		if err != nil {
			return errors.Wrap(err, "applicant read")
		}
		if applicant == nil || applicant.Pipeline == nil {
			return models.ErrNotFound
		}
		existing, err := offers.GetLatestNonTerminal(spaceID, data.ApplicantID)
		if err != nil {
			return errors.Wrap(err, "offer lookup")
		}
		if existing != nil {
			hMsg = "applicant already has an offer in review"
			return errors.New(hMsg)
		}

		rec := dbmodels.JobOffer{
			BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
			ApplicantID:    data.ApplicantID,
			Status:         status,
			OfferDetails: dbmodels.OfferDetails{
				Position:   data.Draft.Position,
				Department: data.Draft.Department,
				Salary:     data.Draft.Salary,
				StartDate:  data.Draft.StartDate,
			},
			SignaturePath: data.Signature,
		}
		id, err = offers.Create(rec)
		if err != nil {
			return errors.Wrap(err, "offer create")
		}

		// Hired is tracked by the offer chain, interview scores no longer apply.
		if scoreType, exist := applicant.Pipeline.CurrentStageID.ScoreType(); exist {
			if err := scores.MarkRemoved(spaceID, applicant.Pipeline.ID, scoreType); err != nil {
				return errors.Wrap(err, "stale score cleanup")
			}
		}
		updMap := map[string]interface{}{
			"current_stage_id": models.StageHired,
			"note":             status.PipelineNote(),
			"note_description": "",
			"schedule_date":    data.Draft.StartDate,
		}
		if err := pipelines.Update(spaceID, applicant.Pipeline.ID, updMap); err != nil {
			return errors.Wrap(err, "pipeline update")
		}

		if err := i.notifyStatus(tx, spaceID, *applicant, status); err != nil {
			return errors.Wrap(err, "notify")
		}
		cachever.NewHandlerWithTx(tx).Bump()
		return nil
	})
	if hMsg != "" && err != nil {
		return "", hMsg, nil
	}
	if err != nil {
		return "", "", err
	}
	return id, "", nil
}

// Approve applies one internal approver's decision. The approver must hold the
// role the current chain position expects and must have a stored signature;
// the offer row is locked so two approvers cannot double-advance the chain.
func (i impl) Approve(spaceID, userID, offerID string, data offerapimodels.OfferStatusData) (hMsg string, err error) {
	if err := data.Validate(); err != nil {
		return err.Error(), nil
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		offers := jobofferstore.NewInstance(tx)
		staff := spaceusersstore.NewInstance(tx)

		offer, err := offers.GetByIDForUpdate(spaceID, offerID)
		if err != nil {
			return errors.Wrap(err, "offer read")
		}
		if offer == nil {
			return models.ErrNotFound
		}
		expectedRole, ok := offer.Status.ApproverRole()
		if !ok {
			hMsg = fmt.Sprintf("offer in status %q is not awaiting internal review", offer.Status)
			return errors.New(hMsg)
		}

		user, err := staff.GetByID(userID)
		if err != nil {
			return errors.Wrap(err, "staff read")
		}
		if user == nil {
			return models.ErrNotFound
		}
		if user.Role != expectedRole {
			hMsg = fmt.Sprintf("offer awaits the %v decision", expectedRole.ToHuman())
			return errors.New(hMsg)
		}
		if data.Status == offerapimodels.ActionApproved && !user.HasSignature() {
			hMsg = "a stored signature is required to approve the offer"
			return errors.New(hMsg)
		}

		if data.Status == offerapimodels.ActionRejected {
			return i.reject(tx, spaceID, *offer, data.DeclinedReason)
		}
		return i.advance(tx, spaceID, *offer, user.SignaturePath)
	})
	if hMsg != "" && err != nil {
		return hMsg, nil
	}
	return "", err
}

// advance moves the offer one chain position forward, stamping the step the
// offer is leaving.
func (i impl) advance(tx *gorm.DB, spaceID string, offer dbmodels.JobOffer, signaturePath string) error {
	offers := jobofferstore.NewInstance(tx)

	next, ok := offer.Status.Next()
	if !ok {
		return errors.Errorf("offer status %v has no next chain position", offer.Status)
	}
	now := time.Now()
	offer.StampApproval(offer.Status, now)
	updMap := map[string]interface{}{
		"status":           next,
		"mngt_approved_at": offer.MngtApprovedAt,
		"fm_approved_at":   offer.FmApprovedAt,
		"approved_at":      offer.ApprovedAt,
	}
	if offer.Status == models.OfferStatusPendingCEO && signaturePath != "" {
		updMap["signature_path"] = signaturePath
	}
	if err := offers.Update(spaceID, offer.ID, updMap); err != nil {
		return errors.Wrap(err, "offer update")
	}
	applicant, err := i.syncPipelineNote(tx, spaceID, offer.ApplicantID, next)
	if err != nil {
		return err
	}
	if err := i.notifyStatus(tx, spaceID, *applicant, next); err != nil {
		return errors.Wrap(err, "notify")
	}
	cachever.NewHandlerWithTx(tx).Bump()
	return nil
}

func (i impl) reject(tx *gorm.DB, spaceID string, offer dbmodels.JobOffer, reason string) error {
	offers := jobofferstore.NewInstance(tx)

	if !offer.Status.CanReject() {
		return errors.Errorf("offer status %v cannot be rejected", offer.Status)
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"status":          models.OfferStatusRejected,
		"declined_reason": reason,
		"declined_at":     now,
	}
	if err := offers.Update(spaceID, offer.ID, updMap); err != nil {
		return errors.Wrap(err, "offer update")
	}
	applicant, err := i.syncPipelineNote(tx, spaceID, offer.ApplicantID, models.OfferStatusRejected)
	if err != nil {
		return err
	}
	if err := i.notifyStatus(tx, spaceID, *applicant, models.OfferStatusRejected); err != nil {
		return errors.Wrap(err, "notify")
	}
	cachever.NewHandlerWithTx(tx).Bump()
	return nil
}

// ApplicantRespond records the applicant's answer to an offer sitting on the
// applicant-facing step. Acceptance moves the pipeline to Onboard.
func (i impl) ApplicantRespond(spaceID, offerID string, data offerapimodels.ApplicantResponseData) (hMsg string, err error) {
	if err := data.Validate(); err != nil {
		return err.Error(), nil
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		offers := jobofferstore.NewInstance(tx)
		pipelines := pipelinestore.NewInstance(tx)

		offer, err := offers.GetByIDForUpdate(spaceID, offerID)
		if err != nil {
			return errors.Wrap(err, "offer read")
		}
		if offer == nil {
			return models.ErrNotFound
		}
		if offer.Status != models.OfferStatusPendingApplicant {
			hMsg = "offer is not awaiting the applicant response"
			return errors.New(hMsg)
		}

		final := models.OfferStatusApprovedApplicant
		updMap := map[string]interface{}{
			"status": final,
		}
		if data.Status == offerapimodels.ActionDeclined {
			final = models.OfferStatusDeclinedApplicant
			now := time.Now()
			updMap["status"] = final
			updMap["declined_reason"] = data.DeclinedReason
			updMap["declined_at"] = now
		}
		if err := offers.Update(spaceID, offer.ID, updMap); err != nil {
			return errors.Wrap(err, "offer update")
		}

		pipeline, err := pipelines.GetByApplicantID(spaceID, offer.ApplicantID)
		if err != nil {
			return errors.Wrap(err, "pipeline read")
		}
		if pipeline == nil {
			return models.ErrNotFound
		}
		pipelineUpd := map[string]interface{}{
			"note": final.PipelineNote(),
		}
		if final == models.OfferStatusApprovedApplicant {
			pipelineUpd["current_stage_id"] = models.StageOnboard
		}
		if err := pipelines.Update(spaceID, pipeline.ID, pipelineUpd); err != nil {
			return errors.Wrap(err, "pipeline update")
		}

		applicant, err := applicantstore.NewInstance(tx).GetByID(spaceID, offer.ApplicantID)
		if err != nil {
			return errors.Wrap(err, "applicant read")
		}
		if applicant == nil {
			return models.ErrNotFound
		}
		if err := i.notifyStatus(tx, spaceID, *applicant, final); err != nil {
			return errors.Wrap(err, "notify")
		}
		cachever.NewHandlerWithTx(tx).Bump()
		return nil
	})
	if hMsg != "" && err != nil {
		return hMsg, nil
	}
	return "", err
}

// AdvanceOnCEOSignature is the CEO shortcut: uploading the CEO signature
// counts as the CEO approval for the most recent offer waiting on it.
func (i impl) AdvanceOnCEOSignature(tx *gorm.DB, spaceID, signaturePath string) error {
	offers := jobofferstore.NewInstance(tx)
	offer, err := offers.GetLatestByStatus(spaceID, models.OfferStatusPendingCEO)
	if err != nil {
		return errors.Wrap(err, "offer lookup")
	}
	if offer == nil {
		return nil
	}
	locked, err := offers.GetByIDForUpdate(spaceID, offer.ID)
	if err != nil {
		return errors.Wrap(err, "offer lock")
	}
	if locked == nil || locked.Status != models.OfferStatusPendingCEO {
		return nil
	}
	return i.advance(tx, spaceID, *locked, signaturePath)
}

// syncPipelineNote mirrors the offer chain position into the board note.
func (i impl) syncPipelineNote(tx *gorm.DB, spaceID, applicantID string, status models.OfferStatus) (*dbmodels.Applicant, error) {
	applicants := applicantstore.NewInstance(tx)
	pipelines := pipelinestore.NewInstance(tx)

	applicant, err := applicants.GetByID(spaceID, applicantID)
	if err != nil {
		return nil, errors.Wrap(err, "applicant read")
	}
	if applicant == nil || applicant.Pipeline == nil {
		return nil, models.ErrNotFound
	}
	updMap := map[string]interface{}{
		"note": status.PipelineNote(),
	}
	if err := pipelines.Update(spaceID, applicant.Pipeline.ID, updMap); err != nil {
		return nil, errors.Wrap(err, "pipeline update")
	}
	return applicant, nil
}

// notifyStatus queues the outbox event matching the fresh chain position. The
// applicant-facing statuses mail the applicant, internal ones mail the role
// expected to act; terminal outcomes go back to HR.
func (i impl) notifyStatus(tx *gorm.DB, spaceID string, applicant dbmodels.Applicant, status models.OfferStatus) error {
	code, ok := models.NotifyCodeForStatus(status)
	if !ok {
		return nil
	}
	notify := notification.NewHandlerWithTx(tx)
	if status == models.OfferStatusPendingApplicant {
		return notify.NotifyApplicant(spaceID, applicant.Email, code, applicant.GetFullName())
	}
	if role, exist := status.ApproverRole(); exist {
		return notify.NotifyRole(spaceID, role, code, applicant.GetFullName())
	}
	return notify.NotifyRole(spaceID, models.UserRoleHR, code, applicant.GetFullName())
}

func (i impl) Get(spaceID, offerID string) (*offerapimodels.OfferView, error) {
	offer, err := jobofferstore.NewInstance(db.DB).GetByID(spaceID, offerID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, models.ErrNotFound
	}
	applicant, err := applicantstore.NewInstance(db.DB).GetByID(spaceID, offer.ApplicantID)
	if err != nil {
		return nil, err
	}
	name := ""
	if applicant != nil {
		name = applicant.GetFullName()
	}
	view := offerapimodels.OfferConvert(*offer, name)
	return &view, nil
}

func (i impl) GetRecords(spaceID, offerID string) (*dbmodels.JobOffer, *dbmodels.Applicant, error) {
	offer, err := jobofferstore.NewInstance(db.DB).GetByID(spaceID, offerID)
	if err != nil {
		return nil, nil, err
	}
	if offer == nil {
		return nil, nil, models.ErrNotFound
	}
	applicant, err := applicantstore.NewInstance(db.DB).GetByID(spaceID, offer.ApplicantID)
	if err != nil {
		return nil, nil, err
	}
	if applicant == nil {
		return nil, nil, models.ErrNotFound
	}
	return offer, applicant, nil
}

func (i impl) ListByApplicant(spaceID, applicantID string) ([]offerapimodels.OfferView, error) {
	applicant, err := applicantstore.NewInstance(db.DB).GetByID(spaceID, applicantID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, models.ErrNotFound
	}
	list, err := jobofferstore.NewInstance(db.DB).ListByApplicant(spaceID, applicantID)
	if err != nil {
		return nil, err
	}
	views := make([]offerapimodels.OfferView, 0, len(list))
	for _, rec := range list {
		views = append(views, offerapimodels.OfferConvert(rec, applicant.GetFullName()))
	}
	return views, nil
}
