package applicant

import (
	"recruitment-backend/db"
	applicantstore "recruitment-backend/lib/applicant/store"
	"recruitment-backend/lib/cachever"
	pipelinestore "recruitment-backend/lib/pipeline/store"
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(spaceID string, data dbmodels.ApplicantData) (id string, hMsg string, err error)
	Update(spaceID, id string, data dbmodels.ApplicantData) (hMsg string, err error)
	Get(spaceID, id string) (*dbmodels.Applicant, error)
	List(spaceID string, filter dbmodels.ApplicantFilter) ([]dbmodels.Applicant, error)
	Remove(spaceID, id string) error
	AddNote(spaceID, applicantID, authorID, text string) (hMsg string, err error)
	ListNotes(spaceID, applicantID string) ([]dbmodels.RecruitmentNote, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct {
}

// Create registers the applicant and opens the singleton pipeline at the
// assessment stage in one transaction.
func (i impl) Create(spaceID string, data dbmodels.ApplicantData) (id string, hMsg string, err error) {
	if err := data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		applicants := applicantstore.NewInstance(tx)
		pipelines := pipelinestore.NewInstance(tx)

		rec := dbmodels.Applicant{
			BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
			FirstName:      data.FirstName,
			LastName:       data.LastName,
			MiddleName:     data.MiddleName,
			Position:       data.Position,
			Salary:         data.Salary,
			Address:        data.Address,
			Phone:          data.Phone,
			Email:          data.Email,
			InActive:       true,
		}
		id, err = applicants.Create(rec)
		if err != nil {
			return errors.Wrap(err, "applicant create")
		}
		pipeline := dbmodels.ApplicantPipeline{
			BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
			ApplicantID:    id,
			CurrentStageID: models.StageAssessment,
			Note:           models.NotePending,
		}
		if _, err := pipelines.Create(pipeline); err != nil {
			return errors.Wrap(err, "pipeline create")
		}
		cachever.NewHandlerWithTx(tx).Bump()
		return nil
	})
	if err != nil {
		return "", "", err
	}
	return id, "", nil
}

func (i impl) Update(spaceID, id string, data dbmodels.ApplicantData) (hMsg string, err error) {
	if err := data.Validate(); err != nil {
		return err.Error(), nil
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		applicants := applicantstore.NewInstance(tx)
		updMap := map[string]interface{}{
			"first_name":  data.FirstName,
			"last_name":   data.LastName,
			"middle_name": data.MiddleName,
			"position":    data.Position,
			"salary":      data.Salary,
			"address":     data.Address,
			"phone":       data.Phone,
			"email":       data.Email,
		}
		if err := applicants.Update(spaceID, id, updMap); err != nil {
			return err
		}
		cachever.NewHandlerWithTx(tx).Bump()
		return nil
	})
	return "", err
}

func (i impl) Get(spaceID, id string) (*dbmodels.Applicant, error) {
	rec, err := applicantstore.NewInstance(db.DB).GetByID(spaceID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.ErrNotFound
	}
	return rec, nil
}

func (i impl) List(spaceID string, filter dbmodels.ApplicantFilter) ([]dbmodels.Applicant, error) {
	return applicantstore.NewInstance(db.DB).List(spaceID, filter)
}

// Remove soft-deletes the applicant and the pipeline row together, so the
// board never shows an orphaned card.
func (i impl) Remove(spaceID, id string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		applicants := applicantstore.NewInstance(tx)
		pipelines := pipelinestore.NewInstance(tx)

		if err := applicants.Update(spaceID, id, map[string]interface{}{
			"removed":   true,
			"in_active": false,
		}); err != nil {
			return err
		}
		pipeline, err := pipelines.GetByApplicantID(spaceID, id)
		if err != nil {
			return errors.Wrap(err, "pipeline read")
		}
		if pipeline != nil {
			if err := pipelines.Update(spaceID, pipeline.ID, map[string]interface{}{
				"removed": true,
			}); err != nil {
				return errors.Wrap(err, "pipeline remove")
			}
		}
		cachever.NewHandlerWithTx(tx).Bump()
		return nil
	})
}

func (i impl) AddNote(spaceID, applicantID, authorID, text string) (hMsg string, err error) {
	if text == "" {
		return "note text is required", nil
	}
	applicants := applicantstore.NewInstance(db.DB)
	applicant, err := applicants.GetByID(spaceID, applicantID)
	if err != nil {
		return "", err
	}
	if applicant == nil {
		return "", models.ErrNotFound
	}
	rec := dbmodels.RecruitmentNote{
		BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
		ApplicantID:    applicantID,
		AuthorID:       authorID,
		Text:           text,
	}
	if _, err := applicants.AddNote(rec); err != nil {
		return "", err
	}
	// Notes show up on board cards, so the cached view must re-key.
	cachever.Instance.Bump()
	return "", nil
}

func (i impl) ListNotes(spaceID, applicantID string) ([]dbmodels.RecruitmentNote, error) {
	return applicantstore.NewInstance(db.DB).ListNotes(spaceID, applicantID)
}
