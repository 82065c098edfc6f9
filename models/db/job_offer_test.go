package dbmodels

import (
	"testing"
	"time"

	"recruitment-backend/models"

	"github.com/stretchr/testify/require"
)

func TestJobOfferStampApproval(t *testing.T) {
	at := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	t.Run(`management step stamps its own column`, func(t *testing.T) {
		offer := JobOffer{}
		offer.StampApproval(models.OfferStatusPendingManagement, at)
		require.NotNil(t, offer.MngtApprovedAt)
		require.Equal(t, at, *offer.MngtApprovedAt)
		require.Nil(t, offer.FmApprovedAt)
		require.Nil(t, offer.ApprovedAt)
	})

	t.Run(`fm step stamps its own column`, func(t *testing.T) {
		offer := JobOffer{}
		offer.StampApproval(models.OfferStatusPendingFM, at)
		require.Nil(t, offer.MngtApprovedAt)
		require.NotNil(t, offer.FmApprovedAt)
	})

	t.Run(`ceo step stamps the final approval`, func(t *testing.T) {
		offer := JobOffer{}
		offer.StampApproval(models.OfferStatusPendingCEO, at)
		require.NotNil(t, offer.ApprovedAt)
	})

	t.Run(`applicant-facing statuses stamp nothing`, func(t *testing.T) {
		offer := JobOffer{}
		offer.StampApproval(models.OfferStatusPendingApplicant, at)
		require.Nil(t, offer.MngtApprovedAt)
		require.Nil(t, offer.FmApprovedAt)
		require.Nil(t, offer.ApprovedAt)
	})
}

func TestPipelineNoteChange(t *testing.T) {
	t.Run(`stage-scoped note is accepted`, func(t *testing.T) {
		pipeline := ApplicantPipeline{CurrentStageID: models.StageInitialInterview, Note: models.NotePending}
		ok, err := pipeline.IsAllowNoteChange(models.NoteConfirm)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run(`foreign stage note is rejected`, func(t *testing.T) {
		pipeline := ApplicantPipeline{CurrentStageID: models.StageAssessment, Note: models.NotePending}
		ok, err := pipeline.IsAllowNoteChange(models.NoteManagementReview)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run(`no-op change is rejected`, func(t *testing.T) {
		pipeline := ApplicantPipeline{CurrentStageID: models.StageAssessment, Note: models.NotePending}
		ok, err := pipeline.IsAllowNoteChange(models.NotePending)
		require.NoError(t, err)
		require.False(t, ok)
	})
}
