package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOfferChain(t *testing.T) {
	t.Run(`internal chain walks management, fm, ceo, applicant`, func(t *testing.T) {
		next, ok := OfferStatusPendingManagement.Next()
		require.True(t, ok)
		require.Equal(t, OfferStatusPendingFM, next)

		next, ok = OfferStatusPendingFM.Next()
		require.True(t, ok)
		require.Equal(t, OfferStatusPendingCEO, next)

		next, ok = OfferStatusPendingCEO.Next()
		require.True(t, ok)
		require.Equal(t, OfferStatusPendingApplicant, next)
	})

	t.Run(`applicant step has no automatic next`, func(t *testing.T) {
		_, ok := OfferStatusPendingApplicant.Next()
		require.False(t, ok)
	})

	t.Run(`approver role is bound to the chain position`, func(t *testing.T) {
		role, ok := OfferStatusPendingManagement.ApproverRole()
		require.True(t, ok)
		require.Equal(t, UserRoleManagement, role)

		role, ok = OfferStatusPendingFM.ApproverRole()
		require.True(t, ok)
		require.Equal(t, UserRoleFacilityManager, role)

		role, ok = OfferStatusPendingCEO.ApproverRole()
		require.True(t, ok)
		require.Equal(t, UserRoleCEO, role)

		_, ok = OfferStatusPendingApplicant.ApproverRole()
		require.False(t, ok)
	})

	t.Run(`internal positions may divert to reject, applicant-facing may not`, func(t *testing.T) {
		require.True(t, OfferStatusPendingManagement.CanReject())
		require.True(t, OfferStatusPendingFM.CanReject())
		require.True(t, OfferStatusPendingCEO.CanReject())
		require.False(t, OfferStatusPendingApplicant.CanReject())
		require.False(t, OfferStatusApprovedApplicant.CanReject())
	})

	t.Run(`terminal statuses`, func(t *testing.T) {
		require.True(t, OfferStatusApprovedApplicant.IsTerminal())
		require.True(t, OfferStatusDeclinedApplicant.IsTerminal())
		require.True(t, OfferStatusRejected.IsTerminal())
		require.False(t, OfferStatusPendingCEO.IsTerminal())
	})

	t.Run(`chain position mirrors onto the board note`, func(t *testing.T) {
		require.Equal(t, NoteManagementReview, OfferStatusPendingManagement.PipelineNote())
		require.Equal(t, NoteFMReview, OfferStatusPendingFM.PipelineNote())
		require.Equal(t, NoteAdministrativeReview, OfferStatusPendingCEO.PipelineNote())
		require.Equal(t, NoteWaitingForApplicant, OfferStatusPendingApplicant.PipelineNote())
		require.Equal(t, NoteAccepted, OfferStatusApprovedApplicant.PipelineNote())
		require.Equal(t, NoteDeclined, OfferStatusDeclinedApplicant.PipelineNote())
	})
}
