package models

// OfferStatus is the job offer position within the approval chain.
type OfferStatus string

const (
	OfferStatusPendingManagement OfferStatus = "pending_management"
	OfferStatusPendingFM         OfferStatus = "pending_fm"
	OfferStatusPendingCEO        OfferStatus = "pending_ceo"
	OfferStatusPendingApplicant  OfferStatus = "pending_applicant"
	OfferStatusApprovedApplicant OfferStatus = "approved_applicant"
	OfferStatusDeclinedApplicant OfferStatus = "declined_applicant"
	OfferStatusRejected          OfferStatus = "reject"
)

var offerChain = []OfferStatus{
	OfferStatusPendingManagement,
	OfferStatusPendingFM,
	OfferStatusPendingCEO,
	OfferStatusPendingApplicant,
}

func (s OfferStatus) IsValid() bool {
	switch s {
	case OfferStatusPendingManagement, OfferStatusPendingFM, OfferStatusPendingCEO,
		OfferStatusPendingApplicant, OfferStatusApprovedApplicant, OfferStatusDeclinedApplicant,
		OfferStatusRejected:
		return true
	}
	return false
}

func (s OfferStatus) IsTerminal() bool {
	return s == OfferStatusApprovedApplicant ||
		s == OfferStatusDeclinedApplicant ||
		s == OfferStatusRejected
}

// Next returns the following chain position for an internal approval step.
func (s OfferStatus) Next() (OfferStatus, bool) {
	for idx, item := range offerChain {
		if item == s && idx+1 < len(offerChain) {
			return offerChain[idx+1], true
		}
	}
	return s, false
}

// ApproverRole returns the staff role expected to act while the offer sits on the status.
func (s OfferStatus) ApproverRole() (UserRole, bool) {
	switch s {
	case OfferStatusPendingManagement:
		return UserRoleManagement, true
	case OfferStatusPendingFM:
		return UserRoleFacilityManager, true
	case OfferStatusPendingCEO:
		return UserRoleCEO, true
	}
	return "", false
}

// CanReject reports whether an internal approver may still divert the chain to reject.
// The applicant-facing statuses are out of the approvers' hands.
func (s OfferStatus) CanReject() bool {
	switch s {
	case OfferStatusPendingManagement, OfferStatusPendingFM, OfferStatusPendingCEO:
		return true
	}
	return false
}

// offerNoteMap pairs every chain position with the pipeline note shown on the board.
var offerNoteMap = map[OfferStatus]PipelineNote{
	OfferStatusPendingManagement: NoteManagementReview,
	OfferStatusPendingFM:         NoteFMReview,
	OfferStatusPendingCEO:        NoteAdministrativeReview,
	OfferStatusPendingApplicant:  NoteWaitingForApplicant,
	OfferStatusApprovedApplicant: NoteAccepted,
	OfferStatusDeclinedApplicant: NoteDeclined,
	OfferStatusRejected:          NoteCancelled,
}

func (s OfferStatus) PipelineNote() PipelineNote {
	if note, exist := offerNoteMap[s]; exist {
		return note
	}
	return NotePending
}
