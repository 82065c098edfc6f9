package models

import "fmt"

type NotifyCode string

const (
	NotifyOfferPendingManagement NotifyCode = "offer_pending_management"
	NotifyOfferPendingFM         NotifyCode = "offer_pending_fm"
	NotifyOfferPendingCEO        NotifyCode = "offer_pending_ceo"
	NotifyOfferPendingApplicant  NotifyCode = "offer_pending_applicant"
	NotifyOfferRejected          NotifyCode = "offer_rejected"
	NotifyOfferAccepted          NotifyCode = "offer_accepted"
	NotifyOfferDeclined          NotifyCode = "offer_declined"
)

type notifyTemplate struct {
	Title string
	Body  string // fmt pattern, receives the applicant full name
}

var notifyTemplateMap = map[NotifyCode]notifyTemplate{
	NotifyOfferPendingManagement: {
		Title: "Job offer awaiting management review",
		Body:  "A job offer for %s is awaiting your review.",
	},
	NotifyOfferPendingFM: {
		Title: "Job offer awaiting facility manager review",
		Body:  "A job offer for %s is awaiting your review.",
	},
	NotifyOfferPendingCEO: {
		Title: "Job offer awaiting CEO review",
		Body:  "A job offer for %s is awaiting your review.",
	},
	NotifyOfferPendingApplicant: {
		Title: "Your job offer is ready",
		Body:  "Dear %s, your job offer has been approved and awaits your response.",
	},
	NotifyOfferRejected: {
		Title: "Job offer rejected",
		Body:  "The job offer for %s was rejected during internal review.",
	},
	NotifyOfferAccepted: {
		Title: "Job offer accepted",
		Body:  "%s has accepted the job offer.",
	},
	NotifyOfferDeclined: {
		Title: "Job offer declined",
		Body:  "%s has declined the job offer.",
	},
}

// NotifyMessage renders the event title and body for the given applicant.
func NotifyMessage(code NotifyCode, applicantName string) (title, body string, ok bool) {
	tpl, exist := notifyTemplateMap[code]
	if !exist {
		return "", "", false
	}
	return tpl.Title, fmt.Sprintf(tpl.Body, applicantName), true
}

// NotifyCodeForStatus maps a fresh offer status to the event sent on entering it.
func NotifyCodeForStatus(status OfferStatus) (NotifyCode, bool) {
	switch status {
	case OfferStatusPendingManagement:
		return NotifyOfferPendingManagement, true
	case OfferStatusPendingFM:
		return NotifyOfferPendingFM, true
	case OfferStatusPendingCEO:
		return NotifyOfferPendingCEO, true
	case OfferStatusPendingApplicant:
		return NotifyOfferPendingApplicant, true
	case OfferStatusRejected:
		return NotifyOfferRejected, true
	case OfferStatusApprovedApplicant:
		return NotifyOfferAccepted, true
	case OfferStatusDeclinedApplicant:
		return NotifyOfferDeclined, true
	}
	return "", false
}
