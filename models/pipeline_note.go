package models

// PipelineNote is the stage outcome token stored on the pipeline row.
// Offer chain progress reuses the same slot with its own token set.
type PipelineNote string

const (
	NotePending    PipelineNote = "pending"
	NotePassed     PipelineNote = "passed"
	NoteFailed     PipelineNote = "failed"
	NoteCancelled  PipelineNote = "cancelled"
	NoteDeclined   PipelineNote = "declined"
	NoteAccepted   PipelineNote = "accepted"
	NoteCompleted  PipelineNote = "completed"
	NoteInProgress PipelineNote = "In progress"
	NoteConfirm    PipelineNote = "confirm"

	// offer chain overlay, only meaningful while the stage is Hired
	NoteManagementReview     PipelineNote = "Management Review"
	NoteFMReview             PipelineNote = "FM review"
	NoteAdministrativeReview PipelineNote = "administrative review"
	NoteWaitingForApplicant  PipelineNote = "waiting for applicant"
)

type TagColor string

const (
	TagGreen  TagColor = "green"
	TagYellow TagColor = "yellow"
	TagRed    TagColor = "red"
)

var noteColorMap = map[PipelineNote]TagColor{
	NotePassed:               TagGreen,
	NoteAccepted:             TagGreen,
	NoteCompleted:            TagGreen,
	NotePending:              TagYellow,
	NoteInProgress:           TagYellow,
	NoteConfirm:              TagYellow,
	NoteManagementReview:     TagYellow,
	NoteFMReview:             TagYellow,
	NoteAdministrativeReview: TagYellow,
	NoteWaitingForApplicant:  TagYellow,
	NoteFailed:               TagRed,
	NoteCancelled:            TagRed,
	NoteDeclined:             TagRed,
}

func (n PipelineNote) TagColor() TagColor {
	if color, exist := noteColorMap[n]; exist {
		return color
	}
	return TagYellow
}

// stageAllowedNotes lists which outcome tokens a stage may carry.
// Cancelled is reachable from every stage as a terminal display overlay.
var stageAllowedNotes = map[StageID][]PipelineNote{
	StageAssessment:       {NotePending, NoteInProgress, NotePassed, NoteFailed, NoteCancelled},
	StageInitialInterview: {NotePending, NoteConfirm, NotePassed, NoteFailed, NoteCancelled},
	StageFinalInterview:   {NotePending, NoteConfirm, NoteInProgress, NotePassed, NoteFailed, NoteCancelled},
	StageHired: {
		NotePending, NoteManagementReview, NoteFMReview, NoteAdministrativeReview,
		NoteWaitingForApplicant, NoteAccepted, NoteDeclined, NoteCancelled,
	},
	StageOnboard: {NotePending, NoteAccepted, NoteCompleted, NoteCancelled},
}

func (n PipelineNote) IsAllowedOn(stage StageID) bool {
	for _, item := range stageAllowedNotes[stage] {
		if item == n {
			return true
		}
	}
	return false
}
