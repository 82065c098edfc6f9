package models

type StageID int

const (
	StageAssessment       StageID = 1
	StageInitialInterview StageID = 2
	StageFinalInterview   StageID = 3
	StageHired            StageID = 4
	StageOnboard          StageID = 5
)

var StageOrder = []StageID{
	StageAssessment,
	StageInitialInterview,
	StageFinalInterview,
	StageHired,
	StageOnboard,
}

var stageHumanName = map[StageID]string{
	StageAssessment:       "Assessment",
	StageInitialInterview: "Initial Interview",
	StageFinalInterview:   "Final Interview",
	StageHired:            "Hired",
	StageOnboard:          "Onboard",
}

func (s StageID) ToHuman() string {
	if human, exist := stageHumanName[s]; exist {
		return human
	}
	return "Unknown"
}

func (s StageID) IsValid() bool {
	_, exist := stageHumanName[s]
	return exist
}

func (s StageID) Next() (StageID, bool) {
	next := s + 1
	if !next.IsValid() {
		return s, false
	}
	return next, true
}

func StageByName(name string) (StageID, bool) {
	for id, human := range stageHumanName {
		if human == name {
			return id, true
		}
	}
	return 0, false
}

// ScoreType returns the score row type accumulated while an applicant sits on the stage.
func (s StageID) ScoreType() (ScoreType, bool) {
	switch s {
	case StageAssessment:
		return ScoreTypeExam, true
	case StageInitialInterview:
		return ScoreTypeInitialInterview, true
	case StageFinalInterview:
		return ScoreTypeFinalInterview, true
	}
	return "", false
}

// stageStatusPriority is the board sort order per column. Lower index sorts first.
// The order is a presentation policy and must stay stable for UI parity.
var stageStatusPriority = map[StageID][]PipelineNote{
	StageAssessment:       {NotePassed, NotePending, NoteInProgress, NoteFailed, NoteCancelled},
	StageInitialInterview: {NotePassed, NoteConfirm, NotePending, NoteFailed, NoteCancelled},
	StageFinalInterview:   {NotePassed, NoteConfirm, NoteInProgress, NotePending, NoteFailed, NoteCancelled},
	StageHired: {
		NoteWaitingForApplicant, NoteAdministrativeReview, NoteFMReview, NoteManagementReview,
		NoteAccepted, NotePending, NoteDeclined, NoteCancelled,
	},
	StageOnboard: {NoteCompleted, NoteAccepted, NotePending, NoteCancelled},
}

// StatusPriority returns the sort rank of a note within a stage column.
// Unknown notes sink below every listed one.
func StatusPriority(stage StageID, note PipelineNote) int {
	order, exist := stageStatusPriority[stage]
	if !exist {
		return 0
	}
	for idx, item := range order {
		if item == note {
			return idx
		}
	}
	return len(order)
}
