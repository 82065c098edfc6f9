package models

type ScoreType string

const (
	ScoreTypeExam             ScoreType = "exam_score"
	ScoreTypeInitialInterview ScoreType = "initial_interview"
	ScoreTypeFinalInterview   ScoreType = "final_interview"
	ScoreTypeAttachment       ScoreType = "attachment"
)

func (t ScoreType) IsValid() bool {
	switch t {
	case ScoreTypeExam, ScoreTypeInitialInterview, ScoreTypeFinalInterview, ScoreTypeAttachment:
		return true
	}
	return false
}

type ScoreDecision string

const (
	DecisionPassed ScoreDecision = "passed"
	DecisionFailed ScoreDecision = "failed"
)

func (d ScoreDecision) IsValid() bool {
	return d == DecisionPassed || d == DecisionFailed
}

// FinalInterviewQuorum is the fixed number of distinct raters required before
// a final-interview verdict is computed. Passing requires unanimity.
const FinalInterviewQuorum = 2

// ExamPassRatio is the share of questions that must be answered correctly,
// applied with a rounded-up threshold.
const ExamPassRatio = 0.6
