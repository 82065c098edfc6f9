package score

import (
	"testing"

	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestExamPassed(t *testing.T) {
	t.Run(`threshold rounds up, not down`, func(t *testing.T) {
		// 9 questions: 0.6*9=5.4, mark is 6
		require.False(t, ExamPassed(5, 9))
		require.True(t, ExamPassed(6, 9))
	})

	t.Run(`exact ratio passes`, func(t *testing.T) {
		require.True(t, ExamPassed(6, 10))
		require.False(t, ExamPassed(5, 10))
		require.True(t, ExamPassed(3, 5))
	})

	t.Run(`single question exam`, func(t *testing.T) {
		require.True(t, ExamPassed(1, 1))
		require.False(t, ExamPassed(0, 1))
	})

	t.Run(`full score always passes`, func(t *testing.T) {
		require.True(t, ExamPassed(7, 7))
	})
}

func scoreRow(interviewerID string, decision models.ScoreDecision) dbmodels.ApplicantPipelineScore {
	return dbmodels.ApplicantPipelineScore{
		InterviewerID: interviewerID,
		Type:          models.ScoreTypeFinalInterview,
		Decision:      decision,
	}
}

func TestTallyVerdicts(t *testing.T) {
	t.Run(`single rater keeps the quorum open`, func(t *testing.T) {
		approvals, submitted := tallyVerdicts([]dbmodels.ApplicantPipelineScore{
			scoreRow("rater-a", models.DecisionPassed),
		})
		require.Equal(t, 1, approvals)
		require.Equal(t, 1, submitted)
		require.Less(t, submitted, models.FinalInterviewQuorum)
	})

	t.Run(`duplicate rater counts once`, func(t *testing.T) {
		approvals, submitted := tallyVerdicts([]dbmodels.ApplicantPipelineScore{
			scoreRow("rater-a", models.DecisionPassed),
			scoreRow("rater-a", models.DecisionPassed),
		})
		require.Equal(t, 1, approvals)
		require.Equal(t, 1, submitted)
	})

	t.Run(`two distinct passes close the quorum unanimously`, func(t *testing.T) {
		approvals, submitted := tallyVerdicts([]dbmodels.ApplicantPipelineScore{
			scoreRow("rater-a", models.DecisionPassed),
			scoreRow("rater-b", models.DecisionPassed),
		})
		require.Equal(t, 2, approvals)
		require.Equal(t, 2, submitted)
	})

	t.Run(`one failed verdict breaks unanimity`, func(t *testing.T) {
		approvals, submitted := tallyVerdicts([]dbmodels.ApplicantPipelineScore{
			scoreRow("rater-a", models.DecisionPassed),
			scoreRow("rater-b", models.DecisionFailed),
		})
		require.Equal(t, 1, approvals)
		require.Equal(t, 2, submitted)
		require.NotEqual(t, approvals, submitted)
	})

	t.Run(`resubmission overwrites the earlier verdict`, func(t *testing.T) {
		// the map keyed by rater keeps the last row, matching upsert semantics
		approvals, submitted := tallyVerdicts([]dbmodels.ApplicantPipelineScore{
			scoreRow("rater-a", models.DecisionFailed),
			scoreRow("rater-a", models.DecisionPassed),
			scoreRow("rater-b", models.DecisionPassed),
		})
		require.Equal(t, 2, approvals)
		require.Equal(t, 2, submitted)
	})
}

func TestFinalVerdictNote(t *testing.T) {
	t.Run(`open quorum stays in progress and off the row`, func(t *testing.T) {
		note, closed := finalVerdictNote(1, 1)
		require.Equal(t, models.NoteInProgress, note)
		require.False(t, closed)

		note, closed = finalVerdictNote(0, 1)
		require.Equal(t, models.NoteInProgress, note)
		require.False(t, closed)
	})

	t.Run(`unanimous quorum passes`, func(t *testing.T) {
		note, closed := finalVerdictNote(2, 2)
		require.Equal(t, models.NotePassed, note)
		require.True(t, closed)
	})

	t.Run(`split quorum fails`, func(t *testing.T) {
		note, closed := finalVerdictNote(1, 2)
		require.Equal(t, models.NoteFailed, note)
		require.True(t, closed)
	})
}
