package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStage(t *testing.T) {
	t.Run(`stage order follows the hiring flow`, func(t *testing.T) {
		require.Equal(t, []StageID{StageAssessment, StageInitialInterview, StageFinalInterview, StageHired, StageOnboard}, StageOrder)
	})

	t.Run(`Next walks the flow and stops at the last stage`, func(t *testing.T) {
		next, ok := StageAssessment.Next()
		require.True(t, ok)
		require.Equal(t, StageInitialInterview, next)

		next, ok = StageOnboard.Next()
		require.False(t, ok)
		require.Equal(t, StageOnboard, next)
	})

	t.Run(`StageByName resolves human names`, func(t *testing.T) {
		stage, ok := StageByName("Initial Interview")
		require.True(t, ok)
		require.Equal(t, StageInitialInterview, stage)

		_, ok = StageByName("Probation")
		require.False(t, ok)
	})

	t.Run(`ScoreType is defined for scored stages only`, func(t *testing.T) {
		scoreType, ok := StageAssessment.ScoreType()
		require.True(t, ok)
		require.Equal(t, ScoreTypeExam, scoreType)

		_, ok = StageHired.ScoreType()
		require.False(t, ok)
		_, ok = StageOnboard.ScoreType()
		require.False(t, ok)
	})
}

func TestStatusPriority(t *testing.T) {
	t.Run(`initial interview column puts passed before confirm before pending`, func(t *testing.T) {
		passed := StatusPriority(StageInitialInterview, NotePassed)
		confirm := StatusPriority(StageInitialInterview, NoteConfirm)
		pending := StatusPriority(StageInitialInterview, NotePending)
		failed := StatusPriority(StageInitialInterview, NoteFailed)
		require.Less(t, passed, confirm)
		require.Less(t, confirm, pending)
		require.Less(t, pending, failed)
	})

	t.Run(`hired column leads with waiting for applicant`, func(t *testing.T) {
		waiting := StatusPriority(StageHired, NoteWaitingForApplicant)
		mngt := StatusPriority(StageHired, NoteManagementReview)
		require.Less(t, waiting, mngt)
	})

	t.Run(`unknown note sinks below every listed one`, func(t *testing.T) {
		unknown := StatusPriority(StageAssessment, PipelineNote("mystery"))
		cancelled := StatusPriority(StageAssessment, NoteCancelled)
		require.Greater(t, unknown, cancelled)
	})
}
