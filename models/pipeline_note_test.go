package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPipelineNote(t *testing.T) {
	t.Run(`tag colors group outcomes`, func(t *testing.T) {
		require.Equal(t, TagGreen, NotePassed.TagColor())
		require.Equal(t, TagGreen, NoteAccepted.TagColor())
		require.Equal(t, TagRed, NoteFailed.TagColor())
		require.Equal(t, TagRed, NoteCancelled.TagColor())
		require.Equal(t, TagYellow, NotePending.TagColor())
		require.Equal(t, TagYellow, PipelineNote("mystery").TagColor())
	})

	t.Run(`offer chain notes belong to the hired stage only`, func(t *testing.T) {
		require.True(t, NoteManagementReview.IsAllowedOn(StageHired))
		require.False(t, NoteManagementReview.IsAllowedOn(StageAssessment))
		require.False(t, NoteFMReview.IsAllowedOn(StageFinalInterview))
	})

	t.Run(`cancelled is reachable from every stage`, func(t *testing.T) {
		for _, stage := range StageOrder {
			require.True(t, NoteCancelled.IsAllowedOn(stage), "stage %v", stage)
		}
	})

	t.Run(`in progress fits assessment and final interview, not initial`, func(t *testing.T) {
		require.True(t, NoteInProgress.IsAllowedOn(StageAssessment))
		require.True(t, NoteInProgress.IsAllowedOn(StageFinalInterview))
		require.False(t, NoteInProgress.IsAllowedOn(StageInitialInterview))
	})
}
