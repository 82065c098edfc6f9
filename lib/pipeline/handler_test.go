package pipeline

import (
	"testing"
	"time"

	"recruitment-backend/models"
	pipelineapimodels "recruitment-backend/models/api/pipeline"
	dbmodels "recruitment-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestBuildDashboardSteps(t *testing.T) {
	t.Run(`fresh pipeline shows assessment in progress`, func(t *testing.T) {
		steps := BuildDashboardSteps(dbmodels.ApplicantPipeline{
			CurrentStageID: models.StageAssessment,
			Note:           models.NotePending,
		})
		require.Len(t, steps, len(models.StageOrder))
		require.Equal(t, pipelineapimodels.StepCurrent, steps[0].State)
		require.Equal(t, "Examination in progress", steps[0].Message)
		for _, step := range steps[1:] {
			require.Equal(t, pipelineapimodels.StepUpcoming, step.State)
		}
	})

	t.Run(`passed examination is reported on the done step`, func(t *testing.T) {
		steps := BuildDashboardSteps(dbmodels.ApplicantPipeline{
			CurrentStageID: models.StageInitialInterview,
			Note:           models.NotePending,
		})
		require.Equal(t, pipelineapimodels.StepDone, steps[0].State)
		require.Equal(t, "You passed the examination", steps[0].Message)
		require.Equal(t, pipelineapimodels.StepCurrent, steps[1].State)
	})

	t.Run(`passed assessment advances the strip to the interview`, func(t *testing.T) {
		date := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
		steps := BuildDashboardSteps(dbmodels.ApplicantPipeline{
			CurrentStageID: models.StageAssessment,
			Note:           models.NotePassed,
			ScheduleDate:   &date,
		})
		require.Equal(t, pipelineapimodels.StepDone, steps[0].State)
		require.Equal(t, "You passed the examination", steps[0].Message)
		require.Equal(t, pipelineapimodels.StepCurrent, steps[1].State)
		require.Nil(t, steps[1].ScheduleDate)
		for _, step := range steps[2:] {
			require.Equal(t, pipelineapimodels.StepUpcoming, step.State)
		}
	})

	t.Run(`passed final interview advances to hired`, func(t *testing.T) {
		steps := BuildDashboardSteps(dbmodels.ApplicantPipeline{
			CurrentStageID: models.StageFinalInterview,
			Note:           models.NotePassed,
		})
		require.Equal(t, pipelineapimodels.StepDone, steps[2].State)
		require.Equal(t, pipelineapimodels.StepCurrent, steps[3].State)
	})

	t.Run(`current failed stage reports the failure`, func(t *testing.T) {
		steps := BuildDashboardSteps(dbmodels.ApplicantPipeline{
			CurrentStageID: models.StageFinalInterview,
			Note:           models.NoteFailed,
		})
		require.Equal(t, pipelineapimodels.StepCurrent, steps[2].State)
		require.Equal(t, "You did not pass the final interview", steps[2].Message)
	})

	t.Run(`schedule date surfaces on the current step only`, func(t *testing.T) {
		date := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
		steps := BuildDashboardSteps(dbmodels.ApplicantPipeline{
			CurrentStageID: models.StageInitialInterview,
			Note:           models.NoteConfirm,
			ScheduleDate:   &date,
		})
		require.Nil(t, steps[0].ScheduleDate)
		require.NotNil(t, steps[1].ScheduleDate)
		require.Equal(t, date, *steps[1].ScheduleDate)
	})

	t.Run(`offer waiting on the applicant`, func(t *testing.T) {
		steps := BuildDashboardSteps(dbmodels.ApplicantPipeline{
			CurrentStageID: models.StageHired,
			Note:           models.NoteWaitingForApplicant,
		})
		require.Equal(t, pipelineapimodels.StepCurrent, steps[3].State)
		require.Equal(t, "Your job offer awaits your response", steps[3].Message)
	})

	t.Run(`accepted offer on the onboard stage`, func(t *testing.T) {
		steps := BuildDashboardSteps(dbmodels.ApplicantPipeline{
			CurrentStageID: models.StageOnboard,
			Note:           models.NoteAccepted,
		})
		require.Equal(t, pipelineapimodels.StepDone, steps[3].State)
		require.Equal(t, "Your job offer is settled", steps[3].Message)
		require.Equal(t, pipelineapimodels.StepCurrent, steps[4].State)
		require.Equal(t, "Congratulations, welcome aboard", steps[4].Message)
	})
}
