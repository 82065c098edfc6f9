package board

import (
	"testing"

	"recruitment-backend/models"
	boardapimodels "recruitment-backend/models/api/board"
	dbmodels "recruitment-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestCacheKey(t *testing.T) {
	t.Run(`same filter and version produce the same key`, func(t *testing.T) {
		filter := boardapimodels.BoardFilter{Position: "engineer", Page: 1}
		require.Equal(t, CacheKey("space-1", filter, 7), CacheKey("space-1", filter, 7))
	})

	t.Run(`version bump re-keys the entry`, func(t *testing.T) {
		filter := boardapimodels.BoardFilter{Position: "engineer"}
		require.NotEqual(t, CacheKey("space-1", filter, 7), CacheKey("space-1", filter, 8))
	})

	t.Run(`filters produce distinct keys`, func(t *testing.T) {
		a := boardapimodels.BoardFilter{Position: "engineer"}
		b := boardapimodels.BoardFilter{Position: "designer"}
		require.NotEqual(t, CacheKey("space-1", a, 7), CacheKey("space-1", b, 7))
	})

	t.Run(`spaces are isolated`, func(t *testing.T) {
		filter := boardapimodels.BoardFilter{}
		require.NotEqual(t, CacheKey("space-1", filter, 7), CacheKey("space-2", filter, 7))
	})

	t.Run(`refresh flag does not take part in the key`, func(t *testing.T) {
		plain := boardapimodels.BoardFilter{Position: "engineer"}
		forced := boardapimodels.BoardFilter{Position: "engineer", Refresh: true}
		require.Equal(t, CacheKey("space-1", plain, 7), CacheKey("space-1", forced, 7))
	})
}

func TestAggregateScores(t *testing.T) {
	t.Run(`empty score set yields zero`, func(t *testing.T) {
		progress, overall := AggregateScores(nil)
		require.Zero(t, progress)
		require.Zero(t, overall)
	})

	t.Run(`single rater passes through`, func(t *testing.T) {
		progress, overall := AggregateScores([]dbmodels.ApplicantPipelineScore{
			{RawScore: 7, OverallScore: 10},
		})
		require.InDelta(t, 7, progress, 0.0001)
		require.InDelta(t, 10, overall, 0.0001)
	})

	t.Run(`raters carry equal weight`, func(t *testing.T) {
		progress, overall := AggregateScores([]dbmodels.ApplicantPipelineScore{
			{RawScore: 6, OverallScore: 10},
			{RawScore: 8, OverallScore: 10},
		})
		require.InDelta(t, 7, progress, 0.0001)
		require.InDelta(t, 10, overall, 0.0001)
	})

	t.Run(`overall is the shared ceiling, not a sum`, func(t *testing.T) {
		_, overall := AggregateScores([]dbmodels.ApplicantPipelineScore{
			{RawScore: 5, OverallScore: 10},
			{RawScore: 5, OverallScore: 10},
			{RawScore: 5, OverallScore: 10},
		})
		require.InDelta(t, 10, overall, 0.0001)
	})
}

func boardApplicant(id, position string, note models.PipelineNote) dbmodels.Applicant {
	applicant := dbmodels.Applicant{
		Position: position,
		InActive: true,
		Pipeline: &dbmodels.ApplicantPipeline{
			CurrentStageID: models.StageInitialInterview,
			Note:           note,
		},
	}
	applicant.ID = id
	return applicant
}

func TestSortColumn(t *testing.T) {
	t.Run(`status priority orders the column`, func(t *testing.T) {
		column := []dbmodels.Applicant{
			boardApplicant("a", "engineer", models.NoteFailed),
			boardApplicant("b", "engineer", models.NotePassed),
			boardApplicant("c", "engineer", models.NotePending),
			boardApplicant("d", "engineer", models.NoteConfirm),
		}
		SortColumn(models.StageInitialInterview, column)
		require.Equal(t, "b", column[0].ID)
		require.Equal(t, "d", column[1].ID)
		require.Equal(t, "c", column[2].ID)
		require.Equal(t, "a", column[3].ID)
	})

	t.Run(`position then id break priority ties`, func(t *testing.T) {
		column := []dbmodels.Applicant{
			boardApplicant("z", "engineer", models.NotePending),
			boardApplicant("a", "engineer", models.NotePending),
			boardApplicant("m", "designer", models.NotePending),
		}
		SortColumn(models.StageInitialInterview, column)
		require.Equal(t, "m", column[0].ID)
		require.Equal(t, "a", column[1].ID)
		require.Equal(t, "z", column[2].ID)
	})

	t.Run(`unknown note sorts last`, func(t *testing.T) {
		column := []dbmodels.Applicant{
			boardApplicant("a", "engineer", models.PipelineNote("mystery")),
			boardApplicant("b", "engineer", models.NoteFailed),
		}
		SortColumn(models.StageInitialInterview, column)
		require.Equal(t, "b", column[0].ID)
		require.Equal(t, "a", column[1].ID)
	})
}
