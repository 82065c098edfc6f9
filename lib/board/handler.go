package board

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"recruitment-backend/db"
	applicantstore "recruitment-backend/lib/applicant/store"
	"recruitment-backend/lib/cachever"
	scorestore "recruitment-backend/lib/score/store"
	helpers "recruitment-backend/lib/utils/helpers"
	"recruitment-backend/lib/utils/lock"
	"recruitment-backend/models"
	boardapimodels "recruitment-backend/models/api/board"
	dbmodels "recruitment-backend/models/db"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	cardsPerColumn = 5
	rebuildWait    = 3 * time.Second
)

type Provider interface {
	GetBoard(ctx context.Context, spaceID string, filter boardapimodels.BoardFilter) (*boardapimodels.BoardView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		cache:    gocache.New(5*time.Minute, 10*time.Minute),
		versions: cachever.Instance,
	}
}

// NewHandlerWithVersions wires an explicit version counter.
func NewHandlerWithVersions(versions cachever.Provider) Provider {
	return impl{
		cache:    gocache.New(5*time.Minute, 10*time.Minute),
		versions: versions,
	}
}

type impl struct {
	cache    *gocache.Cache
	versions cachever.Provider
}

// GetBoard returns the stage-column view. Entries are cached per
// (filter, version) pair: any writer bump makes every prior key unreachable,
// so a stale entry can never be served after a mutation, only until the next
// read re-keys. Concurrent rebuilds of the same key collapse to one.
func (i impl) GetBoard(ctx context.Context, spaceID string, filter boardapimodels.BoardFilter) (*boardapimodels.BoardView, error) {
	version := i.versions.CurrentVersion()
	key := CacheKey(spaceID, filter, version)
	if filter.Refresh {
		i.cache.Delete(key)
	} else if cached, found := i.cache.Get(key); found {
		view, ok := cached.(boardapimodels.BoardView)
		if ok {
			return &view, nil
		}
	}

	var view *boardapimodels.BoardView
	acquired, err := lock.WithDelay(ctx, key, rebuildWait, func() error {
		if !filter.Refresh {
			if cached, found := i.cache.Get(key); found {
				if ready, ok := cached.(boardapimodels.BoardView); ok {
					view = &ready
					return nil
				}
			}
		}
		built, err := i.build(spaceID, filter, version)
		if err != nil {
			return err
		}
		i.cache.Set(key, *built, gocache.DefaultExpiration)
		view = built
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, errors.New("board rebuild is busy, retry")
	}
	return view, nil
}

// CacheKey hashes the filter (refresh flag excluded) and appends the coherency
// version, so a version bump re-keys every cached entry at once.
func CacheKey(spaceID string, filter boardapimodels.BoardFilter, version int64) string {
	filter.Refresh = false
	raw, err := json.Marshal(filter)
	if err != nil {
		log.WithError(err).Error("board filter marshal failed")
	}
	return fmt.Sprintf("board_%s_%x_v%d", spaceID, sha1.Sum(raw), version)
}

func (i impl) build(spaceID string, filter boardapimodels.BoardFilter, version int64) (*boardapimodels.BoardView, error) {
	applicants := applicantstore.NewInstance(db.DB)
	scores := scorestore.NewInstance(db.DB)

	list, err := applicants.List(spaceID, dbmodels.ApplicantFilter{
		Position: filter.Position,
		Search:   filter.Search,
	})
	if err != nil {
		return nil, errors.Wrap(err, "applicant list")
	}

	byStage := map[models.StageID][]dbmodels.Applicant{}
	for _, applicant := range list {
		if !applicant.InActive || applicant.Pipeline == nil {
			continue
		}
		if !matchesFilter(applicant, filter) {
			continue
		}
		stage := applicant.Pipeline.CurrentStageID
		byStage[stage] = append(byStage[stage], applicant)
	}

	view := boardapimodels.BoardView{
		Version: version,
		Columns: make([]boardapimodels.BoardColumn, 0, len(models.StageOrder)),
	}
	for _, stage := range models.StageOrder {
		column := byStage[stage]
		SortColumn(stage, column)

		cards := make([]boardapimodels.BoardCard, 0, cardsPerColumn)
		start := filter.Page * cardsPerColumn
		for idx := start; idx < len(column) && idx < start+cardsPerColumn; idx++ {
			card, err := i.buildCard(scores, applicants, spaceID, column[idx])
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
		}
		view.Columns = append(view.Columns, boardapimodels.BoardColumn{
			Stage:     stage.ToHuman(),
			TotalCard: int64(len(column)),
			Cards:     cards,
		})
	}
	return &view, nil
}

func matchesFilter(applicant dbmodels.Applicant, filter boardapimodels.BoardFilter) bool {
	pipeline := applicant.Pipeline
	if filter.Status != "" && string(pipeline.Note) != filter.Status {
		return false
	}
	if filter.DateAssessment != "" {
		if pipeline.ScheduleDate == nil {
			return false
		}
		if helpers.FormatDate(*pipeline.ScheduleDate) != filter.DateAssessment {
			return false
		}
	}
	return true
}

// SortColumn orders a stage column by the fixed per-stage status priority,
// then by position and id for a stable layout.
func SortColumn(stage models.StageID, column []dbmodels.Applicant) {
	sort.SliceStable(column, func(a, b int) bool {
		noteA := column[a].Pipeline.Note
		noteB := column[b].Pipeline.Note
		prioA := models.StatusPriority(stage, noteA)
		prioB := models.StatusPriority(stage, noteB)
		if prioA != prioB {
			return prioA < prioB
		}
		if column[a].Position != column[b].Position {
			return column[a].Position < column[b].Position
		}
		return column[a].ID < column[b].ID
	})
}

func (i impl) buildCard(scores scorestore.Provider, applicants applicantstore.Provider, spaceID string, applicant dbmodels.Applicant) (boardapimodels.BoardCard, error) {
	pipeline := applicant.Pipeline
	card := boardapimodels.BoardCard{
		ID:       applicant.ID,
		Name:     applicant.GetFullName(),
		Position: applicant.Position,
		Avatar:   applicant.AvatarPath,
		Address:  applicant.Address,
		Salary:   applicant.Salary,
		Notes:    []string{},
		Tags: []boardapimodels.BoardTag{
			{Label: string(pipeline.Note), Color: pipeline.Note.TagColor()},
		},
	}
	if pipeline.NoteDescription != "" {
		card.Tags = append(card.Tags, boardapimodels.BoardTag{
			Label: pipeline.NoteDescription,
			Color: models.TagYellow,
		})
	}
	if pipeline.ScheduleDate != nil {
		card.Date = helpers.FormatDate(*pipeline.ScheduleDate)
	}

	if scoreType, exist := pipeline.CurrentStageID.ScoreType(); exist {
		scoreList, err := scores.List(spaceID, pipeline.ID, scoreType)
		if err != nil {
			return card, errors.Wrap(err, "score list")
		}
		card.Progress, card.Overall = AggregateScores(scoreList)
	}

	noteList, err := applicants.ListNotes(spaceID, applicant.ID)
	if err != nil {
		return card, errors.Wrap(err, "note list")
	}
	for _, note := range noteList {
		card.Notes = append(card.Notes, note.Text)
	}
	return card, nil
}

// AggregateScores reduces rater rows to the card's progress figure: every
// rater carries equal weight regardless of submission order, and the overall
// ceiling is the shared per-type value, not a sum.
func AggregateScores(list []dbmodels.ApplicantPipelineScore) (progress, overall float64) {
	if len(list) == 0 {
		return 0, 0
	}
	weight := 100 / float64(len(list))
	sum := float64(0)
	for _, rec := range list {
		sum += rec.RawScore * weight
	}
	return sum / 100, list[0].OverallScore
}
