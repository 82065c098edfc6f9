package cachever

import (
	"recruitment-backend/db"
	cacheverstore "recruitment-backend/lib/cachever/store"
	dbmodels "recruitment-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Provider is the injectable coherency counter. Every pipeline-, score- or
// offer-affecting write bumps it; every derived board read keys its cache by
// the current value, so a bump implicitly invalidates all prior cache keys.
type Provider interface {
	Bump() (newVersion int64)
	CurrentVersion() int64
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: cacheverstore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store: cacheverstore.NewInstance(tx),
	}
}

type impl struct {
	store cacheverstore.Provider
}

func (i impl) Bump() int64 {
	version, err := i.store.Increment(dbmodels.CandidatesCacheKey)
	if err != nil {
		log.WithError(err).Error("cache version bump failed")
		return 0
	}
	return version
}

func (i impl) CurrentVersion() int64 {
	version, err := i.store.Get(dbmodels.CandidatesCacheKey)
	if err != nil {
		log.WithError(err).Error("cache version read failed")
		return 1
	}
	return version
}
