package cacheverstore

import (
	dbmodels "recruitment-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Get(key string) (int64, error)
	Increment(key string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Get returns the counter value, initializing it to 1 on first read.
func (i impl) Get(key string) (int64, error) {
	rec := dbmodels.CacheVersion{
		Key:     key,
		Version: 1,
	}
	err := i.db.
		Where(dbmodels.CacheVersion{Key: key}).
		FirstOrCreate(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.Version, nil
}

// Increment atomically bumps the counter and returns the new value. The
// counter only ever grows; it is never reset or decremented.
func (i impl) Increment(key string) (int64, error) {
	if _, err := i.Get(key); err != nil {
		return 0, err
	}
	err := i.db.
		Model(&dbmodels.CacheVersion{}).
		Where("key = ?", key).
		Update("version", gorm.Expr("version + 1")).
		Error
	if err != nil {
		return 0, err
	}
	rec := dbmodels.CacheVersion{}
	err = i.db.
		Where("key = ?", key).
		First(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.Version, nil
}
