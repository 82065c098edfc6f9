package dbmodels

// CacheVersion backs the global monotonic counter invalidating derived board
// reads. A single row keyed CandidatesCacheKey exists per deployment.
type CacheVersion struct {
	Key     string `gorm:"primaryKey;type:varchar(100)"`
	Version int64
}

const CandidatesCacheKey = "candidates_cache_version"
