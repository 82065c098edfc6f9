package dbmodels

// Stage is the static ordered hiring stage dictionary, seeded on startup.
type Stage struct {
	ID         int    `gorm:"primaryKey"`
	Name       string `gorm:"type:varchar(100)"`
	StageOrder int
}
