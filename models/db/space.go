package dbmodels

type Space struct {
	BaseModel
	Name     string `gorm:"type:varchar(255)"`
	IsActive bool
}
