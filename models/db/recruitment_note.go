package dbmodels

// RecruitmentNote is a free-text note an HR staff member leaves on an applicant.
type RecruitmentNote struct {
	BaseSpaceModel
	ApplicantID string `gorm:"type:varchar(36);index"`
	AuthorID    string `gorm:"type:varchar(36)"`
	Text        string
}
