package dbmodels

type FileType string

const (
	SignatureFile   FileType = "signature"
	AvatarFile      FileType = "avatar"
	ResumeFile      FileType = "resume"
	OfferLetterFile FileType = "offer_letter"
)

// FileStorage records a blob stored in S3; OwnerID is the applicant or staff
// record the file belongs to.
type FileStorage struct {
	BaseSpaceModel
	OwnerID   string   `gorm:"type:varchar(36);index"`
	FileType  FileType `gorm:"type:varchar(50);index"`
	ObjectKey string   `gorm:"type:varchar(512)"`
	FileName  string   `gorm:"type:varchar(255)"`
}
