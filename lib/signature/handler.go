package signature

import (
	"context"

	"recruitment-backend/db"
	filestorage "recruitment-backend/lib/file-storage"
	"recruitment-backend/lib/joboffer"
	spaceusersstore "recruitment-backend/lib/space-users/store"
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Upload(ctx context.Context, spaceID, userID, fileName string, file []byte) (hMsg string, err error)
	GetPath(userID string) (string, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct {
}

// Upload stores the staff member's signature image and records its path. A CEO
// signature doubles as the CEO approval: the most recent offer waiting on the
// CEO step advances in the same transaction.
func (i impl) Upload(ctx context.Context, spaceID, userID, fileName string, file []byte) (hMsg string, err error) {
	if len(file) == 0 {
		return "signature file is empty", nil
	}
	user, err := spaceusersstore.NewInstance(db.DB).GetByID(userID)
	if err != nil {
		return "", errors.Wrap(err, "staff read")
	}
	if user == nil {
		return "", models.ErrNotFound
	}
	if !user.Role.IsApprover() {
		return "only offer approvers carry a stored signature", nil
	}

	objectKey, err := filestorage.Instance.Upload(ctx, spaceID, userID, dbmodels.SignatureFile, fileName, file)
	if err != nil {
		return "", errors.Wrap(err, "signature upload")
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		staff := spaceusersstore.NewInstance(tx)
		updMap := map[string]interface{}{
			"signature_path": objectKey,
		}
		if err := staff.Update(userID, updMap); err != nil {
			return errors.Wrap(err, "staff update")
		}
		if user.Role == models.UserRoleCEO {
			if err := joboffer.Instance.AdvanceOnCEOSignature(tx, spaceID, objectKey); err != nil {
				return errors.Wrap(err, "ceo shortcut")
			}
		}
		return nil
	})
	return "", err
}

func (i impl) GetPath(userID string) (string, error) {
	user, err := spaceusersstore.NewInstance(db.DB).GetByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", models.ErrNotFound
	}
	return user.SignaturePath, nil
}
