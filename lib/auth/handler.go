package auth

import (
	"time"

	"recruitment-backend/db"
	spaceusersstore "recruitment-backend/lib/space-users/store"
	authutils "recruitment-backend/lib/utils/auth-utils"
	authapimodels "recruitment-backend/models/api/auth"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
)

var ErrUnauthorized = errors.New("invalid email or password")

type Provider interface {
	Login(email, password string) (*authapimodels.TokenView, error)
	Me(userID string) (*dbmodels.SpaceUser, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		spaceUsersStore: spaceusersstore.NewInstance(db.DB),
	}
}

type impl struct {
	spaceUsersStore spaceusersstore.Provider
}

func (i impl) Login(email, password string) (*authapimodels.TokenView, error) {
	user, err := i.spaceUsersStore.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != authutils.GetMD5Hash(password) {
		return nil, ErrUnauthorized
	}
	token, err := authutils.GenerateToken(user.ID, user.SpaceID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "token generation")
	}
	updMap := map[string]interface{}{
		"last_login": time.Now(),
	}
	if err := i.spaceUsersStore.Update(user.ID, updMap); err != nil {
		return nil, errors.Wrap(err, "last login update")
	}
	return &authapimodels.TokenView{
		AccessToken: token,
		Role:        string(user.Role),
	}, nil
}

func (i impl) Me(userID string) (*dbmodels.SpaceUser, error) {
	user, err := i.spaceUsersStore.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthorized
	}
	user.Password = ""
	return user, nil
}
