package authapimodels

import "github.com/pkg/errors"

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d LoginData) Validate() error {
	if d.Email == "" || d.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}

type TokenView struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
}
