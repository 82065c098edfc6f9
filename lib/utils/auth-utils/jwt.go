package authutils

import (
	"crypto/md5"
	"encoding/hex"
	"time"

	"recruitment-backend/config"
	"recruitment-backend/models"

	"github.com/golang-jwt/jwt/v5"
)

func GetMD5Hash(text string) string {
	hash := md5.Sum([]byte(text))
	return hex.EncodeToString(hash[:])
}

func GenerateToken(userID, spaceID string, role models.UserRole) (string, error) {
	ttl := time.Duration(config.Conf.Auth.TokenTTL) * time.Hour
	claims := jwt.MapClaims{
		"user_id":  userID,
		"space_id": spaceID,
		"role":     string(role),
		"exp":      time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}
