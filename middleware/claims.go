package middleware

import (
	"recruitment-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func getClaim(ctx *fiber.Ctx, name string) string {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	value, _ := claims[name].(string)
	return value
}

func GetUserID(ctx *fiber.Ctx) string {
	return getClaim(ctx, "user_id")
}

func GetUserSpace(ctx *fiber.Ctx) string {
	return getClaim(ctx, "space_id")
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	return models.UserRole(getClaim(ctx, "role"))
}
