package controllers

import (
	"recruitment-backend/middleware"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("request body parse error")
		return errors.New("cant read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetIDByKey(ctx, "id")
}

func (c *BaseAPIController) GetIDByKey(ctx *fiber.Ctx, key string) (string, error) {
	id := ctx.Params(key)
	if id == "" {
		return "", errors.Errorf("%v is not specified", key)
	}
	return id, nil
}

// SendError maps handler outcomes to HTTP codes: a business message becomes
// 422, a missing record 404, everything else 500 with the detail kept in logs.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, hMsg string, err error) error {
	if hMsg != "" {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(apimodels.NewError(hMsg))
	}
	if errors.Is(err, models.ErrNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(models.ErrNotFound.Error()))
	}
	c.GetLogger(ctx).WithError(err).Error("request handling error")
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("request_path", ctx.Path()).
		WithField("space_id", middleware.GetUserSpace(ctx)).
		WithField("user_id", middleware.GetUserID(ctx))
}
