package apiv1

import (
	"io"

	"recruitment-backend/controllers"
	filestorage "recruitment-backend/lib/file-storage"
	signaturehandler "recruitment-backend/lib/signature"
	"recruitment-backend/middleware"
	apimodels "recruitment-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type signatureApiController struct {
	controllers.BaseAPIController
}

func InitSignatureApiRouters(app *fiber.App) {
	controller := signatureApiController{}
	app.Route("signature", func(router fiber.Router) {
		router.Post("", controller.upload)
		router.Get("", controller.get)
	})
}

// @Summary Upload signature
// @Tags Signature
// @Description Store the approver's signature; a CEO signature also advances the offer waiting on it
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   signature			formData	file	true	"file to upload"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/signature [post]
func (c *signatureApiController) upload(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("signature")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		c.GetLogger(ctx).WithError(err).Error("signature file open error")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		c.GetLogger(ctx).WithError(err).Error("signature file read error")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	hMsg, err := signaturehandler.Instance.Upload(ctx.UserContext(), spaceID, userID, file.Filename, fileBody)
	if hMsg != "" || err != nil {
		return c.SendError(ctx, hMsg, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Download own signature
// @Tags Signature
// @Description Download the caller's stored signature image
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {file} binary
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/signature [get]
func (c *signatureApiController) get(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	path, err := signaturehandler.Instance.GetPath(userID)
	if err != nil {
		return c.SendError(ctx, "", err)
	}
	if path == "" {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("no signature stored"))
	}
	body, err := filestorage.Instance.Get(ctx.UserContext(), path)
	if err != nil {
		return c.SendError(ctx, "", err)
	}
	ctx.Set(fiber.HeaderContentType, "application/octet-stream")
	return ctx.Status(fiber.StatusOK).Send(body)
}
