package apiv1

import (
	"fmt"

	"recruitment-backend/config"
	"recruitment-backend/controllers"
	pdfexport "recruitment-backend/lib/export/pdf"
	filestorage "recruitment-backend/lib/file-storage"
	jobofferhandler "recruitment-backend/lib/joboffer"
	"recruitment-backend/middleware"
	apimodels "recruitment-backend/models/api"
	offerapimodels "recruitment-backend/models/api/offer"

	"github.com/gofiber/fiber/v2"
)

type jobOfferApiController struct {
	controllers.BaseAPIController
}

func InitJobOfferApiRouters(app *fiber.App) {
	controller := jobOfferApiController{}
	app.Route("offer", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("applicant/:id", controller.listByApplicant)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("status", controller.approve)
			idRouter.Put("applicant-response", controller.applicantRespond)
			idRouter.Get("letter", controller.letter)
		})
	})
}

// @Summary Draft job offer
// @Tags Job offer
// @Description Draft the offer and move the applicant to the Hired stage
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		offerapimodels.OfferCreateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offer [post]
func (c *jobOfferApiController) create(ctx *fiber.Ctx) error {
	var payload offerapimodels.OfferCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	id, hMsg, err := jobofferhandler.Instance.Create(spaceID, userID, payload)
	if hMsg != "" || err != nil {
		return c.SendError(ctx, hMsg, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Approver decision
// @Tags Job offer
// @Description Approve or reject the offer at its current chain position
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"offer id"
// @Param	body				body		offerapimodels.OfferStatusData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offer/{id}/status [put]
func (c *jobOfferApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload offerapimodels.OfferStatusData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	hMsg, err := jobofferhandler.Instance.Approve(spaceID, userID, id, payload)
	if hMsg != "" || err != nil {
		return c.SendError(ctx, hMsg, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Applicant response
// @Tags Job offer
// @Description Record the applicant's answer to a pending offer
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"offer id"
// @Param	body				body		offerapimodels.ApplicantResponseData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offer/{id}/applicant-response [put]
func (c *jobOfferApiController) applicantRespond(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload offerapimodels.ApplicantResponseData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	hMsg, err := jobofferhandler.Instance.ApplicantRespond(spaceID, id, payload)
	if hMsg != "" || err != nil {
		return c.SendError(ctx, hMsg, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Offer card
// @Tags Job offer
// @Description Offer chain state and details
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"offer id"
// @Success 200 {object} apimodels.Response{data=offerapimodels.OfferView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offer/{id} [get]
func (c *jobOfferApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	view, err := jobofferhandler.Instance.Get(spaceID, id)
	if err != nil {
		return c.SendError(ctx, "", err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Applicant offer history
// @Tags Job offer
// @Description Offers drafted for the applicant, newest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"applicant id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offer/applicant/{id} [get]
func (c *jobOfferApiController) listByApplicant(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	list, err := jobofferhandler.Instance.ListByApplicant(spaceID, id)
	if err != nil {
		return c.SendError(ctx, "", err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Offer letter PDF
// @Tags Job offer
// @Description Download the offer letter, stamped with the CEO signature when present
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"offer id"
// @Success 200 {file} binary
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offer/{id}/letter [get]
func (c *jobOfferApiController) letter(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	offer, applicant, err := jobofferhandler.Instance.GetRecords(spaceID, id)
	if err != nil {
		return c.SendError(ctx, "", err)
	}

	signature := []byte(nil)
	signatureName := ""
	if offer.SignaturePath != "" {
		signature, err = filestorage.Instance.Get(ctx.UserContext(), offer.SignaturePath)
		if err != nil {
			c.GetLogger(ctx).WithError(err).Warn("offer letter rendered without signature image")
			signature = nil
		} else {
			signatureName = "signature.png"
		}
	}
	pdfFile, err := pdfexport.GenerateOfferLetter(config.Conf.Preload.SpaceName, *applicant, *offer, signature, signatureName)
	if err != nil {
		return c.SendError(ctx, "", err)
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=offer_%s.pdf", offer.ID))
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}
