package apiv1

import (
	"recruitment-backend/controllers"
	pipelinehandler "recruitment-backend/lib/pipeline"
	"recruitment-backend/middleware"
	apimodels "recruitment-backend/models/api"
	pipelineapimodels "recruitment-backend/models/api/pipeline"

	"github.com/gofiber/fiber/v2"
)

type pipelineApiController struct {
	controllers.BaseAPIController
}

func InitPipelineApiRouters(app *fiber.App) {
	controller := pipelineApiController{}
	app.Route("pipeline", func(router fiber.Router) {
		router.Put("schedule", controller.updateSchedule)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Put("status", controller.updateStatus)
			idRouter.Put("cancel", controller.cancel)
		})
	})
}

// @Summary Schedule a stage
// @Tags Pipeline
// @Description Move the applicant to a stage and book the event date
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		pipelineapimodels.ScheduleData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/schedule [put]
func (c *pipelineApiController) updateSchedule(ctx *fiber.Ctx) error {
	var payload pipelineapimodels.ScheduleData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	hMsg, err := pipelinehandler.Instance.UpdateSchedule(spaceID, payload)
	if hMsg != "" || err != nil {
		return c.SendError(ctx, hMsg, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Update stage outcome
// @Tags Pipeline
// @Description Write the stage outcome token and its description
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"pipeline id"
// @Param	body				body		pipelineapimodels.StatusData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/{id}/status [put]
func (c *pipelineApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload pipelineapimodels.StatusData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	hMsg, err := pipelinehandler.Instance.UpdateStatus(spaceID, id, payload)
	if hMsg != "" || err != nil {
		return c.SendError(ctx, hMsg, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Cancel pipeline
// @Tags Pipeline
// @Description Terminally cancel the applicant's hiring flow
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"pipeline id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/{id}/cancel [put]
func (c *pipelineApiController) cancel(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	hMsg, err := pipelinehandler.Instance.Cancel(spaceID, id)
	if hMsg != "" || err != nil {
		return c.SendError(ctx, hMsg, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
