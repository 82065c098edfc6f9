package apiv1

import (
	"recruitment-backend/controllers"
	scorehandler "recruitment-backend/lib/score"
	"recruitment-backend/middleware"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	scoreapimodels "recruitment-backend/models/api/score"

	"github.com/gofiber/fiber/v2"
)

type scoreApiController struct {
	controllers.BaseAPIController
}

func InitScoreApiRouters(app *fiber.App) {
	controller := scoreApiController{}
	app.Route("score", func(router fiber.Router) {
		router.Post("", controller.submit)
		router.Post("initial-interview", controller.finalizeInitialInterview)
		router.Post("final-interview", controller.finalizeFinalInterview)
		router.Post("exam", controller.finalizeExam)
		router.Get(":pipeline_id/:type", controller.list)
	})
}

// @Summary Submit rater score
// @Tags Score
// @Description Upsert the caller's score row for the stage
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		scoreapimodels.ScoreSubmitData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/score [post]
func (c *scoreApiController) submit(ctx *fiber.Ctx) error {
	var payload scoreapimodels.ScoreSubmitData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	hMsg, err := scorehandler.Instance.SubmitScore(spaceID, userID, payload)
	if hMsg != "" || err != nil {
		return c.SendError(ctx, hMsg, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Finalize initial interview
// @Tags Score
// @Description Record the single rater verdict of the initial interview
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		scoreapimodels.InitialInterviewData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/score/initial-interview [post]
func (c *scoreApiController) finalizeInitialInterview(ctx *fiber.Ctx) error {
	var payload scoreapimodels.InitialInterviewData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	hMsg, err := scorehandler.Instance.FinalizeInitialInterview(spaceID, userID, payload)
	if hMsg != "" || err != nil {
		return c.SendError(ctx, hMsg, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Finalize final interview
// @Tags Score
// @Description Record one rater verdict; the second distinct rater closes the quorum
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		scoreapimodels.FinalInterviewData	true	"request body"
// @Success 200 {object} apimodels.Response{data=scoreapimodels.FinalInterviewResult}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/score/final-interview [post]
func (c *scoreApiController) finalizeFinalInterview(ctx *fiber.Ctx) error {
	var payload scoreapimodels.FinalInterviewData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	result, hMsg, err := scorehandler.Instance.FinalizeFinalInterview(spaceID, userID, payload)
	if hMsg != "" || err != nil {
		return c.SendError(ctx, hMsg, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Finalize assessment result
// @Tags Score
// @Description Convert an assessment result to a pass/fail outcome
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		scoreapimodels.ExamResultData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/score/exam [post]
func (c *scoreApiController) finalizeExam(ctx *fiber.Ctx) error {
	var payload scoreapimodels.ExamResultData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	hMsg, err := scorehandler.Instance.FinalizeExamScore(spaceID, payload)
	if hMsg != "" || err != nil {
		return c.SendError(ctx, hMsg, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Stage score list
// @Tags Score
// @Description Rater score rows of the (pipeline, type) pair
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   pipeline_id    		path    string 	true	"pipeline id"
// @Param   type           		path    string 	true	"score type"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/score/{pipeline_id}/{type} [get]
func (c *scoreApiController) list(ctx *fiber.Ctx) error {
	pipelineID, err := c.GetIDByKey(ctx, "pipeline_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	scoreType := models.ScoreType(ctx.Params("type"))
	if !scoreType.IsValid() {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("unknown score type"))
	}
	spaceID := middleware.GetUserSpace(ctx)
	list, err := scorehandler.Instance.ListScores(spaceID, pipelineID, scoreType)
	if err != nil {
		return c.SendError(ctx, "", err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
