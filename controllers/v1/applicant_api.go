package apiv1

import (
	"recruitment-backend/controllers"
	applicanthandler "recruitment-backend/lib/applicant"
	pipelinehandler "recruitment-backend/lib/pipeline"
	"recruitment-backend/middleware"
	apimodels "recruitment-backend/models/api"
	applicantapimodels "recruitment-backend/models/api/applicant"
	dbmodels "recruitment-backend/models/db"

	"github.com/gofiber/fiber/v2"
)

type applicantApiController struct {
	controllers.BaseAPIController
}

func InitApplicantApiRouters(app *fiber.App) {
	controller := applicantApiController{}
	app.Route("applicant", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.remove)
			idRouter.Put("note", controller.addNote)
			idRouter.Get("note/list", controller.listNotes)
			idRouter.Get("dashboard", controller.dashboard)
		})
	})
}

// @Summary Register applicant
// @Tags Applicant
// @Description Register applicant and open the hiring pipeline
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		dbmodels.ApplicantData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant [post]
func (c *applicantApiController) create(ctx *fiber.Ctx) error {
	var payload dbmodels.ApplicantData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	id, hMsg, err := applicanthandler.Instance.Create(spaceID, payload)
	if hMsg != "" || err != nil {
		return c.SendError(ctx, hMsg, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Applicant list
// @Tags Applicant
// @Description Applicant list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		dbmodels.ApplicantFilter	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/list [post]
func (c *applicantApiController) list(ctx *fiber.Ctx) error {
	var payload dbmodels.ApplicantFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	list, err := applicanthandler.Instance.List(spaceID, payload)
	if err != nil {
		return c.SendError(ctx, "", err)
	}
	views := make([]applicantapimodels.ApplicantView, 0, len(list))
	for _, rec := range list {
		views = append(views, applicantapimodels.ApplicantConvert(rec))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(views))
}

// @Summary Applicant card
// @Tags Applicant
// @Description Applicant card with pipeline and notes
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"applicant id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id} [get]
func (c *applicantApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	rec, err := applicanthandler.Instance.Get(spaceID, id)
	if err != nil {
		return c.SendError(ctx, "", err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Update applicant
// @Tags Applicant
// @Description Update applicant profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"applicant id"
// @Param	body				body	dbmodels.ApplicantData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id} [put]
func (c *applicantApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dbmodels.ApplicantData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	hMsg, err := applicanthandler.Instance.Update(spaceID, id, payload)
	if hMsg != "" || err != nil {
		return c.SendError(ctx, hMsg, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Remove applicant
// @Tags Applicant
// @Description Remove applicant and close the pipeline
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"applicant id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id} [delete]
func (c *applicantApiController) remove(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	if err := applicanthandler.Instance.Remove(spaceID, id); err != nil {
		return c.SendError(ctx, "", err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Add recruitment note
// @Tags Applicant
// @Description Add a free-text note to the applicant card
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"applicant id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id}/note [put]
func (c *applicantApiController) addNote(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicantapimodels.NoteData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	hMsg, err := applicanthandler.Instance.AddNote(spaceID, id, userID, payload.Text)
	if hMsg != "" || err != nil {
		return c.SendError(ctx, hMsg, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Recruitment note list
// @Tags Applicant
// @Description Recruitment note list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"applicant id"
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id}/note/list [get]
func (c *applicantApiController) listNotes(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	list, err := applicanthandler.Instance.ListNotes(spaceID, id)
	if err != nil {
		return c.SendError(ctx, "", err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Applicant progress dashboard
// @Tags Applicant
// @Description Stage progress strip shown to the applicant
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"applicant id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id}/dashboard [get]
func (c *applicantApiController) dashboard(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	steps, err := pipelinehandler.Instance.DashboardSteps(spaceID, id)
	if err != nil {
		return c.SendError(ctx, "", err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(steps))
}
