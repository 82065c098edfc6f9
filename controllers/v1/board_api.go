package apiv1

import (
	"recruitment-backend/controllers"
	boardhandler "recruitment-backend/lib/board"
	"recruitment-backend/middleware"
	apimodels "recruitment-backend/models/api"
	boardapimodels "recruitment-backend/models/api/board"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type boardApiController struct {
	controllers.BaseAPIController
}

func InitBoardApiRouters(app *fiber.App) {
	controller := boardApiController{}
	app.Route("board", func(router fiber.Router) {
		router.Get("", controller.get)
	})
}

// @Summary Recruitment board
// @Tags Board
// @Description Stage-column board view; refresh=true forces a rebuild
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   refresh 			query		bool	false	"force rebuild"
// @Param   position			query		string	false	"position filter"
// @Param   date_assessment		query		string	false	"schedule date filter YYYY-MM-DD"
// @Param   status				query		string	false	"note filter"
// @Param   search				query		string	false	"name or address search"
// @Param   page				query		int		false	"column page"
// @Success 200 {object} apimodels.Response{data=boardapimodels.BoardView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/board [get]
func (c *boardApiController) get(ctx *fiber.Ctx) error {
	var filter boardapimodels.BoardFilter
	if err := ctx.QueryParser(&filter); err != nil {
		c.GetLogger(ctx).WithError(err).Error("board filter parse error")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(errors.New("cant read request data").Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	view, err := boardhandler.Instance.GetBoard(ctx.UserContext(), spaceID, filter)
	if err != nil {
		return c.SendError(ctx, "", err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
