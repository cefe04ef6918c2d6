package apiv1

import (
	"interview-tools-backend/controllers"
	vacancyhandler "interview-tools-backend/lib/vacancy"
	apimodels "interview-tools-backend/models/api"
	vacancyapimodels "interview-tools-backend/models/api/vacancy"

	"github.com/gofiber/fiber/v2"
)

type vacancyController struct {
	controllers.BaseAPIController
}

func InitVacancyRouters(app *fiber.App) {
	controller := vacancyController{}
	app.Route("vacancy", func(vacancyRoute fiber.Router) {
		vacancyRoute.Get("list", controller.List)
		vacancyRoute.Post("", controller.Create)
		vacancyRoute.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.GetByID)
			idRoute.Put("", controller.Update)
			idRoute.Delete("", controller.Delete)
			idRoute.Post("generate-description", controller.GenerateDescription)
		})
	})
}

// @Summary Список вакансий
// @Tags Вакансии
// @Success 200 {object} apimodels.Response{data=[]vacancyapimodels.VacancyView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/list [get]
func (c *vacancyController) List(ctx *fiber.Ctx) error {
	list, err := vacancyhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Вакансия
// @Tags Вакансии
// @Param   id		path	string	true	"ID"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.VacancyView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id} [get]
func (c *vacancyController) GetByID(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := vacancyhandler.Instance.GetByID(recID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Создание вакансии
// @Tags Вакансии
// @Param   body	body	vacancyapimodels.VacancyData	true	"Данные вакансии"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy [post]
func (c *vacancyController) Create(ctx *fiber.Ctx) error {
	payload := vacancyapimodels.VacancyData{}
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := vacancyhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Изменение вакансии
// @Tags Вакансии
// @Param   id		path	string	true	"ID"
// @Param   body	body	vacancyapimodels.VacancyData	true	"Данные вакансии"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id} [put]
func (c *vacancyController) Update(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload := vacancyapimodels.VacancyData{}
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = vacancyhandler.Instance.Update(recID, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения вакансии")
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Удаление вакансии
// @Tags Вакансии
// @Param   id		path	string	true	"ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id} [delete]
func (c *vacancyController) Delete(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = vacancyhandler.Instance.Delete(recID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления вакансии")
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Генерация описания вакансии через ИИ
// @Tags Вакансии
// @Param   id		path	string	true	"ID"
// @Param   body	body	vacancyapimodels.GenDescriptionRequest	true	"Вводные данные"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.GenDescriptionResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id}/generate-description [post]
func (c *vacancyController) GenerateDescription(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload := vacancyapimodels.GenDescriptionRequest{}
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := vacancyhandler.Instance.GenerateDescription(recID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка генерации описания вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
