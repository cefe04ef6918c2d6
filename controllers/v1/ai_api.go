package apiv1

import (
	"interview-tools-backend/controllers"
	generationhandler "interview-tools-backend/lib/ai/generation"
	"interview-tools-backend/lib/utils/helpers"
	apimodels "interview-tools-backend/models/api"
	aiapimodels "interview-tools-backend/models/api/ai"

	"github.com/gofiber/fiber/v2"
)

type aiController struct {
	controllers.BaseAPIController
}

func InitAIRouters(app *fiber.App) {
	controller := aiController{}
	app.Route("ai", func(aiRoute fiber.Router) {
		aiRoute.Get("status", controller.GetStatus)
		aiRoute.Get(":id/result", controller.GetResult)
		aiRoute.Post("template", controller.GenerateTemplate)
		aiRoute.Post("template/:id/section", controller.GenerateSection)
		aiRoute.Post("template/:id/section/:section_id/questions", controller.GenerateQuestions)
	})
}

// @Summary Проверка наличия выполняемых запросов генерации
// @Tags ИИ
// @Success 200 {object} apimodels.Response{data=aiapimodels.StatusResponse}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ai/status [get]
func (c *aiController) GetStatus(ctx *fiber.Ctx) error {
	ctx.Set(helpers.HeaderLogIgnore, "true")
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(generationhandler.Instance.Status()))
}

// @Summary Результат запроса генерации
// @Tags ИИ
// @Param   id		path	string	true	"ID"
// @Success 200 {object} apimodels.Response{data=aiapimodels.GenerationView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ai/{id}/result [get]
func (c *aiController) GetResult(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := generationhandler.Instance.ExecutionInfo(recID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, err.Error())
	}
	ctx.Set(helpers.HeaderLogIgnore, "true")
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Генерация шаблона интервью через ИИ
// @Tags ИИ
// @Description Создаётся пустой шаблон, секции дописываются после завершения генерации
// @Param   body	body	aiapimodels.GenerateTemplateRequest	true	"Параметры генерации"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ai/template [post]
func (c *aiController) GenerateTemplate(ctx *fiber.Ctx) error {
	payload := aiapimodels.GenerateTemplateRequest{}
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := generationhandler.Instance.GenerateTemplate(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка запуска генерации шаблона")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Генерация секции шаблона через ИИ
// @Tags ИИ
// @Param   id		path	string	true	"ID шаблона"
// @Param   body	body	aiapimodels.GenerateSectionRequest	true	"Параметры генерации"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ai/template/{id}/section [post]
func (c *aiController) GenerateSection(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload := aiapimodels.GenerateSectionRequest{}
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := generationhandler.Instance.GenerateSection(recID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка запуска генерации секции")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Генерация пула вопросов секции через ИИ
// @Tags ИИ
// @Description Вставка атомарна: либо применяются все вопросы, либо ни одного
// @Param   id				path	string	true	"ID шаблона"
// @Param   section_id		path	string	true	"ID секции"
// @Param   body	body	aiapimodels.GenerateQuestionsRequest	true	"Параметры генерации"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ai/template/{id}/section/{section_id}/questions [post]
func (c *aiController) GenerateQuestions(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	sectionID := ctx.Params("section_id")
	if sectionID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор секции"))
	}
	payload := aiapimodels.GenerateQuestionsRequest{}
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := generationhandler.Instance.GenerateQuestions(recID, sectionID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка запуска генерации вопросов")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}
