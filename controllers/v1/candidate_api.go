package apiv1

import (
	"io"

	"interview-tools-backend/controllers"
	candidatehandler "interview-tools-backend/lib/candidate"
	"interview-tools-backend/lib/utils/helpers"
	apimodels "interview-tools-backend/models/api"
	candidateapimodels "interview-tools-backend/models/api/candidate"

	"github.com/gofiber/fiber/v2"
)

type candidateController struct {
	controllers.BaseAPIController
}

func InitCandidateRouters(app *fiber.App) {
	controller := candidateController{}
	app.Route("candidate", func(candidateRoute fiber.Router) {
		candidateRoute.Post("list", controller.List)
		candidateRoute.Post("export-xls", controller.ExportXls)
		candidateRoute.Post("", controller.Create)
		candidateRoute.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.GetByID)
			idRoute.Put("", controller.Update)
			idRoute.Delete("", controller.Delete)
			idRoute.Post("assign-template", controller.AssignTemplate)
			idRoute.Post("answer", controller.MarkAnswer)
			idRoute.Post("invite", controller.SendInvite)
			idRoute.Get("interview-sheet", controller.InterviewSheet)
			idRoute.Post("upload-resume", controller.UploadResume)
			idRoute.Get("resume", controller.GetResume)
		})
	})
}

// @Summary Список кандидатов
// @Tags Кандидаты
// @Param   body	body	candidateapimodels.CandidateFilter	true	"Фильтр"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/list [post]
func (c *candidateController) List(ctx *fiber.Ctx) error {
	payload := candidateapimodels.CandidateFilter{}
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := candidatehandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка кандидатов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Кандидат
// @Tags Кандидаты
// @Param   id		path	string	true	"ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id} [get]
func (c *candidateController) GetByID(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := candidatehandler.Instance.GetByID(recID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Создание кандидата
// @Tags Кандидаты
// @Param   body	body	candidateapimodels.CandidateData	true	"Данные кандидата"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate [post]
func (c *candidateController) Create(ctx *fiber.Ctx) error {
	payload := candidateapimodels.CandidateData{}
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := candidatehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Изменение кандидата
// @Tags Кандидаты
// @Param   id		path	string	true	"ID"
// @Param   body	body	candidateapimodels.CandidateData	true	"Данные кандидата"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id} [put]
func (c *candidateController) Update(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload := candidateapimodels.CandidateData{}
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = candidatehandler.Instance.Update(recID, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения кандидата")
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Удаление кандидата
// @Tags Кандидаты
// @Param   id		path	string	true	"ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id} [delete]
func (c *candidateController) Delete(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = candidatehandler.Instance.Delete(recID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления кандидата")
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Назначение шаблона интервью кандидату
// @Tags Кандидаты
// @Description Кандидат получает собственную копию вопросов шаблона; дальнейшие правки шаблона на неё не влияют
// @Param   id		path	string	true	"ID"
// @Param   body	body	candidateapimodels.AssignTemplateRequest	true	"Шаблон-источник"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/assign-template [post]
func (c *candidateController) AssignTemplate(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload := candidateapimodels.AssignTemplateRequest{}
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := candidatehandler.Instance.AssignTemplate(recID, payload.TemplateID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка назначения шаблона кандидату")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Отметка ответа на вопрос интервью
// @Tags Кандидаты
// @Param   id		path	string	true	"ID"
// @Param   body	body	candidateapimodels.AnswerRequest	true	"Отметка"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/answer [post]
func (c *candidateController) MarkAnswer(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload := candidateapimodels.AnswerRequest{}
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = candidatehandler.Instance.MarkAnswer(recID, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки ответа")
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Отправка приглашения на интервью
// @Tags Кандидаты
// @Param   id		path	string	true	"ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/invite [post]
func (c *candidateController) SendInvite(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := candidatehandler.Instance.SendInvite(recID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки приглашения")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Печатный лист интервью
// @Tags Кандидаты
// @Param   id		path	string	true	"ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/interview-sheet [get]
func (c *candidateController) InterviewSheet(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, body, err := candidatehandler.Instance.InterviewSheet(recID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования листа интервью")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Выгрузка кандидатов в Excel
// @Tags Кандидаты
// @Param   body	body	candidateapimodels.CandidateFilter	true	"Фильтр"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/export-xls [post]
func (c *candidateController) ExportXls(ctx *fiber.Ctx) error {
	payload := candidateapimodels.CandidateFilter{}
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, err := candidatehandler.Instance.ExportXls(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки кандидатов в Excel")
	}
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="candidates.xlsx"`)
	return ctx.SendStream(body)
}

// @Summary Загрузка резюме кандидата
// @Tags Кандидаты
// @Param   id		path		string	true	"ID"
// @Param   file	formData	file	true	"Файл резюме"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/upload-resume [post]
func (c *candidateController) UploadResume(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при получении файла резюме")
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка чтения файла резюме")
	}
	contentType := file.Header.Get(fiber.HeaderContentType)
	if err = candidatehandler.Instance.UploadResume(ctx.UserContext(), recID, file.Filename, contentType, fileBody); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки резюме")
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Резюме кандидата
// @Tags Кандидаты
// @Param   id		path	string	true	"ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/resume [get]
func (c *candidateController) GetResume(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, body, err := candidatehandler.Instance.GetResume(ctx.UserContext(), recID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения резюме")
	}
	ctx.Set(helpers.HeaderLogIgnore, "true")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(body)
}
