package apiv1

import (
	"io"

	"interview-tools-backend/controllers"
	templatehandler "interview-tools-backend/lib/template"
	apimodels "interview-tools-backend/models/api"
	templateapimodels "interview-tools-backend/models/api/template"

	"github.com/gofiber/fiber/v2"
)

type templateController struct {
	controllers.BaseAPIController
}

func InitTemplateRouters(app *fiber.App) {
	controller := templateController{}
	app.Route("template", func(templateRoute fiber.Router) {
		templateRoute.Get("list", controller.List)
		templateRoute.Post("", controller.Create)
		templateRoute.Post("import", controller.Import)
		templateRoute.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.GetByID)
			idRoute.Put("", controller.Rename)
			idRoute.Delete("", controller.Delete)
			idRoute.Post("copy", controller.Copy)
			idRoute.Post("copy-from-candidate", controller.CopyFromCandidate)
			idRoute.Get("export", controller.Export)
			idRoute.Get("export-xls", controller.ExportXls)
			idRoute.Post("section", controller.AddSection)
			idRoute.Route("section/:section_id", func(sectionRoute fiber.Router) {
				sectionRoute.Put("", controller.RenameSection)
				sectionRoute.Delete("", controller.DeleteSection)
				sectionRoute.Put("question/:question_id", controller.EditQuestion)
				sectionRoute.Delete("question/:question_id", controller.DeleteQuestion)
			})
			idRoute.Post("question", controller.AddQuestion)
		})
	})
}

// @Summary Список шаблонов интервью
// @Tags Шаблоны
// @Success 200 {object} apimodels.Response{data=[]templateapimodels.TemplateListItem}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/template/list [get]
func (c *templateController) List(ctx *fiber.Ctx) error {
	list, err := templatehandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка шаблонов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Шаблон интервью
// @Tags Шаблоны
// @Param   id		path	string	true	"ID"
// @Success 200 {object} apimodels.Response{data=templateapimodels.TemplateView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/template/{id} [get]
func (c *templateController) GetByID(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := templatehandler.Instance.GetByID(recID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения шаблона")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Создание шаблона интервью
// @Tags Шаблоны
// @Param   body	body	templateapimodels.CreateTemplateRequest	true	"Данные шаблона"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/template [post]
func (c *templateController) Create(ctx *fiber.Ctx) error {
	payload := templateapimodels.CreateTemplateRequest{}
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := templatehandler.Instance.Create(payload.Name)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания шаблона")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Переименование шаблона интервью
// @Tags Шаблоны
// @Param   id		path	string	true	"ID"
// @Param   body	body	templateapimodels.CreateTemplateRequest	true	"Новое название"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/template/{id} [put]
func (c *templateController) Rename(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload := templateapimodels.CreateTemplateRequest{}
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := templatehandler.Instance.Rename(recID, payload.Name)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка переименования шаблона")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Удаление шаблона интервью
// @Tags Шаблоны
// @Param   id		path	string	true	"ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/template/{id} [delete]
func (c *templateController) Delete(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = templatehandler.Instance.Delete(recID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления шаблона")
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Копирование шаблона интервью
// @Tags Шаблоны
// @Description Глубокая копия: содержимое сохраняется, все идентификаторы выдаются заново
// @Param   id		path	string	true	"ID"
// @Param   body	body	templateapimodels.CopyTemplateRequest	true	"Название копии"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/template/{id}/copy [post]
func (c *templateController) Copy(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload := templateapimodels.CopyTemplateRequest{}
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	newID, hMsg, err := templatehandler.Instance.Copy(recID, payload.NewName)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка копирования шаблона")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(newID))
}

// @Summary Перенос вопросов кандидата в шаблон
// @Tags Шаблоны
// @Description Вопросы кандидата копируются в указанную секцию, отметки интервью отбрасываются
// @Param   id		path	string	true	"ID"
// @Param   body	body	templateapimodels.CopyFromCandidateRequest	true	"Кандидат и целевая секция"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/template/{id}/copy-from-candidate [post]
func (c *templateController) CopyFromCandidate(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload := templateapimodels.CopyFromCandidateRequest{}
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := templatehandler.Instance.CopyFromCandidate(recID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка переноса вопросов кандидата в шаблон")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Экспорт шаблона в JSON
// @Tags Шаблоны
// @Param   id		path	string	true	"ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/template/{id}/export [get]
func (c *templateController) Export(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, body, err := templatehandler.Instance.Export(recID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка экспорта шаблона")
	}
	ctx.Set(fiber.HeaderContentType, "application/json")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Выгрузка шаблона в Excel
// @Tags Шаблоны
// @Param   id		path	string	true	"ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/template/{id}/export-xls [get]
func (c *templateController) ExportXls(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, body, err := templatehandler.Instance.ExportXls(recID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки шаблона в Excel")
	}
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(body)
}

// @Summary Импорт шаблона из JSON
// @Tags Шаблоны
// @Description Импортированный шаблон получает новые идентификаторы; при совпадении названия добавляется суффикс
// @Param   file	formData	file	true	"Файл шаблона"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/template/import [post]
func (c *templateController) Import(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при получении файла шаблона")
	}
	defer buffer.Close()
	raw, err := io.ReadAll(buffer)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка чтения файла шаблона")
	}
	id, hMsg, err := templatehandler.Instance.Import(raw)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка импорта шаблона")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Добавление секции
// @Tags Шаблоны
// @Param   id		path	string	true	"ID"
// @Param   body	body	templateapimodels.SectionRequest	true	"Данные секции"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/template/{id}/section [post]
func (c *templateController) AddSection(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload := templateapimodels.SectionRequest{}
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := templatehandler.Instance.AddSection(recID, payload.Name)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления секции")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Переименование секции
// @Tags Шаблоны
// @Description Денормализованное поле section у вопросов переписывается новым названием
// @Param   id				path	string	true	"ID"
// @Param   section_id		path	string	true	"ID секции"
// @Param   body	body	templateapimodels.SectionRequest	true	"Новое название"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/template/{id}/section/{section_id} [put]
func (c *templateController) RenameSection(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	sectionID := ctx.Params("section_id")
	if sectionID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор секции"))
	}
	payload := templateapimodels.SectionRequest{}
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := templatehandler.Instance.RenameSection(recID, sectionID, payload.Name)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка переименования секции")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Удаление секции
// @Tags Шаблоны
// @Param   id				path	string	true	"ID"
// @Param   section_id		path	string	true	"ID секции"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/template/{id}/section/{section_id} [delete]
func (c *templateController) DeleteSection(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	sectionID := ctx.Params("section_id")
	if sectionID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор секции"))
	}
	if err = templatehandler.Instance.DeleteSection(recID, sectionID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления секции")
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Добавление вопроса
// @Tags Шаблоны
// @Description Секция ищется по названию; при отсутствии создаётся
// @Param   id		path	string	true	"ID"
// @Param   body	body	templateapimodels.QuestionRequest	true	"Данные вопроса"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/template/{id}/question [post]
func (c *templateController) AddQuestion(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload := templateapimodels.QuestionRequest{}
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = templatehandler.Instance.AddQuestion(recID, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления вопроса")
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Изменение вопроса
// @Tags Шаблоны
// @Param   id				path	string	true	"ID"
// @Param   section_id		path	string	true	"ID секции"
// @Param   question_id		path	string	true	"ID вопроса"
// @Param   body	body	templateapimodels.EditQuestionRequest	true	"Новые данные вопроса"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/template/{id}/section/{section_id}/question/{question_id} [put]
func (c *templateController) EditQuestion(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	sectionID := ctx.Params("section_id")
	questionID := ctx.Params("question_id")
	if sectionID == "" || questionID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор секции или вопроса"))
	}
	payload := templateapimodels.EditQuestionRequest{}
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = templatehandler.Instance.EditQuestion(recID, sectionID, questionID, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения вопроса")
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Удаление вопроса
// @Tags Шаблоны
// @Param   id				path	string	true	"ID"
// @Param   section_id		path	string	true	"ID секции"
// @Param   question_id		path	string	true	"ID вопроса"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/template/{id}/section/{section_id}/question/{question_id} [delete]
func (c *templateController) DeleteQuestion(ctx *fiber.Ctx) error {
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	sectionID := ctx.Params("section_id")
	questionID := ctx.Params("question_id")
	if sectionID == "" || questionID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор секции или вопроса"))
	}
	if err = templatehandler.Instance.DeleteQuestion(recID, sectionID, questionID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления вопроса")
	}
	return ctx.SendStatus(fiber.StatusOK)
}
