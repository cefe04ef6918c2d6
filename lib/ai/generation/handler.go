package generationhandler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"interview-tools-backend/config"
	"interview-tools-backend/db"
	generationstore "interview-tools-backend/lib/ai/generation/store"
	ailogstore "interview-tools-backend/lib/ai/log-store"
	yagptclient "interview-tools-backend/lib/gpt/yagpt-client"
	"interview-tools-backend/lib/template/reconcile"
	templatestore "interview-tools-backend/lib/template/store"
	"interview-tools-backend/lib/utils/helpers"
	vacancystore "interview-tools-backend/lib/vacancy/store"
	aiapimodels "interview-tools-backend/models/api/ai"
	dbmodels "interview-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const generationSysPromt = "Ты - опытный технический интервьюер. Отвечай строго одним JSON-объектом без пояснений и markdown-разметки."

type Provider interface {
	Status() (data aiapimodels.StatusResponse)
	ExecutionInfo(id string) (data aiapimodels.GenerationView, err error)
	GenerateTemplate(req aiapimodels.GenerateTemplateRequest) (id string, hMsg string, err error)
	GenerateSection(templateID string, req aiapimodels.GenerateSectionRequest) (id string, hMsg string, err error)
	GenerateQuestions(templateID, sectionID string, req aiapimodels.GenerateQuestionsRequest) (id string, hMsg string, err error)
}

var Instance Provider

func NewHandler(ctx context.Context) {
	Instance = &impl{
		ctx:             ctx,
		generationStore: generationstore.NewInstance(db.DB),
		aiLogStore:      ailogstore.NewInstance(db.DB),
		templateStore:   templatestore.NewInstance(db.DB),
		vacancyStore:    vacancystore.NewInstance(db.DB),
	}
}

type impl struct {
	ctx             context.Context
	aiBusy          atomic.Bool
	lastMu          sync.Mutex
	last            string
	generationStore generationstore.Provider
	aiLogStore      ailogstore.Provider
	templateStore   templatestore.Provider
	vacancyStore    vacancystore.Provider
}

func (i *impl) Status() (data aiapimodels.StatusResponse) {
	i.lastMu.Lock()
	defer i.lastMu.Unlock()
	return aiapimodels.StatusResponse{
		IsFree:             !i.aiBusy.Load(),
		ExecutingRequestID: i.last,
	}
}

func (i *impl) ExecutionInfo(id string) (data aiapimodels.GenerationView, err error) {
	rec, err := i.generationStore.GetByID(id)
	if err != nil {
		return aiapimodels.GenerationView{}, err
	}
	if rec == nil {
		return aiapimodels.GenerationView{}, errors.New("данные не найдены")
	}
	return aiapimodels.GenerationToView(*rec), nil
}

// GenerateTemplate создаёт пустой шаблон и асинхронно наполняет его
// сгенерированными секциями. Если к моменту завершения генерации шаблон
// уже удалён, результат отбрасывается.
func (i *impl) GenerateTemplate(req aiapimodels.GenerateTemplateRequest) (id string, hMsg string, err error) {
	taken, err := i.isTemplateNameTaken(req.Name)
	if err != nil {
		return "", "", err
	}
	if taken {
		return "", "шаблон с таким названием уже существует", nil
	}
	topic, err := i.buildTopic(req)
	if err != nil {
		return "", "", err
	}
	if !i.lockExecution() {
		return "", "сервис уже обрабатывает запрос", nil
	}
	templateID, err := i.templateStore.Create(dbmodels.Template{
		Name:     req.Name,
		Sections: dbmodels.TemplateSections{},
	})
	if err != nil {
		i.unlockExecution()
		log.WithError(err).Error("ошибка создания шаблона")
		return "", "", err
	}
	userPromt := fmt.Sprintf("Составь план интервью по теме: %s. "+
		"Верни JSON вида {\"sections\": [{\"name\": \"название секции\", \"questions\": [{\"text\": \"вопрос\", \"answer\": \"ожидаемый ответ\"}]}]}. "+
		"4-6 секций, в каждой 3-5 вопросов.", topic)
	id, err = i.saveExecution(templateID, "", userPromt, dbmodels.AiTemplateType, false)
	if err != nil {
		i.unlockExecution()
		return "", "", err
	}
	go i.execute(id)
	return id, "", nil
}

// GenerateSection асинхронно дописывает в шаблон одну секцию по теме
func (i *impl) GenerateSection(templateID string, req aiapimodels.GenerateSectionRequest) (id string, hMsg string, err error) {
	rec, err := i.getTemplate(templateID)
	if err != nil {
		return "", "", err
	}
	if rec == nil {
		return "", "не найден шаблон по указанному ID", nil
	}
	userPromt := fmt.Sprintf("Составь секцию вопросов для интервью по теме: %s. "+
		"Верни JSON вида {\"name\": \"название секции\", \"questions\": [{\"text\": \"вопрос\", \"answer\": \"ожидаемый ответ\"}]}. "+
		"5-7 вопросов.", req.Topic)
	if !i.lockExecution() {
		return "", "сервис уже обрабатывает запрос", nil
	}
	id, err = i.saveExecution(templateID, "", userPromt, dbmodels.AiSectionType, false)
	if err != nil {
		i.unlockExecution()
		return "", "", err
	}
	go i.execute(id)
	return id, "", nil
}

// GenerateQuestions асинхронно наполняет секцию пулом вопросов.
// При deleteExisting прежние вопросы секции заменяются целиком.
func (i *impl) GenerateQuestions(templateID, sectionID string, req aiapimodels.GenerateQuestionsRequest) (id string, hMsg string, err error) {
	rec, err := i.getTemplate(templateID)
	if err != nil {
		return "", "", err
	}
	if rec == nil {
		return "", "не найден шаблон по указанному ID", nil
	}
	if !hasSection(*rec, sectionID) {
		return "", "не найдена секция по указанному ID", nil
	}
	count := req.Count
	if count <= 0 {
		count = 5
	}
	userPromt := fmt.Sprintf("Составь %d вопросов для интервью по теме: %s. "+
		"Верни JSON вида {\"questions\": [{\"text\": \"вопрос\", \"answer\": \"ожидаемый ответ\"}]}.", count, req.Topic)
	if !i.lockExecution() {
		return "", "сервис уже обрабатывает запрос", nil
	}
	id, err = i.saveExecution(templateID, sectionID, userPromt, dbmodels.AiQuestionsType, req.DeleteExisting)
	if err != nil {
		i.unlockExecution()
		return "", "", err
	}
	go i.execute(id)
	return id, "", nil
}

// запрос к модели и применение результата
func (i *impl) execute(id string) {
	defer i.unlockExecution()
	rec, err := i.generationStore.GetByID(id)
	if err != nil || rec == nil {
		log.WithField("id", id).WithError(err).Error("ошибка получения запроса генерации")
		return
	}
	logger := log.WithField("id", id)

	now := time.Now()
	answer, err := yagptclient.
		NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID).
		GenerateByPromtAndText(rec.SysPromt, rec.UserPromt)
	if err != nil {
		logger.WithError(err).Error("ошибка выполнения запроса генерации к ИИ")
		i.updateExecutionData(id, "", err.Error(), dbmodels.GenerationError)
		return
	}
	logger.
		WithField("answer_duration_sec", time.Since(now).Seconds()).
		Info("получен ответ ИИ на запрос генерации")

	_, logErr := i.aiLogStore.Save(dbmodels.AiLog{
		SysPromt:   rec.SysPromt,
		UserPromt:  rec.UserPromt,
		Answer:     answer,
		TemplateID: rec.TemplateID,
		ReqestType: rec.ReqestType,
		AiName:     dbmodels.AiYaGptType,
	})
	if logErr != nil {
		logger.WithError(logErr).Error("ошибка сохранения лога запроса к ИИ")
	}
	if helpers.IsContextDone(i.ctx) {
		logger.Warn("сервис останавливается, результат генерации отброшен")
		i.updateExecutionData(id, answer, "сервис остановлен", dbmodels.GenerationDropped)
		return
	}
	if err = i.applyAnswer(*rec, answer); err != nil {
		status := dbmodels.GenerationError
		if errors.Is(err, errTargetGone) {
			status = dbmodels.GenerationDropped
		}
		logger.WithError(err).Error("ошибка применения результата генерации")
		i.updateExecutionData(id, answer, err.Error(), status)
		return
	}
	i.updateExecutionData(id, answer, "", dbmodels.GenerationApplied)
}

// цель генерации удалена до завершения запроса
var errTargetGone = errors.New("целевой шаблон или секция уже удалены")

// applyAnswer разбирает ответ и вливает его в шаблон. Существование цели
// проверяется заново: пока генерация выполнялась, шаблон или секцию могли
// удалить. Вставка атомарна - некорректный ответ отклоняется целиком.
func (i *impl) applyAnswer(rec dbmodels.Generation, answer string) error {
	template, err := i.getTemplate(rec.TemplateID)
	if err != nil {
		return err
	}
	if template == nil {
		return errTargetGone
	}
	var next dbmodels.Template
	switch rec.ReqestType {
	case dbmodels.AiTemplateType:
		drafts, err := parseTemplatePayload(answer)
		if err != nil {
			return err
		}
		next = reconcile.BulkInsertSections(*template, drafts)
	case dbmodels.AiSectionType:
		draft, err := parseSectionPayload(answer)
		if err != nil {
			return err
		}
		if reconcile.HasSectionName(*template, draft.Name) {
			return errors.Errorf("секция с таким названием уже существует: %s", draft.Name)
		}
		next = reconcile.BulkInsertSections(*template, []reconcile.SectionDraft{draft})
	case dbmodels.AiQuestionsType:
		drafts, err := parseQuestionsPayload(answer)
		if err != nil {
			return err
		}
		if !hasSection(*template, rec.SectionID) {
			return errTargetGone
		}
		next, err = reconcile.BulkInsertQuestions(*template, rec.SectionID, drafts, rec.DeleteExisting)
		if err != nil {
			return err
		}
	default:
		return errors.Errorf("неизвестный тип запроса генерации: %s", rec.ReqestType)
	}
	return i.templateStore.Save(next)
}

func (i *impl) lockExecution() bool {
	return i.aiBusy.CompareAndSwap(false, true)
}

func (i *impl) saveExecution(templateID, sectionID, userPromt string, rType dbmodels.AiReqestType, deleteExisting bool) (id string, err error) {
	id, err = i.generationStore.Save(dbmodels.Generation{
		TemplateID:     templateID,
		SectionID:      sectionID,
		SysPromt:       generationSysPromt,
		UserPromt:      userPromt,
		ReqestType:     rType,
		Status:         dbmodels.GenerationSent,
		DeleteExisting: deleteExisting,
	})
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения запроса генерации")
	}
	i.lastMu.Lock()
	i.last = id
	i.lastMu.Unlock()
	return id, nil
}

func (i *impl) unlockExecution() {
	i.lastMu.Lock()
	i.last = ""
	i.lastMu.Unlock()
	i.aiBusy.Store(false)
}

func (i *impl) updateExecutionData(id, answer, failReason string, status dbmodels.GenerationStatus) {
	updMap := map[string]any{
		"answer":      answer,
		"fail_reason": failReason,
		"status":      status,
	}
	if err := i.generationStore.Update(id, updMap); err != nil {
		log.WithField("id", id).WithError(err).Error("ошибка обновления запроса генерации")
	}
}

func (i *impl) getTemplate(id string) (*dbmodels.Template, error) {
	rec, err := i.templateStore.GetByID(id)
	if err != nil {
		log.
			WithField("template_id", id).
			WithError(err).
			Error("ошибка поиска шаблона по ID")
		return nil, err
	}
	return rec, nil
}

func (i *impl) isTemplateNameTaken(name string) (bool, error) {
	recList, err := i.templateStore.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка шаблонов")
		return false, err
	}
	for _, rec := range recList {
		if reconcile.SameName(rec.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

// buildTopic собирает вводные для генерации: тема из запроса и,
// если указана вакансия, её описание и навыки
func (i *impl) buildTopic(req aiapimodels.GenerateTemplateRequest) (string, error) {
	parts := make([]string, 0, 3)
	if req.Topic != "" {
		parts = append(parts, req.Topic)
	}
	if req.VacancyID != "" {
		vacancy, err := i.vacancyStore.GetByID(req.VacancyID)
		if err != nil {
			log.
				WithField("vacancy_id", req.VacancyID).
				WithError(err).
				Error("ошибка поиска вакансии по ID")
			return "", err
		}
		if vacancy == nil {
			return "", errors.New("не найдена вакансия по указанному ID")
		}
		parts = append(parts, fmt.Sprintf("вакансия %s (%s)", vacancy.VacancyName, vacancy.JobTitleName))
		if len(vacancy.Skills) != 0 {
			parts = append(parts, fmt.Sprintf("навыки: %s", strings.Join(vacancy.Skills, ", ")))
		}
	}
	return strings.Join(parts, "; "), nil
}

func hasSection(template dbmodels.Template, sectionID string) bool {
	for _, section := range template.Sections {
		if section.ID == sectionID {
			return true
		}
	}
	return false
}
