package aiapimodels

import (
	dbmodels "interview-tools-backend/models/db"

	"github.com/pkg/errors"
)

// Ожидаемые структуры ответа ИИ.
// Ответ модели не обязан быть чистым JSON: перед разбором из текста
// вырезается подстрока от первой '{' до последней '}'.

// Генерация шаблона целиком
type TemplatePayload struct {
	Sections []SectionPayload `json:"sections"`
}

// Генерация одной секции
type SectionPayload struct {
	Name      string            `json:"name"`
	Questions []QuestionPayload `json:"questions"`
}

// Генерация пула вопросов
type QuestionsPayload struct {
	Questions []QuestionPayload `json:"questions"`
}

type QuestionPayload struct {
	Text   string `json:"text"`
	Answer string `json:"answer"`
}

type GenerateTemplateRequest struct {
	Name      string `json:"name"`       // Название нового шаблона
	VacancyID string `json:"vacancy_id"` // Вакансия-источник вводных (опционально)
	Topic     string `json:"topic"`      // Тема интервью
}

func (r GenerateTemplateRequest) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название шаблона")
	}
	if r.Topic == "" && r.VacancyID == "" {
		return errors.New("не указана тема генерации или вакансия")
	}
	return nil
}

type GenerateSectionRequest struct {
	Topic string `json:"topic"` // Тема секции
}

func (r GenerateSectionRequest) Validate() error {
	if r.Topic == "" {
		return errors.New("не указана тема секции")
	}
	return nil
}

type GenerateQuestionsRequest struct {
	Topic          string `json:"topic"`           // Тема вопросов
	Count          int    `json:"count"`           // Желаемое кол-во вопросов
	DeleteExisting bool   `json:"delete_existing"` // Заменить существующие вопросы секции
}

func (r GenerateQuestionsRequest) Validate() error {
	if r.Topic == "" {
		return errors.New("не указана тема вопросов")
	}
	return nil
}

type GenerationView struct {
	ID         string                    `json:"id"`                    // Идентификатор генерации
	TemplateID string                    `json:"template_id"`           // Целевой шаблон
	SectionID  string                    `json:"section_id,omitempty"`  // Целевая секция
	ReqestType dbmodels.AiReqestType     `json:"request_type"`          // Тип запроса
	Status     dbmodels.GenerationStatus `json:"status"`                // Статус
	FailReason string                    `json:"fail_reason,omitempty"` // Причина ошибки
	Answer     string                    `json:"answer,omitempty"`      // Сырой ответ ИИ
}

func GenerationToView(rec dbmodels.Generation) GenerationView {
	return GenerationView{
		ID:         rec.ID,
		TemplateID: rec.TemplateID,
		SectionID:  rec.SectionID,
		ReqestType: rec.ReqestType,
		Status:     rec.Status,
		FailReason: rec.FailReason,
		Answer:     rec.Answer,
	}
}

type StatusResponse struct {
	IsFree             bool   `json:"is_free"`                        // ИИ свободен
	ExecutingRequestID string `json:"executing_request_id,omitempty"` // Идентификатор выполняемого запроса
}
