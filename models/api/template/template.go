package templateapimodels

import (
	dbmodels "interview-tools-backend/models/db"

	"github.com/pkg/errors"
)

type TemplateView struct {
	ID            string             `json:"id"`             // Идентификатор шаблона
	Name          string             `json:"name"`           // Название шаблона
	Sections      []dbmodels.Section `json:"sections"`       // Секции с вопросами
	QuestionCount int                `json:"question_count"` // Всего вопросов
}

func TemplateToView(rec dbmodels.Template) TemplateView {
	return TemplateView{
		ID:            rec.ID,
		Name:          rec.Name,
		Sections:      rec.Sections,
		QuestionCount: rec.QuestionCount(),
	}
}

type TemplateListItem struct {
	ID            string `json:"id"`             // Идентификатор шаблона
	Name          string `json:"name"`           // Название шаблона
	SectionCount  int    `json:"section_count"`  // Кол-во секций
	QuestionCount int    `json:"question_count"` // Кол-во вопросов
}

type CreateTemplateRequest struct {
	Name string `json:"name"` // Название шаблона
}

func (r CreateTemplateRequest) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название шаблона")
	}
	return nil
}

type CopyTemplateRequest struct {
	NewName string `json:"new_name"` // Название копии
}

func (r CopyTemplateRequest) Validate() error {
	if r.NewName == "" {
		return errors.New("не указано название копии шаблона")
	}
	return nil
}

type SectionRequest struct {
	Name string `json:"name"` // Название секции
}

func (r SectionRequest) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название секции")
	}
	return nil
}

type QuestionRequest struct {
	Section string `json:"section"` // Название секции (при отсутствии секция будет создана)
	Text    string `json:"text"`    // Текст вопроса
	Answer  string `json:"answer"`  // Ожидаемый ответ
}

func (r QuestionRequest) Validate() error {
	if r.Section == "" {
		return errors.New("не указана секция вопроса")
	}
	if r.Text == "" {
		return errors.New("не указан текст вопроса")
	}
	return nil
}

type EditQuestionRequest struct {
	Text   string `json:"text"`   // Новый текст вопроса
	Answer string `json:"answer"` // Новый ожидаемый ответ
}

func (r EditQuestionRequest) Validate() error {
	if r.Text == "" {
		return errors.New("не указан текст вопроса")
	}
	return nil
}

type CopyFromCandidateRequest struct {
	CandidateID string `json:"candidate_id"` // Идентификатор кандидата-источника
	Section     string `json:"section"`      // Название целевой секции
}

func (r CopyFromCandidateRequest) Validate() error {
	if r.CandidateID == "" {
		return errors.New("не указан кандидат")
	}
	if r.Section == "" {
		return errors.New("не указана целевая секция")
	}
	return nil
}
