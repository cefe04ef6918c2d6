package candidateapimodels

import (
	"time"

	apimodels "interview-tools-backend/models/api"
	dbmodels "interview-tools-backend/models/db"

	"github.com/pkg/errors"
)

type CandidateView struct {
	CandidateData
	ID            string              `json:"id"`             // Идентификатор кандидата
	FIO           string              `json:"fio"`            // ФИО кандидата
	VacancyName   string              `json:"vacancy_name"`   // Название вакансии
	Questions     []dbmodels.Question `json:"questions"`      // Вопросы интервью
	AnsweredCount int                 `json:"answered_count"` // Задано вопросов
	CorrectCount  int                 `json:"correct_count"`  // Верных ответов
}

func CandidateToView(rec dbmodels.Candidate) CandidateView {
	answered, correct := rec.AnsweredCount()
	view := CandidateView{
		CandidateData: CandidateData{
			VacancyID:  rec.VacancyID,
			FirstName:  rec.FirstName,
			LastName:   rec.LastName,
			MiddleName: rec.MiddleName,
			Phone:      rec.Phone,
			Email:      rec.Email,
			Comment:    rec.Comment,
		},
		ID:            rec.ID,
		FIO:           rec.GetFIO(),
		Questions:     rec.Questions,
		AnsweredCount: answered,
		CorrectCount:  correct,
	}
	if !rec.InterviewDate.IsZero() {
		view.InterviewDate = rec.InterviewDate.Format("02.01.2006 15:04")
	}
	if rec.Vacancy != nil {
		view.VacancyName = rec.Vacancy.VacancyName
	}
	return view
}

type CandidateData struct {
	VacancyID     string `json:"vacancy_id"`     // Идентификатор вакансии
	FirstName     string `json:"first_name"`     // Имя
	LastName      string `json:"last_name"`      // Фамилия
	MiddleName    string `json:"middle_name"`    // Отчество
	Phone         string `json:"phone"`          // Телефон
	Email         string `json:"email"`          // Емайл
	InterviewDate string `json:"interview_date"` // Дата интервью ДД.ММ.ГГГГ ЧЧ:ММ
	Comment       string `json:"comment"`        // Комментарий
}

func (r CandidateData) Validate() error {
	if r.FirstName == "" && r.LastName == "" {
		return errors.New("не указано имя кандидата")
	}
	if _, err := r.GetInterviewDate(); err != nil {
		return errors.New("некоректный формат даты интервью")
	}
	return nil
}

func (r CandidateData) GetInterviewDate() (time.Time, error) {
	if r.InterviewDate == "" {
		return time.Time{}, nil
	}
	return time.Parse("02.01.2006 15:04", r.InterviewDate)
}

type CandidateFilter struct {
	VacancyID string `json:"vacancy_id"` // Идентификатор вакансии
	Search    string `json:"search"`     // Поиск по ФИО
	apimodels.Pagination
}

type AssignTemplateRequest struct {
	TemplateID string `json:"template_id"` // Идентификатор шаблона-источника
}

func (r AssignTemplateRequest) Validate() error {
	if r.TemplateID == "" {
		return errors.New("не указан шаблон")
	}
	return nil
}

type AnswerRequest struct {
	QuestionID string `json:"question_id"` // Идентификатор вопроса
	IsAnswered bool   `json:"is_answered"` // Вопрос задан на интервью
	IsCorrect  *bool  `json:"is_correct"`  // Оценка ответа
}

func (r AnswerRequest) Validate() error {
	if r.QuestionID == "" {
		return errors.New("не указан вопрос")
	}
	return nil
}
