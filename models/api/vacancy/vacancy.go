package vacancyapimodels

import (
	dbmodels "interview-tools-backend/models/db"

	"github.com/pkg/errors"
)

type VacancyView struct {
	VacancyData
	ID string `json:"id"` // Идентификатор вакансии
}

func VacancyToView(rec dbmodels.Vacancy) VacancyView {
	return VacancyView{
		VacancyData: VacancyData{
			VacancyName:  rec.VacancyName,
			JobTitleName: rec.JobTitleName,
			Description:  rec.Description,
			Requirements: []string(rec.Requirements),
			Skills:       []string(rec.Skills),
		},
		ID: rec.ID,
	}
}

type VacancyData struct {
	VacancyName  string   `json:"vacancy_name"`   // Название вакансии
	JobTitleName string   `json:"job_title_name"` // Должность
	Description  string   `json:"description"`    // Описание
	Requirements []string `json:"requirements"`   // Ключевые требования
	Skills       []string `json:"skills"`         // Навыки
}

func (r VacancyData) Validate() error {
	if r.VacancyName == "" {
		return errors.New("не указано название вакансии")
	}
	return nil
}

type GenDescriptionRequest struct {
	Text string `json:"text"` // Вводные данные для генерации
}

func (r GenDescriptionRequest) Validate() error {
	if r.Text == "" {
		return errors.New("не указаны вводные данные для генерации")
	}
	return nil
}

type GenDescriptionResponse struct {
	Description string `json:"description"` // Сгенерированное описание
}
