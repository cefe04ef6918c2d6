package dbmodels

import (
	"github.com/lib/pq"
)

// Вакансия (описание позиции)
type Vacancy struct {
	BaseModel
	VacancyName  string `gorm:"type:varchar(255)"`
	JobTitleName string `gorm:"type:varchar(255)"`
	Description  string
	Requirements pq.StringArray `gorm:"type:text[]"` // Ключевые требования
	Skills       pq.StringArray `gorm:"type:text[]"` // Навыки для генерации вопросов
}
