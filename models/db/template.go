package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// Шаблон интервью. Единица хранения - шаблон целиком,
// секции и вопросы отдельно в БД не адресуются.
type Template struct {
	BaseModel
	Name     string           `gorm:"type:varchar(255);uniqueIndex"`
	Sections TemplateSections `gorm:"type:jsonb"`
}

type TemplateSections []Section

func (j TemplateSections) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *TemplateSections) Scan(value interface{}) error {
	data, ok := value.([]byte)
	if !ok {
		return errors.Errorf("неожиданный тип jsonb значения: %T", value)
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	return nil
}

type Section struct {
	ID        string     `json:"id"`        // Идентификатор секции
	Name      string     `json:"name"`      // Название секции
	Questions []Question `json:"questions"` // Вопросы секции
}

type Question struct {
	ID         string `json:"id"`               // Идентификатор вопроса
	Text       string `json:"text"`             // Текст вопроса
	Section    string `json:"section"`          // Название секции-владельца (денормализовано)
	Answer     string `json:"answer,omitempty"` // Ожидаемый ответ
	IsAnswered bool   `json:"isAnswered"`       // Вопрос задан на интервью
	IsCorrect  *bool  `json:"isCorrect,omitempty"`
}

func (t Template) QuestionCount() int {
	count := 0
	for _, section := range t.Sections {
		count += len(section.Questions)
	}
	return count
}
