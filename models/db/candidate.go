package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Кандидат. Вопросы интервью хранятся собственной копией,
// независимой от шаблона-источника.
type Candidate struct {
	BaseModel
	VacancyID     string   `gorm:"type:varchar(36);index"`
	Vacancy       *Vacancy `gorm:"foreignKey:VacancyID"`
	FirstName     string   `gorm:"type:varchar(255)"`
	LastName      string   `gorm:"type:varchar(255)"`
	MiddleName    string   `gorm:"type:varchar(255)"`
	Phone         string   `gorm:"type:varchar(255)"`
	Email         string   `gorm:"type:varchar(255)"`
	InterviewDate time.Time
	Comment       string
	Questions     CandidateQuestions `gorm:"type:jsonb"`
}

type CandidateQuestions []Question

func (j CandidateQuestions) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *CandidateQuestions) Scan(value interface{}) error {
	data, ok := value.([]byte)
	if !ok {
		return errors.Errorf("неожиданный тип jsonb значения: %T", value)
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	return nil
}

func (c Candidate) GetFIO() string {
	parts := []string{}
	for _, part := range []string{c.LastName, c.FirstName, c.MiddleName} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

func (c Candidate) AnsweredCount() (answered, correct int) {
	for _, q := range c.Questions {
		if q.IsAnswered {
			answered++
			if q.IsCorrect != nil && *q.IsCorrect {
				correct++
			}
		}
	}
	return answered, correct
}
