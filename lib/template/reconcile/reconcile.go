// Пакет reconcile содержит чистые преобразования шаблона интервью.
// Каждая операция получает текущее значение шаблона и возвращает новое,
// не изменяя исходное: шаблон сохраняется в БД только целиком, поэтому
// любая правка - это замена всего значения.
package reconcile

import (
	dbmodels "interview-tools-backend/models/db"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type QuestionDraft struct {
	Text   string
	Answer string
}

type SectionDraft struct {
	Name      string
	Questions []QuestionDraft
}

// SameName сравнивает названия без учёта регистра и окружающих пробелов.
// Единая проверка для всех мест валидации уникальности
// (добавление секции, добавление шаблона, копирование шаблона).
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// HasSectionName проверяет наличие секции с таким названием в шаблоне
func HasSectionName(template dbmodels.Template, name string) bool {
	for _, section := range template.Sections {
		if SameName(section.Name, name) {
			return true
		}
	}
	return false
}

// AddSection добавляет пустую секцию с новым идентификатором.
// Уникальность названия проверяет вызывающая сторона до вызова.
func AddSection(template dbmodels.Template, name string) dbmodels.Template {
	next := cloneTemplate(template)
	next.Sections = append(next.Sections, dbmodels.Section{
		ID:        uuid.NewString(),
		Name:      name,
		Questions: []dbmodels.Question{},
	})
	return next
}

// RenameSection меняет название секции и переписывает денормализованное
// поле section у всех её вопросов. Идентификатор секции не меняется.
func RenameSection(template dbmodels.Template, sectionID, newName string) (dbmodels.Template, error) {
	next := cloneTemplate(template)
	for idx := range next.Sections {
		if next.Sections[idx].ID != sectionID {
			continue
		}
		next.Sections[idx].Name = newName
		for qIdx := range next.Sections[idx].Questions {
			next.Sections[idx].Questions[qIdx].Section = newName
		}
		return next, nil
	}
	return dbmodels.Template{}, errors.Errorf("секция не найдена: %s", sectionID)
}

// DeleteSection удаляет секцию вместе с вопросами
func DeleteSection(template dbmodels.Template, sectionID string) (dbmodels.Template, error) {
	next := cloneTemplate(template)
	for idx := range next.Sections {
		if next.Sections[idx].ID == sectionID {
			next.Sections = append(next.Sections[:idx], next.Sections[idx+1:]...)
			return next, nil
		}
	}
	return dbmodels.Template{}, errors.Errorf("секция не найдена: %s", sectionID)
}

// AddQuestion добавляет вопрос в секцию, найденную ПО НАЗВАНИЮ.
// Если секции с таким названием нет, она молча создаётся - это позволяет
// вводить вопросы не создавая секцию отдельным шагом.
func AddQuestion(template dbmodels.Template, sectionName string, draft QuestionDraft) dbmodels.Template {
	next := cloneTemplate(template)
	question := dbmodels.Question{
		ID:         uuid.NewString(),
		Text:       draft.Text,
		Answer:     draft.Answer,
		Section:    sectionName,
		IsAnswered: false,
	}
	for idx := range next.Sections {
		if next.Sections[idx].Name == sectionName {
			next.Sections[idx].Questions = append(next.Sections[idx].Questions, question)
			return next
		}
	}
	next.Sections = append(next.Sections, dbmodels.Section{
		ID:        uuid.NewString(),
		Name:      sectionName,
		Questions: []dbmodels.Question{question},
	})
	return next
}

// EditQuestion меняет текст и ответ вопроса. Поле section всегда
// переписывается актуальным названием секции, чтобы устаревшее
// денормализованное значение не могло попасть в хранилище.
func EditQuestion(template dbmodels.Template, sectionID, questionID, newText, newAnswer string) (dbmodels.Template, error) {
	next := cloneTemplate(template)
	for idx := range next.Sections {
		if next.Sections[idx].ID != sectionID {
			continue
		}
		for qIdx := range next.Sections[idx].Questions {
			if next.Sections[idx].Questions[qIdx].ID != questionID {
				continue
			}
			next.Sections[idx].Questions[qIdx].Text = newText
			next.Sections[idx].Questions[qIdx].Answer = newAnswer
			next.Sections[idx].Questions[qIdx].Section = next.Sections[idx].Name
			return next, nil
		}
		return dbmodels.Template{}, errors.Errorf("вопрос не найден: %s", questionID)
	}
	return dbmodels.Template{}, errors.Errorf("секция не найдена: %s", sectionID)
}

// DeleteQuestion удаляет вопрос, остальные вопросы не меняются
func DeleteQuestion(template dbmodels.Template, sectionID, questionID string) (dbmodels.Template, error) {
	next := cloneTemplate(template)
	for idx := range next.Sections {
		if next.Sections[idx].ID != sectionID {
			continue
		}
		questions := next.Sections[idx].Questions
		for qIdx := range questions {
			if questions[qIdx].ID == questionID {
				next.Sections[idx].Questions = append(questions[:qIdx], questions[qIdx+1:]...)
				return next, nil
			}
		}
		return dbmodels.Template{}, errors.Errorf("вопрос не найден: %s", questionID)
	}
	return dbmodels.Template{}, errors.Errorf("секция не найдена: %s", sectionID)
}

// BulkInsertQuestions вставляет пул вопросов в секцию: при deleteExisting
// список вопросов секции заменяется целиком, иначе пул дописывается в конец.
// Вставка атомарна - либо применяются все вопросы, либо ни одного.
func BulkInsertQuestions(template dbmodels.Template, sectionID string, drafts []QuestionDraft, deleteExisting bool) (dbmodels.Template, error) {
	next := cloneTemplate(template)
	for idx := range next.Sections {
		if next.Sections[idx].ID != sectionID {
			continue
		}
		inserted := make([]dbmodels.Question, 0, len(drafts))
		for _, draft := range drafts {
			inserted = append(inserted, dbmodels.Question{
				ID:         uuid.NewString(),
				Text:       draft.Text,
				Answer:     draft.Answer,
				Section:    next.Sections[idx].Name,
				IsAnswered: false,
			})
		}
		if deleteExisting {
			next.Sections[idx].Questions = inserted
		} else {
			next.Sections[idx].Questions = append(next.Sections[idx].Questions, inserted...)
		}
		return next, nil
	}
	return dbmodels.Template{}, errors.Errorf("секция не найдена: %s", sectionID)
}

// BulkInsertSections дописывает сгенерированные секции в шаблон.
// Контракт тот же - всё или ничего.
func BulkInsertSections(template dbmodels.Template, drafts []SectionDraft) dbmodels.Template {
	next := cloneTemplate(template)
	for _, draft := range drafts {
		section := dbmodels.Section{
			ID:        uuid.NewString(),
			Name:      draft.Name,
			Questions: make([]dbmodels.Question, 0, len(draft.Questions)),
		}
		for _, qDraft := range draft.Questions {
			section.Questions = append(section.Questions, dbmodels.Question{
				ID:         uuid.NewString(),
				Text:       qDraft.Text,
				Answer:     qDraft.Answer,
				Section:    draft.Name,
				IsAnswered: false,
			})
		}
		next.Sections = append(next.Sections, section)
	}
	return next
}

// DeepCopy создаёт полную копию шаблона с новыми идентификаторами на всех
// уровнях. Содержимое сохраняется как есть: названия секций при копировании
// не меняются, поэтому денормализованные поля section остаются корректными.
// Уникальность newName проверяет вызывающая сторона.
func DeepCopy(source dbmodels.Template, newName string) dbmodels.Template {
	copied := dbmodels.Template{
		Name:     newName,
		Sections: make(dbmodels.TemplateSections, 0, len(source.Sections)),
	}
	copied.ID = uuid.NewString()
	for _, section := range source.Sections {
		sectionCopy := dbmodels.Section{
			ID:        uuid.NewString(),
			Name:      section.Name,
			Questions: make([]dbmodels.Question, 0, len(section.Questions)),
		}
		for _, question := range section.Questions {
			questionCopy := question
			questionCopy.ID = uuid.NewString()
			sectionCopy.Questions = append(sectionCopy.Questions, questionCopy)
		}
		copied.Sections = append(copied.Sections, sectionCopy)
	}
	return copied
}

// CopyCandidateQuestions переносит вопросы кандидата в секцию шаблона:
// поля интервью (isAnswered/isCorrect) отбрасываются, идентификаторы
// выдаются заново. Секция ищется по названию и создаётся при отсутствии.
func CopyCandidateQuestions(template dbmodels.Template, sectionName string, questions []dbmodels.Question) dbmodels.Template {
	next := template
	for _, question := range questions {
		next = AddQuestion(next, sectionName, QuestionDraft{
			Text:   question.Text,
			Answer: question.Answer,
		})
	}
	return next
}

// InterviewQuestions собирает плоский список вопросов шаблона для
// интервью кандидата: собственная копия с новыми идентификаторами и
// сброшенными полями интервью
func InterviewQuestions(template dbmodels.Template) []dbmodels.Question {
	questions := make([]dbmodels.Question, 0, template.QuestionCount())
	for _, section := range template.Sections {
		for _, question := range section.Questions {
			questions = append(questions, dbmodels.Question{
				ID:         uuid.NewString(),
				Text:       question.Text,
				Answer:     question.Answer,
				Section:    section.Name,
				IsAnswered: false,
			})
		}
	}
	return questions
}

// cloneTemplate копирует граф шаблона целиком, чтобы преобразования не
// делили срезы с исходным значением
func cloneTemplate(template dbmodels.Template) dbmodels.Template {
	next := template
	next.Sections = make(dbmodels.TemplateSections, len(template.Sections))
	for idx, section := range template.Sections {
		sectionCopy := section
		sectionCopy.Questions = make([]dbmodels.Question, len(section.Questions))
		copy(sectionCopy.Questions, section.Questions)
		next.Sections[idx] = sectionCopy
	}
	return next
}
