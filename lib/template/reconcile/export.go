package reconcile

import (
	"encoding/json"
	"fmt"
	dbmodels "interview-tools-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidFile - структурная ошибка файла импорта.
// Любое отсутствующее обязательное поле делает файл целиком непригодным,
// частичный импорт не выполняется.
var ErrInvalidFile = errors.New("некорректный файл шаблона")

const importedSuffix = " - Imported"

// Формат файла экспорта/импорта. Менять нельзя - файлы переносятся
// между инсталляциями инструмента.
type templateFile struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Sections []sectionFile `json:"sections"`
}

type sectionFile struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Questions []questionFile `json:"questions"`
}

type questionFile struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Section    string `json:"section"`
	Answer     string `json:"answer,omitempty"`
	IsAnswered bool   `json:"isAnswered"`
}

// При разборе массивы объявлены указателями, чтобы отличать
// отсутствующее поле от пустого списка
type templateFileIn struct {
	Name     string           `json:"name"`
	Sections *[]sectionFileIn `json:"sections"`
}

type sectionFileIn struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Questions *[]questionFileIn `json:"questions"`
}

type questionFileIn struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Section string `json:"section"`
	Answer  string `json:"answer"`
}

// Export детерминированно выгружает шаблон в канонический JSON.
// Идентификаторы сохраняются как есть: повторный импорт после экспорта
// идемпотентен по содержимому (но не по идентичности - импорт всегда
// выдаёт новые идентификаторы).
func Export(template dbmodels.Template) ([]byte, error) {
	out := templateFile{
		ID:       template.ID,
		Name:     template.Name,
		Sections: make([]sectionFile, 0, len(template.Sections)),
	}
	for _, section := range template.Sections {
		sectionOut := sectionFile{
			ID:        section.ID,
			Name:      section.Name,
			Questions: make([]questionFile, 0, len(section.Questions)),
		}
		for _, question := range section.Questions {
			sectionOut.Questions = append(sectionOut.Questions, questionFile{
				ID:         question.ID,
				Text:       question.Text,
				Section:    question.Section,
				Answer:     question.Answer,
				IsAnswered: false,
			})
		}
		out.Sections = append(out.Sections, sectionOut)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сериализации шаблона")
	}
	return data, nil
}

// Import разбирает файл экспорта и собирает новый шаблон.
// Идентификаторы из файла не переиспользуются - шаблон, каждая секция и
// каждый вопрос получают новые. Название дедуплицируется против
// existingNames суффиксом " - Imported", затем " (1)", " (2)" и тд.
func Import(raw []byte, existingNames []string) (dbmodels.Template, error) {
	var in templateFileIn
	if err := json.Unmarshal(raw, &in); err != nil {
		return dbmodels.Template{}, errors.Wrap(ErrInvalidFile, "не удалось разобрать JSON")
	}
	if in.Name == "" {
		return dbmodels.Template{}, errors.Wrap(ErrInvalidFile, "не заполнено название шаблона")
	}
	if in.Sections == nil {
		return dbmodels.Template{}, errors.Wrap(ErrInvalidFile, "отсутствует список секций")
	}
	for _, section := range *in.Sections {
		if section.ID == "" || section.Name == "" {
			return dbmodels.Template{}, errors.Wrapf(ErrInvalidFile, "секция %q без обязательных полей", section.Name)
		}
		if section.Questions == nil {
			return dbmodels.Template{}, errors.Wrapf(ErrInvalidFile, "в секции %q отсутствует список вопросов", section.Name)
		}
		for _, question := range *section.Questions {
			if question.ID == "" || question.Text == "" || question.Section == "" {
				return dbmodels.Template{}, errors.Wrapf(ErrInvalidFile, "вопрос в секции %q без обязательных полей", section.Name)
			}
		}
	}

	imported := dbmodels.Template{
		Name:     ImportedName(in.Name, existingNames),
		Sections: make(dbmodels.TemplateSections, 0, len(*in.Sections)),
	}
	imported.ID = uuid.NewString()
	for _, section := range *in.Sections {
		sectionRec := dbmodels.Section{
			ID:        uuid.NewString(),
			Name:      section.Name,
			Questions: make([]dbmodels.Question, 0, len(*section.Questions)),
		}
		for _, question := range *section.Questions {
			// денормализованное поле section переписывается актуальным
			// названием секции из файла
			sectionRec.Questions = append(sectionRec.Questions, dbmodels.Question{
				ID:         uuid.NewString(),
				Text:       question.Text,
				Section:    section.Name,
				Answer:     question.Answer,
				IsAnswered: false,
			})
		}
		imported.Sections = append(imported.Sections, sectionRec)
	}
	return imported, nil
}

// ImportedName подбирает свободное название для импортированного шаблона
func ImportedName(name string, existingNames []string) string {
	candidate := name + importedSuffix
	if !nameTaken(candidate, existingNames) {
		return candidate
	}
	for n := 1; ; n++ {
		numbered := fmt.Sprintf("%s (%d)", candidate, n)
		if !nameTaken(numbered, existingNames) {
			return numbered
		}
	}
}

func nameTaken(name string, existingNames []string) bool {
	for _, existing := range existingNames {
		if SameName(name, existing) {
			return true
		}
	}
	return false
}
