package xlsexport

import (
	"bytes"
	"fmt"

	dbmodels "interview-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportTemplate(rec dbmodels.Template) (*bytes.Buffer, error)
	ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var templateHeaders = []string{"Секция", "Вопрос", "Ожидаемый ответ"}
var candidateHeaders = []string{"ФИО", "Контакты", "Вакансия", "Дата интервью", "Задано вопросов", "Верных ответов", "Комментарий"}

func (i impl) ExportTemplate(rec dbmodels.Template) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, templateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if rec.QuestionCount() != 0 {
		row, err = writeTemplateData(f, sheet, rec, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Вопросы")
	return f.WriteToBuffer()
}

func (i impl) ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeCandidateData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Кандидаты")
	return f.WriteToBuffer()
}

func writeTemplateData(f *excelize.File, sheet string, rec dbmodels.Template, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(templateHeaders), rec.QuestionCount()+1); err != nil {
		return row, err
	}
	for _, section := range rec.Sections {
		for _, question := range section.Questions {
			row++
			// "Секция"
			col := 1
			if err := writeColumn(f, sheet, col, row, section.Name); err != nil {
				return row, err
			}

			// "Вопрос"
			col++
			if err := writeColumn(f, sheet, col, row, question.Text); err != nil {
				return row, err
			}

			// "Ожидаемый ответ"
			col++
			if err := writeColumn(f, sheet, col, row, question.Answer); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

func writeCandidateData(f *excelize.File, sheet string, list []dbmodels.Candidate, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidateHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "ФИО"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.GetFIO()); err != nil {
			return row, err
		}

		// "Контакты"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Phone, item.Email)); err != nil {
			return row, err
		}

		// "Вакансия"
		col++
		if item.Vacancy != nil {
			if err := writeColumn(f, sheet, col, row, item.Vacancy.VacancyName); err != nil {
				return row, err
			}
		}

		// "Дата интервью"
		col++
		if !item.InterviewDate.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.InterviewDate.Format("02.01.2006 15:04")); err != nil {
				return row, err
			}
		}

		answered, correct := item.AnsweredCount()
		// "Задано вопросов"
		col++
		if err := writeColumn(f, sheet, col, row, answered); err != nil {
			return row, err
		}

		// "Верных ответов"
		col++
		if err := writeColumn(f, sheet, col, row, correct); err != nil {
			return row, err
		}

		// "Комментарий"
		col++
		if err := writeColumn(f, sheet, col, row, item.Comment); err != nil {
			return row, err
		}
	}
	return row, nil
}
