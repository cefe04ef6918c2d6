package pdfexport

import (
	"bytes"
	"fmt"

	dbmodels "interview-tools-backend/models/db"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GenerateInterviewSheet формирует печатный лист интервью: данные кандидата
// и вопросы, сгруппированные по секциям, с местом под отметки
func GenerateInterviewSheet(rec dbmodels.Candidate) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateInterviewSheet panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.AddUTF8Font("Arial", "I", "Arial Italic.ttf")
	pdf.SetFont("Arial", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.MultiCell(0, 8, "Лист интервью", "", "C", false)
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 6, fmt.Sprintf("Кандидат: %s", rec.GetFIO()), "", "L", false)
	if rec.Vacancy != nil {
		pdf.MultiCell(0, 6, fmt.Sprintf("Вакансия: %s", rec.Vacancy.VacancyName), "", "L", false)
	}
	if !rec.InterviewDate.IsZero() {
		pdf.MultiCell(0, 6, fmt.Sprintf("Дата интервью: %s", rec.InterviewDate.Format("02.01.2006 15:04")), "", "L", false)
	}
	pdf.Ln(4)

	section := ""
	num := 0
	for _, question := range rec.Questions {
		if question.Section != section {
			section = question.Section
			pdf.Ln(2)
			pdf.SetFont("Arial", "B", 13)
			pdf.MultiCell(0, 7, section, "", "L", false)
			pdf.SetFont("Arial", "", 12)
		}
		num++
		pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s", num, question.Text), "", "L", false)
		if question.Answer != "" {
			pdf.SetFont("Arial", "I", 11)
			pdf.MultiCell(0, 5, fmt.Sprintf("Ожидаемый ответ: %s", question.Answer), "", "L", false)
			pdf.SetFont("Arial", "", 12)
		}
		pdf.MultiCell(0, 5, "Задан: [  ]    Ответ: [  ]", "", "L", false)
		pdf.Ln(2)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
