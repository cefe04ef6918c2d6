package candidatehandler

import (
	"bytes"
	"context"
	"fmt"

	"interview-tools-backend/config"
	"interview-tools-backend/db"
	candidatestore "interview-tools-backend/lib/candidate/store"
	pdfexport "interview-tools-backend/lib/export/pdf"
	xlsexport "interview-tools-backend/lib/export/xls"
	filestorage "interview-tools-backend/lib/file-storage"
	"interview-tools-backend/lib/smtp"
	"interview-tools-backend/lib/template/reconcile"
	templatestore "interview-tools-backend/lib/template/store"
	candidateapimodels "interview-tools-backend/models/api/candidate"
	dbmodels "interview-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	List(filter candidateapimodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error)
	GetByID(id string) (view candidateapimodels.CandidateView, err error)
	Create(data candidateapimodels.CandidateData) (id string, err error)
	Update(id string, data candidateapimodels.CandidateData) error
	Delete(id string) error
	AssignTemplate(id, templateID string) (hMsg string, err error)
	MarkAnswer(id string, data candidateapimodels.AnswerRequest) error
	SendInvite(id string) (hMsg string, err error)
	InterviewSheet(id string) (fileName string, body []byte, err error)
	ExportXls(filter candidateapimodels.CandidateFilter) (body *bytes.Buffer, err error)
	UploadResume(ctx context.Context, id, fileName, contentType string, file []byte) error
	GetResume(ctx context.Context, id string) (fileName string, body []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		candidateStore: candidatestore.NewInstance(db.DB),
		templateStore:  templatestore.NewInstance(db.DB),
	}
}

type impl struct {
	candidateStore candidatestore.Provider
	templateStore  templatestore.Provider
}

func (i impl) List(filter candidateapimodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error) {
	recList, rowCount, err := i.candidateStore.List(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка кандидатов")
		return nil, 0, err
	}
	list = make([]candidateapimodels.CandidateView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, candidateapimodels.CandidateToView(rec))
	}
	return list, rowCount, nil
}

func (i impl) GetByID(id string) (view candidateapimodels.CandidateView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return view, err
	}
	return candidateapimodels.CandidateToView(*rec), nil
}

func (i impl) Create(data candidateapimodels.CandidateData) (id string, err error) {
	interviewDate, err := data.GetInterviewDate()
	if err != nil {
		return "", err
	}
	rec := dbmodels.Candidate{
		VacancyID:     data.VacancyID,
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		MiddleName:    data.MiddleName,
		Phone:         data.Phone,
		Email:         data.Email,
		InterviewDate: interviewDate,
		Comment:       data.Comment,
		Questions:     dbmodels.CandidateQuestions{},
	}
	id, err = i.candidateStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка создания кандидата")
		return "", err
	}
	return id, nil
}

func (i impl) Update(id string, data candidateapimodels.CandidateData) error {
	interviewDate, err := data.GetInterviewDate()
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"vacancy_id":     data.VacancyID,
		"first_name":     data.FirstName,
		"last_name":      data.LastName,
		"middle_name":    data.MiddleName,
		"phone":          data.Phone,
		"email":          data.Email,
		"interview_date": interviewDate,
		"comment":        data.Comment,
	}
	err = i.candidateStore.Update(id, updMap)
	if err != nil {
		log.
			WithField("candidate_id", id).
			WithError(err).
			Error("ошибка изменения кандидата")
		return err
	}
	return nil
}

func (i impl) Delete(id string) error {
	err := i.candidateStore.Delete(id)
	if err != nil {
		log.
			WithField("candidate_id", id).
			WithError(err).
			Error("ошибка удаления кандидата")
		return err
	}
	return nil
}

// AssignTemplate выдаёт кандидату собственную копию вопросов шаблона.
// Копия независима: последующие правки шаблона на кандидата не влияют.
func (i impl) AssignTemplate(id, templateID string) (hMsg string, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return "", err
	}
	template, err := i.templateStore.GetByID(templateID)
	if err != nil {
		log.
			WithField("template_id", templateID).
			WithError(err).
			Error("ошибка поиска шаблона по ID")
		return "", err
	}
	if template == nil {
		return "не найден шаблон по указанному ID", nil
	}
	rec.Questions = reconcile.InterviewQuestions(*template)
	return "", i.saveRec(*rec)
}

func (i impl) MarkAnswer(id string, data candidateapimodels.AnswerRequest) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	for idx := range rec.Questions {
		if rec.Questions[idx].ID != data.QuestionID {
			continue
		}
		rec.Questions[idx].IsAnswered = data.IsAnswered
		rec.Questions[idx].IsCorrect = data.IsCorrect
		return i.saveRec(*rec)
	}
	return errors.New("не найден вопрос по указанному ID")
}

func (i impl) SendInvite(id string) (hMsg string, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return "", err
	}
	if rec.Email == "" {
		return "у кандидата не указана почта", nil
	}
	if rec.InterviewDate.IsZero() {
		return "у кандидата не назначена дата интервью", nil
	}
	vacancyName := ""
	if rec.Vacancy != nil {
		vacancyName = rec.Vacancy.VacancyName
	}
	msg := fmt.Sprintf("Здравствуйте, %s!\r\nПриглашаем вас на интервью %s.\r\nПозиция: %s.",
		rec.GetFIO(), rec.InterviewDate.Format("02.01.2006 в 15:04"), vacancyName)
	err = smtp.Instance.SendEMail(config.Conf.Smtp.User, rec.Email, msg, "Приглашение на интервью")
	if err != nil {
		log.
			WithField("candidate_id", id).
			WithError(err).
			Error("ошибка отправки приглашения кандидату")
		return "", err
	}
	return "", nil
}

func (i impl) InterviewSheet(id string) (fileName string, body []byte, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return "", nil, err
	}
	body, err = pdfexport.GenerateInterviewSheet(*rec)
	if err != nil {
		log.
			WithField("candidate_id", id).
			WithError(err).
			Error("ошибка формирования листа интервью")
		return "", nil, err
	}
	return rec.GetFIO() + ".pdf", body, nil
}

func (i impl) ExportXls(filter candidateapimodels.CandidateFilter) (body *bytes.Buffer, err error) {
	filter.Limit = 100
	recList, _, err := i.candidateStore.List(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка кандидатов для выгрузки")
		return nil, err
	}
	body, err = xlsexport.Instance.ExportCandidateList(recList)
	if err != nil {
		log.WithError(err).Error("ошибка выгрузки кандидатов в xlsx")
		return nil, err
	}
	return body, nil
}

func (i impl) UploadResume(ctx context.Context, id, fileName, contentType string, file []byte) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	err = filestorage.Instance.UploadResume(ctx, rec.ID, fileName, contentType, file)
	if err != nil {
		log.
			WithField("candidate_id", id).
			WithError(err).
			Error("ошибка загрузки резюме")
		return err
	}
	return nil
}

func (i impl) GetResume(ctx context.Context, id string) (fileName string, body []byte, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return "", nil, err
	}
	fileName, body, err = filestorage.Instance.GetResume(ctx, rec.ID)
	if err != nil {
		log.
			WithField("candidate_id", id).
			WithError(err).
			Error("ошибка получения резюме")
		return "", nil, err
	}
	return fileName, body, nil
}

func (i impl) getRec(id string) (*dbmodels.Candidate, error) {
	rec, err := i.candidateStore.GetByID(id)
	if err != nil {
		log.
			WithField("candidate_id", id).
			WithError(err).
			Error("ошибка поиска кандидата по ID")
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("не найден кандидат по указанному ID")
	}
	return rec, nil
}

func (i impl) saveRec(rec dbmodels.Candidate) error {
	if err := i.candidateStore.Save(rec); err != nil {
		log.
			WithField("candidate_id", rec.ID).
			WithError(err).
			Error("ошибка сохранения кандидата")
		return err
	}
	return nil
}
