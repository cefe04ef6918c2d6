package templatehandler

import (
	"bytes"

	"interview-tools-backend/db"
	candidatestore "interview-tools-backend/lib/candidate/store"
	xlsexport "interview-tools-backend/lib/export/xls"
	"interview-tools-backend/lib/template/reconcile"
	templatestore "interview-tools-backend/lib/template/store"
	templateapimodels "interview-tools-backend/models/api/template"
	dbmodels "interview-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	List() (list []templateapimodels.TemplateListItem, err error)
	GetByID(id string) (view templateapimodels.TemplateView, err error)
	Create(name string) (id string, hMsg string, err error)
	Rename(id, newName string) (hMsg string, err error)
	Delete(id string) error
	Copy(id, newName string) (newID string, hMsg string, err error)
	AddSection(id, name string) (hMsg string, err error)
	RenameSection(id, sectionID, newName string) (hMsg string, err error)
	DeleteSection(id, sectionID string) error
	AddQuestion(id string, data templateapimodels.QuestionRequest) error
	EditQuestion(id, sectionID, questionID string, data templateapimodels.EditQuestionRequest) error
	DeleteQuestion(id, sectionID, questionID string) error
	CopyFromCandidate(id string, data templateapimodels.CopyFromCandidateRequest) (hMsg string, err error)
	Export(id string) (fileName string, body []byte, err error)
	Import(raw []byte) (id string, hMsg string, err error)
	ExportXls(id string) (fileName string, body *bytes.Buffer, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		templateStore:  templatestore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
}

type impl struct {
	templateStore  templatestore.Provider
	candidateStore candidatestore.Provider
}

func (i impl) List() (list []templateapimodels.TemplateListItem, err error) {
	recList, err := i.templateStore.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка шаблонов")
		return nil, err
	}
	list = make([]templateapimodels.TemplateListItem, 0, len(recList))
	for _, rec := range recList {
		list = append(list, templateapimodels.TemplateListItem{
			ID:            rec.ID,
			Name:          rec.Name,
			SectionCount:  len(rec.Sections),
			QuestionCount: rec.QuestionCount(),
		})
	}
	return list, nil
}

func (i impl) GetByID(id string) (view templateapimodels.TemplateView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return view, err
	}
	return templateapimodels.TemplateToView(*rec), nil
}

func (i impl) Create(name string) (id string, hMsg string, err error) {
	taken, err := i.isTemplateNameTaken(name, "")
	if err != nil {
		return "", "", err
	}
	if taken {
		return "", "шаблон с таким названием уже существует", nil
	}
	rec := dbmodels.Template{
		Name:     name,
		Sections: dbmodels.TemplateSections{},
	}
	id, err = i.templateStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка создания шаблона")
		return "", "", err
	}
	return id, "", nil
}

func (i impl) Rename(id, newName string) (hMsg string, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return "", err
	}
	taken, err := i.isTemplateNameTaken(newName, id)
	if err != nil {
		return "", err
	}
	if taken {
		return "шаблон с таким названием уже существует", nil
	}
	rec.Name = newName
	return "", i.saveRec(*rec)
}

func (i impl) Delete(id string) error {
	err := i.templateStore.Delete(id)
	if err != nil {
		log.
			WithField("template_id", id).
			WithError(err).
			Error("ошибка удаления шаблона")
		return err
	}
	return nil
}

func (i impl) Copy(id, newName string) (newID string, hMsg string, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return "", "", err
	}
	taken, err := i.isTemplateNameTaken(newName, "")
	if err != nil {
		return "", "", err
	}
	if taken {
		return "", "шаблон с таким названием уже существует", nil
	}
	copied := reconcile.DeepCopy(*rec, newName)
	newID, err = i.templateStore.Create(copied)
	if err != nil {
		log.
			WithField("template_id", id).
			WithError(err).
			Error("ошибка копирования шаблона")
		return "", "", err
	}
	return newID, "", nil
}

func (i impl) AddSection(id, name string) (hMsg string, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return "", err
	}
	if reconcile.HasSectionName(*rec, name) {
		return "секция с таким названием уже существует", nil
	}
	return "", i.saveRec(reconcile.AddSection(*rec, name))
}

func (i impl) RenameSection(id, sectionID, newName string) (hMsg string, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return "", err
	}
	for _, section := range rec.Sections {
		if section.ID != sectionID && reconcile.SameName(section.Name, newName) {
			return "секция с таким названием уже существует", nil
		}
	}
	next, err := reconcile.RenameSection(*rec, sectionID, newName)
	if err != nil {
		return "", err
	}
	return "", i.saveRec(next)
}

func (i impl) DeleteSection(id, sectionID string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	next, err := reconcile.DeleteSection(*rec, sectionID)
	if err != nil {
		return err
	}
	return i.saveRec(next)
}

func (i impl) AddQuestion(id string, data templateapimodels.QuestionRequest) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	next := reconcile.AddQuestion(*rec, data.Section, reconcile.QuestionDraft{
		Text:   data.Text,
		Answer: data.Answer,
	})
	return i.saveRec(next)
}

func (i impl) EditQuestion(id, sectionID, questionID string, data templateapimodels.EditQuestionRequest) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	next, err := reconcile.EditQuestion(*rec, sectionID, questionID, data.Text, data.Answer)
	if err != nil {
		return err
	}
	return i.saveRec(next)
}

func (i impl) DeleteQuestion(id, sectionID, questionID string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	next, err := reconcile.DeleteQuestion(*rec, sectionID, questionID)
	if err != nil {
		return err
	}
	return i.saveRec(next)
}

func (i impl) CopyFromCandidate(id string, data templateapimodels.CopyFromCandidateRequest) (hMsg string, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return "", err
	}
	candidate, err := i.candidateStore.GetByID(data.CandidateID)
	if err != nil {
		log.
			WithField("candidate_id", data.CandidateID).
			WithError(err).
			Error("ошибка поиска кандидата по ID")
		return "", err
	}
	if candidate == nil {
		return "не найден кандидат по указанному ID", nil
	}
	if len(candidate.Questions) == 0 {
		return "у кандидата нет вопросов для переноса", nil
	}
	next := reconcile.CopyCandidateQuestions(*rec, data.Section, candidate.Questions)
	return "", i.saveRec(next)
}

func (i impl) Export(id string) (fileName string, body []byte, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return "", nil, err
	}
	body, err = reconcile.Export(*rec)
	if err != nil {
		log.
			WithField("template_id", id).
			WithError(err).
			Error("ошибка экспорта шаблона")
		return "", nil, err
	}
	return rec.Name + ".json", body, nil
}

func (i impl) Import(raw []byte) (id string, hMsg string, err error) {
	recList, err := i.templateStore.List()
	if err != nil {
		return "", "", err
	}
	existingNames := make([]string, 0, len(recList))
	for _, rec := range recList {
		existingNames = append(existingNames, rec.Name)
	}
	imported, err := reconcile.Import(raw, existingNames)
	if err != nil {
		if errors.Is(err, reconcile.ErrInvalidFile) {
			return "", err.Error(), nil
		}
		return "", "", err
	}
	id, err = i.templateStore.Create(imported)
	if err != nil {
		log.WithError(err).Error("ошибка сохранения импортированного шаблона")
		return "", "", err
	}
	return id, "", nil
}

func (i impl) ExportXls(id string) (fileName string, body *bytes.Buffer, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return "", nil, err
	}
	body, err = xlsexport.Instance.ExportTemplate(*rec)
	if err != nil {
		log.
			WithField("template_id", id).
			WithError(err).
			Error("ошибка выгрузки шаблона в xlsx")
		return "", nil, err
	}
	return rec.Name + ".xlsx", body, nil
}

func (i impl) getRec(id string) (*dbmodels.Template, error) {
	rec, err := i.templateStore.GetByID(id)
	if err != nil {
		log.
			WithField("template_id", id).
			WithError(err).
			Error("ошибка поиска шаблона по ID")
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("не найден шаблон по указанному ID")
	}
	return rec, nil
}

// запись состояния подтверждается хранилищем до того,
// как результат будет отдан вызывающей стороне
func (i impl) saveRec(rec dbmodels.Template) error {
	if err := i.templateStore.Save(rec); err != nil {
		log.
			WithField("template_id", rec.ID).
			WithError(err).
			Error("ошибка сохранения шаблона")
		return err
	}
	return nil
}

func (i impl) isTemplateNameTaken(name, excludeID string) (bool, error) {
	recList, err := i.templateStore.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка шаблонов")
		return false, err
	}
	for _, rec := range recList {
		if rec.ID == excludeID {
			continue
		}
		if reconcile.SameName(rec.Name, name) {
			return true, nil
		}
	}
	return false, nil
}
