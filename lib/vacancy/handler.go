package vacancyhandler

import (
	"interview-tools-backend/db"
	gpthandler "interview-tools-backend/lib/gpt"
	vacancystore "interview-tools-backend/lib/vacancy/store"
	vacancyapimodels "interview-tools-backend/models/api/vacancy"
	dbmodels "interview-tools-backend/models/db"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	List() (list []vacancyapimodels.VacancyView, err error)
	GetByID(id string) (view vacancyapimodels.VacancyView, err error)
	Create(data vacancyapimodels.VacancyData) (id string, err error)
	Update(id string, data vacancyapimodels.VacancyData) error
	Delete(id string) error
	GenerateDescription(id string, data vacancyapimodels.GenDescriptionRequest) (resp vacancyapimodels.GenDescriptionResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		vacancyStore: vacancystore.NewInstance(db.DB),
	}
}

type impl struct {
	vacancyStore vacancystore.Provider
}

func (i impl) List() (list []vacancyapimodels.VacancyView, err error) {
	recList, err := i.vacancyStore.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка вакансий")
		return nil, err
	}
	list = make([]vacancyapimodels.VacancyView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, vacancyapimodels.VacancyToView(rec))
	}
	return list, nil
}

func (i impl) GetByID(id string) (view vacancyapimodels.VacancyView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return view, err
	}
	return vacancyapimodels.VacancyToView(*rec), nil
}

func (i impl) Create(data vacancyapimodels.VacancyData) (id string, err error) {
	rec := dbmodels.Vacancy{
		VacancyName:  data.VacancyName,
		JobTitleName: data.JobTitleName,
		Description:  data.Description,
		Requirements: pq.StringArray(data.Requirements),
		Skills:       pq.StringArray(data.Skills),
	}
	id, err = i.vacancyStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка создания вакансии")
		return "", err
	}
	return id, nil
}

func (i impl) Update(id string, data vacancyapimodels.VacancyData) error {
	updMap := map[string]interface{}{
		"vacancy_name":   data.VacancyName,
		"job_title_name": data.JobTitleName,
		"description":    data.Description,
		"requirements":   pq.StringArray(data.Requirements),
		"skills":         pq.StringArray(data.Skills),
	}
	err := i.vacancyStore.Update(id, updMap)
	if err != nil {
		log.
			WithField("vacancy_id", id).
			WithError(err).
			Error("ошибка изменения вакансии")
		return err
	}
	return nil
}

func (i impl) Delete(id string) error {
	err := i.vacancyStore.Delete(id)
	if err != nil {
		log.
			WithField("vacancy_id", id).
			WithError(err).
			Error("ошибка удаления вакансии")
		return err
	}
	return nil
}

func (i impl) GenerateDescription(id string, data vacancyapimodels.GenDescriptionRequest) (resp vacancyapimodels.GenDescriptionResponse, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return resp, err
	}
	return gpthandler.Instance.GenerateVacancyDescription(rec.ID, data.Text)
}

func (i impl) getRec(id string) (*dbmodels.Vacancy, error) {
	rec, err := i.vacancyStore.GetByID(id)
	if err != nil {
		log.
			WithField("vacancy_id", id).
			WithError(err).
			Error("ошибка поиска вакансии по ID")
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("не найдена вакансия по указанному ID")
	}
	return rec, nil
}
