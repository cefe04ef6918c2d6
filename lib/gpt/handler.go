package gpthandler

import (
	"fmt"

	"interview-tools-backend/config"
	"interview-tools-backend/db"
	ailogstore "interview-tools-backend/lib/ai/log-store"
	yagptclient "interview-tools-backend/lib/gpt/yagpt-client"
	vacancyapimodels "interview-tools-backend/models/api/vacancy"
	dbmodels "interview-tools-backend/models/db"

	log "github.com/sirupsen/logrus"
)

const vacancyDescriptionPromt = "Ты - опытный рекрутер. Пиши на русском языке, кратко и по делу, без markdown-разметки."

type Provider interface {
	GenerateVacancyDescription(vacancyID, text string) (resp vacancyapimodels.GenDescriptionResponse, err error)
}

type impl struct {
	aiLogStore ailogstore.Provider
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		aiLogStore: ailogstore.NewInstance(db.DB),
	}
}

func (i impl) GenerateVacancyDescription(vacancyID, text string) (resp vacancyapimodels.GenDescriptionResponse, err error) {
	userPromt := fmt.Sprintf("Сгенерируй описание для вакансии имея эти вводные данные: %s", text)
	resp.Description, err = yagptclient.
		NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID).
		GenerateByPromtAndText(vacancyDescriptionPromt, userPromt)
	if err != nil {
		log.
			WithField("vacancy_id", vacancyID).
			WithError(err).
			Error("ошибка генерации описания через YandexGPT")
		return resp, err
	}
	_, logErr := i.aiLogStore.Save(dbmodels.AiLog{
		SysPromt:   vacancyDescriptionPromt,
		UserPromt:  userPromt,
		Answer:     resp.Description,
		VacancyID:  vacancyID,
		ReqestType: dbmodels.AiVacancyDescriptionType,
		AiName:     dbmodels.AiYaGptType,
	})
	if logErr != nil {
		log.
			WithField("vacancy_id", vacancyID).
			WithError(logErr).
			Error("ошибка сохранения лога запроса к ИИ")
	}
	return resp, nil
}
