package dbmodels

type AiLog struct {
	BaseModel
	SysPromt   string       `comment:"System промт"`
	UserPromt  string       `comment:"User промт"`
	Answer     string       `comment:"Ответ ИИ"`
	TemplateID string       `gorm:"type:varchar(36)" comment:"Идентификатор шаблона"`
	VacancyID  string       `gorm:"type:varchar(36)" comment:"Идентификатор вакансии"`
	ReqestType AiReqestType `gorm:"type:varchar(255)" comment:"Тип запроса к ИИ"`
	AiName     AiName       `gorm:"type:varchar(255)" comment:"Название ИИ"`
}

type AiName string

const (
	AiYaGptType AiName = "yandexgpt"
)

type AiReqestType string

const (
	AiVacancyDescriptionType AiReqestType = "VacancyDescription"
	AiTemplateType           AiReqestType = "Template"
	AiSectionType            AiReqestType = "Section"
	AiQuestionsType          AiReqestType = "Questions"
)
