package dbmodels

// Запись выполнения генерации через ИИ.
// Результат применяется к шаблону только после завершения запроса
// и повторной проверки, что целевой шаблон/секция ещё существуют.
type Generation struct {
	BaseModel
	TemplateID     string           `gorm:"type:varchar(36);index" comment:"Идентификатор целевого шаблона"`
	SectionID      string           `gorm:"type:varchar(36)" comment:"Идентификатор целевой секции"`
	SysPromt       string           `comment:"System промт"`
	UserPromt      string           `comment:"User промт"`
	Answer         string           `comment:"Ответ ИИ"`
	ReqestType     AiReqestType     `gorm:"type:varchar(255)" comment:"Тип запроса к ИИ"`
	Status         GenerationStatus `gorm:"type:varchar(255)" comment:"Статус запроса"`
	FailReason     string           `comment:"Причина ошибки"`
	DeleteExisting bool             `comment:"Заменить существующие вопросы секции"`
}

type GenerationStatus string

const (
	GenerationSent    GenerationStatus = "sent"
	GenerationApplied GenerationStatus = "applied"
	GenerationError   GenerationStatus = "error"
	GenerationDropped GenerationStatus = "dropped" // цель удалена до завершения генерации
)
