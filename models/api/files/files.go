package filesapimodels

type FileView struct {
	ID          string `json:"id"`           // Идентификатор файла
	Name        string `json:"name"`         // Имя файла
	CandidateID string `json:"candidate_id"` // Идентификатор кандидата
	ContentType string `json:"content_type"` // Тип содержимого
}
