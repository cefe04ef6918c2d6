package generationhandler

import (
	"encoding/json"
	"strings"

	"interview-tools-backend/lib/template/reconcile"
	aiapimodels "interview-tools-backend/models/api/ai"

	"github.com/pkg/errors"
)

// ИИ не всегда возвращает чистый JSON: ответ может быть обёрнут в
// markdown-ограждения или пояснительный текст. Перед разбором из ответа
// вырезается подстрока от первой '{' до последней '}'.
func sanitizeAnswer(answer string) (string, error) {
	answer = strings.Replace(answer, "```json", "", 1)
	answer = strings.Replace(answer, "```", "", 1)
	start := strings.Index(answer, "{")
	end := strings.LastIndex(answer, "}")
	if start < 0 || end < start {
		return "", errors.New("в ответе ИИ не найден JSON")
	}
	return answer[start : end+1], nil
}

// Разбор строгий - некорректная структура отклоняет ответ целиком,
// частичное применение не допускается.

func parseTemplatePayload(answer string) ([]reconcile.SectionDraft, error) {
	sanitized, err := sanitizeAnswer(answer)
	if err != nil {
		return nil, err
	}
	var payload aiapimodels.TemplatePayload
	if err = json.Unmarshal([]byte(sanitized), &payload); err != nil {
		return nil, errors.Wrap(err, "некорректный JSON в ответе ИИ")
	}
	if len(payload.Sections) == 0 {
		return nil, errors.New("в ответе ИИ нет секций")
	}
	drafts := make([]reconcile.SectionDraft, 0, len(payload.Sections))
	for _, section := range payload.Sections {
		draft, err := sectionToDraft(section)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

func parseSectionPayload(answer string) (reconcile.SectionDraft, error) {
	sanitized, err := sanitizeAnswer(answer)
	if err != nil {
		return reconcile.SectionDraft{}, err
	}
	var payload aiapimodels.SectionPayload
	if err = json.Unmarshal([]byte(sanitized), &payload); err != nil {
		return reconcile.SectionDraft{}, errors.Wrap(err, "некорректный JSON в ответе ИИ")
	}
	return sectionToDraft(payload)
}

func parseQuestionsPayload(answer string) ([]reconcile.QuestionDraft, error) {
	sanitized, err := sanitizeAnswer(answer)
	if err != nil {
		return nil, err
	}
	var payload aiapimodels.QuestionsPayload
	if err = json.Unmarshal([]byte(sanitized), &payload); err != nil {
		return nil, errors.Wrap(err, "некорректный JSON в ответе ИИ")
	}
	return questionsToDrafts(payload.Questions)
}

func sectionToDraft(payload aiapimodels.SectionPayload) (reconcile.SectionDraft, error) {
	if strings.TrimSpace(payload.Name) == "" {
		return reconcile.SectionDraft{}, errors.New("в ответе ИИ секция без названия")
	}
	questions, err := questionsToDrafts(payload.Questions)
	if err != nil {
		return reconcile.SectionDraft{}, err
	}
	return reconcile.SectionDraft{
		Name:      strings.TrimSpace(payload.Name),
		Questions: questions,
	}, nil
}

func questionsToDrafts(payload []aiapimodels.QuestionPayload) ([]reconcile.QuestionDraft, error) {
	if len(payload) == 0 {
		return nil, errors.New("в ответе ИИ нет вопросов")
	}
	drafts := make([]reconcile.QuestionDraft, 0, len(payload))
	for _, question := range payload {
		if strings.TrimSpace(question.Text) == "" {
			return nil, errors.New("в ответе ИИ вопрос без текста")
		}
		drafts = append(drafts, reconcile.QuestionDraft{
			Text:   strings.TrimSpace(question.Text),
			Answer: strings.TrimSpace(question.Answer),
		})
	}
	return drafts, nil
}
