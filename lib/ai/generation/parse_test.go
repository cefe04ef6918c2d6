package generationhandler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeAnswer(t *testing.T) {
	t.Run(`вырезается подстрока от первой { до последней }`, func(t *testing.T) {
		got, err := sanitizeAnswer(`Вот результат: {"questions": [{"text": "q"}]} Надеюсь, помог!`)
		require.NoError(t, err)
		require.Equal(t, `{"questions": [{"text": "q"}]}`, got)
	})

	t.Run(`markdown-ограждения удаляются`, func(t *testing.T) {
		got, err := sanitizeAnswer("```json\n{\"name\": \"Go\"}\n```")
		require.NoError(t, err)
		require.Equal(t, `{"name": "Go"}`, got)
	})

	t.Run(`ответ без JSON отклоняется`, func(t *testing.T) {
		_, err := sanitizeAnswer("не могу ответить на этот вопрос")
		require.Error(t, err)
	})
}

func TestParseQuestionsPayload(t *testing.T) {
	t.Run(`корректный пул вопросов`, func(t *testing.T) {
		drafts, err := parseQuestionsPayload(`{"questions": [{"text": "Что такое goroutine?", "answer": "легковесный поток"}, {"text": "Что такое канал?"}]}`)
		require.NoError(t, err)
		require.Len(t, drafts, 2)
		require.Equal(t, "Что такое goroutine?", drafts[0].Text)
		require.Equal(t, "легковесный поток", drafts[0].Answer)
		require.Equal(t, "", drafts[1].Answer)
	})

	t.Run(`questions не массив - ответ отклоняется целиком`, func(t *testing.T) {
		_, err := parseQuestionsPayload(`{"questions": "Что такое goroutine?"}`)
		require.Error(t, err)
	})

	t.Run(`пустой пул отклоняется`, func(t *testing.T) {
		_, err := parseQuestionsPayload(`{"questions": []}`)
		require.Error(t, err)
	})

	t.Run(`вопрос без текста отклоняет весь пул`, func(t *testing.T) {
		_, err := parseQuestionsPayload(`{"questions": [{"text": "Что такое goroutine?"}, {"text": "  "}]}`)
		require.Error(t, err)
	})
}

func TestParseSectionPayload(t *testing.T) {
	t.Run(`корректная секция`, func(t *testing.T) {
		draft, err := parseSectionPayload(`{"name": " Конкурентность ", "questions": [{"text": "Что такое mutex?"}]}`)
		require.NoError(t, err)
		require.Equal(t, "Конкурентность", draft.Name)
		require.Len(t, draft.Questions, 1)
	})

	t.Run(`секция без названия отклоняется`, func(t *testing.T) {
		_, err := parseSectionPayload(`{"name": "", "questions": [{"text": "Что такое mutex?"}]}`)
		require.Error(t, err)
	})

	t.Run(`секция без вопросов отклоняется`, func(t *testing.T) {
		_, err := parseSectionPayload(`{"name": "Конкурентность", "questions": []}`)
		require.Error(t, err)
	})
}

func TestParseTemplatePayload(t *testing.T) {
	t.Run(`корректный план интервью`, func(t *testing.T) {
		drafts, err := parseTemplatePayload("```json\n" +
			`{"sections": [{"name": "Базовый Go", "questions": [{"text": "Что такое slice?", "answer": "окно над массивом"}]}, {"name": "БД", "questions": [{"text": "Что такое индекс?"}]}]}` +
			"\n```")
		require.NoError(t, err)
		require.Len(t, drafts, 2)
		require.Equal(t, "Базовый Go", drafts[0].Name)
		require.Equal(t, "БД", drafts[1].Name)
	})

	t.Run(`одна некорректная секция отклоняет весь план`, func(t *testing.T) {
		_, err := parseTemplatePayload(`{"sections": [{"name": "Базовый Go", "questions": [{"text": "Что такое slice?"}]}, {"name": "БД", "questions": []}]}`)
		require.Error(t, err)
	})

	t.Run(`план без секций отклоняется`, func(t *testing.T) {
		_, err := parseTemplatePayload(`{"sections": []}`)
		require.Error(t, err)
	})
}
