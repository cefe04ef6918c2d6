package reconcile

import (
	"testing"

	dbmodels "interview-tools-backend/models/db"

	"github.com/stretchr/testify/require"
)

func testTemplate() dbmodels.Template {
	template := dbmodels.Template{
		Name: "Frontend",
		Sections: dbmodels.TemplateSections{
			{
				ID:   "s1",
				Name: "JS",
				Questions: []dbmodels.Question{
					{ID: "q1", Text: "What is a closure?", Section: "JS", IsAnswered: false},
				},
			},
			{
				ID:   "s2",
				Name: "CSS",
				Questions: []dbmodels.Question{
					{ID: "q2", Text: "Explain specificity", Section: "CSS", Answer: "cascade rules"},
				},
			},
		},
	}
	template.ID = "t1"
	return template
}

func TestReconcile(t *testing.T) {
	t.Run(`AddQuestion appends to existing section found by name`, func(t *testing.T) {
		source := testTemplate()
		next := AddQuestion(source, "JS", QuestionDraft{Text: "Explain hoisting"})

		require.Len(t, next.Sections, 2)
		require.Equal(t, "s1", next.Sections[0].ID)
		require.Len(t, next.Sections[0].Questions, 2)
		added := next.Sections[0].Questions[1]
		require.NotEmpty(t, added.ID)
		require.NotEqual(t, "q1", added.ID)
		require.Equal(t, "Explain hoisting", added.Text)
		require.Equal(t, "JS", added.Section)
		require.False(t, added.IsAnswered)
		// исходное значение не изменилось
		require.Len(t, source.Sections[0].Questions, 1)
	})

	t.Run(`AddQuestion silently creates missing section`, func(t *testing.T) {
		source := testTemplate()
		next := AddQuestion(source, "NoSuchSection", QuestionDraft{Text: "New one"})

		require.Len(t, next.Sections, 3)
		created := next.Sections[2]
		require.NotEmpty(t, created.ID)
		require.Equal(t, "NoSuchSection", created.Name)
		require.Len(t, created.Questions, 1)
		require.Equal(t, "NoSuchSection", created.Questions[0].Section)
		require.Equal(t, source.Sections[0], next.Sections[0])
		require.Equal(t, source.Sections[1], next.Sections[1])
	})

	t.Run(`RenameSection rewrites denormalized section on every question`, func(t *testing.T) {
		source := AddQuestion(testTemplate(), "JS", QuestionDraft{Text: "Explain hoisting"})
		next, err := RenameSection(source, "s1", "JavaScript")
		require.Nil(t, err)

		require.Equal(t, "s1", next.Sections[0].ID)
		require.Equal(t, "JavaScript", next.Sections[0].Name)
		for _, question := range next.Sections[0].Questions {
			require.Equal(t, "JavaScript", question.Section)
		}
		// вопросы других секций не тронуты
		require.Equal(t, source.Sections[1], next.Sections[1])
	})

	t.Run(`RenameSection of unknown id fails`, func(t *testing.T) {
		_, err := RenameSection(testTemplate(), "missing", "X")
		require.NotNil(t, err)
	})

	t.Run(`DeleteSection discards section with questions`, func(t *testing.T) {
		next, err := DeleteSection(testTemplate(), "s1")
		require.Nil(t, err)
		require.Len(t, next.Sections, 1)
		require.Equal(t, "s2", next.Sections[0].ID)
	})

	t.Run(`EditQuestion restamps denormalized section name`, func(t *testing.T) {
		source := testTemplate()
		// денормализованное поле испорчено, правка должна его восстановить
		source.Sections[0].Questions[0].Section = "stale"
		next, err := EditQuestion(source, "s1", "q1", "What is a closure, really?", "lexical scope")
		require.Nil(t, err)

		edited := next.Sections[0].Questions[0]
		require.Equal(t, "What is a closure, really?", edited.Text)
		require.Equal(t, "lexical scope", edited.Answer)
		require.Equal(t, "JS", edited.Section)
	})

	t.Run(`DeleteQuestion removes only the target`, func(t *testing.T) {
		source := AddQuestion(testTemplate(), "JS", QuestionDraft{Text: "Explain hoisting"})
		next, err := DeleteQuestion(source, "s1", "q1")
		require.Nil(t, err)
		require.Len(t, next.Sections[0].Questions, 1)
		require.Equal(t, "Explain hoisting", next.Sections[0].Questions[0].Text)
		require.Equal(t, source.Sections[1], next.Sections[1])
	})

	t.Run(`BulkInsertQuestions appends by default`, func(t *testing.T) {
		drafts := []QuestionDraft{{Text: "a"}, {Text: "b", Answer: "bb"}}
		next, err := BulkInsertQuestions(testTemplate(), "s1", drafts, false)
		require.Nil(t, err)
		require.Len(t, next.Sections[0].Questions, 3)
		require.Equal(t, "a", next.Sections[0].Questions[1].Text)
		require.Equal(t, "JS", next.Sections[0].Questions[2].Section)
		require.Equal(t, "bb", next.Sections[0].Questions[2].Answer)
	})

	t.Run(`BulkInsertQuestions replaces when deleteExisting`, func(t *testing.T) {
		drafts := []QuestionDraft{{Text: "a"}}
		next, err := BulkInsertQuestions(testTemplate(), "s1", drafts, true)
		require.Nil(t, err)
		require.Len(t, next.Sections[0].Questions, 1)
		require.Equal(t, "a", next.Sections[0].Questions[0].Text)
	})

	t.Run(`BulkInsertQuestions into unknown section fails without change`, func(t *testing.T) {
		source := testTemplate()
		_, err := BulkInsertQuestions(source, "missing", []QuestionDraft{{Text: "a"}}, true)
		require.NotNil(t, err)
		require.Equal(t, testTemplate(), source)
	})

	t.Run(`BulkInsertSections appends generated sections wholesale`, func(t *testing.T) {
		drafts := []SectionDraft{
			{Name: "SQL", Questions: []QuestionDraft{{Text: "What is a join?", Answer: "..."}}},
			{Name: "Networking"},
		}
		next := BulkInsertSections(testTemplate(), drafts)
		require.Len(t, next.Sections, 4)
		require.Equal(t, "SQL", next.Sections[2].Name)
		require.NotEmpty(t, next.Sections[2].ID)
		require.Equal(t, "SQL", next.Sections[2].Questions[0].Section)
		require.Len(t, next.Sections[3].Questions, 0)
	})

	t.Run(`DeepCopy remints every id and shares no references`, func(t *testing.T) {
		source := testTemplate()
		copied := DeepCopy(source, "Frontend Copy")

		require.Equal(t, "Frontend Copy", copied.Name)
		require.NotEqual(t, source.ID, copied.ID)
		sourceIDs := map[string]bool{source.ID: true}
		for _, section := range source.Sections {
			sourceIDs[section.ID] = true
			for _, question := range section.Questions {
				sourceIDs[question.ID] = true
			}
		}
		for idx, section := range copied.Sections {
			require.False(t, sourceIDs[section.ID])
			require.Equal(t, source.Sections[idx].Name, section.Name)
			for qIdx, question := range section.Questions {
				require.False(t, sourceIDs[question.ID])
				require.Equal(t, source.Sections[idx].Questions[qIdx].Text, question.Text)
				require.Equal(t, source.Sections[idx].Questions[qIdx].Answer, question.Answer)
				require.Equal(t, source.Sections[idx].Questions[qIdx].Section, question.Section)
			}
		}

		// правка копии не должна затрагивать источник
		copied.Sections[0].Name = "Changed"
		copied.Sections[0].Questions[0].Text = "Changed"
		require.Equal(t, "JS", source.Sections[0].Name)
		require.Equal(t, "What is a closure?", source.Sections[0].Questions[0].Text)
	})

	t.Run(`CopyCandidateQuestions strips interview fields and remints ids`, func(t *testing.T) {
		isCorrect := true
		candidateQuestions := []dbmodels.Question{
			{ID: "cq1", Text: "Explain indexes", Section: "SQL", Answer: "b-tree", IsAnswered: true, IsCorrect: &isCorrect},
			{ID: "cq2", Text: "What is ACID?", Section: "SQL", IsAnswered: true},
		}
		next := CopyCandidateQuestions(testTemplate(), "Databases", candidateQuestions)

		require.Len(t, next.Sections, 3)
		created := next.Sections[2]
		require.Equal(t, "Databases", created.Name)
		require.Len(t, created.Questions, 2)
		for idx, question := range created.Questions {
			require.NotEqual(t, candidateQuestions[idx].ID, question.ID)
			require.Equal(t, candidateQuestions[idx].Text, question.Text)
			require.Equal(t, candidateQuestions[idx].Answer, question.Answer)
			require.Equal(t, "Databases", question.Section)
			require.False(t, question.IsAnswered)
			require.Nil(t, question.IsCorrect)
		}
	})
}

func TestSameName(t *testing.T) {
	t.Run(`trims surrounding whitespace and folds case`, func(t *testing.T) {
		require.True(t, SameName("Backend", "backend "))
		require.True(t, SameName("  BACKEND", "Backend"))
		require.False(t, SameName("Backend", "Back end"))
	})

	t.Run(`HasSectionName rejects duplicate with trailing space`, func(t *testing.T) {
		template := dbmodels.Template{
			Sections: dbmodels.TemplateSections{{ID: "s1", Name: "backend "}},
		}
		require.True(t, HasSectionName(template, "Backend"))
		require.False(t, HasSectionName(template, "Frontend"))
	})
}
