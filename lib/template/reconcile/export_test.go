package reconcile

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestExportImport(t *testing.T) {
	t.Run(`export is deterministic and keeps ids`, func(t *testing.T) {
		template := testTemplate()
		first, err := Export(template)
		require.Nil(t, err)
		second, err := Export(template)
		require.Nil(t, err)
		require.Equal(t, first, second)

		var decoded map[string]interface{}
		require.Nil(t, json.Unmarshal(first, &decoded))
		require.Equal(t, "t1", decoded["id"])
		require.Equal(t, "Frontend", decoded["name"])
	})

	t.Run(`import after export keeps content but remints identity`, func(t *testing.T) {
		source := testTemplate()
		raw, err := Export(source)
		require.Nil(t, err)

		imported, err := Import(raw, []string{source.Name})
		require.Nil(t, err)

		require.Equal(t, "Frontend - Imported", imported.Name)
		require.NotEqual(t, source.ID, imported.ID)
		require.Len(t, imported.Sections, len(source.Sections))
		for idx, section := range imported.Sections {
			require.NotEqual(t, source.Sections[idx].ID, section.ID)
			require.Equal(t, source.Sections[idx].Name, section.Name)
			require.Len(t, section.Questions, len(source.Sections[idx].Questions))
			for qIdx, question := range section.Questions {
				require.NotEqual(t, source.Sections[idx].Questions[qIdx].ID, question.ID)
				require.Equal(t, source.Sections[idx].Questions[qIdx].Text, question.Text)
				require.Equal(t, source.Sections[idx].Questions[qIdx].Answer, question.Answer)
				require.Equal(t, source.Sections[idx].Questions[qIdx].Section, question.Section)
				require.False(t, question.IsAnswered)
			}
		}
	})

	t.Run(`imported name gets numbered when suffix is taken`, func(t *testing.T) {
		existing := []string{"Frontend", "Frontend - Imported", "frontend - imported (1)"}
		require.Equal(t, "Frontend - Imported (2)", ImportedName("Frontend", existing))
		require.Equal(t, "Backend - Imported", ImportedName("Backend", existing))
	})

	t.Run(`broken json is rejected as invalid file`, func(t *testing.T) {
		_, err := Import([]byte("{not json"), nil)
		require.NotNil(t, err)
		require.True(t, errors.Is(err, ErrInvalidFile))
	})

	t.Run(`missing name invalidates the whole file`, func(t *testing.T) {
		_, err := Import([]byte(`{"sections":[]}`), nil)
		require.NotNil(t, err)
		require.True(t, errors.Is(err, ErrInvalidFile))
	})

	t.Run(`missing sections array invalidates the whole file`, func(t *testing.T) {
		_, err := Import([]byte(`{"name":"X"}`), nil)
		require.NotNil(t, err)
		require.True(t, errors.Is(err, ErrInvalidFile))
	})

	t.Run(`section without questions array invalidates the whole file`, func(t *testing.T) {
		raw := `{"name":"X","sections":[{"id":"s1","name":"JS"}]}`
		_, err := Import([]byte(raw), nil)
		require.NotNil(t, err)
		require.True(t, errors.Is(err, ErrInvalidFile))
	})

	t.Run(`question without section field invalidates the whole file`, func(t *testing.T) {
		raw := `{"name":"X","sections":[{"id":"s1","name":"JS","questions":[{"id":"q1","text":"?"}]}]}`
		_, err := Import([]byte(raw), nil)
		require.NotNil(t, err)
		require.True(t, errors.Is(err, ErrInvalidFile))
	})

	t.Run(`empty questions list is a valid file`, func(t *testing.T) {
		raw := `{"name":"X","sections":[{"id":"s1","name":"JS","questions":[]}]}`
		imported, err := Import([]byte(raw), nil)
		require.Nil(t, err)
		require.Equal(t, "X - Imported", imported.Name)
		require.Len(t, imported.Sections, 1)
		require.Len(t, imported.Sections[0].Questions, 0)
	})
}
