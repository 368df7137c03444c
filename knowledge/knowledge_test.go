package knowledge

import (
	"testing"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsDuplicateTags(t *testing.T) {
	_, err := New(
		Entry{IntentTag: "saludo", ResponseTemplates: []string{"hola"}},
		Entry{IntentTag: "saludo", ResponseTemplates: []string{"otra vez"}},
	)
	assert.ErrorContains(t, err, "duplicate intent tag")
}

func TestNew_RejectsEmptyTag(t *testing.T) {
	_, err := New(Entry{ResponseTemplates: []string{"sin tag"}})
	assert.ErrorContains(t, err, "without intent tag")
}

func TestBase_FindAndOrder(t *testing.T) {
	base, err := New(
		Entry{IntentTag: "saludo"},
		Entry{IntentTag: "despedida"},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, base.Len())

	entry, ok := base.Find("despedida")
	require.True(t, ok)
	assert.Equal(t, "despedida", entry.IntentTag)

	_, ok = base.Find("inexistente")
	assert.False(t, ok)

	entries := base.Entries()
	assert.Equal(t, "saludo", entries[0].IntentTag, "declaration order must be preserved")
}

func TestBase_CoursesSortedByID(t *testing.T) {
	base, err := New(Entry{
		IntentTag: "cursos",
		Courses: map[string]core.CourseInfo{
			"2": {ID: "2", DisplayName: "Analitica de Datos"},
			"1": {ID: "1", DisplayName: "Inteligencia Artificial"},
		},
	})
	require.NoError(t, err)

	courses := base.Courses()
	require.Len(t, courses, 2)
	assert.Equal(t, "1", courses[0].ID)
	assert.Equal(t, "2", courses[1].ID)

	c, ok := base.Course("2")
	require.True(t, ok)
	assert.Equal(t, "Analitica de Datos", c.DisplayName)

	_, ok = base.Course("404")
	assert.False(t, ok)
}

func TestBase_Validate(t *testing.T) {
	base, err := New(Entry{
		IntentTag: "cursos",
		Courses: map[string]core.CourseInfo{
			"1": {
				ID:          "1",
				DisplayName: "Curso Roto",
				Details:     map[core.DetailKey]string{core.DetailSchedule: "Sábados"},
			},
		},
	})
	require.NoError(t, err)

	assert.ErrorIs(t, base.Validate(), core.ErrCourseDataIncomplete)
}

func TestEmpty(t *testing.T) {
	base := Empty()
	assert.Equal(t, 0, base.Len())
	assert.Empty(t, base.Courses())
}
