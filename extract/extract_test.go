package extract

import (
	"testing"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_LabeledBlock(t *testing.T) {
	got := Extract("Nombre: Ana\nDocumento: 123\nTelefono: 3000000\nCorreo: a@b.com")

	assert.Equal(t, core.PartialRegistration{
		Name:       "Ana",
		DocumentID: "123",
		Phone:      "3000000",
		Email:      "a@b.com",
	}, got)
}

func TestExtract_LabelSynonyms(t *testing.T) {
	got := Extract("Name: Ana Maria\nCédula: 1030567\nCelular: 3105551234\nEmail: ana@example.com")

	assert.Equal(t, "Ana Maria", got.Name)
	assert.Equal(t, "1030567", got.DocumentID)
	assert.Equal(t, "3105551234", got.Phone)
	assert.Equal(t, "ana@example.com", got.Email)
}

func TestExtract_InlineLabelsTruncateAtNextLabel(t *testing.T) {
	got := Extract("Nombre: Ana Maria Telefono: 3105551234")

	assert.Equal(t, "Ana Maria", got.Name)
	assert.Equal(t, "3105551234", got.Phone)
	assert.Empty(t, got.DocumentID)
}

func TestExtract_PositionalLines(t *testing.T) {
	got := Extract("Ana Maria\n1030567\n3105551234\nana@example.com")

	assert.Equal(t, core.PartialRegistration{
		Name:       "Ana Maria",
		DocumentID: "1030567",
		Phone:      "3105551234",
		Email:      "ana@example.com",
	}, got)
}

func TestExtract_PositionalSkipsBlankLines(t *testing.T) {
	got := Extract("\nAna Maria\n\n1030567\n3105551234\n\nana@example.com\n")

	assert.Equal(t, "Ana Maria", got.Name)
	assert.Equal(t, "ana@example.com", got.Email)
}

func TestExtract_PositionalNeedsFourLines(t *testing.T) {
	got := Extract("Ana Maria\n1030567\n3105551234")

	assert.Equal(t, core.PartialRegistration{}, got)
}

func TestExtract_PositionalPrefersEmailShapedLine(t *testing.T) {
	got := Extract("Ana Maria\n1030567\n3105551234\nCalle 10 #20-30\nana@example.com")

	assert.Equal(t, "ana@example.com", got.Email)
}

func TestExtract_EmailRescue(t *testing.T) {
	got := Extract("puedes escribirme a ana@example.com gracias")

	require.Equal(t, "ana@example.com", got.Email)
	assert.Empty(t, got.Name)
	assert.Empty(t, got.DocumentID)
	assert.Empty(t, got.Phone)
}

func TestExtract_SingleFieldPerTurn(t *testing.T) {
	assert.Equal(t, "Ana", Extract("Nombre: Ana").Name)
	assert.Equal(t, "1030567", Extract("documento 1030567").DocumentID)
	assert.Equal(t, "3105551234", Extract("Teléfono: 3105551234").Phone)
}

func TestExtract_NothingRecognizable(t *testing.T) {
	assert.Equal(t, core.PartialRegistration{}, Extract("hola buenas tardes"))
	assert.Equal(t, core.PartialRegistration{}, Extract(""))
}

func TestMatchEmail(t *testing.T) {
	email, ok := MatchEmail("escribeme a ana.perez+cursos@sub.example.com")
	require.True(t, ok)
	assert.Equal(t, "ana.perez+cursos@sub.example.com", email)

	_, ok = MatchEmail("sin arroba punto com")
	assert.False(t, ok)

	_, ok = MatchEmail("casi@un")
	assert.False(t, ok)
}
