package dialogmesh_test

import (
	"context"
	"testing"

	"github.com/hupe1980/dialogmesh"
	"github.com/hupe1980/dialogmesh/audit"
	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBot_DefaultsAreUsable(t *testing.T) {
	bot := dialogmesh.New()

	resp, err := bot.Handle(context.Background(), "u1", "hola")
	require.NoError(t, err)
	// An empty knowledge base resolves nothing; the fallback still answers.
	assert.NotEmpty(t, resp.Text)

	assert.NotNil(t, bot.Engine())
	assert.NotNil(t, bot.Store())
	assert.NotNil(t, bot.Sink())
}

func TestBot_FullConversation(t *testing.T) {
	sink := audit.NewInMemorySink()
	bot := dialogmesh.New(func(o *dialogmesh.Options) {
		o.Knowledge = testutil.Base()
		o.Sink = sink
	})
	ctx := context.Background()

	resp, err := bot.Handle(ctx, "u1", "hola")
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "Elige una opción:")

	resp, err = bot.Handle(ctx, "u1", "1")
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "Inteligencia Artificial")

	resp, err = bot.Handle(ctx, "u1", "7")
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "inscribirte")

	resp, err = bot.Handle(ctx, "u1", "Nombre: Ana\nDocumento: 123\nTelefono: 3000000\nCorreo: a@b.com")
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "¡Inscripción completada!")

	events := sink.ByKind(core.KindRegistrationCompleted)
	require.Len(t, events, 1)
	assert.Equal(t, "1", events[0].(core.RegistrationCompleted).Record.CourseID)
}

func TestBot_CustomWelcomeAndFallback(t *testing.T) {
	bot := dialogmesh.New(func(o *dialogmesh.Options) {
		o.Knowledge = testutil.Base()
		o.DefaultResponse = "No entendí."
		o.WelcomeMessage = "Bienvenido {user}."
	})
	ctx := context.Background()

	resp, err := bot.Handle(ctx, "u1", "xyzqqq")
	require.NoError(t, err)
	assert.Equal(t, "No entendí.", resp.Text)

	resp, err = bot.Handle(ctx, "u1", "menu")
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "Bienvenido u1.")
}
