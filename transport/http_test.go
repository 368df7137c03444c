package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBot struct {
	lastUser string
	lastText string
	resp     core.Response
	err      error
}

func (s *stubBot) Handle(_ context.Context, userID, text string) (core.Response, error) {
	s.lastUser = userID
	s.lastText = text
	return s.resp, s.err
}

func newTestServer(t *testing.T, bot *stubBot, allowed []string) *httptest.Server {
	t.Helper()
	h := NewHandler(bot, allowed, logging.NoOpLogger{})
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv
}

func postMessage(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/v1/messages", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &stubBot{}, nil)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestPostMessage(t *testing.T) {
	bot := &stubBot{resp: core.NewResponse("¡Hola! Soy el asistente académico.")}
	srv := newTestServer(t, bot, nil)

	resp := postMessage(t, srv, `{"user_id":"u1","text":"hola"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out core.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "¡Hola! Soy el asistente académico.", out.Text)
	assert.Nil(t, out.MediaRef)

	assert.Equal(t, "u1", bot.lastUser)
	assert.Equal(t, "hola", bot.lastText)
}

func TestPostMessage_MediaRef(t *testing.T) {
	bot := &stubBot{resp: core.NewResponse("mira esto").WithMedia("assets/menu.png")}
	srv := newTestServer(t, bot, nil)

	resp := postMessage(t, srv, `{"user_id":"u1","text":"menu"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out core.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotNil(t, out.MediaRef)
	assert.Equal(t, "assets/menu.png", *out.MediaRef)
}

func TestPostMessage_InvalidBody(t *testing.T) {
	srv := newTestServer(t, &stubBot{}, nil)

	resp := postMessage(t, srv, `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPostMessage_MissingUserID(t *testing.T) {
	srv := newTestServer(t, &stubBot{}, nil)

	resp := postMessage(t, srv, `{"text":"hola"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPostMessage_AllowListDropsSilently(t *testing.T) {
	bot := &stubBot{resp: core.NewResponse("nunca")}
	srv := newTestServer(t, bot, []string{"u1", "u2"})

	resp := postMessage(t, srv, `{"user_id":"intruso","text":"hola"}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, bot.lastUser, "engine must not see dropped users")

	resp = postMessage(t, srv, `{"user_id":"u2","text":"hola"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "u2", bot.lastUser)
}

func TestPostMessage_EngineErrorStillDeliversResponse(t *testing.T) {
	bot := &stubBot{
		resp: core.NewResponse("⚠️ Ocurrió un error interno."),
		err:  errors.New("authoring problem"),
	}
	srv := newTestServer(t, bot, nil)

	resp := postMessage(t, srv, `{"user_id":"u1","text":"2"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out core.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "⚠️ Ocurrió un error interno.", out.Text)
}
