package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/courtdesigner/internal/aidesign"
	"github.com/Faultbox/courtdesigner/internal/config"
	"github.com/Faultbox/courtdesigner/internal/design"
	"github.com/Faultbox/courtdesigner/internal/i18n"
	"github.com/Faultbox/courtdesigner/internal/session"
)

type fakeBackend struct {
	text string
	err  error
}

func (f *fakeBackend) GenerateJSON(ctx context.Context, req aidesign.Request) (string, error) {
	return f.text, f.err
}

func newTestServer(t *testing.T, opts session.Options) (*Server, *session.Session) {
	t.Helper()
	if opts.Store == nil {
		opts.Store = i18n.NewMemoryStore(i18n.Indonesian)
	}
	sess := session.New(opts)
	return New(config.Default().Server, sess), sess
}

func do(t *testing.T, srv *Server, method, path, body string, headers ...string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, session.Options{})

	resp, body := do(t, srv, http.MethodGet, "/health/live", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"alive"}`, string(body))
	assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))

	resp, body = do(t, srv, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ready","aiEnabled":false}`, string(body))
}

func TestRequestIDIsKept(t *testing.T) {
	srv, _ := newTestServer(t, session.Options{})

	resp, _ := do(t, srv, http.MethodGet, "/health/live", "", HeaderRequestID, "abc-123")
	assert.Equal(t, "abc-123", resp.Header.Get(HeaderRequestID))
}

func TestGetDesignDefaults(t *testing.T) {
	srv, _ := newTestServer(t, session.Options{})

	resp, body := do(t, srv, http.MethodGet, "/api/v1/design", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decode[designResponse](t, body)
	assert.Equal(t, design.Default(), got.Design)
	assert.Equal(t, 15, got.OpacityPercent)
	assert.False(t, got.Busy)
}

func TestPatchDesign(t *testing.T) {
	srv, sess := newTestServer(t, session.Options{})

	resp, body := do(t, srv, http.MethodPatch, "/api/v1/design", `{"courtColor":"#FF0000","glassOpacity":0.9}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	got := decode[designResponse](t, body)
	assert.Equal(t, "#FF0000", got.Design.CourtColor)
	assert.Equal(t, design.MaxGlassOpacity, got.Design.GlassOpacity)
	assert.Equal(t, 50, got.OpacityPercent)
	assert.Equal(t, got.Design, sess.Design())
}

func TestPatchDesignRejectsBadInput(t *testing.T) {
	srv, sess := newTestServer(t, session.Options{})

	tests := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"not json", "{"},
		{"unknown field", `{"roofColor":"#000000"}`},
		{"no fields", `{}`},
		{"wrong type", `{"glassOpacity":"high"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, srv, http.MethodPatch, "/api/v1/design", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Contains(t, string(body), `"error"`)
		})
	}
	assert.Equal(t, design.Default(), sess.Design())
}

func TestResetDesign(t *testing.T) {
	srv, sess := newTestServer(t, session.Options{})
	courtColor := "#000000"
	sess.Update(design.Patch{CourtColor: &courtColor})

	resp, body := do(t, srv, http.MethodPost, "/api/v1/design/reset", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, design.Default(), decode[designResponse](t, body).Design)
}

func TestGenerateDesign(t *testing.T) {
	gen := aidesign.New(&fakeBackend{text: `{"netColor":"#222222","glassOpacity":0.01}`})
	srv, _ := newTestServer(t, session.Options{Designer: gen})

	resp, body := do(t, srv, http.MethodPost, "/api/v1/design/generate", `{"prompt":"night match"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	got := decode[designResponse](t, body)
	assert.Equal(t, "#222222", got.Design.NetColor)
	assert.Equal(t, design.MinGlassOpacity, got.Design.GlassOpacity)
	assert.Equal(t, design.Default().CourtColor, got.Design.CourtColor)
}

func TestGenerateDesignFailure(t *testing.T) {
	gen := aidesign.New(&fakeBackend{text: "not json"})
	srv, sess := newTestServer(t, session.Options{Designer: gen})

	resp, body := do(t, srv, http.MethodPost, "/api/v1/design/generate", `{"prompt":"neon"}`)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	got := decode[map[string]string](t, body)
	assert.Equal(t, i18n.T(i18n.Indonesian, i18n.KeyGenerationFailed, nil), got["error"])
	assert.Equal(t, design.Default(), sess.Design())
}

func TestGenerateDesignUnavailable(t *testing.T) {
	srv, _ := newTestServer(t, session.Options{Store: i18n.NewMemoryStore(i18n.English)})

	resp, body := do(t, srv, http.MethodPost, "/api/v1/design/generate", `{"prompt":"neon"}`)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, i18n.T(i18n.English, i18n.KeyAIUnavailable, nil), decode[map[string]string](t, body)["error"])
}

func TestGetScene(t *testing.T) {
	srv, _ := newTestServer(t, session.Options{})

	resp, body := do(t, srv, http.MethodGet, "/api/v1/scene", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap struct {
		Seq    uint64        `json:"seq"`
		Design design.Design `json:"design"`
		Locale string        `json:"locale"`
		Scene  struct {
			Name     string            `json:"name"`
			Children []json.RawMessage `json:"children"`
		} `json:"scene"`
	}
	require.NoError(t, json.Unmarshal(body, &snap))
	assert.Equal(t, "id", snap.Locale)
	assert.Equal(t, "court", snap.Scene.Name)
	assert.NotEmpty(t, snap.Scene.Children)
	assert.Contains(t, string(body), "Panjang: 20m")
}

func TestLocale(t *testing.T) {
	store := i18n.NewMemoryStore(i18n.Indonesian)
	srv, sess := newTestServer(t, session.Options{Store: store})

	resp, body := do(t, srv, http.MethodGet, "/api/v1/locale", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, i18n.Indonesian, decode[localeResponse](t, body).Language)

	resp, body = do(t, srv, http.MethodPut, "/api/v1/locale", `{"language":"en"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, i18n.English, sess.Locale())
	assert.Equal(t, 1, store.Saves())

	_, body = do(t, srv, http.MethodGet, "/api/v1/scene", "")
	assert.Contains(t, string(body), "Length: 20m")

	resp, _ = do(t, srv, http.MethodPut, "/api/v1/locale", `{"language":"fr"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, i18n.English, sess.Locale())
}

func TestMessages(t *testing.T) {
	srv, _ := newTestServer(t, session.Options{})

	tests := []struct {
		name    string
		path    string
		headers []string
		want    i18n.Locale
	}{
		{name: "session locale", path: "/api/v1/messages", want: i18n.Indonesian},
		{name: "query", path: "/api/v1/messages?lang=en", want: i18n.English},
		{name: "accept-language", path: "/api/v1/messages", headers: []string{"Accept-Language", "en-US,en;q=0.9"}, want: i18n.English},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, srv, http.MethodGet, tt.path, "", tt.headers...)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			got := decode[messagesResponse](t, body)
			assert.Equal(t, tt.want, got.Language)
			assert.Equal(t, i18n.T(tt.want, i18n.KeyAppTitle, nil), got.Messages[i18n.KeyAppTitle])
			assert.NotContains(t, got.Messages, i18n.KeyAISystemInstruction)
			assert.NotContains(t, got.Messages, i18n.KeyAIPrompt)
			assert.Contains(t, got.Messages[i18n.KeyGlassOpacityPercent], "15%")
		})
	}

	resp, _ := do(t, srv, http.MethodGet, "/api/v1/messages?lang=xx", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestNotFound(t *testing.T) {
	srv, _ := newTestServer(t, session.Options{})

	resp, body := do(t, srv, http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), `"error"`)
}
