package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groovehire/backend/internal/model/profile"
	"github.com/groovehire/backend/internal/model/provider"
	chatService "github.com/groovehire/backend/internal/service/chat"
	"github.com/groovehire/backend/internal/service/messaging"
)

func newTestRouter() http.Handler {
	return NewRouter(Dependencies{
		Chat:           chatService.NewService(chatService.Options{ReplyDelay: time.Millisecond}),
		Providers:      provider.NewMemoryStore(provider.Seed()),
		Profiles:       profile.NewMemoryStore(),
		Linker:         messaging.Linker{Number: "254700000000", Greeting: "Hi"},
		AllowedOrigins: []string{"http://localhost:3000"},
	})
}

func TestHealth(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "GrooveHire", body["service"])
}

func TestRoutesMounted(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/quick-replies", "", http.StatusOK},
		{http.MethodPost, "/api/conversations", "", http.StatusCreated},
		{http.MethodGet, "/api/services", "", http.StatusOK},
		{http.MethodGet, "/api/providers?service=plumbing", "", http.StatusOK},
		{http.MethodGet, "/api/contact-link", "", http.StatusOK},
		{http.MethodGet, "/api/profile", "", http.StatusNotFound},
		{http.MethodGet, "/api/conversations/unknown/", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		assert.Equal(t, tc.want, resp.Code, "%s %s", tc.method, tc.path)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/conversations", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, "http://localhost:3000", resp.Header().Get("Access-Control-Allow-Origin"))
}
