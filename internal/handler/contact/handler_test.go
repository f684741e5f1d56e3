package contact

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/groovehire/backend/internal/service/messaging"
)

func TestContactLink(t *testing.T) {
	r := chi.NewRouter()
	New(messaging.Linker{Number: "+254 700 123 456", Greeting: "Hello GrooveHire"}).RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/contact-link", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"url":"https://wa.me/254700123456?text=Hello%20GrooveHire"}`, resp.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/contact-link?text=Need+a+plumber", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	assert.JSONEq(t, `{"url":"https://wa.me/254700123456?text=Need%20a%20plumber"}`, resp.Body.String())
}

func TestContactLinkWithoutNumber(t *testing.T) {
	r := chi.NewRouter()
	New(messaging.Linker{}).RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/contact-link", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}
