package chat

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groovehire/backend/internal/model/chat"
	chatservice "github.com/groovehire/backend/internal/service/chat"
	"github.com/groovehire/backend/internal/service/simulator"
)

func setupRouter() (*chi.Mux, *chatservice.Service) {
	chatSvc := chatservice.NewService(chatservice.Options{ReplyDelay: time.Millisecond})
	handler := New(chatSvc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, chatSvc
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func createConversation(t *testing.T, r http.Handler) chat.Snapshot {
	t.Helper()
	resp := doJSON(t, r, http.MethodPost, "/conversations", nil)
	require.Equal(t, http.StatusCreated, resp.Code)

	var snap chat.Snapshot
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &snap))
	return snap
}

func TestCreateConversation(t *testing.T) {
	r, _ := setupRouter()

	snap := createConversation(t, r)
	assert.NotEmpty(t, snap.ID)
	require.Len(t, snap.Entries, 1)
	assert.Equal(t, simulator.Greeting, snap.Entries[0].Text)
	assert.False(t, snap.Pending)
}

func TestPostMessageSchedulesReply(t *testing.T) {
	r, svc := setupRouter()
	snap := createConversation(t, r)

	resp := doJSON(t, r, http.MethodPost, "/conversations/"+snap.ID+"/messages", map[string]string{"text": "Plumbing"})
	require.Equal(t, http.StatusAccepted, resp.Code)

	var submit SubmitResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &submit))
	assert.True(t, submit.Accepted)
	require.NotNil(t, submit.Entry)
	assert.Equal(t, 2, submit.Entry.ID)
	assert.Equal(t, chat.SenderUser, submit.Entry.Sender)

	svc.Drain()

	resp = doJSON(t, r, http.MethodGet, "/conversations/"+snap.ID+"/", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var after chat.Snapshot
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &after))
	require.Len(t, after.Entries, 3)
	assert.Equal(t, chat.SenderBot, after.Entries[2].Sender)
	assert.Contains(t, after.Entries[2].Text, "location")
}

func TestPostBlankMessageIsIgnored(t *testing.T) {
	r, svc := setupRouter()
	snap := createConversation(t, r)

	resp := doJSON(t, r, http.MethodPost, "/conversations/"+snap.ID+"/messages", map[string]string{"text": "   "})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"accepted":false,"pending":false}`, resp.Body.String())

	conv, err := svc.Get(t.Context(), snap.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, conv.Len())
}

func TestPostQuickReply(t *testing.T) {
	r, svc := setupRouter()
	snap := createConversation(t, r)

	resp := doJSON(t, r, http.MethodPost, "/conversations/"+snap.ID+"/quick-replies", map[string]string{"label": "House cleaning"})
	require.Equal(t, http.StatusAccepted, resp.Code)
	svc.Drain()

	got, err := svc.Snapshot(t.Context(), snap.ID)
	require.NoError(t, err)
	require.Len(t, got.Entries, 3)
	assert.Equal(t, "House cleaning", got.Entries[1].Text)
	assert.Contains(t, got.Entries[2].Text, "deep clean")
}

func TestPostMessageInvalidBody(t *testing.T) {
	r, _ := setupRouter()
	snap := createConversation(t, r)

	req := httptest.NewRequest(http.MethodPost, "/conversations/"+snap.ID+"/messages", bytes.NewReader([]byte("{")))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUnknownConversation(t *testing.T) {
	r, _ := setupRouter()

	resp := doJSON(t, r, http.MethodPost, "/conversations/missing/messages", map[string]string{"text": "hi"})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = doJSON(t, r, http.MethodGet, "/conversations/missing/", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDiscardConversation(t *testing.T) {
	r, _ := setupRouter()
	snap := createConversation(t, r)

	resp := doJSON(t, r, http.MethodDelete, "/conversations/"+snap.ID+"/", nil)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = doJSON(t, r, http.MethodDelete, "/conversations/"+snap.ID+"/", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestQuickRepliesList(t *testing.T) {
	r, _ := setupRouter()

	resp := doJSON(t, r, http.MethodGet, "/quick-replies", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var labels []string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &labels))
	assert.Equal(t, simulator.QuickReplies, labels)
}
