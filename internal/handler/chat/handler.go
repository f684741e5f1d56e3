package chat

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/groovehire/backend/internal/model/chat"
	chatService "github.com/groovehire/backend/internal/service/chat"
	"github.com/groovehire/backend/internal/service/simulator"
	"github.com/groovehire/backend/pkg/utils"
)

// Handler serves the conversation REST endpoints.
type Handler struct {
	chatSvc *chatService.Service
}

// New creates the chat handler.
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes mounts the chat routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/quick-replies", h.handleQuickReplies)
	r.Post("/conversations", h.handleCreate)
	r.Route("/conversations/{conversationID}", func(r chi.Router) {
		r.Get("/", h.handleSnapshot)
		r.Delete("/", h.handleDiscard)
		r.Post("/messages", h.handleMessage)
		r.Post("/quick-replies", h.handleQuickReply)
	})
}

// SubmitResponse reports what happened to a submission.
type SubmitResponse struct {
	Accepted bool        `json:"accepted"`
	Entry    *chat.Entry `json:"entry,omitempty"`
	Pending  bool        `json:"pending"`
}

func (h *Handler) handleQuickReplies(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, simulator.QuickReplies)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	conv, err := h.chatSvc.Create(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusCreated, conv.Snapshot())
}

func (h *Handler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.chatSvc.Snapshot(r.Context(), chi.URLParam(r, "conversationID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, snap)
}

func (h *Handler) handleDiscard(w http.ResponseWriter, r *http.Request) {
	if err := h.chatSvc.Discard(r.Context(), chi.URLParam(r, "conversationID")); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text string `json:"text"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.submit(w, r, func(conv *chatService.Conversation) (chat.Entry, bool) {
		return conv.AppendUser(payload.Text)
	})
}

func (h *Handler) handleQuickReply(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Label string `json:"label"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.submit(w, r, func(conv *chatService.Conversation) (chat.Entry, bool) {
		return conv.QuickReply(payload.Label)
	})
}

// submit applies fn to the addressed conversation. Blank submissions are
// acknowledged with accepted=false rather than an error.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request, fn func(*chatService.Conversation) (chat.Entry, bool)) {
	conv, err := h.chatSvc.Get(r.Context(), chi.URLParam(r, "conversationID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	entry, ok := fn(conv)
	if !ok {
		utils.RespondJSON(w, http.StatusOK, SubmitResponse{Accepted: false, Pending: conv.Pending()})
		return
	}
	utils.RespondJSON(w, http.StatusAccepted, SubmitResponse{Accepted: true, Entry: &entry, Pending: conv.Pending()})
}

func respondServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, chatService.ErrConversationNotFound) {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondError(w, http.StatusInternalServerError, err.Error())
}
