package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/groovehire/backend/internal/service/messaging"
	"github.com/groovehire/backend/pkg/utils"
)

// Handler hands out messaging deep links for the support line.
type Handler struct {
	linker messaging.Linker
}

// New creates the contact handler.
func New(linker messaging.Linker) *Handler {
	return &Handler{linker: linker}
}

// RegisterRoutes mounts the contact routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/contact-link", h.handleLink)
}

func (h *Handler) handleLink(w http.ResponseWriter, r *http.Request) {
	if h.linker.Number == "" {
		utils.RespondError(w, http.StatusServiceUnavailable, "messaging number not configured")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"url": h.linker.Link(r.URL.Query().Get("text")),
	})
}
