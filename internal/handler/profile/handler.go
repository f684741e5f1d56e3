package profile

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/groovehire/backend/internal/model/profile"
	"github.com/groovehire/backend/pkg/utils"
)

// Handler exposes the locally stored freelancer profile.
type Handler struct {
	store profile.Store
}

// New creates the profile handler.
func New(store profile.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the profile routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/profile", h.handleLoad)
	r.Put("/profile", h.handleSave)
	r.Delete("/profile", h.handleDelete)
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.Load(r.Context())
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			utils.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Error().Err(err).Str("component", "profile").Msg("load failed")
		utils.RespondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	utils.RespondJSON(w, http.StatusOK, p)
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var p profile.Profile
	if err := utils.DecodeJSON(r, &p); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.store.Save(r.Context(), p)
	if err != nil {
		log.Error().Err(err).Str("component", "profile").Msg("save failed")
		utils.RespondError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}
	utils.RespondJSON(w, http.StatusOK, saved)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context()); err != nil {
		log.Error().Err(err).Str("component", "profile").Msg("delete failed")
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete profile")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
