package provider

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/groovehire/backend/internal/analysis/intent"
	"github.com/groovehire/backend/internal/model/provider"
	"github.com/groovehire/backend/internal/service/matcher"
	"github.com/groovehire/backend/pkg/utils"
)

// Handler serves the provider directory.
type Handler struct {
	providers provider.Store
	matcher   *matcher.Matcher
}

// New creates the provider handler.
func New(providers provider.Store) *Handler {
	return &Handler{
		providers: providers,
		matcher:   matcher.New(providers),
	}
}

// RegisterRoutes mounts the directory routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/services", h.handleListServices)
	r.Get("/providers", h.handleListProviders)
	r.Get("/providers/{providerID}", h.handleGetProvider)
}

func (h *Handler) handleListServices(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, provider.Services())
}

// handleListProviders returns the best matches for ?service= near
// ?location=. A free-text ?message= fills in whichever of the two is missing.
// With no service at all the whole directory is listed.
func (h *Handler) handleListProviders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	message := query.Get("message")
	service := query.Get("service")
	if service == "" && message != "" {
		if decision := intent.Detect(message); decision.Matched() {
			service = decision.Service.Name
		}
	}
	if service == "" {
		utils.RespondJSON(w, http.StatusOK, h.providers.List())
		return
	}

	location := query.Get("location")
	if location == "" {
		location = matcher.ExtractLocation(message)
	}

	found := h.matcher.FindProviders(service, location)
	if found == nil {
		found = []provider.Provider{}
	}
	utils.RespondJSON(w, http.StatusOK, found)
}

func (h *Handler) handleGetProvider(w http.ResponseWriter, r *http.Request) {
	p, ok := h.providers.FindByID(chi.URLParam(r, "providerID"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "provider not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, p)
}
