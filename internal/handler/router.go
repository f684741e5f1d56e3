package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/groovehire/backend/internal/handler/chat"
	"github.com/groovehire/backend/internal/handler/contact"
	"github.com/groovehire/backend/internal/handler/live"
	"github.com/groovehire/backend/internal/handler/profile"
	"github.com/groovehire/backend/internal/handler/provider"
	"github.com/groovehire/backend/internal/handler/stream"
	middlewarePkg "github.com/groovehire/backend/internal/middleware"
	profileModel "github.com/groovehire/backend/internal/model/profile"
	providerModel "github.com/groovehire/backend/internal/model/provider"
	chatService "github.com/groovehire/backend/internal/service/chat"
	"github.com/groovehire/backend/internal/service/messaging"
	"github.com/groovehire/backend/pkg/utils"
)

// Dependencies are the services the HTTP layer is wired to.
type Dependencies struct {
	Chat           *chatService.Service
	Providers      providerModel.Store
	Profiles       profileModel.Store
	Linker         messaging.Linker
	AllowedOrigins []string
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(deps.AllowedOrigins))

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", handleHealth)

		chat.New(deps.Chat).RegisterRoutes(api)
		stream.New(deps.Chat).RegisterRoutes(api)
		live.New(deps.Chat, deps.AllowedOrigins).RegisterRoutes(api)
		provider.New(deps.Providers).RegisterRoutes(api)
		contact.New(deps.Linker).RegisterRoutes(api)

		if deps.Profiles != nil {
			profile.New(deps.Profiles).RegisterRoutes(api)
		}
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "GrooveHire",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
