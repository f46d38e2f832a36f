package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"devd.dev/internal/content"
	"devd.dev/internal/middleware"
	"devd.dev/internal/services"
	"devd.dev/web"
)

// SetupRoutes configures all routes and returns the router.
// assetsDir is served at /image/; an empty value disables that route.
func SetupRoutes(store *content.Store, assetsDir string) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)

	// Initialize services
	projectService := services.NewProjectService(store)
	portfolioService := services.NewPortfolioService(store)

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService)
	portfolioHandler := NewPortfolioHandler(portfolioService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{index}", projectHandler.GetProject)

		r.Get("/hero", portfolioHandler.GetHero)
		r.Get("/clients", portfolioHandler.ListClients)
		r.Get("/resume", portfolioHandler.GetResume)
		r.Get("/tags", portfolioHandler.ListTags)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]any{
				"status":  "ok",
				"version": store.Version(),
			})
		})
	})

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(web.Static()))))
	if assetsDir != "" {
		r.Handle("/image/*", http.StripPrefix("/image", http.FileServer(http.Dir(assetsDir))))
	}

	r.Get("/", portfolioHandler.Page)

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("Error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
