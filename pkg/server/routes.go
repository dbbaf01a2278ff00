package server

import (
	"fmt"
	"net/http"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Hemachandra9899/Bacckend/internal"
	"github.com/Hemachandra9899/Bacckend/pkg/models"
)

var log = internal.GetLogger()

const ReadHeaderTimeout = 5 * time.Second

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) *http.Server {
	router := setupRouter(appState)
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", appState.Config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

func setupRouter(appState *models.AppState) *chi.Mux {
	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(SendVersion)
	router.Use(middleware.Heartbeat("/healthz"))

	if origin := appState.Config.Server.CORSAllowedOrigin; origin != "" {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{origin},
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	router.Get("/", HealthCheckHandler(appState))

	router.Route("/api", func(r chi.Router) {
		r.Post("/note", CreateNoteHandler(appState))
		r.Get("/getnotes", SearchNotesHandler(appState))
	})

	// Helper routes beyond the original API surface
	router.Route("/notes", func(r chi.Router) {
		r.Get("/", ListNotesHandler(appState))
		r.Delete("/{noteId}", DeleteNoteHandler(appState))
	})

	router.NotFound(NotFoundHandler())

	return router
}
