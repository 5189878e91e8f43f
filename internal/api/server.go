package api

import (
	"log/slog"
	"net/http"
	"permit-portal/internal/config"
	"permit-portal/internal/database"
	"permit-portal/internal/logging"
	"permit-portal/internal/storage"
	"permit-portal/internal/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	config   *config.Config
	store    *database.Store
	storage  *storage.MemoryStorage
	wsHub    *websocket.Hub
	logger   *logging.SlogLogger
	validate *validator.Validate
	limiter  *IPRateLimiter
}

func NewServer(cfg *config.Config, store *database.Store, storage *storage.MemoryStorage, wsHub *websocket.Hub, logger *logging.SlogLogger) *Server {
	return &Server{
		config:   cfg,
		store:    store,
		storage:  storage,
		wsHub:    wsHub,
		logger:   logger,
		validate: newValidator(),
		limiter:  NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
	}
}

// Routes builds the HTTP handler serving the whole API.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(s.logger.Slog().Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	r.Use(s.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "Content-Length"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
	})

	r.Get("/health", s.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Get("/ws", s.ServeWsHandler)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(s.RateLimitMiddleware)
			r.Post("/auth/register", s.RegisterHandler)
			r.Post("/auth/login", s.LoginHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)

			r.Get("/auth/me", s.GetCurrentUserHandler)
			r.Patch("/auth/me", s.UpdateCurrentUserHandler)

			r.Post("/projects", s.CreateProjectHandler)
			r.Get("/projects", s.ListProjectsHandler)
			r.Get("/projects/{id}", s.GetProjectHandler)
			r.Put("/projects/{id}", s.UpdateProjectHandler)
			r.Delete("/projects/{id}", s.DeleteProjectHandler)

			r.Post("/projects/{id}/files", s.UploadFileHandler)
			r.Get("/projects/{id}/files", s.ListProjectFilesHandler)

			r.Get("/files/{fileId}", s.GetFileHandler)
			r.Get("/files/{fileId}/download", s.DownloadFileHandler)
			r.Delete("/files/{fileId}", s.DeleteFileHandler)

			r.Get("/events", s.GetEventsHandler)
		})
	})

	return r
}
