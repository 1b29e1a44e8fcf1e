package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/kalbaitzer/taskboard/internal/infrastructure/http/handlers"
	"github.com/kalbaitzer/taskboard/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	TasksHandler    *handlers.TasksHandler
	ProjectsHandler *handlers.ProjectsHandler
	UsersHandler    *handlers.UsersHandler
	ReportsHandler  *handlers.ReportsHandler
	HealthHandler   *handlers.HealthHandler
	Log             zerolog.Logger
	Secure          func(http.Handler) http.Handler
	IPRateLimit     func(http.Handler) http.Handler
	UserRateLimit   func(http.Handler) http.Handler
	CORS            func(http.Handler) http.Handler
	Metrics         bool // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	if cfg.IPRateLimit != nil {
		r.Use(cfg.IPRateLimit)
	}

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(chimid.AllowContentType("application/json"))
		r.Use(middleware.Identity)
		if cfg.UserRateLimit != nil {
			r.Use(cfg.UserRateLimit)
		}

		r.Route("/tasks", func(r chi.Router) {
			r.Post("/projects/{projectId}", cfg.TasksHandler.Create)
			r.Get("/projects/{projectId}", cfg.TasksHandler.ListByProject)
			r.Get("/{taskId}", cfg.TasksHandler.Get)
			r.Put("/{taskId}", cfg.TasksHandler.Update)
			r.Patch("/{taskId}/status", cfg.TasksHandler.UpdateStatus)
			r.Post("/{taskId}/comments", cfg.TasksHandler.AddComment)
			r.Get("/{taskId}/history", cfg.TasksHandler.History)
			r.Delete("/{taskId}", cfg.TasksHandler.Delete)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Post("/", cfg.ProjectsHandler.Create)
			r.Get("/", cfg.ProjectsHandler.List)
			r.Get("/{projectId}", cfg.ProjectsHandler.Get)
			r.Delete("/{projectId}", cfg.ProjectsHandler.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", cfg.UsersHandler.Register)
			r.Get("/", cfg.UsersHandler.List)
			r.Get("/{userId}", cfg.UsersHandler.Get)
			r.Delete("/{userId}", cfg.UsersHandler.Delete)
		})

		if cfg.ReportsHandler != nil {
			r.Get("/reports/performance", cfg.ReportsHandler.Performance)
		}
	})

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
