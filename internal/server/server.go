package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/growlog/growlog-api/internal/config"
	apperrors "github.com/growlog/growlog-api/internal/errors"
	"github.com/growlog/growlog-api/internal/logger"
	"github.com/growlog/growlog-api/internal/services"
)

// Server wires the HTTP surface to the services.
type Server struct {
	cfg         config.Config
	users       *services.UserService
	moods       *services.MoodService
	reflections *services.ReflectionService
	todos       *services.TodoService
	daily       *services.DailyService
	stats       *services.StatsService
	errs        *apperrors.Handler
	startedAt   time.Time
}

// New creates a new server
func New(cfg config.Config, users *services.UserService, moods *services.MoodService, reflections *services.ReflectionService, todos *services.TodoService, daily *services.DailyService, stats *services.StatsService) *Server {
	return &Server{
		cfg:         cfg,
		users:       users,
		moods:       moods,
		reflections: reflections,
		todos:       todos,
		daily:       daily,
		stats:       stats,
		errs:        apperrors.NewHandler(logger.GetLogger()),
		startedAt:   time.Now(),
	}
}

// Router builds the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.HTTP.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", s.handleSignup)
		r.Post("/login", s.handleLogin)
		r.Get("/check-nickname", s.handleCheckNickname)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)
			r.Get("/me", s.handleMe)
			r.Patch("/me", s.handleUpdateProfile)
			r.Patch("/me/password", s.handleChangePassword)
			r.Delete("/me", s.handleDeleteAccount)
			r.With(s.requireAdmin).Get("/users", s.handleListUsers)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Route("/todos", func(r chi.Router) {
			r.Get("/", s.handleListTodos)
			r.Post("/", s.handleCreateTodo)
			r.Get("/statistics", s.handleTodoStatistics)
			r.Patch("/{id}", s.handleUpdateTodo)
			r.Patch("/{id}/toggle", s.handleToggleTodo)
			r.Delete("/{id}", s.handleDeleteTodo)
		})

		r.Route("/moods", func(r chi.Router) {
			r.Get("/", s.handleListMoods)
			r.Post("/", s.handleCreateMood)
			r.Patch("/{id}", s.handleUpdateMood)
		})

		r.Route("/reflections", func(r chi.Router) {
			r.Get("/", s.handleListReflections)
			r.Post("/", s.handleCreateReflection)
			r.Get("/{id}", s.handleGetReflection)
			r.Patch("/{id}", s.handleUpdateReflection)
		})

		r.Get("/daily", s.handleDailySummary)
		r.Get("/stats/summary", s.handleStatsSummary)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"uptime":    time.Since(s.startedAt).Seconds(),
		"timestamp": time.Now().UnixMilli(),
	})
}
