package http

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "taskflow.com/taskflow/internal/http/middlewares"
)

type Options struct {
	RateLimitPerMinute int
	JWTSecret          string
	Logger             *slog.Logger
}

func Register(e *echo.Echo, h *Handler, opts Options) {
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(opts.Logger))
	e.Use(echomw.Recover())

	e.GET("/healthz", h.Health)

	tasks := e.Group("/tasks",
		middleware.IPRateLimiter(opts.RateLimitPerMinute, time.Minute),
		middleware.Authenticate(opts.JWTSecret),
		middleware.RateLimiter(opts.RateLimitPerMinute, time.Minute),
	)

	tasks.POST("", h.CreateTask)
	tasks.GET("", h.ListTasks)
	tasks.GET("/:id", h.GetTask)
	tasks.PATCH("/:id", h.UpdateTask)
	tasks.DELETE("/:id", h.DeleteTask)

	tasks.GET("/:id/assignments", h.ListAssignments)
	tasks.POST("/:id/assignments", h.AssignUser)
	tasks.DELETE("/:id/assignments/:userId", h.UnassignUser)
	tasks.PATCH("/:id/assignments/:userId/status", h.UpdateAssignmentStatus)
	tasks.PATCH("/:id/assignments/:userId", h.UpdateAssignment)
}
