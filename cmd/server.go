package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	config "taskflow.com/taskflow/internal/configs"
	httpapi "taskflow.com/taskflow/internal/http"
	"taskflow.com/taskflow/internal/locks"
	repository "taskflow.com/taskflow/internal/repositories"
	"taskflow.com/taskflow/internal/services"
)

type server struct {
	echo    *echo.Echo
	cleanup []func() error
}

func (s *server) Close() error {
	var errs []error
	for i := len(s.cleanup) - 1; i >= 0; i-- {
		if err := s.cleanup[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func newServer(cfg config.Config, logger *slog.Logger) (*server, error) {
	s := &server{}

	db, err := config.New(cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	s.cleanup = append(s.cleanup, func() error { return config.Close(db) })

	if err := config.Migrate(db); err != nil {
		_ = s.Close()
		return nil, err
	}

	locker, err := newLocker(cfg, logger, s)
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	s.echo = newEcho(cfg, logger, db, locker)
	return s, nil
}

func newLocker(cfg config.Config, logger *slog.Logger, s *server) (locks.Locker, error) {
	addr := cfg.RedisAddr()
	if addr == "" {
		logger.Info("rollup locks are in-process")
		return locks.NewMemoryLocker(), nil
	}

	redisClient, err := config.NewRedisClient(addr)
	if err != nil {
		return nil, fmt.Errorf("rollup lock backend: %w", err)
	}
	s.cleanup = append(s.cleanup, func() error {
		redisClient.Close()
		return nil
	})

	logger.Info("rollup locks use redis", "addr", addr)
	return locks.NewRedisLocker(
		redisClient,
		cfg.RollupLockKeyPrefix,
		time.Duration(cfg.RollupLockTTLSeconds)*time.Second,
	), nil
}

func newEcho(cfg config.Config, logger *slog.Logger, db *gorm.DB, locker locks.Locker) *echo.Echo {
	taskRepo := repository.NewTaskRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)

	rollup := services.NewRollupService(
		taskRepo,
		assignmentRepo,
		locker,
		time.Duration(cfg.RollupLockWaitSeconds)*time.Second,
		logger,
	)
	taskService := services.NewTaskService(taskRepo, logger)
	assignmentService := services.NewAssignmentService(taskRepo, assignmentRepo, rollup, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpapi.NewHandler(taskService, assignmentService)
	httpapi.Register(e, handler, httpapi.Options{
		RateLimitPerMinute: cfg.RateLimit,
		JWTSecret:          cfg.JWTSecret,
		Logger:             logger,
	})

	return e
}
