package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"taskflow.com/taskflow/internal/constants"
	apperrors "taskflow.com/taskflow/internal/errors"
	"taskflow.com/taskflow/internal/locks"
	model "taskflow.com/taskflow/internal/models"
	repository "taskflow.com/taskflow/internal/repositories"
)

// RollupService derives a task's overall status from its assignments.
// Rollups of one task are serialised by the locker, so the last one to run
// always sees every committed assignment write.
type RollupService struct {
	tasks       *repository.TaskRepository
	assignments *repository.AssignmentRepository
	locker      locks.Locker
	lockWait    time.Duration
	logger      *slog.Logger
}

func NewRollupService(
	tasks *repository.TaskRepository,
	assignments *repository.AssignmentRepository,
	locker locks.Locker,
	lockWait time.Duration,
	logger *slog.Logger,
) *RollupService {
	return &RollupService{
		tasks:       tasks,
		assignments: assignments,
		locker:      locker,
		lockWait:    lockWait,
		logger:      logger,
	}
}

func (s *RollupService) Rollup(ctx context.Context, taskID uint) error {
	release, err := s.acquire(ctx, taskID)
	if err != nil {
		return err
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warn("rollup lock release failed", "task_id", taskID, "error", err)
		}
	}()

	assignments, err := s.assignments.ListByTask(ctx, taskID)
	if err != nil {
		return err
	}
	if len(assignments) == 0 {
		return nil
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return err
	}

	next, changed := rollupStatus(task.OverallStatus, assignments)
	if !changed {
		return nil
	}

	if err := s.tasks.UpdateOverallStatus(ctx, taskID, next); err != nil {
		return err
	}

	s.logger.Info("task status rolled up",
		"task_id", taskID,
		"from", task.OverallStatus,
		"to", next,
		"assignments", len(assignments),
	)
	return nil
}

func (s *RollupService) acquire(ctx context.Context, taskID uint) (locks.ReleaseFunc, error) {
	lockCtx, cancel := context.WithTimeout(ctx, s.lockWait)
	defer cancel()

	release, err := s.locker.Acquire(lockCtx, rollupLockKey(taskID))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, apperrors.ErrRollupLockTimeout
		}
		return nil, fmt.Errorf("acquire rollup lock: %w", err)
	}
	return release, nil
}

func rollupLockKey(taskID uint) string {
	return "task:" + strconv.FormatUint(uint64(taskID), 10)
}

// rollupStatus decides the overall status for a non-empty assignment set.
// All COMPLETED wins over any IN_PROGRESS; every other mix, including
// BLOCKED or PENDING only, leaves the current status alone.
func rollupStatus(current constants.TaskStatus, assignments []model.TaskAssignment) (constants.TaskStatus, bool) {
	allCompleted := true
	anyInProgress := false
	for _, a := range assignments {
		if a.IndividualStatus != constants.AssignmentCompleted {
			allCompleted = false
		}
		if a.IndividualStatus == constants.AssignmentInProgress {
			anyInProgress = true
		}
	}

	switch {
	case allCompleted && current != constants.StatusCompleted:
		return constants.StatusCompleted, true
	case !allCompleted && anyInProgress && current != constants.StatusInProgress:
		return constants.StatusInProgress, true
	default:
		return current, false
	}
}
