package services

import (
	"context"
	"log/slog"
	"time"

	"taskflow.com/taskflow/internal/auth"
	"taskflow.com/taskflow/internal/constants"
	dto "taskflow.com/taskflow/internal/data_models"
	apperrors "taskflow.com/taskflow/internal/errors"
	model "taskflow.com/taskflow/internal/models"
	repository "taskflow.com/taskflow/internal/repositories"
)

type AssignmentService struct {
	tasks       *repository.TaskRepository
	assignments *repository.AssignmentRepository
	rollup      *RollupService
	logger      *slog.Logger
	now         func() time.Time
}

func NewAssignmentService(
	tasks *repository.TaskRepository,
	assignments *repository.AssignmentRepository,
	rollup *RollupService,
	logger *slog.Logger,
) *AssignmentService {
	return &AssignmentService{
		tasks:       tasks,
		assignments: assignments,
		rollup:      rollup,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *AssignmentService) ListAssignments(ctx context.Context, taskID uint) ([]model.TaskAssignment, error) {
	if err := s.ensureTaskExists(ctx, taskID); err != nil {
		return nil, err
	}
	return s.assignments.ListByTask(ctx, taskID)
}

// AssignUser creates a PENDING assignment. The existence check gives the
// common duplicate a clean Conflict; the unique index catches the racing one.
func (s *AssignmentService) AssignUser(ctx context.Context, taskID, userID uint, notes *string) (*model.TaskAssignment, error) {
	if err := s.ensureTaskExists(ctx, taskID); err != nil {
		return nil, err
	}

	exists, err := s.assignments.ExistsForTaskAndUser(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyAssigned
	}

	assignment := &model.TaskAssignment{
		TaskID:           taskID,
		UserID:           userID,
		IndividualStatus: constants.AssignmentPending,
		AssignedAt:       s.now(),
		Notes:            notes,
	}
	if err := s.assignments.Create(ctx, assignment); err != nil {
		return nil, err
	}

	s.logger.Info("user assigned",
		"task_id", taskID,
		"user_id", userID,
		"actor_id", auth.ActorID(ctx),
	)
	return assignment, nil
}

// UnassignUser removes the assignment and deliberately leaves the task's
// overall status as it is.
func (s *AssignmentService) UnassignUser(ctx context.Context, taskID, userID uint) error {
	if err := s.assignments.DeleteByTaskAndUser(ctx, taskID, userID); err != nil {
		return err
	}

	s.logger.Info("user unassigned",
		"task_id", taskID,
		"user_id", userID,
		"actor_id", auth.ActorID(ctx),
	)
	return nil
}

func (s *AssignmentService) UpdateAssignmentStatus(
	ctx context.Context,
	taskID, userID uint,
	req dto.UpdateAssignmentStatusRequest,
) (*model.TaskAssignment, error) {
	assignment, err := s.assignments.FindByTaskAndUser(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	from := assignment.IndividualStatus
	if err := applyTransition(assignment, req.Status, s.now()); err != nil {
		return nil, err
	}
	if req.Notes.IsSpecified() {
		assignment.Notes = dto.Value(req.Notes)
	}

	if err := s.assignments.Update(ctx, assignment); err != nil {
		return nil, err
	}

	s.logger.Info("assignment status changed",
		"task_id", taskID,
		"user_id", userID,
		"from", from,
		"to", assignment.IndividualStatus,
		"actor_id", auth.ActorID(ctx),
	)

	if err := s.rollup.Rollup(ctx, taskID); err != nil {
		return nil, err
	}

	return assignment, nil
}

// UpdateAssignment edits notes only (null clears them); status and timestamps are untouched
// and no rollup runs.
func (s *AssignmentService) UpdateAssignment(
	ctx context.Context,
	taskID, userID uint,
	req dto.UpdateAssignmentRequest,
) (*model.TaskAssignment, error) {
	assignment, err := s.assignments.FindByTaskAndUser(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if req.Notes.IsSpecified() {
		assignment.Notes = dto.Value(req.Notes)
	}

	if err := s.assignments.Update(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) ensureTaskExists(ctx context.Context, taskID uint) error {
	exists, err := s.tasks.Exists(ctx, taskID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrTaskNotFound
	}
	return nil
}
