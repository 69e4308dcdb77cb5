package services

import (
	"context"
	"log/slog"

	"gorm.io/datatypes"

	"taskflow.com/taskflow/internal/auth"
	"taskflow.com/taskflow/internal/constants"
	dto "taskflow.com/taskflow/internal/data_models"
	apperrors "taskflow.com/taskflow/internal/errors"
	model "taskflow.com/taskflow/internal/models"
	repository "taskflow.com/taskflow/internal/repositories"
)

type TaskService struct {
	repo   *repository.TaskRepository
	logger *slog.Logger
}

func NewTaskService(repo *repository.TaskRepository, logger *slog.Logger) *TaskService {
	return &TaskService{
		repo:   repo,
		logger: logger,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*model.Task, error) {
	task := &model.Task{
		Title:           req.Title,
		Description:     req.Description,
		Priority:        constants.PriorityMedium,
		OverallStatus:   constants.StatusPending,
		CreatedByUserID: req.CreatedByUserID,
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.OverallStatus != nil {
		task.OverallStatus = *req.OverallStatus
	}
	if req.DueDate != nil {
		due, err := parseDueDate(*req.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = due
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info("task created",
		"task_id", task.ID,
		"created_by", task.CreatedByUserID,
		"actor_id", auth.ActorID(ctx),
	)
	return task, nil
}

// UpdateTask merges the fields present in req onto the stored task.
func (s *TaskService) UpdateTask(ctx context.Context, id uint, req dto.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description.IsSpecified() {
		task.Description = dto.Value(req.Description)
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.OverallStatus != nil {
		task.OverallStatus = *req.OverallStatus
	}
	if req.DueDate.IsSpecified() {
		task.DueDate = nil
		if raw := dto.Value(req.DueDate); raw != nil {
			due, err := parseDueDate(*raw)
			if err != nil {
				return nil, err
			}
			task.DueDate = due
		}
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) RemoveTask(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("task removed", "task_id", id, "actor_id", auth.ActorID(ctx))
	return nil
}

func (s *TaskService) FindAll(ctx context.Context, filter dto.TaskFilter) (*dto.TaskPage, error) {
	tasks, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.TaskPage{Data: tasks, Total: total}, nil
}

func (s *TaskService) FindOneWithAssignments(ctx context.Context, id uint) (*model.Task, error) {
	return s.repo.FindByIDWithAssignments(ctx, id)
}

func parseDueDate(value string) (*datatypes.Date, error) {
	t, err := dto.ParseDueDate(value)
	if err != nil {
		return nil, apperrors.Validation("dueDate must be an ISO-8601 date")
	}
	due := datatypes.Date(t)
	return &due, nil
}
