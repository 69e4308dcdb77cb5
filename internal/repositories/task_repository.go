package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskflow.com/taskflow/internal/constants"
	dto "taskflow.com/taskflow/internal/data_models"
	apperrors "taskflow.com/taskflow/internal/errors"
	model "taskflow.com/taskflow/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error; err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, apperrors.ErrTaskNotFound)
	}
	return &task, nil
}

// FindByIDWithAssignments loads the task and every assignment in one read,
// newest assignment first.
func (r *TaskRepository) FindByIDWithAssignments(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order(newestFirst("task_assignments"))
		}).
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, apperrors.ErrTaskNotFound)
	}
	if task.Assignments == nil {
		task.Assignments = []model.TaskAssignment{}
	}
	return &task, nil
}

func (r *TaskRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count task: %w", err)
	}
	return count > 0, nil
}

// List returns one page of tasks matching filter plus the total number of
// matches ignoring pagination.
func (r *TaskRepository) List(ctx context.Context, filter dto.TaskFilter) ([]model.Task, int64, error) {
	filter = filter.Normalize()

	var total int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Scopes(taskFilterScope(filter)).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	tasks := []model.Task{}
	err = r.db.WithContext(ctx).Model(&model.Task{}).
		Scopes(taskFilterScope(filter)).
		Select("tasks.*").
		Order(newestFirst("tasks")).
		Offset(filter.Skip).
		Limit(filter.Take).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, total, nil
}

// Update writes the editable columns of an existing task. It never
// inserts, so a task deleted meanwhile stays deleted.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	res := r.db.WithContext(ctx).Model(task).
		Select("title", "description", "priority", "overall_status", "due_date").
		Updates(task)
	if res.Error != nil {
		return fmt.Errorf("update task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

// UpdateOverallStatus touches only overall_status and updated_at.
func (r *TaskRepository) UpdateOverallStatus(ctx context.Context, id uint, status constants.TaskStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Task{ID: id}).Update("overall_status", status)
	if res.Error != nil {
		return fmt.Errorf("update task status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

// Delete removes the task; its assignments go with it through the
// ON DELETE CASCADE foreign key.
func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

func taskFilterScope(filter dto.TaskFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.OverallStatus != nil {
			db = db.Where("tasks.overall_status = ?", *filter.OverallStatus)
		}
		if filter.Priority != nil {
			db = db.Where("tasks.priority = ?", *filter.Priority)
		}
		if filter.CreatedByUserID != nil {
			db = db.Where("tasks.created_by_user_id = ?", *filter.CreatedByUserID)
		}
		if filter.AssignedToUserID != nil {
			db = db.Joins(
				"JOIN task_assignments a ON a.task_id = tasks.id AND a.user_id = ?",
				*filter.AssignedToUserID,
			)
		}
		return db
	}
}

func newestFirst(table string) string {
	return table + ".created_at DESC, " + table + ".id DESC"
}

func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
