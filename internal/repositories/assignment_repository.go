package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "taskflow.com/taskflow/internal/errors"
	model "taskflow.com/taskflow/internal/models"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create inserts the assignment. A duplicate (task, user) pair fails with
// ErrAlreadyAssigned even when two inserts race past the caller's check.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *model.TaskAssignment) error {
	err := r.db.WithContext(ctx).Create(assignment).Error
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return apperrors.ErrAlreadyAssigned
	case isForeignKeyViolation(err):
		return apperrors.ErrTaskNotFound
	default:
		return fmt.Errorf("insert assignment: %w", err)
	}
}

func (r *AssignmentRepository) FindByTaskAndUser(ctx context.Context, taskID, userID uint) (*model.TaskAssignment, error) {
	var assignment model.TaskAssignment
	err := r.db.WithContext(ctx).
		Where("task_id = ? AND user_id = ?", taskID, userID).
		First(&assignment).Error
	if err != nil {
		return nil, notFound(err, apperrors.ErrAssignmentNotFound)
	}
	return &assignment, nil
}

func (r *AssignmentRepository) ExistsForTaskAndUser(ctx context.Context, taskID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TaskAssignment{}).
		Where("task_id = ? AND user_id = ?", taskID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count assignment: %w", err)
	}
	return count > 0, nil
}

func (r *AssignmentRepository) ListByTask(ctx context.Context, taskID uint) ([]model.TaskAssignment, error) {
	assignments := []model.TaskAssignment{}
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order(newestFirst("task_assignments")).
		Find(&assignments).Error
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return assignments, nil
}

// Update writes status, completion time and notes. An assignment removed
// meanwhile yields ErrAssignmentNotFound rather than being re-created.
func (r *AssignmentRepository) Update(ctx context.Context, assignment *model.TaskAssignment) error {
	res := r.db.WithContext(ctx).Model(assignment).
		Select("individual_status", "completed_at", "notes").
		Updates(assignment)
	if res.Error != nil {
		return fmt.Errorf("update assignment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrAssignmentNotFound
	}
	return nil
}

func (r *AssignmentRepository) DeleteByTaskAndUser(ctx context.Context, taskID, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("task_id = ? AND user_id = ?", taskID, userID).
		Delete(&model.TaskAssignment{})
	if res.Error != nil {
		return fmt.Errorf("delete assignment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrAssignmentNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
