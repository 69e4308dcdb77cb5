package model

import (
	"time"

	"taskflow.com/taskflow/internal/constants"
)

// TaskAssignment links a user to a task. A user holds at most one
// assignment per task, enforced by idx_task_assignments_task_user.
type TaskAssignment struct {
	ID               uint                       `gorm:"primaryKey" json:"id"`
	TaskID           uint                       `gorm:"not null;index;uniqueIndex:idx_task_assignments_task_user,priority:1" json:"taskId"`
	UserID           uint                       `gorm:"not null;index;uniqueIndex:idx_task_assignments_task_user,priority:2" json:"userId"`
	IndividualStatus constants.AssignmentStatus `gorm:"type:varchar(20);not null;default:PENDING;index" json:"individualStatus"`
	AssignedAt       time.Time                  `gorm:"not null" json:"assignedAt"`
	CompletedAt      *time.Time                 `json:"completedAt"`
	Notes            *string                    `gorm:"type:text" json:"notes"`
	CreatedAt        time.Time                  `json:"createdAt"`
	UpdatedAt        time.Time                  `json:"updatedAt"`
}
