package model

import (
	"time"

	"gorm.io/datatypes"

	"taskflow.com/taskflow/internal/constants"
)

type Task struct {
	ID              uint                   `gorm:"primaryKey" json:"id"`
	Title           string                 `gorm:"size:200;not null" json:"title"`
	Description     *string                `gorm:"type:text" json:"description"`
	Priority        constants.TaskPriority `gorm:"type:varchar(20);not null;default:MEDIUM;index" json:"priority"`
	OverallStatus   constants.TaskStatus   `gorm:"type:varchar(20);not null;default:PENDING;index" json:"overallStatus"`
	CreatedByUserID uint                   `gorm:"not null;index" json:"createdByUserId"`
	DueDate         *datatypes.Date        `json:"dueDate"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`

	Assignments []TaskAssignment `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"assignments,omitempty"`
}
