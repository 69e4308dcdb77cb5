package dto

import (
	"time"

	"github.com/oapi-codegen/nullable"

	"taskflow.com/taskflow/internal/constants"
)

const (
	MaxTitleLength = 200
	MaxNotesLength = 1000

	DefaultTake = 20
)

var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

type CreateTaskRequest struct {
	Title           string                  `json:"title"`
	Description     *string                 `json:"description"`
	Priority        *constants.TaskPriority `json:"priority"`
	OverallStatus   *constants.TaskStatus   `json:"overallStatus"`
	CreatedByUserID uint                    `json:"createdByUserId"`
	DueDate         *string                 `json:"dueDate"`
}

// UpdateTaskRequest is a partial update: absent fields are left untouched
// and an explicit null clears description or dueDate. The creator is
// deliberately absent.
type UpdateTaskRequest struct {
	Title         *string                   `json:"title"`
	Description   nullable.Nullable[string] `json:"description,omitempty"`
	Priority      *constants.TaskPriority   `json:"priority"`
	OverallStatus *constants.TaskStatus     `json:"overallStatus"`
	DueDate       nullable.Nullable[string] `json:"dueDate,omitempty"`
}

type TaskFilter struct {
	OverallStatus    *constants.TaskStatus
	Priority         *constants.TaskPriority
	AssignedToUserID *uint
	CreatedByUserID  *uint
	Skip             int
	Take             int
}

// Normalize fills in pagination defaults.
func (f TaskFilter) Normalize() TaskFilter {
	if f.Take <= 0 {
		f.Take = DefaultTake
	}
	if f.Skip < 0 {
		f.Skip = 0
	}
	return f
}

// ParseDueDate accepts a calendar date or an ISO-8601 timestamp.
func ParseDueDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dueDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Value returns the value of a present, non-null field and nil otherwise.
func Value[T any](n nullable.Nullable[T]) *T {
	if !n.IsSpecified() || n.IsNull() {
		return nil
	}
	v, err := n.Get()
	if err != nil {
		return nil
	}
	return &v
}
