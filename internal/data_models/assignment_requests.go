package dto

import (
	"github.com/oapi-codegen/nullable"

	"taskflow.com/taskflow/internal/constants"
)

type AssignUserRequest struct {
	UserID uint    `json:"userId"`
	Notes  *string `json:"notes"`
}

// Notes on the update requests distinguish absent (keep) from null (clear).
type UpdateAssignmentStatusRequest struct {
	Status constants.AssignmentStatus `json:"status"`
	Notes  nullable.Nullable[string]  `json:"notes,omitempty"`
}

type UpdateAssignmentRequest struct {
	Notes nullable.Nullable[string] `json:"notes,omitempty"`
}
