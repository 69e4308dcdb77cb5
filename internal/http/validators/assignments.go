package validators

import (
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	dto "taskflow.com/taskflow/internal/data_models"
)

func ValidateAssignUserRequest(r *dto.AssignUserRequest) error {
	if r.UserID < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "userId must be a positive integer")
	}
	return validateNotes(r.Notes)
}

func ValidateUpdateAssignmentStatusRequest(r *dto.UpdateAssignmentStatusRequest) error {
	if !r.Status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "status must be one of PENDING, IN_PROGRESS, COMPLETED, BLOCKED")
	}
	return validateNotes(dto.Value(r.Notes))
}

func ValidateUpdateAssignmentRequest(r *dto.UpdateAssignmentRequest) error {
	return validateNotes(dto.Value(r.Notes))
}

func validateNotes(notes *string) error {
	if notes != nil && utf8.RuneCountInString(*notes) > dto.MaxNotesLength {
		return echo.NewHTTPError(http.StatusBadRequest, "notes must be at most 1000 characters")
	}
	return nil
}
