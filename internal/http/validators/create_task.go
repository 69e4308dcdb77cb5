package validators

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"taskflow.com/taskflow/internal/constants"
	dto "taskflow.com/taskflow/internal/data_models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if err := validateTitle(r.Title); err != nil {
		return err
	}
	if r.CreatedByUserID < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "createdByUserId must be a positive integer")
	}
	return validateTaskFields(r.Priority, r.OverallStatus, r.DueDate)
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if utf8.RuneCountInString(title) > dto.MaxTitleLength {
		return echo.NewHTTPError(http.StatusBadRequest, "title must be at most 200 characters")
	}
	return nil
}

func validateTaskFields(priority *constants.TaskPriority, status *constants.TaskStatus, dueDate *string) error {
	if priority != nil && !priority.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "priority must be one of LOW, MEDIUM, HIGH, URGENT")
	}
	if status != nil && !status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "overallStatus must be one of PENDING, IN_PROGRESS, COMPLETED, ON_HOLD")
	}
	if dueDate != nil {
		if _, err := dto.ParseDueDate(*dueDate); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "dueDate must be an ISO-8601 date")
		}
	}
	return nil
}
