package validators

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"taskflow.com/taskflow/internal/constants"
	dto "taskflow.com/taskflow/internal/data_models"
	apperrors "taskflow.com/taskflow/internal/errors"
)

// BindTaskFilter reads the list query string. Absent parameters leave the
// corresponding filter unset.
func BindTaskFilter(c echo.Context) (dto.TaskFilter, error) {
	var (
		filter           dto.TaskFilter
		status, priority string
		assignedTo       uint
		createdBy        uint
	)
	filter.Take = dto.DefaultTake

	err := echo.QueryParamsBinder(c).
		String("overallStatus", &status).
		String("priority", &priority).
		Uint("assignedToUserId", &assignedTo).
		Uint("createdByUserId", &createdBy).
		Int("skip", &filter.Skip).
		Int("take", &filter.Take).
		BindError()
	if err != nil {
		var be *echo.BindingError
		if errors.As(err, &be) {
			return dto.TaskFilter{}, echo.NewHTTPError(http.StatusBadRequest, be.Field+" must be an integer")
		}
		return dto.TaskFilter{}, echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	if status != "" {
		s := constants.TaskStatus(status)
		if !s.Valid() {
			return dto.TaskFilter{}, echo.NewHTTPError(http.StatusBadRequest, "overallStatus must be one of PENDING, IN_PROGRESS, COMPLETED, ON_HOLD")
		}
		filter.OverallStatus = &s
	}
	if priority != "" {
		p := constants.TaskPriority(priority)
		if !p.Valid() {
			return dto.TaskFilter{}, echo.NewHTTPError(http.StatusBadRequest, "priority must be one of LOW, MEDIUM, HIGH, URGENT")
		}
		filter.Priority = &p
	}
	if c.QueryParam("assignedToUserId") != "" {
		if assignedTo < 1 {
			return dto.TaskFilter{}, apperrors.ErrInvalidUserID
		}
		filter.AssignedToUserID = &assignedTo
	}
	if c.QueryParam("createdByUserId") != "" {
		if createdBy < 1 {
			return dto.TaskFilter{}, echo.NewHTTPError(http.StatusBadRequest, "createdByUserId must be a positive integer")
		}
		filter.CreatedByUserID = &createdBy
	}
	if filter.Skip < 0 {
		return dto.TaskFilter{}, apperrors.ErrInvalidSkip
	}
	if filter.Take < 1 {
		return dto.TaskFilter{}, apperrors.ErrInvalidTake
	}

	return filter, nil
}
