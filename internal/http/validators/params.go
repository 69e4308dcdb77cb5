package validators

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "taskflow.com/taskflow/internal/errors"
)

func TaskIDParam(c echo.Context) (uint, error) {
	id, ok := positiveID(c.Param("id"))
	if !ok {
		return 0, apperrors.ErrInvalidTaskID
	}
	return id, nil
}

func UserIDParam(c echo.Context) (uint, error) {
	id, ok := positiveID(c.Param("userId"))
	if !ok {
		return 0, apperrors.ErrInvalidUserID
	}
	return id, nil
}

func positiveID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
