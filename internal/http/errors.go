package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "taskflow.com/taskflow/internal/errors"
)

// toHTTPError maps a classified failure to its status. Errors that are
// already echo HTTP errors pass through. Unclassified errors are storage or
// programming failures: their text stays in the log.
func toHTTPError(c echo.Context, err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}

	code := apperrors.StatusCode(err)
	if code == http.StatusInternalServerError {
		c.Logger().Error(err)
		return echo.NewHTTPError(code, "internal server error").SetInternal(err)
	}
	return echo.NewHTTPError(code, err.Error())
}
