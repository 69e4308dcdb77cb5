package errors

import (
	"errors"
	"net/http"
)

// Exception is a classified failure carrying the HTTP status it maps to.
// Sentinel values are compared with errors.Is.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// Validation returns a new 400 exception for boundary input checks.
func Validation(message string) *Exception {
	return &Exception{
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// StatusCode reports the HTTP status for err, defaulting to 500 for
// anything that is not an Exception.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
