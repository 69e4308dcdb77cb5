package errors

import "net/http"

var ErrInvalidAssignmentStatus = &Exception{
	Message:    "invalid assignment status",
	StatusCode: http.StatusBadRequest,
}
