package errors

import "net/http"

var ErrAlreadyAssigned = &Exception{
	Message:    "user already assigned to this task",
	StatusCode: http.StatusConflict,
}
