package errors

import "net/http"

var ErrInvalidTake = &Exception{
	Message:    "take must be at least 1",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidSkip = &Exception{
	Message:    "skip must not be negative",
	StatusCode: http.StatusBadRequest,
}
