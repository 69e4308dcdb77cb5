package errors

import "net/http"

var ErrRollupLockTimeout = &Exception{
	Message:    "task status is being recalculated, retry later",
	StatusCode: http.StatusServiceUnavailable,
}
