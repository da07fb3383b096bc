package errors

import "net/http"

// ErrTaskNotFound covers both missing tasks and tasks owned by someone else.
var ErrTaskNotFound = &Exception{
	Kind:       KindNotFound,
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}
