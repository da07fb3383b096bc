package errors

import "net/http"

var ErrInvalidJSON = &Exception{
	Kind:       KindBadRequest,
	Message:    "invalid JSON payload",
	StatusCode: http.StatusBadRequest,
}
