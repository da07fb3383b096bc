package errors

import "net/http"

var ErrTaskIDRequired = &Exception{
	Kind:       KindBadRequest,
	Message:    "task id is required",
	StatusCode: http.StatusBadRequest,
}
