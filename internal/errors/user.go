package errors

import "net/http"

var ErrEmailTaken = &Exception{
	Kind:       KindConflict,
	Message:    "email is already registered",
	StatusCode: http.StatusConflict,
}

var ErrUserNotFound = &Exception{
	Kind:       KindNotFound,
	Message:    "user not found",
	StatusCode: http.StatusNotFound,
}
