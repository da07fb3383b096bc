package errors

import "net/http"

var ErrUnauthorized = &Exception{
	Kind:       KindUnauthorized,
	Message:    "not authorized to access this route",
	StatusCode: http.StatusUnauthorized,
}

var ErrInvalidCredentials = &Exception{
	Kind:       KindUnauthorized,
	Message:    "invalid email or password",
	StatusCode: http.StatusUnauthorized,
}
