package dto

import apperrors "task-tracker.com/task-tracker/internal/errors"

type ErrorResponse struct {
	Kind    apperrors.Kind         `json:"kind"`
	Message string                 `json:"message"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
}
