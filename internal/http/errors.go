package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

// ErrorHandler renders every error as a dto.ErrorResponse. Errors that are
// not part of the application taxonomy become 500s and are logged.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		log.WithError(err).WithFields(log.Fields{
			"method": c.Request().Method,
			"path":   c.Request().URL.Path,
		}).Error("unhandled error")
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, body)
	}
	if writeErr != nil {
		log.WithError(writeErr).Warn("failed to write error response")
	}
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	var httpErr *echo.HTTPError
	if apperrors.KindOf(err) == apperrors.KindInternal && errors.As(err, &httpErr) {
		return httpErr.Code, dto.ErrorResponse{
			Kind:    kindForStatus(httpErr.Code),
			Message: fmt.Sprint(httpErr.Message),
		}
	}

	body := dto.ErrorResponse{
		Kind:    apperrors.KindOf(err),
		Message: apperrors.MessageOf(err),
	}
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		body.Errors = validationErr.Fields
	}

	return apperrors.StatusCode(err), body
}

func kindForStatus(status int) apperrors.Kind {
	switch {
	case status == http.StatusUnauthorized:
		return apperrors.KindUnauthorized
	case status == http.StatusNotFound:
		return apperrors.KindNotFound
	case status == http.StatusConflict:
		return apperrors.KindConflict
	case status == http.StatusTooManyRequests:
		return apperrors.KindRateLimited
	case status >= 400 && status < 500:
		return apperrors.KindBadRequest
	default:
		return apperrors.KindInternal
	}
}
