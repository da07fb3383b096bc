package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func TestErrorResponse(t *testing.T) {
	verr := &apperrors.ValidationError{}
	verr.Add("title", "Title must be between 1 and 100 characters")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   apperrors.Kind
	}{
		{name: "validation", err: verr, wantStatus: http.StatusBadRequest, wantKind: apperrors.KindValidation},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", apperrors.ErrTaskNotFound), wantStatus: http.StatusNotFound, wantKind: apperrors.KindNotFound},
		{name: "unauthorized", err: apperrors.ErrUnauthorized, wantStatus: http.StatusUnauthorized, wantKind: apperrors.KindUnauthorized},
		{name: "rate limited", err: apperrors.ErrRateLimited, wantStatus: http.StatusTooManyRequests, wantKind: apperrors.KindRateLimited},
		{name: "echo 404", err: echo.ErrNotFound, wantStatus: http.StatusNotFound, wantKind: apperrors.KindNotFound},
		{name: "echo 405", err: echo.ErrMethodNotAllowed, wantStatus: http.StatusMethodNotAllowed, wantKind: apperrors.KindBadRequest},
		{name: "unknown", err: errors.New("disk on fire"), wantStatus: http.StatusInternalServerError, wantKind: apperrors.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := errorResponse(tt.err)
			if status != tt.wantStatus || body.Kind != tt.wantKind {
				t.Errorf("errorResponse() = %d %s, want %d %s", status, body.Kind, tt.wantStatus, tt.wantKind)
			}
			if status == http.StatusInternalServerError && body.Message != "internal server error" {
				t.Errorf("internal error details leaked: %q", body.Message)
			}
		})
	}
}

func TestErrorResponse_Body(t *testing.T) {
	verr := &apperrors.ValidationError{}
	verr.Add("title", "Title must be between 1 and 100 characters")
	verr.Add("deadline", "Invalid deadline format")

	_, body := errorResponse(fmt.Errorf("create task: %w", verr))
	if body.Message != "validation failed" || len(body.Errors) != 2 || body.Errors[1].Field != "deadline" {
		t.Errorf("unexpected validation body: %+v", body)
	}

	_, body = errorResponse(fmt.Errorf("lookup: %w", apperrors.ErrTaskNotFound))
	if body.Message != apperrors.ErrTaskNotFound.Message || body.Errors != nil {
		t.Errorf("unexpected not found body: %+v", body)
	}

	_, body = errorResponse(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))
	if body.Message != "Method Not Allowed" {
		t.Errorf("expected echo message to pass through, got %q", body.Message)
	}
}
