package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "task-tracker.com/task-tracker/internal/errors"
)

const userIDContextKey = "user_id"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// Auth rejects requests without a valid bearer token before any other
// processing and stores the caller's user id on the context.
func Auth(authenticator Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return apperrors.ErrUnauthorized
			}

			userID, err := authenticator.Authenticate(c.Request().Context(), token)
			if err != nil {
				return apperrors.ErrUnauthorized
			}

			c.Set(userIDContextKey, userID)
			return next(c)
		}
	}
}

// UserID returns the id stored by Auth, or "" outside an authenticated route.
func UserID(c echo.Context) string {
	id, _ := c.Get(userIDContextKey).(string)
	return id
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
