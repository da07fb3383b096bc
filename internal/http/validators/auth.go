package validators

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	verr := &apperrors.ValidationError{}

	r.Name = strings.TrimSpace(r.Name)
	if n := utf8.RuneCountInString(r.Name); n < 1 || n > constants.UserNameMaxLength {
		verr.Add("name", "Name must be between 1 and 50 characters")
	}
	if email, ok := normalizeEmail(r.Email); ok {
		r.Email = email
	} else {
		verr.Add("email", "Please provide a valid email")
	}
	if utf8.RuneCountInString(r.Password) < constants.UserPasswordMinLength {
		verr.Add("password", "Password must be at least 6 characters")
	}

	return verr.OrNil()
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	verr := &apperrors.ValidationError{}

	if email, ok := normalizeEmail(r.Email); ok {
		r.Email = email
	} else {
		verr.Add("email", "Please provide a valid email")
	}
	if r.Password == "" {
		verr.Add("password", "Password is required")
	}

	return verr.OrNil()
}

func normalizeEmail(raw string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(raw))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", false
	}
	return email, true
}
