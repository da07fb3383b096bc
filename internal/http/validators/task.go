package validators

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

const (
	msgTitleLength       = "Title must be between 1 and 100 characters"
	msgDescriptionLength = "Description cannot be more than 500 characters"
	msgDeadlineFormat    = "Invalid deadline format"
	msgDeadlinePast      = "Deadline must be in the future"
)

// Zone-less layouts are read as UTC.
var deadlineLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ValidateCreateTaskRequest validates a create payload and fills in defaults
// for omitted enum fields.
func ValidateCreateTaskRequest(r *dto.CreateTaskRequest, now time.Time) (model.TaskFields, error) {
	patch, err := validateTaskRequest(r, now, true)
	if err != nil {
		return model.TaskFields{}, err
	}

	fields := model.TaskFields{
		Title:    *patch.Title,
		Category: constants.DefaultCategory,
		Priority: constants.DefaultPriority,
		Status:   constants.DefaultStatus,
		Deadline: patch.Deadline,
	}
	if patch.Description != nil {
		fields.Description = *patch.Description
	}
	if patch.Category != nil {
		fields.Category = *patch.Category
	}
	if patch.Priority != nil {
		fields.Priority = *patch.Priority
	}
	if patch.Status != nil {
		fields.Status = *patch.Status
	}

	return fields, nil
}

// ValidateUpdateTaskRequest validates only the fields present in the payload.
func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest, now time.Time) (model.TaskPatch, error) {
	return validateTaskRequest(r, now, false)
}

func validateTaskRequest(r *dto.TaskRequestData, now time.Time, requireTitle bool) (model.TaskPatch, error) {
	var (
		patch model.TaskPatch
		verr  = &apperrors.ValidationError{}
		msg   string
	)

	if r.Title != nil || requireTitle {
		if patch.Title, msg = validateTitle(r.Title); msg != "" {
			verr.Add("title", msg)
		}
	}
	if patch.Description, msg = validateDescription(r.Description); msg != "" {
		verr.Add("description", msg)
	}
	if patch.Category, msg = validateEnum("category", r.Category, constants.TaskCategories); msg != "" {
		verr.Add("category", msg)
	}
	if patch.Priority, msg = validateEnum("priority", r.Priority, constants.TaskPriorities); msg != "" {
		verr.Add("priority", msg)
	}
	if patch.Status, msg = validateEnum("status", r.Status, constants.TaskStatuses); msg != "" {
		verr.Add("status", msg)
	}
	if patch.Deadline, msg = validateDeadline(r.Deadline, now); msg != "" {
		verr.Add("deadline", msg)
	}

	if err := verr.OrNil(); err != nil {
		return model.TaskPatch{}, err
	}
	return patch, nil
}

func validateTitle(raw *string) (*string, string) {
	if raw == nil {
		return nil, msgTitleLength
	}
	title := strings.TrimSpace(*raw)
	if n := utf8.RuneCountInString(title); n < 1 || n > constants.TitleMaxLength {
		return nil, msgTitleLength
	}
	return &title, ""
}

func validateDescription(raw *string) (*string, string) {
	if raw == nil {
		return nil, ""
	}
	description := strings.TrimSpace(*raw)
	if utf8.RuneCountInString(description) > constants.DescriptionMaxLength {
		return nil, msgDescriptionLength
	}
	return &description, ""
}

func validateEnum[T ~string](field string, raw *string, allowed []T) (*T, string) {
	if raw == nil {
		return nil, ""
	}
	for _, v := range allowed {
		if string(v) == *raw {
			value := v
			return &value, ""
		}
	}
	return nil, enumMessage(field, allowed)
}

func enumMessage[T ~string](field string, allowed []T) string {
	names := make([]string, len(allowed))
	for i, v := range allowed {
		names[i] = string(v)
	}
	return fmt.Sprintf("Invalid %s: must be one of %s", field, strings.Join(names, ", "))
}

// validateDeadline rejects any deadline that is not strictly after now.
func validateDeadline(raw *string, now time.Time) (*time.Time, string) {
	if raw == nil {
		return nil, ""
	}

	deadline, ok := parseDeadline(strings.TrimSpace(*raw))
	if !ok {
		return nil, msgDeadlineFormat
	}
	if !deadline.After(now) {
		return nil, msgDeadlinePast
	}

	return &deadline, ""
}

func parseDeadline(raw string) (time.Time, bool) {
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
