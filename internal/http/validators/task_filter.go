package validators

import (
	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

func ValidateTaskListFilter(f *dto.TaskListFilter) (repository.TaskFilter, error) {
	var (
		filter repository.TaskFilter
		verr   = &apperrors.ValidationError{}
		msg    string
	)

	if filter.Status, msg = validateEnum("status", optional(f.Status), constants.TaskStatuses); msg != "" {
		verr.Add("status", msg)
	}
	if filter.Category, msg = validateEnum("category", optional(f.Category), constants.TaskCategories); msg != "" {
		verr.Add("category", msg)
	}
	if filter.Priority, msg = validateEnum("priority", optional(f.Priority), constants.TaskPriorities); msg != "" {
		verr.Add("priority", msg)
	}

	if err := verr.OrNil(); err != nil {
		return repository.TaskFilter{}, err
	}
	return filter, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
