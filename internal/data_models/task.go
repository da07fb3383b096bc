package dto

import model "task-tracker.com/task-tracker/internal/models"

// TaskRequestData is the body of both create and update requests. Pointer
// fields distinguish an omitted field from an empty one.
type TaskRequestData struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	Deadline    *string `json:"deadline"`
}

type CreateTaskRequest = TaskRequestData

type UpdateTaskRequest = TaskRequestData

type TaskListFilter struct {
	Status   string `query:"status"`
	Category string `query:"category"`
	Priority string `query:"priority"`
}

type TaskListResponse struct {
	Count int          `json:"count"`
	Tasks []model.Task `json:"tasks"`
}
