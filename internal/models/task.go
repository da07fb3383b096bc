package model

import (
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

type Task struct {
	ID          string                 `gorm:"primaryKey;size:36" json:"id"`
	Title       string                 `gorm:"size:100;not null" json:"title"`
	Description string                 `gorm:"size:500;not null;default:''" json:"description"`
	Category    constants.TaskCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	Priority    constants.TaskPriority `gorm:"type:varchar(20);not null" json:"priority"`
	Status      constants.TaskStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	Deadline    *time.Time             `json:"deadline,omitempty"`
	CompletedAt *time.Time             `json:"completedAt,omitempty"`
	UserID      string                 `gorm:"size:36;not null;index" json:"user"`
	CreatedAt   time.Time              `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time              `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TaskFields is a validated, normalized create payload.
type TaskFields struct {
	Title       string
	Description string
	Category    constants.TaskCategory
	Priority    constants.TaskPriority
	Status      constants.TaskStatus
	Deadline    *time.Time
}

// TaskPatch is a validated update payload. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Category    *constants.TaskCategory
	Priority    *constants.TaskPriority
	Status      *constants.TaskStatus
	Deadline    *time.Time
}

func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil &&
		p.Priority == nil && p.Status == nil && p.Deadline == nil
}

func NewTask(id, userID string, fields TaskFields, now time.Time) *Task {
	task := &Task{
		ID:          id,
		Title:       fields.Title,
		Description: fields.Description,
		Category:    fields.Category,
		Priority:    fields.Priority,
		Deadline:    fields.Deadline,
		UserID:      userID,
	}
	task.ApplyStatus(fields.Status, now)
	return task
}

// Apply copies every field present in the patch onto the task. Ownership is
// never part of a patch.
func (t *Task) Apply(patch TaskPatch, now time.Time) {
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Deadline != nil {
		deadline := *patch.Deadline
		t.Deadline = &deadline
	}
	if patch.Status != nil {
		t.ApplyStatus(*patch.Status, now)
	}
}

// ApplyStatus writes status and keeps CompletedAt in step with it. It must
// only be called when status is part of the write.
func (t *Task) ApplyStatus(status constants.TaskStatus, now time.Time) {
	t.Status = status

	if status != constants.StatusCompleted {
		t.CompletedAt = nil
		return
	}

	if t.CompletedAt == nil {
		completedAt := now.UTC()
		t.CompletedAt = &completedAt
	}
}

func (t *Task) Overdue(now time.Time) bool {
	return t.Deadline != nil && t.Status != constants.StatusCompleted && t.Deadline.Before(now)
}
