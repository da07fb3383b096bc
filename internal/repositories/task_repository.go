package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

type TaskFilter struct {
	Status   *constants.TaskStatus
	Category *constants.TaskCategory
	Priority *constants.TaskPriority
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByIDForUser scopes the lookup to the owner, so a task owned by another
// user is reported exactly like a missing one.
func (r *TaskRepository) FindByIDForUser(ctx context.Context, id, userID string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string, filter TaskFilter) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}

	tasks := make([]model.Task, 0)
	if err := query.Order("created_at desc").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Update writes every mutable column. user_id and created_at are never part
// of the update set.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Updates(map[string]interface{}{
			"title":        task.Title,
			"description":  task.Description,
			"category":     task.Category,
			"priority":     task.Priority,
			"status":       task.Status,
			"deadline":     task.Deadline,
			"completed_at": task.CompletedAt,
			"updated_at":   time.Now().UTC(),
		})

	if res.Error != nil {
		return fmt.Errorf("failed to update task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) DeleteForUser(ctx context.Context, id, userID string) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

type groupCount struct {
	Bucket string
	Total  int64
}

func (r *TaskRepository) StatsForUser(ctx context.Context, userID string, now time.Time) (*model.TaskStats, error) {
	stats := model.NewTaskStats()
	db := r.db.WithContext(ctx)

	byStatus, err := r.countBy(db, userID, "status")
	if err != nil {
		return nil, err
	}
	for _, row := range byStatus {
		stats.ByStatus[constants.TaskStatus(row.Bucket)] = row.Total
		stats.Total += row.Total
	}

	byCategory, err := r.countBy(db, userID, "category")
	if err != nil {
		return nil, err
	}
	for _, row := range byCategory {
		stats.ByCategory[constants.TaskCategory(row.Bucket)] = row.Total
	}

	byPriority, err := r.countBy(db, userID, "priority")
	if err != nil {
		return nil, err
	}
	for _, row := range byPriority {
		stats.ByPriority[constants.TaskPriority(row.Bucket)] = row.Total
	}

	stats.Overdue, err = r.CountOverdueForUser(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// CountOverdueForUser counts userID's unfinished tasks whose deadline is
// before now.
func (r *TaskRepository) CountOverdueForUser(ctx context.Context, userID string, now time.Time) (int64, error) {
	var open []model.Task
	err := r.db.WithContext(ctx).
		Select("id", "status", "deadline").
		Where("user_id = ? AND deadline IS NOT NULL AND status <> ?", userID, constants.StatusCompleted).
		Find(&open).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count overdue tasks: %w", err)
	}

	var overdue int64
	for i := range open {
		if open[i].Overdue(now) {
			overdue++
		}
	}
	return overdue, nil
}

func (r *TaskRepository) countBy(db *gorm.DB, userID, column string) ([]groupCount, error) {
	var rows []groupCount
	err := db.Model(&model.Task{}).
		Select(column+" AS bucket, COUNT(*) AS total").
		Where("user_id = ?", userID).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks by %s: %w", column, err)
	}
	return rows, nil
}
