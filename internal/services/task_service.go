package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"task-tracker.com/task-tracker/internal/cache"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

type TaskService struct {
	repo  *repository.TaskRepository
	stats *cache.StatsCache
	now   func() time.Time
}

func NewTaskService(repo *repository.TaskRepository, stats *cache.StatsCache) *TaskService {
	return &TaskService{
		repo:  repo,
		stats: stats,
		now:   time.Now,
	}
}

// CreateTask persists an already validated payload for userID.
func (s *TaskService) CreateTask(ctx context.Context, userID string, fields model.TaskFields) (*model.Task, error) {
	task := model.NewTask(uuid.NewString(), userID, fields, s.now())

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	s.stats.Evict(ctx, userID)

	log.WithFields(log.Fields{
		"task_id": task.ID,
		"user_id": userID,
		"status":  task.Status,
	}).Info("task created")

	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, userID, id string) (*model.Task, error) {
	return s.repo.FindByIDForUser(ctx, id, userID)
}

func (s *TaskService) ListTasks(ctx context.Context, userID string, filter repository.TaskFilter) ([]model.Task, error) {
	return s.repo.ListByUser(ctx, userID, filter)
}

// UpdateTask applies a validated patch to a task owned by userID. Fields the
// patch omits keep their stored values.
func (s *TaskService) UpdateTask(ctx context.Context, userID, id string, patch model.TaskPatch) (*model.Task, error) {
	task, err := s.repo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return task, nil
	}

	task.Apply(patch, s.now())

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	s.stats.Evict(ctx, userID)

	log.WithFields(log.Fields{
		"task_id": task.ID,
		"user_id": userID,
		"status":  task.Status,
	}).Info("task updated")

	return s.repo.FindByIDForUser(ctx, id, userID)
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, id string) error {
	if err := s.repo.DeleteForUser(ctx, id, userID); err != nil {
		return err
	}
	s.stats.Evict(ctx, userID)

	log.WithFields(log.Fields{"task_id": id, "user_id": userID}).Info("task deleted")
	return nil
}

// GetTaskStats serves the grouped counts from the cache when possible. The
// overdue count depends on the clock, so it is always recomputed.
func (s *TaskService) GetTaskStats(ctx context.Context, userID string) (*model.TaskStats, error) {
	if stats, ok := s.stats.Get(ctx, userID); ok {
		overdue, err := s.repo.CountOverdueForUser(ctx, userID, s.now())
		if err != nil {
			return nil, err
		}
		stats.Overdue = overdue
		return stats, nil
	}

	stats, err := s.repo.StatsForUser(ctx, userID, s.now())
	if err != nil {
		return nil, err
	}
	s.stats.Set(ctx, userID, stats)

	return stats, nil
}
