package model

import "task-tracker.com/task-tracker/internal/constants"

type TaskStats struct {
	Total      int64                            `json:"total"`
	ByStatus   map[constants.TaskStatus]int64   `json:"byStatus"`
	ByCategory map[constants.TaskCategory]int64 `json:"byCategory"`
	ByPriority map[constants.TaskPriority]int64 `json:"byPriority"`
	Overdue    int64                            `json:"overdue"`
}

// NewTaskStats returns stats with every known enum value present at zero.
func NewTaskStats() *TaskStats {
	stats := &TaskStats{
		ByStatus:   make(map[constants.TaskStatus]int64, len(constants.TaskStatuses)),
		ByCategory: make(map[constants.TaskCategory]int64, len(constants.TaskCategories)),
		ByPriority: make(map[constants.TaskPriority]int64, len(constants.TaskPriorities)),
	}
	for _, s := range constants.TaskStatuses {
		stats.ByStatus[s] = 0
	}
	for _, c := range constants.TaskCategories {
		stats.ByCategory[c] = 0
	}
	for _, p := range constants.TaskPriorities {
		stats.ByPriority[p] = 0
	}
	return stats
}
