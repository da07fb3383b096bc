package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	"task-tracker.com/task-tracker/internal/http/validators"
	"task-tracker.com/task-tracker/internal/services"
)

type Handler struct {
	taskService *services.TaskService
	now         func() time.Time
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
		now:         time.Now,
	}
}

func (h *Handler) GetTaskStats(c echo.Context) error {
	stats, err := h.taskService.GetTaskStats(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) ListTasks(c echo.Context) error {
	filter, err := validators.ValidateTaskListFilter(&dto.TaskListFilter{
		Status:   c.QueryParam("status"),
		Category: c.QueryParam("category"),
		Priority: c.QueryParam("priority"),
	})
	if err != nil {
		return err
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), middleware.UserID(c), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TaskListResponse{
		Count: len(tasks),
		Tasks: tasks,
	})
}

func (h *Handler) GetTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return apperrors.ErrTaskIDRequired
	}

	task, err := h.taskService.GetTask(c.Request().Context(), middleware.UserID(c), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}

	fields, err := validators.ValidateCreateTaskRequest(&req, h.now())
	if err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), middleware.UserID(c), fields)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return apperrors.ErrTaskIDRequired
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}

	patch, err := validators.ValidateUpdateTaskRequest(&req, h.now())
	if err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), middleware.UserID(c), id, patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return apperrors.ErrTaskIDRequired
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), middleware.UserID(c), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
