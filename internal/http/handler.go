package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskflow.com/taskflow/internal/data_models"
	apperrors "taskflow.com/taskflow/internal/errors"
	"taskflow.com/taskflow/internal/http/validators"
	"taskflow.com/taskflow/internal/services"
)

type Handler struct {
	taskService       *services.TaskService
	assignmentService *services.AssignmentService
}

func NewHandler(taskService *services.TaskService, assignmentService *services.AssignmentService) *Handler {
	return &Handler{
		taskService:       taskService,
		assignmentService: assignmentService,
	}
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return toHTTPError(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return toHTTPError(c, err)
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req)
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	filter, err := validators.BindTaskFilter(c)
	if err != nil {
		return toHTTPError(c, err)
	}

	page, err := h.taskService.FindAll(c.Request().Context(), filter)
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusOK, page)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := validators.TaskIDParam(c)
	if err != nil {
		return toHTTPError(c, err)
	}

	task, err := h.taskService.FindOneWithAssignments(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTaskDetail(task))
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := validators.TaskIDParam(c)
	if err != nil {
		return toHTTPError(c, err)
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return toHTTPError(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return toHTTPError(c, err)
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, req)
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := validators.TaskIDParam(c)
	if err != nil {
		return toHTTPError(c, err)
	}

	if err := h.taskService.RemoveTask(c.Request().Context(), id); err != nil {
		return toHTTPError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
