package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskflow.com/taskflow/internal/data_models"
	apperrors "taskflow.com/taskflow/internal/errors"
	"taskflow.com/taskflow/internal/http/validators"
)

func (h *Handler) ListAssignments(c echo.Context) error {
	taskID, err := validators.TaskIDParam(c)
	if err != nil {
		return toHTTPError(c, err)
	}

	assignments, err := h.assignmentService.ListAssignments(c.Request().Context(), taskID)
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusOK, assignments)
}

func (h *Handler) AssignUser(c echo.Context) error {
	taskID, err := validators.TaskIDParam(c)
	if err != nil {
		return toHTTPError(c, err)
	}

	var req dto.AssignUserRequest
	if err := c.Bind(&req); err != nil {
		return toHTTPError(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateAssignUserRequest(&req); err != nil {
		return toHTTPError(c, err)
	}

	assignment, err := h.assignmentService.AssignUser(c.Request().Context(), taskID, req.UserID, req.Notes)
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusCreated, assignment)
}

func (h *Handler) UnassignUser(c echo.Context) error {
	taskID, userID, err := assignmentParams(c)
	if err != nil {
		return toHTTPError(c, err)
	}

	if err := h.assignmentService.UnassignUser(c.Request().Context(), taskID, userID); err != nil {
		return toHTTPError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) UpdateAssignmentStatus(c echo.Context) error {
	taskID, userID, err := assignmentParams(c)
	if err != nil {
		return toHTTPError(c, err)
	}

	var req dto.UpdateAssignmentStatusRequest
	if err := c.Bind(&req); err != nil {
		return toHTTPError(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateUpdateAssignmentStatusRequest(&req); err != nil {
		return toHTTPError(c, err)
	}

	assignment, err := h.assignmentService.UpdateAssignmentStatus(c.Request().Context(), taskID, userID, req)
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusOK, assignment)
}

func (h *Handler) UpdateAssignment(c echo.Context) error {
	taskID, userID, err := assignmentParams(c)
	if err != nil {
		return toHTTPError(c, err)
	}

	var req dto.UpdateAssignmentRequest
	if err := c.Bind(&req); err != nil {
		return toHTTPError(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateUpdateAssignmentRequest(&req); err != nil {
		return toHTTPError(c, err)
	}

	assignment, err := h.assignmentService.UpdateAssignment(c.Request().Context(), taskID, userID, req)
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusOK, assignment)
}

func assignmentParams(c echo.Context) (uint, uint, error) {
	taskID, err := validators.TaskIDParam(c)
	if err != nil {
		return 0, 0, err
	}
	userID, err := validators.UserIDParam(c)
	if err != nil {
		return 0, 0, err
	}
	return taskID, userID, nil
}
