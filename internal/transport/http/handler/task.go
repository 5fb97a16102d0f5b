package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/irohit373/AlignTODO/internal/domain"
	"github.com/irohit373/AlignTODO/internal/usecase"
)

type taskUsecaser interface {
	Create(ctx context.Context, userID, title string) (*domain.Task, error)
	List(ctx context.Context, userID, status string) ([]*domain.Task, error)
	Update(ctx context.Context, taskID, userID string, input usecase.UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, taskID, userID string) error
}

type TaskHandler struct {
	taskUsecase taskUsecaser
	logger      *slog.Logger
}

func NewTaskHandler(taskUsecase taskUsecaser, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{taskUsecase: taskUsecase, logger: logger.With("component", "task_handler")}
}

type createTaskRequest struct {
	Title string `json:"title" binding:"required"`
}

type updateTaskRequest struct {
	Title  *string `json:"title"`
	Status *string `json:"status"`
}

type taskResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Status    domain.TaskStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:        t.ID,
		Title:     t.Title,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// GET /tasks?status=all|pending|completed
func (h *TaskHandler) List(c *gin.Context) {
	userID := c.GetString("userID")

	tasks, err := h.taskUsecase.List(c.Request.Context(), userID, c.Query("status"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidStatus.Error()})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "list tasks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	c.JSON(http.StatusOK, gin.H{"tasks": out})
}

// POST /tasks
func (h *TaskHandler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.Create(c.Request.Context(), userID, req.Title)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyTitle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrEmptyTitle.Error()})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "create task", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": toTaskResponse(task)})
}

// PATCH /tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.Update(c.Request.Context(), taskID, userID, usecase.UpdateTaskInput{
		Title:  req.Title,
		Status: req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNothingToUpdate),
			errors.Is(err, domain.ErrEmptyTitle),
			errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrTaskNotFound):
			// Covers both a missing row and someone else's row; the
			// response must not tell those apart.
			c.JSON(http.StatusNotFound, gin.H{"error": errTaskNotFound})
		default:
			h.logger.ErrorContext(c.Request.Context(), "update task", "task_id", taskID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": toTaskResponse(task)})
}

// DELETE /tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	if err := h.taskUsecase.Delete(c.Request.Context(), taskID, userID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errTaskNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "delete task", "task_id", taskID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
