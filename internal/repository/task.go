package repository

import (
	"context"

	"github.com/irohit373/AlignTODO/internal/domain"
)

type ListTasksInput struct {
	UserID string
	Status domain.TaskStatus // empty = all statuses
}

type UpdateTaskInput struct {
	Title  *string
	Status *domain.TaskStatus
}

// Every method that touches a specific task takes both taskID and
// userID: ownership is enforced in the query itself, and a mutation
// matching zero rows surfaces as domain.ErrTaskNotFound regardless of
// whether the row is absent or owned by someone else.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	List(ctx context.Context, input ListTasksInput) ([]*domain.Task, error)
	Update(ctx context.Context, taskID, userID string, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, taskID, userID string) error
}
