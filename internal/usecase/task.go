package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/irohit373/AlignTODO/internal/domain"
	"github.com/irohit373/AlignTODO/internal/repository"
)

type TaskUsecase struct {
	repo repository.TaskRepository
}

func NewTaskUsecase(repo repository.TaskRepository) *TaskUsecase {
	return &TaskUsecase{repo: repo}
}

func (u *TaskUsecase) Create(ctx context.Context, userID, title string) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}

	task, err := u.repo.Create(ctx, &domain.Task{
		ID:     uuid.NewString(),
		UserID: userID,
		Title:  title,
		Status: domain.StatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// List returns the user's tasks, optionally filtered. status "" or
// "all" means no filter; anything else must be a known status.
func (u *TaskUsecase) List(ctx context.Context, userID, status string) ([]*domain.Task, error) {
	input := repository.ListTasksInput{UserID: userID}
	if status != "" && status != "all" {
		s := domain.TaskStatus(status)
		if !domain.ValidStatus(s) {
			return nil, domain.ErrInvalidStatus
		}
		input.Status = s
	}

	tasks, err := u.repo.List(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

type UpdateTaskInput struct {
	Title  *string
	Status *string
}

func (u *TaskUsecase) Update(ctx context.Context, taskID, userID string, input UpdateTaskInput) (*domain.Task, error) {
	if input.Title == nil && input.Status == nil {
		return nil, domain.ErrNothingToUpdate
	}

	repoInput := repository.UpdateTaskInput{}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domain.ErrEmptyTitle
		}
		repoInput.Title = &title
	}
	if input.Status != nil {
		s := domain.TaskStatus(*input.Status)
		if !domain.ValidStatus(s) {
			return nil, domain.ErrInvalidStatus
		}
		repoInput.Status = &s
	}

	task, err := u.repo.Update(ctx, taskID, userID, repoInput)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (u *TaskUsecase) Delete(ctx context.Context, taskID, userID string) error {
	return u.repo.Delete(ctx, taskID, userID)
}
