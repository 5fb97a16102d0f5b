package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/irohit373/AlignTODO/internal/domain"
	"github.com/irohit373/AlignTODO/internal/repository"
	"github.com/irohit373/AlignTODO/internal/usecase"
)

type fakeTaskRepo struct {
	create func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	list   func(ctx context.Context, input repository.ListTasksInput) ([]*domain.Task, error)
	update func(ctx context.Context, taskID, userID string, input repository.UpdateTaskInput) (*domain.Task, error)
	delete func(ctx context.Context, taskID, userID string) error
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	return r.create(ctx, task)
}

func (r *fakeTaskRepo) List(ctx context.Context, input repository.ListTasksInput) ([]*domain.Task, error) {
	return r.list(ctx, input)
}

func (r *fakeTaskRepo) Update(ctx context.Context, taskID, userID string, input repository.UpdateTaskInput) (*domain.Task, error) {
	return r.update(ctx, taskID, userID, input)
}

func (r *fakeTaskRepo) Delete(ctx context.Context, taskID, userID string) error {
	return r.delete(ctx, taskID, userID)
}

func strPtr(s string) *string { return &s }

// ---- Create ----

func TestCreateTask_TrimsTitleAndDefaultsPending(t *testing.T) {
	var created *domain.Task
	repo := &fakeTaskRepo{
		create: func(_ context.Context, task *domain.Task) (*domain.Task, error) {
			created = task
			return task, nil
		},
	}

	_, err := usecase.NewTaskUsecase(repo).Create(context.Background(), "user-1", "  Buy milk  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Title != "Buy milk" {
		t.Errorf("title = %q, want trimmed", created.Title)
	}
	if created.Status != domain.StatusPending {
		t.Errorf("status = %q, want pending", created.Status)
	}
	if created.UserID != "user-1" {
		t.Errorf("owner = %q, want user-1", created.UserID)
	}
	if created.ID == "" {
		t.Error("no id assigned")
	}
}

func TestCreateTask_WhitespaceTitle_FailsWithoutStoreAccess(t *testing.T) {
	called := false
	repo := &fakeTaskRepo{
		create: func(_ context.Context, _ *domain.Task) (*domain.Task, error) {
			called = true
			return nil, nil
		},
	}

	_, err := usecase.NewTaskUsecase(repo).Create(context.Background(), "user-1", "   ")
	if !errors.Is(err, domain.ErrEmptyTitle) {
		t.Errorf("want ErrEmptyTitle, got %v", err)
	}
	if called {
		t.Error("repository was called for an invalid title")
	}
}

// ---- List ----

func TestListTasks_StatusFilter(t *testing.T) {
	var got repository.ListTasksInput
	repo := &fakeTaskRepo{
		list: func(_ context.Context, input repository.ListTasksInput) ([]*domain.Task, error) {
			got = input
			return nil, nil
		},
	}
	uc := usecase.NewTaskUsecase(repo)

	cases := []struct {
		status string
		want   domain.TaskStatus
	}{
		{"", ""},
		{"all", ""},
		{"pending", domain.StatusPending},
		{"completed", domain.StatusCompleted},
	}
	for _, tc := range cases {
		if _, err := uc.List(context.Background(), "user-1", tc.status); err != nil {
			t.Fatalf("List(%q): %v", tc.status, err)
		}
		if got.Status != tc.want {
			t.Errorf("List(%q) filtered on %q, want %q", tc.status, got.Status, tc.want)
		}
		if got.UserID != "user-1" {
			t.Errorf("List(%q) scoped to %q, want user-1", tc.status, got.UserID)
		}
	}
}

func TestListTasks_UnknownStatus_Fails(t *testing.T) {
	called := false
	repo := &fakeTaskRepo{
		list: func(_ context.Context, _ repository.ListTasksInput) ([]*domain.Task, error) {
			called = true
			return nil, nil
		},
	}

	_, err := usecase.NewTaskUsecase(repo).List(context.Background(), "user-1", "archived")
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("want ErrInvalidStatus, got %v", err)
	}
	if called {
		t.Error("repository was called for an invalid status")
	}
}

// ---- Update ----

func TestUpdateTask_NoFields_Fails(t *testing.T) {
	repo := &fakeTaskRepo{}

	_, err := usecase.NewTaskUsecase(repo).Update(context.Background(), "task-1", "user-1", usecase.UpdateTaskInput{})
	if !errors.Is(err, domain.ErrNothingToUpdate) {
		t.Errorf("want ErrNothingToUpdate, got %v", err)
	}
}

func TestUpdateTask_TrimsTitle(t *testing.T) {
	var got repository.UpdateTaskInput
	repo := &fakeTaskRepo{
		update: func(_ context.Context, _, _ string, input repository.UpdateTaskInput) (*domain.Task, error) {
			got = input
			return &domain.Task{}, nil
		},
	}

	_, err := usecase.NewTaskUsecase(repo).Update(context.Background(), "task-1", "user-1",
		usecase.UpdateTaskInput{Title: strPtr("  New title  ")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title == nil || *got.Title != "New title" {
		t.Errorf("title sent to repo = %v, want trimmed", got.Title)
	}
}

func TestUpdateTask_EmptyTitle_Fails(t *testing.T) {
	repo := &fakeTaskRepo{}

	_, err := usecase.NewTaskUsecase(repo).Update(context.Background(), "task-1", "user-1",
		usecase.UpdateTaskInput{Title: strPtr("   ")})
	if !errors.Is(err, domain.ErrEmptyTitle) {
		t.Errorf("want ErrEmptyTitle, got %v", err)
	}
}

func TestUpdateTask_BadStatus_Fails(t *testing.T) {
	repo := &fakeTaskRepo{}

	_, err := usecase.NewTaskUsecase(repo).Update(context.Background(), "task-1", "user-1",
		usecase.UpdateTaskInput{Status: strPtr("done")})
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("want ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateTask_NotFound_Propagates(t *testing.T) {
	repo := &fakeTaskRepo{
		update: func(_ context.Context, _, _ string, _ repository.UpdateTaskInput) (*domain.Task, error) {
			return nil, domain.ErrTaskNotFound
		},
	}

	_, err := usecase.NewTaskUsecase(repo).Update(context.Background(), "task-1", "user-2",
		usecase.UpdateTaskInput{Status: strPtr("completed")})
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("want ErrTaskNotFound, got %v", err)
	}
}

// ---- Delete ----

func TestDeleteTask_PassesOwnerScope(t *testing.T) {
	var gotTaskID, gotUserID string
	repo := &fakeTaskRepo{
		delete: func(_ context.Context, taskID, userID string) error {
			gotTaskID, gotUserID = taskID, userID
			return nil
		},
	}

	if err := usecase.NewTaskUsecase(repo).Delete(context.Background(), "task-1", "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotTaskID != "task-1" || gotUserID != "user-1" {
		t.Errorf("delete scoped to (%q, %q), want (task-1, user-1)", gotTaskID, gotUserID)
	}
}

func TestDeleteTask_NotFound_Propagates(t *testing.T) {
	repo := &fakeTaskRepo{
		delete: func(_ context.Context, _, _ string) error {
			return domain.ErrTaskNotFound
		},
	}

	err := usecase.NewTaskUsecase(repo).Delete(context.Background(), "task-1", "user-2")
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("want ErrTaskNotFound, got %v", err)
	}
}
