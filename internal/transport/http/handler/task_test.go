package handler_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/irohit373/AlignTODO/internal/domain"
	"github.com/irohit373/AlignTODO/internal/transport/http/handler"
	"github.com/irohit373/AlignTODO/internal/usecase"
)

type fakeTaskUsecase struct {
	create func(ctx context.Context, userID, title string) (*domain.Task, error)
	list   func(ctx context.Context, userID, status string) ([]*domain.Task, error)
	update func(ctx context.Context, taskID, userID string, input usecase.UpdateTaskInput) (*domain.Task, error)
	delete func(ctx context.Context, taskID, userID string) error
}

func (f *fakeTaskUsecase) Create(ctx context.Context, userID, title string) (*domain.Task, error) {
	return f.create(ctx, userID, title)
}

func (f *fakeTaskUsecase) List(ctx context.Context, userID, status string) ([]*domain.Task, error) {
	return f.list(ctx, userID, status)
}

func (f *fakeTaskUsecase) Update(ctx context.Context, taskID, userID string, input usecase.UpdateTaskInput) (*domain.Task, error) {
	return f.update(ctx, taskID, userID, input)
}

func (f *fakeTaskUsecase) Delete(ctx context.Context, taskID, userID string) error {
	return f.delete(ctx, taskID, userID)
}

// newTaskEngine mounts the handlers behind a stub of the session
// middleware that injects a fixed userID.
func newTaskEngine(uc *fakeTaskUsecase, userID string) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	h := handler.NewTaskHandler(uc, logger)

	r := gin.New()
	asUser := func(c *gin.Context) { c.Set("userID", userID); c.Next() }
	r.GET("/tasks", asUser, h.List)
	r.POST("/tasks", asUser, h.Create)
	r.PATCH("/tasks/:id", asUser, h.Update)
	r.DELETE("/tasks/:id", asUser, h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

var testTask = &domain.Task{
	ID:     "task-1",
	UserID: "user-1",
	Title:  "Buy milk",
	Status: domain.StatusPending,
}

// ---- List ----

func TestListTasks_ScopesToCaller(t *testing.T) {
	var gotUserID, gotStatus string
	uc := &fakeTaskUsecase{
		list: func(_ context.Context, userID, status string) ([]*domain.Task, error) {
			gotUserID, gotStatus = userID, status
			return []*domain.Task{testTask}, nil
		},
	}

	w := doJSON(t, newTaskEngine(uc, "user-1"), http.MethodGet, "/tasks?status=completed", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotUserID != "user-1" {
		t.Errorf("usecase called with userID %q, want user-1", gotUserID)
	}
	if gotStatus != "completed" {
		t.Errorf("usecase called with status %q, want completed", gotStatus)
	}

	var resp struct {
		Tasks []struct {
			ID string `json:"id"`
		} `json:"tasks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Tasks) != 1 || resp.Tasks[0].ID != testTask.ID {
		t.Errorf("tasks = %+v, want the one fake task", resp.Tasks)
	}
}

func TestListTasks_EmptyList_ReturnsEmptyArray(t *testing.T) {
	uc := &fakeTaskUsecase{
		list: func(_ context.Context, _, _ string) ([]*domain.Task, error) {
			return []*domain.Task{}, nil
		},
	}
	w := doJSON(t, newTaskEngine(uc, "user-1"), http.MethodGet, "/tasks", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"tasks":[]`) {
		t.Errorf("body = %q, want tasks to be [] not null", w.Body.String())
	}
}

func TestListTasks_UnknownStatus_Returns400(t *testing.T) {
	uc := &fakeTaskUsecase{
		list: func(_ context.Context, _, _ string) ([]*domain.Task, error) {
			return nil, domain.ErrInvalidStatus
		},
	}
	w := doJSON(t, newTaskEngine(uc, "user-1"), http.MethodGet, "/tasks?status=bogus", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

// ---- Create ----

func TestCreateTask_Success_Returns201(t *testing.T) {
	uc := &fakeTaskUsecase{
		create: func(_ context.Context, userID, title string) (*domain.Task, error) {
			return &domain.Task{ID: "task-2", UserID: userID, Title: title, Status: domain.StatusPending}, nil
		},
	}
	w := doJSON(t, newTaskEngine(uc, "user-1"), http.MethodPost, "/tasks", `{"title":"Buy milk"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"title":"Buy milk"`) {
		t.Errorf("body %q missing created title", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"status":"pending"`) {
		t.Errorf("body %q: new task is not pending", w.Body.String())
	}
}

func TestCreateTask_MissingTitle_Returns400(t *testing.T) {
	w := doJSON(t, newTaskEngine(&fakeTaskUsecase{}, "user-1"), http.MethodPost, "/tasks", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateTask_WhitespaceTitle_Returns400(t *testing.T) {
	uc := &fakeTaskUsecase{
		create: func(_ context.Context, _, _ string) (*domain.Task, error) {
			return nil, domain.ErrEmptyTitle
		},
	}
	w := doJSON(t, newTaskEngine(uc, "user-1"), http.MethodPost, "/tasks", `{"title":"   "}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

// ---- Update ----

func TestUpdateTask_NotOwned_Returns404(t *testing.T) {
	uc := &fakeTaskUsecase{
		update: func(_ context.Context, _, _ string, _ usecase.UpdateTaskInput) (*domain.Task, error) {
			return nil, domain.ErrTaskNotFound
		},
	}
	w := doJSON(t, newTaskEngine(uc, "user-2"), http.MethodPatch, "/tasks/task-1", `{"status":"completed"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestUpdateTask_NothingToUpdate_Returns400(t *testing.T) {
	uc := &fakeTaskUsecase{
		update: func(_ context.Context, _, _ string, _ usecase.UpdateTaskInput) (*domain.Task, error) {
			return nil, domain.ErrNothingToUpdate
		},
	}
	w := doJSON(t, newTaskEngine(uc, "user-1"), http.MethodPatch, "/tasks/task-1", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUpdateTask_Success_Returns200(t *testing.T) {
	uc := &fakeTaskUsecase{
		update: func(_ context.Context, taskID, userID string, input usecase.UpdateTaskInput) (*domain.Task, error) {
			updated := *testTask
			updated.Status = domain.StatusCompleted
			return &updated, nil
		},
	}
	w := doJSON(t, newTaskEngine(uc, "user-1"), http.MethodPatch, "/tasks/task-1", `{"status":"completed"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"completed"`) {
		t.Errorf("body %q missing updated status", w.Body.String())
	}
}

// ---- Delete ----

func TestDeleteTask_NotOwned_Returns404(t *testing.T) {
	uc := &fakeTaskUsecase{
		delete: func(_ context.Context, _, _ string) error {
			return domain.ErrTaskNotFound
		},
	}
	w := doJSON(t, newTaskEngine(uc, "user-2"), http.MethodDelete, "/tasks/task-1", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDeleteTask_Success_Returns200(t *testing.T) {
	var gotTaskID, gotUserID string
	uc := &fakeTaskUsecase{
		delete: func(_ context.Context, taskID, userID string) error {
			gotTaskID, gotUserID = taskID, userID
			return nil
		},
	}
	w := doJSON(t, newTaskEngine(uc, "user-1"), http.MethodDelete, "/tasks/task-1", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotTaskID != "task-1" || gotUserID != "user-1" {
		t.Errorf("delete called with (%q, %q), want (task-1, user-1)", gotTaskID, gotUserID)
	}
}
