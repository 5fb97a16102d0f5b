package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/irohit373/AlignTODO/internal/domain"
	"github.com/irohit373/AlignTODO/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	query := `
		INSERT INTO tasks (id, user_id, title, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, title, status, created_at, updated_at`

	row := r.pool.QueryRow(ctx, query, task.ID, task.UserID, task.Title, task.Status)
	created, err := scanTask(row)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return created, nil
}

func (r *TaskRepository) List(ctx context.Context, input repository.ListTasksInput) ([]*domain.Task, error) {
	where := []string{"user_id = $1"}
	args := []any{input.UserID}

	if input.Status != "" {
		args = append(args, input.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, title, status, created_at, updated_at
		FROM tasks
		WHERE %s
		ORDER BY created_at DESC, id DESC`,
		strings.Join(where, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Update builds the SET clause from whichever fields are present. The
// WHERE clause pins both id and owner, so an update against someone
// else's task matches nothing and reads as not-found.
func (r *TaskRepository) Update(ctx context.Context, taskID, userID string, input repository.UpdateTaskInput) (*domain.Task, error) {
	sets := []string{}
	args := []any{}

	if input.Title != nil {
		args = append(args, *input.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if input.Status != nil {
		args = append(args, *input.Status)
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(sets) == 0 {
		return nil, domain.ErrNothingToUpdate
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, taskID, userID)
	query := fmt.Sprintf(`
		UPDATE tasks SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING id, user_id, title, status, created_at, updated_at`,
		strings.Join(sets, ", "), len(args)-1, len(args))

	updated, err := scanTask(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return updated, nil
}

func (r *TaskRepository) Delete(ctx context.Context, taskID, userID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`,
		taskID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// pgx.Row and pgx.Rows both implement this.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return &t, nil
}
