package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for task persistence operations.
// The abstraction keeps handlers testable without a database.
type Repository interface {
	// Create inserts a new task. The ID is generated if empty.
	Create(ctx context.Context, task *Task) error

	// GetByID retrieves a task by its unique identifier.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id string) (*Task, error)

	// List retrieves all tasks.
	List(ctx context.Context) ([]Task, error)

	// ListByOwner retrieves all tasks owned by the given account.
	ListByOwner(ctx context.Context, ownerID string) ([]Task, error)

	// UpdateTitle changes a task's title.
	// Returns ErrTaskNotFound if the task does not exist.
	UpdateTitle(ctx context.Context, id, title string) error

	// Delete removes a task by ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id string) error
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewRepository creates a new SQLite-backed task repository.
func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts a new task. OwnerID must reference an existing account;
// the foreign key enforces it.
func (r *SQLiteRepository) Create(ctx context.Context, task *Task) error {
	if task.ID == "" {
		task.ID = "tsk-" + uuid.NewString()[:8]
	}

	now := time.Now().UTC().Truncate(time.Second)
	task.CreatedAt = now
	task.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, owner_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		task.ID, task.Title, task.OwnerID,
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("creating task: %w", err)
	}

	return nil
}

// GetByID retrieves a task by its unique identifier.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*Task, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, title, owner_id, created_at, updated_at FROM tasks WHERE id = ?", id)

	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("querying task by id: %w", err)
	}
	return t, nil
}

// List retrieves all tasks ordered by creation time.
func (r *SQLiteRepository) List(ctx context.Context) ([]Task, error) {
	return r.queryTasks(ctx,
		"SELECT id, title, owner_id, created_at, updated_at FROM tasks ORDER BY created_at, id")
}

// ListByOwner retrieves all tasks owned by the given account.
func (r *SQLiteRepository) ListByOwner(ctx context.Context, ownerID string) ([]Task, error) {
	return r.queryTasks(ctx,
		"SELECT id, title, owner_id, created_at, updated_at FROM tasks WHERE owner_id = ? ORDER BY created_at, id",
		ownerID)
}

// UpdateTitle changes a task's title and bumps the update timestamp.
func (r *SQLiteRepository) UpdateTitle(ctx context.Context, id, title string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET title = ?, updated_at = ? WHERE id = ?",
		title, time.Now().UTC().Format(time.RFC3339), id,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// Delete removes a task by ID.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// queryTasks executes a query and scans all task results.
func (r *SQLiteRepository) queryTasks(ctx context.Context, query string, args ...any) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	tasks := []Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	return tasks, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*Task, error) {
	var t Task
	var createdAt, updatedAt string

	if err := row.Scan(&t.ID, &t.Title, &t.OwnerID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt) //nolint:errcheck // format is controlled
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt) //nolint:errcheck // format is controlled

	return &t, nil
}
