package task

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// testDB creates a temporary SQLite database with the users and tasks
// schema applied, plus two accounts to own tasks.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	f, err := os.CreateTemp("", "task-test-*.db")
	if err != nil {
		t.Fatalf("creating temp db: %v", err)
	}
	dbPath := f.Name()
	f.Close()
	t.Cleanup(func() { os.Remove(dbPath) })

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=ON")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schemaSQL := `
		CREATE TABLE users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user' CHECK (role IN ('user', 'admin')),
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now')),
			updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		) STRICT;

		CREATE TABLE tasks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now')),
			updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		) STRICT;

		CREATE INDEX idx_tasks_owner ON tasks(owner_id);

		INSERT INTO users (id, email, password_hash) VALUES
			('usr-alice', 'alice@example.com', 'x'),
			('usr-bob', 'bob@example.com', 'x');
	`
	if _, err := db.Exec(schemaSQL); err != nil {
		t.Fatalf("creating schema: %v", err)
	}

	return db
}

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(testDB(t))

	created := &Task{Title: "buy milk", OwnerID: "usr-alice"}
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if !strings.HasPrefix(created.ID, "tsk-") {
		t.Errorf("generated ID = %q, want tsk- prefix", created.ID)
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set on create")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != "buy milk" || got.OwnerID != "usr-alice" {
		t.Errorf("GetByID() = %+v, want title/owner of created task", got)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created.CreatedAt)
	}
}

func TestRepository_GetNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(testDB(t))

	if _, err := repo.GetByID(ctx, "tsk-missing"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("GetByID() = %v, want ErrTaskNotFound", err)
	}
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(testDB(t))

	for _, seed := range []Task{
		{Title: "alice one", OwnerID: "usr-alice"},
		{Title: "alice two", OwnerID: "usr-alice"},
		{Title: "bob one", OwnerID: "usr-bob"},
	} {
		s := seed
		if err := repo.Create(ctx, &s); err != nil {
			t.Fatalf("Create(%q) error = %v", seed.Title, err)
		}
	}

	t.Run("all", func(t *testing.T) {
		tasks, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(tasks) != 3 {
			t.Errorf("List() returned %d tasks, want 3", len(tasks))
		}
	})

	t.Run("by owner", func(t *testing.T) {
		tasks, err := repo.ListByOwner(ctx, "usr-alice")
		if err != nil {
			t.Fatalf("ListByOwner() error = %v", err)
		}
		if len(tasks) != 2 {
			t.Fatalf("ListByOwner() returned %d tasks, want 2", len(tasks))
		}
		for _, tk := range tasks {
			if tk.OwnerID != "usr-alice" {
				t.Errorf("task %q owned by %q, want usr-alice", tk.ID, tk.OwnerID)
			}
		}
	})

	t.Run("owner with no tasks", func(t *testing.T) {
		tasks, err := repo.ListByOwner(ctx, "usr-nobody")
		if err != nil {
			t.Fatalf("ListByOwner() error = %v", err)
		}
		if len(tasks) != 0 {
			t.Errorf("ListByOwner() returned %d tasks, want 0", len(tasks))
		}
	})
}

func TestRepository_UpdateTitle(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(testDB(t))

	created := &Task{Title: "draft", OwnerID: "usr-alice"}
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.UpdateTitle(ctx, created.ID, "final"); err != nil {
		t.Fatalf("UpdateTitle() error = %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != "final" {
		t.Errorf("Title = %q, want %q", got.Title, "final")
	}

	t.Run("missing task", func(t *testing.T) {
		if err := repo.UpdateTitle(ctx, "tsk-missing", "x"); !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("UpdateTitle() = %v, want ErrTaskNotFound", err)
		}
	})
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(testDB(t))

	created := &Task{Title: "ephemeral", OwnerID: "usr-alice"}
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.GetByID(ctx, created.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("GetByID() after delete = %v, want ErrTaskNotFound", err)
	}

	t.Run("missing task", func(t *testing.T) {
		if err := repo.Delete(ctx, "tsk-missing"); !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("Delete() = %v, want ErrTaskNotFound", err)
		}
	})
}

func TestRepository_OwnerCascade(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	repo := NewRepository(db)

	created := &Task{Title: "orphaned", OwnerID: "usr-bob"}
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := db.Exec("DELETE FROM users WHERE id = 'usr-bob'"); err != nil {
		t.Fatalf("deleting owner: %v", err)
	}

	if _, err := repo.GetByID(ctx, created.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("GetByID() after owner delete = %v, want ErrTaskNotFound", err)
	}
}

func TestRepository_UnknownOwnerRejected(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(testDB(t))

	err := repo.Create(ctx, &Task{Title: "stray", OwnerID: "usr-ghost"})
	if err == nil {
		t.Fatal("Create() with unknown owner should fail the foreign key")
	}
}
