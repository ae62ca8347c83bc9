package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSeedAdmin_EmptyDatabase(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testDB(t))

	password, err := SeedAdmin(ctx, repo, discardLogger())
	if err != nil {
		t.Fatalf("SeedAdmin() error = %v", err)
	}
	if password == "" {
		t.Fatal("expected a generated password")
	}

	admin, err := repo.GetByEmail(ctx, seedAdminEmail)
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if admin.Role != RoleAdmin {
		t.Errorf("Role = %q, want %q", admin.Role, RoleAdmin)
	}

	ok, err := VerifyPassword(password, admin.PasswordHash)
	if err != nil || !ok {
		t.Errorf("generated password does not verify: ok=%v err=%v", ok, err)
	}
}

func TestSeedAdmin_SkipsWhenUsersExist(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testDB(t))

	existing := &User{Email: "alice@example.com", PasswordHash: "$argon2id$x", Role: RoleUser}
	if err := repo.Create(ctx, existing); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	password, err := SeedAdmin(ctx, repo, discardLogger())
	if err != nil {
		t.Fatalf("SeedAdmin() error = %v", err)
	}
	if password != "" {
		t.Error("expected no password when seeding is skipped")
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, want 1", count)
	}
}
