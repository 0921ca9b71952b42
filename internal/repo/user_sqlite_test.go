package repo

import (
	"errors"
	"testing"

	"github.com/hemolabs/labelstock/internal/db"
	"github.com/hemolabs/labelstock/internal/models"
)

func newTestUserRepo(t *testing.T) *SqliteUserRepository {
	t.Helper()

	database, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("could not open test database: %v", err)
	}
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { database.Close() })

	return NewSqliteUserRepository(database)
}

func TestSqliteUserRepository(t *testing.T) {
	r := newTestUserRepo(t)

	created, err := r.CreateUser(models.User{Username: "admin", PasswordHash: "hash", Role: "admin"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected assigned id")
	}

	got, err := r.GetByUsername("admin")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.PasswordHash != "hash" || got.Role != "admin" {
		t.Errorf("unexpected user: %+v", got)
	}

	_, err = r.CreateUser(models.User{Username: "admin", PasswordHash: "other", Role: "user"})
	if !errors.Is(err, ErrDuplicatedValueUnique) {
		t.Errorf("expected ErrDuplicatedValueUnique, got %v", err)
	}

	_, err = r.GetByUsername("nobody")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
