package repo

import (
	"testing"

	"github.com/hemolabs/labelstock/internal/db"
	"github.com/hemolabs/labelstock/internal/models"
)

func newTestSyncLogRepo(t *testing.T) *SqliteSyncLogRepository {
	t.Helper()

	database, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("could not open test database: %v", err)
	}
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { database.Close() })

	return NewSqliteSyncLogRepository(database)
}

func TestSqliteSyncLogRepository(t *testing.T) {
	r := newTestSyncLogRepo(t)

	entries := []models.SyncEntry{
		{Endpoint: "https://remote/save", Records: 3, Outcome: models.SyncOutcomeOK},
		{Endpoint: "https://remote/save", Records: 1, Outcome: models.SyncOutcomeFailed, Error: "connection refused"},
		{Endpoint: "https://remote/save", Records: 5, Outcome: models.SyncOutcomeFallback},
	}
	for _, e := range entries {
		added, err := r.Add(e)
		if err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if added.ID == 0 {
			t.Error("expected assigned id")
		}
		if added.CreatedAt == "" {
			t.Error("expected created_at to be filled in")
		}
	}

	recent, err := r.Recent(2)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].Outcome != models.SyncOutcomeFallback {
		t.Errorf("expected newest entry first, got %+v", recent[0])
	}
	if recent[1].Error != "connection refused" {
		t.Errorf("expected error text preserved, got %+v", recent[1])
	}
}
