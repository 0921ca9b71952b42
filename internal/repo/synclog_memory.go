package repo

import (
	"sync"
	"time"

	"github.com/hemolabs/labelstock/internal/models"
)

// InMemorySyncLogRepository is the in-memory twin of SqliteSyncLogRepository.
type InMemorySyncLogRepository struct {
	mu      sync.Mutex
	entries []models.SyncEntry
	nextID  int
}

func NewInMemorySyncLogRepository() *InMemorySyncLogRepository {
	return &InMemorySyncLogRepository{nextID: 1}
}

func (r *InMemorySyncLogRepository) Add(e models.SyncEntry) (models.SyncEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ID = r.nextID
	r.nextID++
	if e.CreatedAt == "" {
		e.CreatedAt = time.Now().Format(time.RFC3339)
	}
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *InMemorySyncLogRepository) Recent(limit int) ([]models.SyncEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.SyncEntry
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

func (r *InMemorySyncLogRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
