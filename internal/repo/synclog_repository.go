package repo

import "github.com/hemolabs/labelstock/internal/models"

// SyncLogRepository stores the outcome of remote push attempts so operators
// can tell "saved locally, sync pending/failed" apart from a clean save.
type SyncLogRepository interface {
	Add(entry models.SyncEntry) (models.SyncEntry, error)
	Recent(limit int) ([]models.SyncEntry, error)
}
