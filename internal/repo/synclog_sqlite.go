package repo

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/hemolabs/labelstock/internal/models"
)

const syncLogSchema = `
CREATE TABLE IF NOT EXISTS sync_log (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	endpoint   TEXT NOT NULL,
	records    INTEGER NOT NULL,
	outcome    TEXT NOT NULL,
	error      TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);
`

// SqliteSyncLogRepository persists sync attempts next to the product data.
type SqliteSyncLogRepository struct {
	db       *sql.DB
	initOnce sync.Once
	initErr  error
}

func NewSqliteSyncLogRepository(db *sql.DB) *SqliteSyncLogRepository {
	return &SqliteSyncLogRepository{db: db}
}

func (r *SqliteSyncLogRepository) init() error {
	r.initOnce.Do(func() {
		_, r.initErr = r.db.Exec(syncLogSchema)
	})
	return r.initErr
}

func (r *SqliteSyncLogRepository) Add(e models.SyncEntry) (models.SyncEntry, error) {
	if err := r.init(); err != nil {
		return models.SyncEntry{}, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if e.CreatedAt == "" {
		e.CreatedAt = time.Now().Format(time.RFC3339)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO sync_log (endpoint, records, outcome, error, created_at) VALUES ($1, $2, $3, $4, $5)`,
		e.Endpoint, e.Records, e.Outcome, e.Error, e.CreatedAt)
	if err != nil {
		return models.SyncEntry{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.SyncEntry{}, err
	}
	e.ID = int(id)
	return e, nil
}

func (r *SqliteSyncLogRepository) Recent(limit int) ([]models.SyncEntry, error) {
	if err := r.init(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, endpoint, records, outcome, error, created_at FROM sync_log ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.SyncEntry
	for rows.Next() {
		var e models.SyncEntry
		if err := rows.Scan(&e.ID, &e.Endpoint, &e.Records, &e.Outcome, &e.Error, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
