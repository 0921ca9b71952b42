package handlers

import (
	"context"

	"github.com/hemolabs/labelstock/internal/catalogcache"
	"github.com/hemolabs/labelstock/internal/importer"
	"github.com/hemolabs/labelstock/internal/models"
	repo "github.com/hemolabs/labelstock/internal/repo"
	"github.com/hemolabs/labelstock/internal/syncsvc"
)

// SyncClient is what the handlers need from the remote sync layer. The
// concrete implementation lives in syncsvc; tests plug in a stub.
type SyncClient interface {
	Push(ctx context.Context, products []models.Product) syncsvc.Result
	PushFlat(ctx context.Context, flats []models.ProductFlat) syncsvc.Result
	FetchList(ctx context.Context) ([]models.ProductFlat, error)
}

var (
	productRepo  repo.ProductRepository
	syncLogRepo  repo.SyncLogRepository
	userRepo     repo.UserRepository
	syncClient   SyncClient
	importEngine *importer.Engine
	catalogCache *catalogcache.Cache
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetSyncLogRepo(r repo.SyncLogRepository) {
	syncLogRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetSyncClient(c SyncClient) {
	syncClient = c
}

func SetImportEngine(e *importer.Engine) {
	importEngine = e
}

func SetCatalogCache(c *catalogcache.Cache) {
	catalogCache = c
}
