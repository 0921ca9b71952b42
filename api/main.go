package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	_ "github.com/hemolabs/labelstock/docs"
	"github.com/hemolabs/labelstock/internal/auth"
	"github.com/hemolabs/labelstock/internal/catalogcache"
	"github.com/hemolabs/labelstock/internal/config"
	"github.com/hemolabs/labelstock/internal/db"
	router "github.com/hemolabs/labelstock/internal/http"
	"github.com/hemolabs/labelstock/internal/http/handlers"
	rl "github.com/hemolabs/labelstock/internal/http/rate_limiter"
	"github.com/hemolabs/labelstock/internal/importer"
	"github.com/hemolabs/labelstock/internal/repo"
	"github.com/hemolabs/labelstock/internal/syncsvc"
)

// @title Labelstock API
// @version 1.0
// @description Backend for the inventory label station: spreadsheet import, local product store and remote sync.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Invalid configuration:", err)
	}

	go rl.StartVisitorCleanupLoop()

	auth.SetSecret(cfg.AuthSecret)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("❌ Could not open database:", err)
	}
	defer database.Close()

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("Redis unavailable, catalog cache disabled: %v", err)
			rdb = nil
		} else {
			defer rdb.Close()
		}
	}

	syncClient, err := syncsvc.NewClient(cfg.Sync)
	if err != nil {
		log.Fatal("❌ Could not configure sync client:", err)
	}

	handlers.SetProductRepo(repo.NewSqliteProductRepository(database))
	handlers.SetSyncLogRepo(repo.NewSqliteSyncLogRepository(database))
	handlers.SetUserRepo(repo.NewSqliteUserRepository(database))
	handlers.SetSyncClient(syncClient)
	handlers.SetImportEngine(importer.NewEngine(cfg.Import.MatchThreshold))
	handlers.SetCatalogCache(catalogcache.New(rdb, cfg.CatalogTTL))

	r := router.NewRouter()
	log.Println("✅ Server running on", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatal(err)
	}
}
