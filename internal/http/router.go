package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/hemolabs/labelstock/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Post("/login", handlers.LoginHandler)
		r.Post("/register", handlers.RegisterHandler)
	})

	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{codigo}", handlers.GetProductByCodeHandler)
	r.Get("/products/import/template", handlers.ImportTemplateHandler)
	r.Get("/catalog", handlers.GetCatalogHandler)
	r.Get("/sync/log", handlers.GetSyncLogHandler)
	r.Get("/stats", handlers.GetStatsHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Post("/products", handlers.SaveProductHandler)
		r.Post("/products/import", handlers.ImportProductsHandler)
		r.Delete("/products/{codigo}", handlers.DeleteProductHandler)
		r.Post("/sync", handlers.SyncAllHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
