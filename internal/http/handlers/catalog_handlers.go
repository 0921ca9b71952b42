package handlers

import (
	"encoding/json"
	"net/http"

	models "github.com/hemolabs/labelstock/internal/models"
)

// GetCatalogHandler godoc
// @Summary List the remote catalog
// @Description Returns the remote inventory list, served from the Redis cache when fresh.
// @Tags catalog
// @Produce json
// @Success 200 {array} models.ProductFlat
// @Failure 502 {string} string "Remote unavailable"
// @Router /catalog [get]
func GetCatalogHandler(w http.ResponseWriter, r *http.Request) {
	if items, ok := catalogCache.Get(r.Context()); ok {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(items)
		return
	}

	items, err := syncClient.FetchList(r.Context())
	if err != nil {
		http.Error(w, "could not fetch remote catalog", http.StatusBadGateway)
		return
	}
	if items == nil {
		items = []models.ProductFlat{}
	}
	catalogCache.Set(r.Context(), items)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}
