package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	models "github.com/hemolabs/labelstock/internal/models"
)

// SyncAllHandler godoc
// @Summary Push the whole local store to the remote inventory
// @Tags sync
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SyncAllResult
// @Failure 500 {string} string "Internal error"
// @Failure 502 {object} SyncAllResult "Push failed"
// @Router /sync [post]
func SyncAllHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not read local store", http.StatusInternalServerError)
		return
	}

	pushRes := syncClient.Push(r.Context(), products)
	recordSync(pushRes)

	result := SyncAllResult{
		Records: pushRes.Records,
		Outcome: pushRes.Outcome,
	}
	status := http.StatusOK
	if pushRes.Err != nil {
		result.Error = pushRes.Err.Error()
		status = http.StatusBadGateway
	} else {
		catalogCache.Invalidate(r.Context())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(result)
}

// GetSyncLogHandler godoc
// @Summary List recent sync attempts
// @Tags sync
// @Produce json
// @Param limit query int false "Max entries (default 20)"
// @Success 200 {array} models.SyncEntry
// @Failure 500 {string} string "Internal error"
// @Router /sync/log [get]
func GetSyncLogHandler(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	entries, err := syncLogRepo.Recent(limit)
	if err != nil {
		http.Error(w, "could not fetch sync log", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []models.SyncEntry{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}
