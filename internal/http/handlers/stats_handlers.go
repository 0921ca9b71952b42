package handlers

import (
	"encoding/json"
	"net/http"
)

// GetStatsHandler godoc
// @Summary Local store statistics
// @Description Product and lot counts plus the most recent sync outcome.
// @Tags stats
// @Produce json
// @Success 200 {object} StatsResult
// @Failure 500 {string} string "Internal error"
// @Router /stats [get]
func GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	products, lotes, err := productRepo.Count()
	if err != nil {
		http.Error(w, "could not compute stats", http.StatusInternalServerError)
		return
	}

	result := StatsResult{Products: products, Lotes: lotes}
	if entries, err := syncLogRepo.Recent(1); err == nil && len(entries) > 0 {
		result.LastSync = entries[0].CreatedAt
		result.LastSyncOutcome = entries[0].Outcome
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
