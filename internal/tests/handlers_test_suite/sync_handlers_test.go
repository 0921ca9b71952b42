package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/hemolabs/labelstock/internal/http"
	handler "github.com/hemolabs/labelstock/internal/http/handlers"
	"github.com/hemolabs/labelstock/internal/models"
)

func TestSyncAllHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	saveProduct(r, handler.ProductRequest{
		Codigo: "499-4V", Descripcion: "STA Cleaner solution",
		Lote: "271596", FechaExpiracion: "46203",
	})
	saveProduct(r, handler.ProductRequest{Codigo: "B2", Descripcion: "Sin lotes"})
	syncClient.pushed = nil

	req := httptest.NewRequest(http.MethodPost, "/sync", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.SyncAllResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Outcome != models.SyncOutcomeOK {
		t.Errorf("expected outcome ok, got %+v", resp)
	}
	// One flat record per lot, plus one for the lot-less product.
	if resp.Records != 2 {
		t.Errorf("expected 2 records, got %d", resp.Records)
	}

	if len(syncClient.pushed) != 1 {
		t.Fatalf("expected one pushed batch, got %d", len(syncClient.pushed))
	}
}

func TestSyncAllHandler_Failure(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	saveProduct(r, handler.ProductRequest{Codigo: "A1", Descripcion: "Primero"})
	failSync()

	req := httptest.NewRequest(http.MethodPost, "/sync", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}

	var resp handler.SyncAllResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Outcome != models.SyncOutcomeFailed || resp.Error == "" {
		t.Errorf("expected failure details, got %+v", resp)
	}
}

func TestGetSyncLogHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	saveProduct(r, handler.ProductRequest{Codigo: "A1", Descripcion: "Primero"})
	failSync()
	saveProduct(r, handler.ProductRequest{Codigo: "B2", Descripcion: "Segundo"})

	req := httptest.NewRequest(http.MethodGet, "/sync/log", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var entries []models.SyncEntry
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Outcome != models.SyncOutcomeFailed {
		t.Errorf("expected newest entry first, got %+v", entries[0])
	}
	if entries[1].Outcome != models.SyncOutcomeOK {
		t.Errorf("expected oldest entry ok, got %+v", entries[1])
	}
}

func TestGetSyncLogHandler_InvalidLimit(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/sync/log?limit=zero", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid limit, got %d", w.Code)
	}
}

func TestGetStatsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	saveProduct(r, handler.ProductRequest{
		Codigo: "499-4V", Descripcion: "STA Cleaner solution",
		Lote: "271596", FechaExpiracion: "46203",
	})
	saveProduct(r, handler.ProductRequest{Codigo: "B2", Descripcion: "Sin lotes"})

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.StatsResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Products != 2 || resp.Lotes != 1 {
		t.Errorf("expected 2 products and 1 lot, got %+v", resp)
	}
	if resp.LastSyncOutcome != models.SyncOutcomeOK {
		t.Errorf("expected last sync outcome recorded, got %+v", resp)
	}
}

func TestGetCatalogHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	syncClient.remote = []models.ProductFlat{
		{Codigo: "REMOTE-1", Descripcion: "Remoto uno"},
	}

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var items []models.ProductFlat
	if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(items) != 1 || items[0].Codigo != "REMOTE-1" {
		t.Errorf("expected remote catalog, got %v", items)
	}
}

func TestGetCatalogHandler_RemoteDown(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	failSync()

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502 when the remote is down, got %d", w.Code)
	}
}
