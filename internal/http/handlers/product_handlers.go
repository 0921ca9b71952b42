package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	models "github.com/hemolabs/labelstock/internal/models"
	repo "github.com/hemolabs/labelstock/internal/repo"
)

// SaveProductHandler godoc
// @Summary Save a product
// @Description Upserts a product locally, then pushes it to the remote inventory. A failed push never undoes the local save.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to save"
// @Success 201 {object} SaveResult
// @Failure 400 {array} ProductValidationError
// @Router /products [post]
func SaveProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	flat := models.ProductFlat(req)
	product := models.FlatToNested(flat)

	// New lots extend the stored set instead of replacing it.
	if existing, err := productRepo.GetByCode(product.Codigo); err == nil {
		product.Lotes = mergeLotes(existing.Lotes, product.Lotes)
	}

	if err := productRepo.Upsert(product); err != nil {
		http.Error(w, "could not save product", http.StatusInternalServerError)
		return
	}

	result := SaveResult{Saved: true}
	pushRes := syncClient.PushFlat(r.Context(), []models.ProductFlat{flat})
	recordSync(pushRes)
	if pushRes.Err != nil {
		result.SyncError = pushRes.Err.Error()
	} else {
		result.Synced = true
		catalogCache.Invalidate(r.Context())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

func mergeLotes(existing, incoming []models.Lote) []models.Lote {
	merged := append([]models.Lote{}, existing...)
	for _, in := range incoming {
		seen := false
		for _, l := range merged {
			if l.Lote == in.Lote {
				seen = true
				break
			}
		}
		if !seen {
			merged = append(merged, in)
		}
	}
	return merged
}

func recordSync(res interface{ Entry() models.SyncEntry }) {
	if syncLogRepo == nil {
		return
	}
	if _, err := syncLogRepo.Add(res.Entry()); err != nil {
		log.Printf("Failed to record sync outcome: %v", err)
	}
}

// GetProductsHandler godoc
// @Summary List all locally stored products
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// GetProductByCodeHandler godoc
// @Summary Get product by code
// @Tags products
// @Produce json
// @Param codigo path string true "Product code"
// @Success 200 {object} models.Product
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{codigo} [get]
func GetProductByCodeHandler(w http.ResponseWriter, r *http.Request) {
	codigo := chi.URLParam(r, "codigo")
	if codigo == "" {
		http.Error(w, "product code is required", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByCode(codigo)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// DeleteProductHandler godoc
// @Summary Delete a product and its lots
// @Tags products
// @Param codigo path string true "Product code"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{codigo} [delete]
// @Security BearerAuth
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	codigo := chi.URLParam(r, "codigo")
	if codigo == "" {
		http.Error(w, "product code is required", http.StatusBadRequest)
		return
	}
	if err := productRepo.Delete(codigo); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
