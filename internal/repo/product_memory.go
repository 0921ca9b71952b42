package repo

import (
	"sort"
	"sync"

	"github.com/hemolabs/labelstock/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository, used by the handler test suites.
type InMemoryProductRepository struct {
	mu       sync.Mutex
	products map[string]models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{products: map[string]models.Product{}}
}

// Upsert replaces the stored product and its whole lot set for p.Codigo.
func (r *InMemoryProductRepository) Upsert(p models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := p
	stored.Lotes = []models.Lote{}
	for _, l := range p.Lotes {
		if l.Lote == "" {
			continue
		}
		stored.Lotes = append(stored.Lotes, l)
	}
	r.products[p.Codigo] = stored
	return nil
}

// GetAll retrieves all products ordered by codigo.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	codes := make([]string, 0, len(r.products))
	for c := range r.products {
		codes = append(codes, c)
	}
	sort.Strings(codes)

	products := make([]models.Product, 0, len(codes))
	for _, c := range codes {
		products = append(products, r.products[c])
	}
	return products, nil
}

// GetByCode retrieves a product by its codigo.
func (r *InMemoryProductRepository) GetByCode(codigo string) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[codigo]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Delete removes a product and its lots.
func (r *InMemoryProductRepository) Delete(codigo string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[codigo]; !ok {
		return ErrProductNotFound
	}
	delete(r.products, codigo)
	return nil
}

func (r *InMemoryProductRepository) Count() (int, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lotes := 0
	for _, p := range r.products {
		lotes += len(p.Lotes)
	}
	return len(r.products), lotes, nil
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = map[string]models.Product{}
}
