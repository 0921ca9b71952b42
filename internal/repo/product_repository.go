package repo

import "github.com/hemolabs/labelstock/internal/models"

// ProductRepository is the durable local store for products and their lots.
// Upsert replaces the product's attributes and its whole lot set in one
// transaction; Delete cascades to the product's lots.
type ProductRepository interface {
	Upsert(product models.Product) error
	GetAll() ([]models.Product, error)
	GetByCode(codigo string) (models.Product, error)
	Delete(codigo string) error
	Count() (products int, lotes int, err error)
}
