package repo

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/hemolabs/labelstock/internal/models"
)

const productSchema = `
CREATE TABLE IF NOT EXISTS productos (
	codigo       TEXT PRIMARY KEY,
	marca        TEXT NOT NULL DEFAULT '',
	descripcion  TEXT NOT NULL DEFAULT '',
	unidad       TEXT NOT NULL DEFAULT '',
	empresa      TEXT NOT NULL DEFAULT '',
	area         TEXT NOT NULL DEFAULT '',
	presentacion TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_productos_marca ON productos(marca);
CREATE INDEX IF NOT EXISTS idx_productos_descripcion ON productos(descripcion);

CREATE TABLE IF NOT EXISTS lotes (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	codigo_producto  TEXT NOT NULL REFERENCES productos(codigo) ON DELETE CASCADE,
	lote             TEXT NOT NULL,
	fecha_expiracion TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_lotes_codigo_producto ON lotes(codigo_producto);
CREATE INDEX IF NOT EXISTS idx_lotes_lote ON lotes(lote);
`

// SqliteProductRepository is the embedded durable implementation of
// ProductRepository. The schema is created lazily on first use; concurrent
// first calls share one in-flight setup.
type SqliteProductRepository struct {
	db       *sql.DB
	initOnce sync.Once
	initErr  error
}

func NewSqliteProductRepository(db *sql.DB) *SqliteProductRepository {
	return &SqliteProductRepository{db: db}
}

func (r *SqliteProductRepository) init() error {
	r.initOnce.Do(func() {
		_, r.initErr = r.db.Exec(productSchema)
	})
	return r.initErr
}

// Upsert replaces the product row for p.Codigo and swaps the whole lot set
// in the same transaction: a failure after the lot delete rolls everything
// back, never leaving a half-updated lot set. Lots with an empty lot number
// are not persisted.
func (r *SqliteProductRepository) Upsert(p models.Product) error {
	if err := r.init(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO productos (codigo, marca, descripcion, unidad, empresa, area, presentacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT(codigo) DO UPDATE SET
			marca = excluded.marca,
			descripcion = excluded.descripcion,
			unidad = excluded.unidad,
			empresa = excluded.empresa,
			area = excluded.area,
			presentacion = excluded.presentacion`,
		p.Codigo, p.Marca, p.Descripcion, p.Unidad, p.Empresa, p.Area, p.Presentacion)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM lotes WHERE codigo_producto = $1`, p.Codigo); err != nil {
		return err
	}

	for _, l := range p.Lotes {
		if l.Lote == "" {
			continue
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO lotes (codigo_producto, lote, fecha_expiracion) VALUES ($1, $2, $3)`,
			p.Codigo, l.Lote, l.FechaExpiracion)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *SqliteProductRepository) GetAll() ([]models.Product, error) {
	if err := r.init(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT codigo, marca, descripcion, unidad, empresa, area, presentacion FROM productos ORDER BY codigo`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.Codigo, &p.Marca, &p.Descripcion, &p.Unidad, &p.Empresa, &p.Area, &p.Presentacion); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range products {
		lotes, err := r.lotesFor(ctx, products[i].Codigo)
		if err != nil {
			return nil, err
		}
		products[i].Lotes = lotes
	}
	return products, nil
}

func (r *SqliteProductRepository) GetByCode(codigo string) (models.Product, error) {
	if err := r.init(); err != nil {
		return models.Product{}, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, `SELECT codigo, marca, descripcion, unidad, empresa, area, presentacion FROM productos WHERE codigo = $1`, codigo).
		Scan(&p.Codigo, &p.Marca, &p.Descripcion, &p.Unidad, &p.Empresa, &p.Area, &p.Presentacion)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, err
	}

	p.Lotes, err = r.lotesFor(ctx, codigo)
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *SqliteProductRepository) lotesFor(ctx context.Context, codigo string) ([]models.Lote, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT lote, fecha_expiracion FROM lotes WHERE codigo_producto = $1 ORDER BY id`, codigo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lotes := []models.Lote{}
	for rows.Next() {
		var l models.Lote
		if err := rows.Scan(&l.Lote, &l.FechaExpiracion); err != nil {
			return nil, err
		}
		lotes = append(lotes, l)
	}
	return lotes, rows.Err()
}

// Delete removes a product and all lots referencing it.
func (r *SqliteProductRepository) Delete(codigo string) error {
	if err := r.init(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM lotes WHERE codigo_producto = $1`, codigo); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM productos WHERE codigo = $1`, codigo)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return tx.Commit()
}

func (r *SqliteProductRepository) Count() (int, int, error) {
	if err := r.init(); err != nil {
		return 0, 0, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var products, lotes int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM productos`).Scan(&products); err != nil {
		return 0, 0, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lotes`).Scan(&lotes); err != nil {
		return 0, 0, err
	}
	return products, lotes, nil
}
