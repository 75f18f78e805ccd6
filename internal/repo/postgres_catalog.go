package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rogerio-castellano/bowling-catalog/internal/models"
	"github.com/rogerio-castellano/bowling-catalog/internal/query"
)

const productSelect = `SELECT id, name, weight, colour, rg, diff, lane_conditions, coverstock, core, price, is_available, category_id FROM products`

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY,
		manufacturer_name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		weight INTEGER NOT NULL DEFAULT 0,
		colour TEXT NOT NULL DEFAULT '',
		rg DOUBLE PRECISION NOT NULL DEFAULT 0,
		diff DOUBLE PRECISION NOT NULL DEFAULT 0,
		lane_conditions TEXT NOT NULL DEFAULT '',
		coverstock TEXT NOT NULL DEFAULT '',
		core TEXT NOT NULL DEFAULT '',
		price NUMERIC(10, 2) NOT NULL DEFAULT 0,
		is_available BOOLEAN NOT NULL DEFAULT FALSE,
		category_id INTEGER NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS categories_manufacturer_name_key ON categories (manufacturer_name)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS products_name_key ON products (name)`,
	`CREATE INDEX IF NOT EXISTS products_category_id_idx ON products (category_id)`,
}

type PostgresCatalogRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresCatalogRepository(db *sql.DB, timeout time.Duration) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db, timeout: timeout}
}

func (r *PostgresCatalogRepository) Find(ctx context.Context, d query.Descriptor) ([]models.Product, error) {
	stmt, args, err := findProductsSQL(d)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func findProductsSQL(d query.Descriptor) (string, []any, error) {
	b := newSQLBuilder(productColumns)
	where, err := b.where(d.Filter)
	if err != nil {
		return "", nil, err
	}
	order, err := b.orderBy(d.Sort)
	if err != nil {
		return "", nil, err
	}
	return productSelect + " WHERE " + where + order + b.window(d.Window), b.args, nil
}

func (r *PostgresCatalogRepository) Count(ctx context.Context, filter query.Predicate) (int64, error) {
	b := newSQLBuilder(productColumns)
	where, err := b.where(filter)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var n int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products WHERE "+where, b.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (r *PostgresCatalogRepository) FindByID(ctx context.Context, id int) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, productSelect+" WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresCatalogRepository) FindCategories(ctx context.Context, filter query.Predicate) ([]models.Category, error) {
	b := newSQLBuilder(categoryColumns)
	where, err := b.where(filter)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, "SELECT id, manufacturer_name FROM categories WHERE "+where+" ORDER BY id", b.args...)
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.ManufacturerName); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresCatalogRepository) Insert(ctx context.Context, p models.Product) error {
	stmt := `INSERT INTO products (id, name, weight, colour, rg, diff, lane_conditions, coverstock, core, price, is_available, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, stmt, p.ID, p.Name, p.Weight, p.Colour, p.RG, p.Diff,
		p.LaneConditions, p.Coverstock, p.Core, p.Price, p.IsAvailable, p.CategoryID)
	if isUniqueViolation(err) {
		return ErrDuplicatedValueUnique
	}
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *PostgresCatalogRepository) Replace(ctx context.Context, id int, p models.Product) (int64, error) {
	stmt := `UPDATE products SET name = $1, weight = $2, colour = $3, rg = $4, diff = $5, lane_conditions = $6,
		coverstock = $7, core = $8, price = $9, is_available = $10, category_id = $11 WHERE id = $12`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, stmt, p.Name, p.Weight, p.Colour, p.RG, p.Diff, p.LaneConditions,
		p.Coverstock, p.Core, p.Price, p.IsAvailable, p.CategoryID, id)
	if isUniqueViolation(err) {
		return 0, ErrDuplicatedValueUnique
	}
	if err != nil {
		return 0, fmt.Errorf("replace product %d: %w", id, err)
	}
	return res.RowsAffected()
}

func (r *PostgresCatalogRepository) Delete(ctx context.Context, id int) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete product %d: %w", id, err)
	}
	return res.RowsAffected()
}

func (r *PostgresCatalogRepository) InsertCategory(ctx context.Context, c models.Category) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT INTO categories (id, manufacturer_name) VALUES ($1, $2)`, c.ID, c.ManufacturerName)
	if isUniqueViolation(err) {
		return ErrDuplicatedValueUnique
	}
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// EnsureIndexes creates the tables and their indexes when missing.
func (r *PostgresCatalogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Weight, &p.Colour, &p.RG, &p.Diff, &p.LaneConditions,
		&p.Coverstock, &p.Core, &p.Price, &p.IsAvailable, &p.CategoryID)
	return p, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
