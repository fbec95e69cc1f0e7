package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaimono-dev/storefront/internal/domain"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	const stmt = `
INSERT INTO products (name, price, stock, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

	err := r.pool.QueryRow(ctx, stmt,
		product.Name,
		product.Price,
		product.Stock,
		product.Description,
		product.CreatedAt,
		product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isCheckViolation(err) {
			return domain.Product{}, domain.ErrInvalidStock
		}
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

func (r *ProductRepository) GetProduct(ctx context.Context, productID int64) (domain.Product, error) {
	const query = `
SELECT id, name, price, stock, description, created_at, updated_at
FROM products
WHERE id = $1`

	var p domain.Product
	err := r.pool.QueryRow(ctx, query, productID).
		Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const query = `
SELECT id, name, price, stock, description, created_at, updated_at
FROM products
ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate products: %w", rows.Err())
	}
	return products, nil
}

// FindProductByName is used by seeding to keep inserts idempotent.
func (r *ProductRepository) FindProductByName(ctx context.Context, name string) (*domain.Product, error) {
	const query = `
SELECT id, name, price, stock, description, created_at, updated_at
FROM products
WHERE name = $1
LIMIT 1`

	var p domain.Product
	err := r.pool.QueryRow(ctx, query, name).
		Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find product by name: %w", err)
	}
	return &p, nil
}
