package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/craftly/craftly-api/internal/domain/entity"
	"github.com/craftly/craftly-api/internal/domain/repository"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (id, name, price, description, photos, stock, sold, collection_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`, p.ID, p.Name, p.Price, p.Description, p.Photos, p.Stock, p.Sold, p.CollectionID)

	return row.Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, price, description, photos, stock, sold, collection_id, created_at, updated_at
		FROM products
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Photos,
			&p.Stock, &p.Sold, &p.CollectionID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
