package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/craftly/craftly-api/internal/domain/entity"
	"github.com/craftly/craftly-api/internal/domain/repository"
)

type CollectionRepository struct {
	pool *pgxpool.Pool
}

func NewCollectionRepository(pool *pgxpool.Pool) *CollectionRepository {
	return &CollectionRepository{pool: pool}
}

func (r *CollectionRepository) Create(ctx context.Context, c *entity.Collection) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO collections (name)
		VALUES ($1)
		RETURNING id, created_at, updated_at
	`, c.Name)

	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CollectionRepository) Update(ctx context.Context, c *entity.Collection) error {
	c.UpdatedAt = time.Now()

	row := r.pool.QueryRow(ctx, `
		UPDATE collections
		SET name = $1, updated_at = $2
		WHERE id = $3
		RETURNING created_at
	`, c.Name, c.UpdatedAt, c.ID)

	if err := row.Scan(&c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errNotFound
		}
		return err
	}
	return nil
}

func (r *CollectionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

func (r *CollectionRepository) List(ctx context.Context) ([]entity.Collection, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM collections
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Collection, 0)
	for rows.Next() {
		var c entity.Collection
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

var _ repository.CollectionRepository = (*CollectionRepository)(nil)
