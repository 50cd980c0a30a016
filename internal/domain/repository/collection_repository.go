package repository

import (
	"context"

	"github.com/craftly/craftly-api/internal/domain/entity"
)

// CollectionRepository defines the interface for collection CRUD.
type CollectionRepository interface {
	Create(ctx context.Context, c *entity.Collection) error
	Update(ctx context.Context, c *entity.Collection) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entity.Collection, error)
}
