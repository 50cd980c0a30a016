package repository

import (
	"context"

	"github.com/craftly/craftly-api/internal/domain/entity"
)

// ProductRepository defines the interface for product persistence.
// Products are created with a caller-provided id; there is no update or
// delete operation.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	List(ctx context.Context) ([]entity.Product, error)
}
