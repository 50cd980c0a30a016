package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftly/craftly-api/internal/domain/entity"
)

type mockCollectionRepository struct {
	CreateFunc func(ctx context.Context, c *entity.Collection) error
	UpdateFunc func(ctx context.Context, c *entity.Collection) error
	DeleteFunc func(ctx context.Context, id string) error
	ListFunc   func(ctx context.Context) ([]entity.Collection, error)
}

func (m *mockCollectionRepository) Create(ctx context.Context, c *entity.Collection) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	c.ID = "col-1"
	return nil
}

func (m *mockCollectionRepository) Update(ctx context.Context, c *entity.Collection) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCollectionRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCollectionRepository) List(ctx context.Context) ([]entity.Collection, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func TestCollectionService_Create(t *testing.T) {
	svc := NewCollectionService(&mockCollectionRepository{})

	t.Run("trims and stores the name", func(t *testing.T) {
		c, err := svc.Create(context.Background(), "  Summer  ")
		require.NoError(t, err)
		assert.Equal(t, "col-1", c.ID)
		assert.Equal(t, "Summer", c.Name)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := svc.Create(context.Background(), "   ")
		assert.ErrorIs(t, err, ErrMissingFields)
	})
}

func TestCollectionService_Update(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		repo := &mockCollectionRepository{UpdateFunc: func(ctx context.Context, c *entity.Collection) error {
			return errors.New("no rows")
		}}
		_, err := NewCollectionService(repo).Update(context.Background(), "missing", "Winter")
		assert.ErrorIs(t, err, ErrCollectionNotFound)
	})

	t.Run("renames", func(t *testing.T) {
		c, err := NewCollectionService(&mockCollectionRepository{}).Update(context.Background(), "col-1", "Winter")
		require.NoError(t, err)
		assert.Equal(t, "Winter", c.Name)
	})
}

func TestCollectionService_Delete(t *testing.T) {
	repo := &mockCollectionRepository{DeleteFunc: func(ctx context.Context, id string) error {
		if id != "col-1" {
			return errors.New("no rows")
		}
		return nil
	}}
	svc := NewCollectionService(repo)

	assert.NoError(t, svc.Delete(context.Background(), "col-1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrCollectionNotFound)
}
