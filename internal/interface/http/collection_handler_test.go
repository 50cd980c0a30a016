package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftly/craftly-api/internal/application"
	"github.com/craftly/craftly-api/internal/domain/entity"
)

type stubCollectionRepo struct {
	CreateFunc func(ctx context.Context, c *entity.Collection) error
	UpdateFunc func(ctx context.Context, c *entity.Collection) error
	DeleteFunc func(ctx context.Context, id string) error
	ListFunc   func(ctx context.Context) ([]entity.Collection, error)
}

func (s *stubCollectionRepo) Create(ctx context.Context, c *entity.Collection) error {
	if s.CreateFunc != nil {
		return s.CreateFunc(ctx, c)
	}
	c.ID = "col-1"
	return nil
}

func (s *stubCollectionRepo) Update(ctx context.Context, c *entity.Collection) error {
	if s.UpdateFunc != nil {
		return s.UpdateFunc(ctx, c)
	}
	return nil
}

func (s *stubCollectionRepo) Delete(ctx context.Context, id string) error {
	if s.DeleteFunc != nil {
		return s.DeleteFunc(ctx, id)
	}
	return nil
}

func (s *stubCollectionRepo) List(ctx context.Context) ([]entity.Collection, error) {
	if s.ListFunc != nil {
		return s.ListFunc(ctx)
	}
	return []entity.Collection{}, nil
}

func newCollectionRouter(repo *stubCollectionRepo) *gin.Engine {
	h := NewCollectionHandler(application.NewCollectionService(repo), quietLogger())
	r := gin.New()
	r.POST("/api/collection", h.Create)
	r.PUT("/api/collection/:id", h.Update)
	r.DELETE("/api/collection/:id", h.Delete)
	r.GET("/api/collection", h.List)
	return r
}

func TestCollectionHandler_Create(t *testing.T) {
	t.Run("creates", func(t *testing.T) {
		w := doJSON(newCollectionRouter(&stubCollectionRepo{}), http.MethodPost, "/api/collection", gin.H{"name": "Summer"})

		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Collection created with success", body["message"])
		col := body["collection"].(map[string]any)
		assert.Equal(t, "Summer", col["name"])
	})

	t.Run("missing name", func(t *testing.T) {
		w := doJSON(newCollectionRouter(&stubCollectionRepo{}), http.MethodPost, "/api/collection", gin.H{})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Collection name is required", decode(t, w)["message"])
	})
}

func TestCollectionHandler_Update(t *testing.T) {
	t.Run("renames", func(t *testing.T) {
		w := doJSON(newCollectionRouter(&stubCollectionRepo{}), http.MethodPut, "/api/collection/col-1", gin.H{"name": "Winter"})

		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Collection updated with success", body["message"])
		col := body["updatedCollection"].(map[string]any)
		assert.Equal(t, "Winter", col["name"])
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := &stubCollectionRepo{UpdateFunc: func(ctx context.Context, c *entity.Collection) error {
			return errors.New("no rows")
		}}
		w := doJSON(newCollectionRouter(repo), http.MethodPut, "/api/collection/missing", gin.H{"name": "Winter"})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Collection not found", decode(t, w)["message"])
	})
}

func TestCollectionHandler_Delete(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		w := doJSON(newCollectionRouter(&stubCollectionRepo{}), http.MethodDelete, "/api/collection/col-1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Collection deleted successfully", decode(t, w)["message"])
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := &stubCollectionRepo{DeleteFunc: func(ctx context.Context, id string) error {
			return errors.New("no rows")
		}}
		w := doJSON(newCollectionRouter(repo), http.MethodDelete, "/api/collection/missing", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Collection not found", decode(t, w)["message"])
	})
}

func TestCollectionHandler_List(t *testing.T) {
	repo := &stubCollectionRepo{ListFunc: func(ctx context.Context) ([]entity.Collection, error) {
		return []entity.Collection{{ID: "col-1", Name: "Summer"}, {ID: "col-2", Name: "Winter"}}, nil
	}}
	w := doJSON(newCollectionRouter(repo), http.MethodGet, "/api/collection", nil)

	require.Equal(t, http.StatusOK, w.Code)
	cols := decode(t, w)["collections"].([]any)
	assert.Len(t, cols, 2)
}
