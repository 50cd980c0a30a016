package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftly/craftly-api/internal/application"
	"github.com/craftly/craftly-api/internal/domain/entity"
)

type stubProductRepo struct {
	CreateFunc func(ctx context.Context, p *entity.Product) error
	ListFunc   func(ctx context.Context) ([]entity.Product, error)
}

func (s *stubProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if s.CreateFunc != nil {
		return s.CreateFunc(ctx, p)
	}
	return nil
}

func (s *stubProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	if s.ListFunc != nil {
		return s.ListFunc(ctx)
	}
	return []entity.Product{}, nil
}

type stubObjectStore struct {
	mu      sync.Mutex
	deleted []string
	fail    bool
}

func (s *stubObjectStore) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	if s.fail {
		return "", errors.New("bucket unavailable")
	}
	return "https://storage.example.com/" + key, nil
}

func (s *stubObjectStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	s.deleted = append(s.deleted, key)
	s.mu.Unlock()
	return nil
}

func newProductRouter(repo *stubProductRepo, store *stubObjectStore) *gin.Engine {
	svc := application.NewCatalogService(repo, store, quietLogger(), nil, "")
	h := NewProductHandler(svc, quietLogger())
	r := gin.New()
	r.POST("/api/product", h.Create)
	r.GET("/api/product", h.List)
	return r
}

// multipartBody builds a product-creation form with the given fields and
// n attached image files.
func multipartBody(t *testing.T, fields map[string]string, n int) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for i := 1; i <= n; i++ {
		fw, err := mw.CreateFormFile(fmt.Sprintf("photo%d", i), fmt.Sprintf("photo%d.jpg", i))
		require.NoError(t, err)
		_, err = fw.Write([]byte("jpegdata"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func productFields() map[string]string {
	return map[string]string{
		"name":         "Mug",
		"price":        "12.5",
		"description":  "A mug",
		"collectionId": "col-1",
	}
}

func TestProductHandler_Create(t *testing.T) {
	t.Run("creates with uploaded photos", func(t *testing.T) {
		var created *entity.Product
		repo := &stubProductRepo{CreateFunc: func(ctx context.Context, p *entity.Product) error {
			created = p
			return nil
		}}
		r := newProductRouter(repo, &stubObjectStore{})

		body, ctype := multipartBody(t, productFields(), 2)
		req := httptest.NewRequest(http.MethodPost, "/api/product", body)
		req.Header.Set("Content-Type", ctype)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, created)
		out := decode(t, w)
		product := out["product"].(map[string]any)
		photos := product["photos"].([]any)
		require.Len(t, photos, 2)
		for i, p := range photos {
			assert.Equal(t, fmt.Sprintf("https://storage.example.com/products/%s/photo_%d.jpg", created.ID, i+1), p)
		}
	})

	t.Run("missing field", func(t *testing.T) {
		fields := productFields()
		delete(fields, "description")
		body, ctype := multipartBody(t, fields, 1)

		req := httptest.NewRequest(http.MethodPost, "/api/product", body)
		req.Header.Set("Content-Type", ctype)
		w := httptest.NewRecorder()
		newProductRouter(&stubProductRepo{}, &stubObjectStore{}).ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Please fill all details", decode(t, w)["message"])
	})

	t.Run("non-numeric price", func(t *testing.T) {
		fields := productFields()
		fields["price"] = "free"
		body, ctype := multipartBody(t, fields, 1)

		req := httptest.NewRequest(http.MethodPost, "/api/product", body)
		req.Header.Set("Content-Type", ctype)
		w := httptest.NewRecorder()
		newProductRouter(&stubProductRepo{}, &stubObjectStore{}).ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Please fill all details", decode(t, w)["message"])
	})

	t.Run("upload failure", func(t *testing.T) {
		createCalled := false
		repo := &stubProductRepo{CreateFunc: func(ctx context.Context, p *entity.Product) error {
			createCalled = true
			return nil
		}}
		body, ctype := multipartBody(t, productFields(), 2)

		req := httptest.NewRequest(http.MethodPost, "/api/product", body)
		req.Header.Set("Content-Type", ctype)
		w := httptest.NewRecorder()
		newProductRouter(repo, &stubObjectStore{fail: true}).ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		body2 := decode(t, w)
		assert.Equal(t, false, body2["success"])
		assert.Equal(t, "Image upload failed", body2["message"])
		assert.False(t, createCalled)
	})
}

func TestProductHandler_List(t *testing.T) {
	repo := &stubProductRepo{ListFunc: func(ctx context.Context) ([]entity.Product, error) {
		return []entity.Product{{ID: "p1", Name: "Mug"}}, nil
	}}
	req := httptest.NewRequest(http.MethodGet, "/api/product", nil)
	w := httptest.NewRecorder()
	newProductRouter(repo, &stubObjectStore{}).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	products := decode(t, w)["products"].([]any)
	require.Len(t, products, 1)
	assert.Equal(t, "Mug", products[0].(map[string]any)["name"])
}
