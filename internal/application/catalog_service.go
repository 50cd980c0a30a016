package application

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/craftly/craftly-api/internal/domain/entity"
	"github.com/craftly/craftly-api/internal/domain/repository"
)

// ObjectStore is the blob store the upload pipeline writes to. Upload
// returns the retrievable URL of the stored object.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// ProductImage is one file part of the product-creation request.
type ProductImage struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreateProductInput carries the multipart form fields plus the file
// parts. All four fields are required before any upload is attempted.
type CreateProductInput struct {
	Name         string
	Price        float64
	Description  string
	CollectionID string
	Images       []ProductImage
}

// CatalogService owns product creation (the upload pipeline), listing
// and search.
type CatalogService struct {
	Repo    repository.ProductRepository
	Store   ObjectStore
	Logger  *logrus.Logger
	ES      *elasticsearch.Client
	ESIndex string
}

func NewCatalogService(repo repository.ProductRepository, store ObjectStore, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *CatalogService {
	return &CatalogService{Repo: repo, Store: store, Logger: logger, ES: es, ESIndex: esIndex}
}

// photoKey builds the storage key for the n-th (1-based) photo of a
// product.
func photoKey(productID string, n int, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".png"
	}
	return fmt.Sprintf("products/%s/photo_%d%s", productID, n, ext)
}

// CreateProduct runs the upload pipeline: validate fields, upload every
// image concurrently under a pre-generated product id, then persist the
// product with the collected URLs in file order. If any upload fails no
// product row is written; blobs already uploaded are removed best
// effort. If the insert itself fails after all uploads succeeded, the
// uploaded blobs are likewise removed best effort.
func (s *CatalogService) CreateProduct(ctx context.Context, in CreateProductInput) (*entity.Product, error) {
	if strings.TrimSpace(in.Name) == "" || in.Price <= 0 ||
		strings.TrimSpace(in.Description) == "" || strings.TrimSpace(in.CollectionID) == "" {
		return nil, ErrMissingFields
	}

	// The id doubles as the storage-key namespace, so uploads can start
	// before the database row exists.
	productID := uuid.NewString()

	keys := make([]string, len(in.Images))
	urls := make([]string, len(in.Images))

	g, gctx := errgroup.WithContext(ctx)
	for i, img := range in.Images {
		i, img := i, img
		key := photoKey(productID, i+1, img.Filename)
		keys[i] = key
		g.Go(func() error {
			url, err := s.Store.Upload(gctx, key, img.ContentType, bytes.NewReader(img.Data))
			if err != nil {
				return fmt.Errorf("upload %s: %w", key, err)
			}
			// Completion order varies; the slot index keeps each URL
			// associated with its source file.
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", productID).Error("product image upload failed")
		}
		s.cleanupBlobs(keys, urls)
		return nil, ErrUploadFailed
	}

	p := &entity.Product{
		ID:           productID,
		Name:         in.Name,
		Price:        in.Price,
		Description:  in.Description,
		Photos:       urls,
		CollectionID: in.CollectionID,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		s.cleanupBlobs(keys, urls)
		return nil, err
	}

	// Search indexing is best effort; the product exists either way.
	_ = s.indexProduct(ctx, p)

	return p, nil
}

// cleanupBlobs deletes the blobs that made it to the store before the
// request failed. Detached from the request context so an aborted
// request still cleans up.
func (s *CatalogService) cleanupBlobs(keys, urls []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for i, key := range keys {
		if urls[i] == "" {
			continue
		}
		if err := s.Store.Delete(ctx, key); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("orphan blob cleanup failed")
		}
	}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return s.Repo.List(ctx)
}

func (s *CatalogService) indexProduct(ctx context.Context, p *entity.Product) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":            p.ID,
		"name":          p.Name,
		"price":         p.Price,
		"description":   p.Description,
		"collection_id": p.CollectionID,
		"created_at":    p.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("product_id", p.ID).Warn("es index response error")
	}
	return nil
}

// SearchProducts performs a multi_match search on name and description.
func (s *CatalogService) SearchProducts(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
