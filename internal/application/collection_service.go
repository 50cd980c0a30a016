package application

import (
	"context"
	"strings"

	"github.com/craftly/craftly-api/internal/domain/entity"
	"github.com/craftly/craftly-api/internal/domain/repository"
)

// CollectionService owns collection CRUD. Each operation is a single
// database round trip.
type CollectionService struct {
	Repo repository.CollectionRepository
}

func NewCollectionService(repo repository.CollectionRepository) *CollectionService {
	return &CollectionService{Repo: repo}
}

func (s *CollectionService) Create(ctx context.Context, name string) (*entity.Collection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingFields
	}
	c := &entity.Collection{Name: name}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CollectionService) Update(ctx context.Context, id, name string) (*entity.Collection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingFields
	}
	c := &entity.Collection{ID: id, Name: name}
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, ErrCollectionNotFound
	}
	return c, nil
}

func (s *CollectionService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return ErrCollectionNotFound
	}
	return nil
}

func (s *CollectionService) List(ctx context.Context) ([]entity.Collection, error) {
	return s.Repo.List(ctx)
}
