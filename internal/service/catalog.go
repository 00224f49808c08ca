package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Konaisya/construction-company/internal/repository"
	"gorm.io/gorm"
)

// Catalog provides filtered CRUD for flat reference entities: cities,
// categories, units and attributes all behave identically.
type Catalog[T any] struct {
	repo *repository.Repository[T]
}

func NewCatalog[T any](db *gorm.DB) *Catalog[T] {
	return &Catalog[T]{repo: repository.New[T](db)}
}

func (s *Catalog[T]) GetAll(ctx context.Context, filter repository.Filter) ([]T, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *Catalog[T]) GetOne(ctx context.Context, filter repository.Filter) (*T, error) {
	row, err := s.repo.FindOne(ctx, filter)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return row, err
}

func (s *Catalog[T]) Create(ctx context.Context, row *T) error {
	if err := s.repo.Add(ctx, row); err != nil {
		return fmt.Errorf("%w: %v", ErrFailed, err)
	}
	return nil
}

func (s *Catalog[T]) Update(ctx context.Context, id uint, changes map[string]any) (*T, error) {
	row, err := s.repo.Update(ctx, id, changes)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailed, err)
	}
	return row, nil
}

func (s *Catalog[T]) Delete(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
