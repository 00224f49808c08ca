package repository

import (
	"context"

	"gorm.io/gorm"
)

// Filter is a conjunctive set of exact-match criteria keyed by column name.
// An empty filter matches every row.
type Filter map[string]any

// Repository provides filtered CRUD over a single gorm model.
type Repository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

func (r *Repository[T]) FindAll(ctx context.Context, filter Filter) ([]T, error) {
	var rows []T
	q := r.db.WithContext(ctx)
	if len(filter) > 0 {
		q = q.Where(map[string]any(filter))
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	var row T
	q := r.db.WithContext(ctx)
	if len(filter) > 0 {
		q = q.Where(map[string]any(filter))
	}
	if err := q.First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository[T]) Add(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// Update applies a sparse set of column changes to the row with the given id
// and returns the row as persisted. Returns gorm.ErrRecordNotFound when no
// such row exists.
func (r *Repository[T]) Update(ctx context.Context, id uint, changes map[string]any) (*T, error) {
	if _, err := r.FindOne(ctx, Filter{"id": id}); err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		if err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return r.FindOne(ctx, Filter{"id": id})
}

// UpdateByFilter applies changes to every row matching the filter. Used for
// tables without a single-column id, like project_attributes.
func (r *Repository[T]) UpdateByFilter(ctx context.Context, match Filter, changes map[string]any) error {
	return r.db.WithContext(ctx).Model(new(T)).Where(map[string]any(match)).Updates(changes).Error
}

func (r *Repository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository[T]) DeleteByFilter(ctx context.Context, filter Filter) error {
	return r.db.WithContext(ctx).Where(map[string]any(filter)).Delete(new(T)).Error
}
