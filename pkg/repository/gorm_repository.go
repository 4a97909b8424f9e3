package repository

import (
	"context"

	"gorm.io/gorm"

	pkgerrors "github.com/narwhalmedia/marquee/pkg/errors"
)

// Query narrows a lookup to matching rows in a given order.
type Query struct {
	Where string
	Args  []interface{}
	Order string
	Limit int
}

// Create inserts a new entity into the database.
func Create[T any](ctx context.Context, db *gorm.DB, entity *T) error {
	if err := db.WithContext(ctx).Create(entity).Error; err != nil {
		if pkgerrors.IsDuplicateError(err) {
			return pkgerrors.Conflict("entity already exists")
		}
		return err
	}
	return nil
}

// FindAll returns every entity matching q. An empty result is not an error.
func FindAll[T any](ctx context.Context, db *gorm.DB, q Query) ([]T, error) {
	entities := make([]T, 0)
	query := db.WithContext(ctx)
	if q.Where != "" {
		query = query.Where(q.Where, q.Args...)
	}
	if q.Order != "" {
		query = query.Order(q.Order)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	if err := query.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Count returns the number of entities matching q.
func Count[T any](ctx context.Context, db *gorm.DB, q Query) (int64, error) {
	var count int64
	var entity T
	query := db.WithContext(ctx).Model(&entity)
	if q.Where != "" {
		query = query.Where(q.Where, q.Args...)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
