package services

import (
	"errors"

	"gorm.io/gorm"
)

// entityStore is the record store shared by every entity service. The six
// entities are structurally identical at this level, so the per-entity
// services embed one instantiation each and only add their field lists and
// domain rules on top.
type entityStore[T any] struct {
	DB *gorm.DB
}

// getAll returns every row ordered by id, which for an auto-increment key is
// insertion order.
func (s *entityStore[T]) getAll() ([]T, error) {
	rows := make([]T, 0)
	if err := s.DB.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// getByID returns the row or nil when no row has the id. A missing row is a
// normal outcome here, not an error; mutations that need a failure use the
// per-entity sentinel instead.
func (s *entityStore[T]) getByID(id uint) (*T, error) {
	var row T
	if err := s.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// create persists the row; the store assigns id and timestamps.
func (s *entityStore[T]) create(row *T) error {
	return s.DB.Create(row).Error
}

// deleteByID removes the row if present and reports whether one was removed.
// Deleting an absent id is not an error.
func (s *entityStore[T]) deleteByID(id uint) (bool, error) {
	res := s.DB.Delete(new(T), id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// applyUpdates merges a sparse change set onto the stored row and returns the
// re-read result. Keys are column names; values may be nil to null a column.
// Fields absent from the map are left untouched.
func (s *entityStore[T]) applyUpdates(id uint, row *T, updates map[string]interface{}) (*T, error) {
	if len(updates) == 0 {
		return row, nil
	}
	if err := s.DB.Model(row).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.getByID(id)
}
