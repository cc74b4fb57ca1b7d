package movies

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Store owns every Movie row; no other component touches the table.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the movies table if it does not exist. No-op when the
// schema is already in place.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Movie{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// ListByRatingDesc returns the whole collection ordered by rating descending.
// Ties break on id ascending so the ordering is stable across calls.
func (s *Store) ListByRatingDesc(ctx context.Context) ([]Movie, error) {
	var list []Movie
	if err := s.db.WithContext(ctx).Order("rating DESC, id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return list, nil
}

func (s *Store) GetByID(ctx context.Context, id uint) (Movie, error) {
	var m Movie
	err := s.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Movie{}, ErrNotFound
	}
	if err != nil {
		return Movie{}, fmt.Errorf("get movie %d: %w", id, err)
	}
	return m, nil
}

// Insert persists a new movie and fills in its assigned id. A duplicate
// title is reported as ErrConflict; the unique index makes the check-and-write
// atomic, so concurrent inserts of the same title yield exactly one winner.
func (s *Store) Insert(ctx context.Context, m *Movie) error {
	err := s.db.WithContext(ctx).Create(m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("insert movie: %w", err)
	}
	return nil
}

func (s *Store) UpdateRatingAndReview(ctx context.Context, id uint, rating float64, review string) error {
	res := s.db.WithContext(ctx).Model(&Movie{}).Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "review": review})
	if res.Error != nil {
		return fmt.Errorf("update movie %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a movie. Deleting an id that does not exist fails with
// ErrNotFound, so a second delete of the same id is an error, not a no-op.
func (s *Store) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&Movie{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete movie %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
