package movies

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore opens a private in-memory sqlite database for one test. The
// shared-cache DSN keeps the database alive across the pool's connections.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Movie{}))
	return NewStore(db)
}

func seedMovie(title string, rating float64) *Movie {
	return &Movie{
		Title:  title,
		Year:   2010,
		Rating: rating,
		ImgURL: "https://image.tmdb.org/t/p/w500/x.jpg",
	}
}

func TestListByRatingDescOrdersAndBreaksTies(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, seedMovie("Low", 2.5)))
	require.NoError(t, store.Insert(ctx, seedMovie("High", 9.0)))
	require.NoError(t, store.Insert(ctx, seedMovie("Tie A", 5.0)))
	require.NoError(t, store.Insert(ctx, seedMovie("Tie B", 5.0)))

	list, err := store.ListByRatingDesc(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)

	assert.Equal(t, "High", list[0].Title)
	// equal ratings keep insertion order
	assert.Equal(t, "Tie A", list[1].Title)
	assert.Equal(t, "Tie B", list[2].Title)
	assert.Equal(t, "Low", list[3].Title)
}

func TestListByRatingDescEmptyStore(t *testing.T) {
	store := newTestStore(t)

	list, err := store.ListByRatingDesc(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestInsertAssignsIDAndRejectsDuplicateTitle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := seedMovie("Inception", 0)
	require.NoError(t, store.Insert(ctx, first))
	assert.NotZero(t, first.ID)

	err := store.Insert(ctx, seedMovie("Inception", 0))
	assert.ErrorIs(t, err, ErrConflict)

	list, err := store.ListByRatingDesc(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGetByID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	m := seedMovie("Arrival", 0)
	require.NoError(t, store.Insert(ctx, m))

	got, err := store.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arrival", got.Title)

	_, err = store.GetByID(ctx, m.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRatingAndReview(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	m := seedMovie("Heat", 0)
	require.NoError(t, store.Insert(ctx, m))

	require.NoError(t, store.UpdateRatingAndReview(ctx, m.ID, 8.7, "great"))

	got, err := store.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 8.7, got.Rating)
	assert.Equal(t, "great", got.Review)
}

func TestUpdateRatingAndReviewUnknownIDLeavesStoreUnchanged(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	m := seedMovie("Heat", 6.0)
	require.NoError(t, store.Insert(ctx, m))

	err := store.UpdateRatingAndReview(ctx, m.ID+100, 9.9, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := store.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got.Rating)
	assert.Empty(t, got.Review)
}

func TestDeleteIsNotIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	m := seedMovie("Seven", 0)
	require.NoError(t, store.Insert(ctx, m))

	require.NoError(t, store.Delete(ctx, m.ID))
	assert.ErrorIs(t, store.Delete(ctx, m.ID), ErrNotFound)
}
