package repository

import (
	"context"
	"errors"
	"strings"

	"moodmovies/internal/cache"
	"moodmovies/internal/models"

	"gorm.io/gorm"
)

// WatchListFilter narrows a user's watch list by status, genre or a
// free-text title search. Zero values mean "no filter".
type WatchListFilter struct {
	Status string
	Genre  string
	Search string
}

// WatchListRepository defines persistence operations for watch-list entries.
type WatchListRepository interface {
	ListByUser(ctx context.Context, userID uint, filter WatchListFilter) ([]models.WatchListEntry, error)
	GetByID(ctx context.Context, id uint) (*models.WatchListEntry, error)
	GetByUserAndTitle(ctx context.Context, userID uint, title string) (*models.WatchListEntry, error)
	Create(ctx context.Context, entry *models.WatchListEntry) error
	Update(ctx context.Context, entry *models.WatchListEntry) error
	Delete(ctx context.Context, id uint) error
}

type watchListRepository struct {
	db *gorm.DB
}

// NewWatchListRepository returns a new WatchListRepository implementation.
func NewWatchListRepository(db *gorm.DB) WatchListRepository {
	return &watchListRepository{db: db}
}

func (r *watchListRepository) ListByUser(ctx context.Context, userID uint, filter WatchListFilter) ([]models.WatchListEntry, error) {
	var entries []models.WatchListEntry

	// Only the unfiltered list is cached; filtered queries go to the database.
	if filter == (WatchListFilter{}) {
		err := cache.Aside(ctx, cache.WatchListKey(userID), &entries, cache.WatchListTTL, func() error {
			if err := r.db.WithContext(ctx).
				Where("user_id = ?", userID).
				Order("date_added DESC").
				Find(&entries).Error; err != nil {
				return models.NewInternalError(err)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return entries, nil
	}

	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Genre != "" {
		q = q.Where("movie_genre = ?", filter.Genre)
	}
	if filter.Search != "" {
		q = q.Where("LOWER(movie_title) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	if err := q.Order("date_added DESC").Find(&entries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

func (r *watchListRepository) GetByID(ctx context.Context, id uint) (*models.WatchListEntry, error) {
	var entry models.WatchListEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Watch list entry", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &entry, nil
}

func (r *watchListRepository) GetByUserAndTitle(ctx context.Context, userID uint, title string) (*models.WatchListEntry, error) {
	var entry models.WatchListEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_title = ?", userID, title).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &entry, nil
}

func (r *watchListRepository) Create(ctx context.Context, entry *models.WatchListEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("This movie is already in your list")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateWatchList(ctx, entry.UserID)
	return nil
}

func (r *watchListRepository) Update(ctx context.Context, entry *models.WatchListEntry) error {
	if err := r.db.WithContext(ctx).Save(entry).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateWatchList(ctx, entry.UserID)
	return nil
}

func (r *watchListRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.WatchListEntry{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
