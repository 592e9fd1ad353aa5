package service

import (
	"context"
	"strings"
	"time"

	"moodmovies/internal/cache"
	"moodmovies/internal/models"
	"moodmovies/internal/repository"
	"moodmovies/internal/validation"
)

// AddEntryInput carries the fields for adding a movie to a watch list.
type AddEntryInput struct {
	MovieTitle string  `json:"movie_title"`
	MovieGenre string  `json:"movie_genre"`
	PosterPath string  `json:"poster_path"`
	Status     string  `json:"status"`
	IsFavorite bool    `json:"is_favorite"`
	Notes      string  `json:"notes"`
	Rating     float64 `json:"rating"`
}

// UpdateEntryInput carries the optional watch-list entry mutations. Nil
// pointers leave the corresponding field untouched.
type UpdateEntryInput struct {
	MovieGenre *string  `json:"movie_genre"`
	PosterPath *string  `json:"poster_path"`
	Status     *string  `json:"status"`
	IsFavorite *bool    `json:"is_favorite"`
	Notes      *string  `json:"notes"`
	Rating     *float64 `json:"rating"`
}

// WatchListService implements per-user watch list management.
type WatchListService struct {
	entries repository.WatchListRepository
}

// NewWatchListService wires a WatchListService from its dependencies.
func NewWatchListService(entries repository.WatchListRepository) *WatchListService {
	return &WatchListService{entries: entries}
}

// List returns the user's watch list, newest additions first, narrowed by the
// optional filter.
func (s *WatchListService) List(ctx context.Context, userID uint, filter repository.WatchListFilter) ([]models.WatchListEntry, error) {
	if filter.Status != "" && !models.ValidStatus(filter.Status) {
		return nil, models.NewValidationError("status must be one of planning, watching, watched")
	}
	return s.entries.ListByUser(ctx, userID, filter)
}

// Add puts a movie on the user's list. Each user can hold at most one entry
// per title.
func (s *WatchListService) Add(ctx context.Context, userID uint, input AddEntryInput) (*models.WatchListEntry, error) {
	input.MovieTitle = strings.TrimSpace(input.MovieTitle)
	if input.MovieTitle == "" {
		return nil, models.NewValidationError("movie_title is required")
	}
	if input.Status == "" {
		input.Status = models.StatusPlanning
	}
	if !models.ValidStatus(input.Status) {
		return nil, models.NewValidationError("status must be one of planning, watching, watched")
	}
	if err := validation.ValidateRating(input.Rating); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.entries.GetByUserAndTitle(ctx, userID, input.MovieTitle)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("This movie is already in your list")
	}

	entry := &models.WatchListEntry{
		UserID:     userID,
		MovieTitle: input.MovieTitle,
		MovieGenre: input.MovieGenre,
		PosterPath: input.PosterPath,
		Status:     input.Status,
		IsFavorite: input.IsFavorite,
		Notes:      input.Notes,
		Rating:     input.Rating,
		DateAdded:  time.Now().UTC(),
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update applies the provided mutations to an entry the user owns.
func (s *WatchListService) Update(ctx context.Context, userID, entryID uint, input UpdateEntryInput) (*models.WatchListEntry, error) {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, models.NewForbiddenError("You do not own this watch list entry")
	}

	if input.Status != nil {
		if !models.ValidStatus(*input.Status) {
			return nil, models.NewValidationError("status must be one of planning, watching, watched")
		}
		entry.Status = *input.Status
	}
	if input.Rating != nil {
		if err := validation.ValidateRating(*input.Rating); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		entry.Rating = *input.Rating
	}
	if input.MovieGenre != nil {
		entry.MovieGenre = *input.MovieGenre
	}
	if input.PosterPath != nil {
		entry.PosterPath = *input.PosterPath
	}
	if input.IsFavorite != nil {
		entry.IsFavorite = *input.IsFavorite
	}
	if input.Notes != nil {
		entry.Notes = *input.Notes
	}

	if err := s.entries.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Remove deletes an entry the user owns.
func (s *WatchListService) Remove(ctx context.Context, userID, entryID uint) error {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.UserID != userID {
		return models.NewForbiddenError("You do not own this watch list entry")
	}

	if err := s.entries.Delete(ctx, entryID); err != nil {
		return err
	}
	cache.InvalidateWatchList(ctx, userID)
	return nil
}
