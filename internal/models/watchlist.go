package models

import (
	"time"
)

// Watch list entry statuses. Stored as free text; validated at the service edge.
const (
	StatusPlanning = "planning"
	StatusWatching = "watching"
	StatusWatched  = "watched"
)

// ValidStatus reports whether s is one of the recognised watch statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPlanning, StatusWatching, StatusWatched:
		return true
	}
	return false
}

// WatchListEntry represents one movie on a user's personal watch list.
// The composite unique index on (user_id, movie_title) enforces the
// one-entry-per-title rule even under concurrent inserts.
type WatchListEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index;uniqueIndex:idx_user_movie" json:"user_id"`
	MovieTitle string    `gorm:"not null;uniqueIndex:idx_user_movie" json:"movie_title"`
	MovieGenre string    `json:"movie_genre"`
	PosterPath string    `json:"poster_path"`
	Status     string    `gorm:"not null" json:"status"`
	IsFavorite bool      `json:"is_favorite"`
	Notes      string    `gorm:"type:text" json:"notes"`
	Rating     float64   `json:"rating"`
	DateAdded  time.Time `json:"date_added"`
}
