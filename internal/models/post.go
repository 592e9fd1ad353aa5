package models

import (
	"time"
)

// Post represents a user's shared thoughts about a movie in the social feed.
// Like and dislike counters are server-controlled and never decremented.
type Post struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	User          User      `gorm:"foreignKey:UserID" json:"user"`
	MovieID       int       `gorm:"not null" json:"movie_id"`
	MovieThoughts string    `gorm:"type:text" json:"movie_thoughts"`
	Likes         int       `gorm:"not null;default:0" json:"likes"`
	Dislikes      int       `gorm:"not null;default:0" json:"dislikes"`
	PostedAt      time.Time `json:"posted_at"`
}
