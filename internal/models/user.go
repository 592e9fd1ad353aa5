// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account in the MoodMovies application.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"unique;not null" json:"username"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	FullName string `json:"full_name"`
	// DateOfBirth is stored as a calendar date (YYYY-MM-DD); the time
	// portion is always midnight UTC.
	DateOfBirth *time.Time       `gorm:"type:date" json:"dob,omitempty"`
	Bio         string           `json:"bio"`
	AvatarURL   string           `json:"avatar_url"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Posts       []Post           `gorm:"foreignKey:UserID" json:"posts,omitempty"`
	WatchList   []WatchListEntry `gorm:"foreignKey:UserID" json:"watch_list,omitempty"`
}

// Profile is the DTO returned by the profile-fetch endpoint.
type Profile struct {
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Dob       string `json:"dob,omitempty"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

// DobLayout is the wire format for dates of birth.
const DobLayout = "2006-01-02"

// ProfileFromUser projects a User onto the public profile DTO.
func ProfileFromUser(u *User) *Profile {
	p := &Profile{
		Username:  u.Username,
		FullName:  u.FullName,
		Bio:       u.Bio,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
	}
	if u.DateOfBirth != nil {
		p.Dob = u.DateOfBirth.Format(DobLayout)
	}
	return p
}
