// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"moodmovies/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var movieCatalog = []struct {
	ID     int
	Title  string
	Genre  string
	Poster string
}{
	{27205, "Inception", "Sci-Fi", "/inception.jpg"},
	{603, "The Matrix", "Sci-Fi", "/matrix.jpg"},
	{438631, "Dune", "Sci-Fi", "/dune.jpg"},
	{329865, "Arrival", "Sci-Fi", "/arrival.jpg"},
	{680, "Pulp Fiction", "Crime", "/pulp_fiction.jpg"},
	{278, "The Shawshank Redemption", "Drama", "/shawshank.jpg"},
	{155, "The Dark Knight", "Action", "/dark_knight.jpg"},
	{4935, "Howl's Moving Castle", "Animation", "/howls.jpg"},
	{129, "Spirited Away", "Animation", "/spirited_away.jpg"},
	{496243, "Parasite", "Thriller", "/parasite.jpg"},
	{76341, "Mad Max: Fury Road", "Action", "/fury_road.jpg"},
	{313369, "La La Land", "Romance", "/lalaland.jpg"},
	{19404, "Dilwale Dulhania Le Jayenge", "Romance", "/ddlj.jpg"},
	{637, "Life Is Beautiful", "Drama", "/life_is_beautiful.jpg"},
	{120, "The Fellowship of the Ring", "Fantasy", "/fellowship.jpg"},
}

var statuses = []string{models.StatusPlanning, models.StatusWatching, models.StatusWatched}

// Seed populates the database with fake users, watch lists and posts.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d users", len(users))

	if err := createWatchLists(db, users); err != nil {
		return fmt.Errorf("failed to create watch lists: %w", err)
	}

	if err := createPosts(db, users, opts.NumPosts); err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}

	log.Println("Seeding complete")
	return nil
}

// clearData removes existing rows in dependency order.
func clearData(db *gorm.DB) error {
	for _, model := range []any{&models.Post{}, &models.WatchListEntry{}, &models.User{}} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(db *gorm.DB, n int) ([]models.User, error) {
	// All seeded accounts share one password so the hash is computed once.
	digest, err := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		dob := gofakeit.DateRange(
			time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC),
		)
		user := models.User{
			Username:    fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:       fmt.Sprintf("%d_%s", i, gofakeit.Email()),
			Password:    string(digest),
			FullName:    gofakeit.Name(),
			DateOfBirth: &dob,
			Bio:         gofakeit.Sentence(8),
			AvatarURL:   gofakeit.ImageURL(200, 200),
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createWatchLists(db *gorm.DB, users []models.User) error {
	for _, user := range users {
		count := rand.Intn(6) + 2
		picks := rand.Perm(len(movieCatalog))[:count]
		for _, idx := range picks {
			movie := movieCatalog[idx]
			status := statuses[rand.Intn(len(statuses))]
			entry := models.WatchListEntry{
				UserID:     user.ID,
				MovieTitle: movie.Title,
				MovieGenre: movie.Genre,
				PosterPath: movie.Poster,
				Status:     status,
				IsFavorite: rand.Intn(4) == 0,
				DateAdded:  gofakeit.DateRange(time.Now().AddDate(0, -6, 0), time.Now()),
			}
			if status == models.StatusWatched {
				entry.Rating = float64(rand.Intn(21)) / 2
				entry.Notes = gofakeit.Sentence(10)
			}
			if err := db.Create(&entry).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func createPosts(db *gorm.DB, users []models.User, n int) error {
	if len(users) == 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		movie := movieCatalog[rand.Intn(len(movieCatalog))]
		post := models.Post{
			UserID:        users[rand.Intn(len(users))].ID,
			MovieID:       movie.ID,
			MovieThoughts: fmt.Sprintf("%s %s", movie.Title, gofakeit.Sentence(12)),
			Likes:         rand.Intn(50),
			Dislikes:      rand.Intn(10),
			PostedAt:      gofakeit.DateRange(time.Now().AddDate(0, -3, 0), time.Now()),
		}
		if err := db.Create(&post).Error; err != nil {
			return err
		}
	}
	return nil
}
