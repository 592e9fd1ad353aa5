package server

import (
	"context"
	"time"

	"moodmovies/internal/auth"
	"moodmovies/internal/config"
	"moodmovies/internal/models"
	"moodmovies/internal/repository"
	"moodmovies/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	args := m.Called(ctx, username, email)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByDetails(ctx context.Context, username, email string, dob time.Time) (*models.User, error) {
	args := m.Called(ctx, username, email, dob)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) DeleteWithOwnedData(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// MockWatchListRepository is a testify mock of repository.WatchListRepository.
type MockWatchListRepository struct {
	mock.Mock
}

func (m *MockWatchListRepository) ListByUser(ctx context.Context, userID uint, filter repository.WatchListFilter) ([]models.WatchListEntry, error) {
	args := m.Called(ctx, userID, filter)
	if e := args.Get(0); e != nil {
		return e.([]models.WatchListEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWatchListRepository) GetByID(ctx context.Context, id uint) (*models.WatchListEntry, error) {
	args := m.Called(ctx, id)
	if e := args.Get(0); e != nil {
		return e.(*models.WatchListEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWatchListRepository) GetByUserAndTitle(ctx context.Context, userID uint, title string) (*models.WatchListEntry, error) {
	args := m.Called(ctx, userID, title)
	if e := args.Get(0); e != nil {
		return e.(*models.WatchListEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWatchListRepository) Create(ctx context.Context, entry *models.WatchListEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockWatchListRepository) Update(ctx context.Context, entry *models.WatchListEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockWatchListRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// MockPostRepository is a testify mock of repository.PostRepository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) List(ctx context.Context, search string, userID uint) ([]models.Post, error) {
	args := m.Called(ctx, search, userID)
	if p := args.Get(0); p != nil {
		return p.([]models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// newTestServer wires a Server over mock repositories, skipping DB and Redis.
func newTestServer(users *MockUserRepository, watchLists *MockWatchListRepository, posts *MockPostRepository) *Server {
	cfg := &config.Config{
		Env:         "test",
		JWTSecret:   "test-secret-for-unit-tests-only",
		JWTIssuer:   "moodmovies-api",
		JWTAudience: "moodmovies-client",
	}
	tokens := auth.NewTokenIssuer(auth.TokenConfig{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
	})
	hasher := auth.NewPasswordHasher()

	s := &Server{
		config:        cfg,
		tokens:        tokens,
		userRepo:      users,
		watchListRepo: watchLists,
		postRepo:      posts,
	}
	s.accounts = service.NewAccountService(users, hasher, tokens)
	s.watchLists = service.NewWatchListService(watchLists)
	s.posts = service.NewPostService(posts)
	return s
}

// asUser simulates AuthRequired by putting the user ID into Locals.
func asUser(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
}
