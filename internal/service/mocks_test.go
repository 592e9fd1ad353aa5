package service

import (
	"context"
	"time"

	"moodmovies/internal/models"
	"moodmovies/internal/repository"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	args := m.Called(ctx, username, email)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByDetails(ctx context.Context, username, email string, dob time.Time) (*models.User, error) {
	args := m.Called(ctx, username, email, dob)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) DeleteWithOwnedData(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockWatchListRepo struct {
	mock.Mock
}

func (m *mockWatchListRepo) ListByUser(ctx context.Context, userID uint, filter repository.WatchListFilter) ([]models.WatchListEntry, error) {
	args := m.Called(ctx, userID, filter)
	if e := args.Get(0); e != nil {
		return e.([]models.WatchListEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWatchListRepo) GetByID(ctx context.Context, id uint) (*models.WatchListEntry, error) {
	args := m.Called(ctx, id)
	if e := args.Get(0); e != nil {
		return e.(*models.WatchListEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWatchListRepo) GetByUserAndTitle(ctx context.Context, userID uint, title string) (*models.WatchListEntry, error) {
	args := m.Called(ctx, userID, title)
	if e := args.Get(0); e != nil {
		return e.(*models.WatchListEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWatchListRepo) Create(ctx context.Context, entry *models.WatchListEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *mockWatchListRepo) Update(ctx context.Context, entry *models.WatchListEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *mockWatchListRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) List(ctx context.Context, search string, userID uint) ([]models.Post, error) {
	args := m.Called(ctx, search, userID)
	if p := args.Get(0); p != nil {
		return p.([]models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepo) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
