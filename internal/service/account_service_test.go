package service

import (
	"context"
	"testing"
	"time"

	"moodmovies/internal/auth"
	"moodmovies/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountService(users *mockUserRepo) *AccountService {
	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenIssuer(auth.TokenConfig{
		Secret:   "test-secret-for-unit-tests-only",
		Issuer:   "moodmovies-api",
		Audience: "moodmovies-client",
	})
	return NewAccountService(users, hasher, tokens)
}

func TestAccountService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := newAccountService(users)

		users.On("GetByUsernameOrEmail", ctx, "moviefan", "fan@example.com").Return(nil, nil)
		users.On("Create", ctx, mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = 1
		}).Return(nil)

		user, err := svc.Register(ctx, RegisterInput{
			Username: "moviefan",
			Email:    "fan@example.com",
			Password: "Password1!",
			FullName: "Movie Fan",
			Dob:      "1990-06-15",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		assert.NotEqual(t, "Password1!", user.Password, "password must be stored hashed")
		require.NotNil(t, user.DateOfBirth)
		assert.Equal(t, "1990-06-15", user.DateOfBirth.Format(models.DobLayout))
		users.AssertExpectations(t)
	})

	t.Run("Username Or Email Taken", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := newAccountService(users)

		users.On("GetByUsernameOrEmail", ctx, "moviefan", "other@example.com").
			Return(&models.User{ID: 2, Username: "moviefan"}, nil)

		_, err := svc.Register(ctx, RegisterInput{
			Username: "moviefan",
			Email:    "other@example.com",
			Password: "Password1!",
		})

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "CONFLICT", appErr.Code)
		users.AssertNotCalled(t, "Create")
	})

	t.Run("Weak Password", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := newAccountService(users)

		_, err := svc.Register(ctx, RegisterInput{
			Username: "moviefan",
			Email:    "fan@example.com",
			Password: "short",
		})

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		users.AssertNotCalled(t, "GetByUsernameOrEmail")
	})

	t.Run("Future Date Of Birth", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := newAccountService(users)

		_, err := svc.Register(ctx, RegisterInput{
			Username: "moviefan",
			Email:    "fan@example.com",
			Password: "Password1!",
			Dob:      "2990-01-01",
		})

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewPasswordHasher()
	digest, err := hasher.Hash("Password1!")
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := newAccountService(users)

		users.On("GetByUsername", ctx, "moviefan").
			Return(&models.User{ID: 1, Username: "moviefan", Password: digest}, nil)

		user, token, err := svc.Login(ctx, "moviefan", "Password1!")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := newAccountService(users)

		users.On("GetByUsername", ctx, "moviefan").
			Return(&models.User{ID: 1, Username: "moviefan", Password: digest}, nil)

		_, _, err := svc.Login(ctx, "moviefan", "WrongPass1!")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNAUTHORIZED", appErr.Code)
		assert.Equal(t, "Invalid username or password", appErr.Message)
	})

	t.Run("Unknown Username Gets Same Error", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := newAccountService(users)

		users.On("GetByUsername", ctx, "ghost").Return(nil, nil)

		_, _, err := svc.Login(ctx, "ghost", "Password1!")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Invalid username or password", appErr.Message)
	})
}

func TestAccountService_VerifyDetails(t *testing.T) {
	ctx := context.Background()
	dob := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("All Fields Match", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := newAccountService(users)

		users.On("GetByDetails", ctx, "moviefan", "fan@example.com", dob).
			Return(&models.User{ID: 1, Username: "moviefan"}, nil)

		// Without a ticket store the ticket is empty but verification succeeds.
		_, err := svc.VerifyDetails(ctx, "moviefan", "fan@example.com", "1990-06-15")
		assert.NoError(t, err)
	})

	t.Run("One Field Off", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := newAccountService(users)

		users.On("GetByDetails", ctx, "moviefan", "other@example.com", dob).Return(nil, nil)

		_, err := svc.VerifyDetails(ctx, "moviefan", "other@example.com", "1990-06-15")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNAUTHORIZED", appErr.Code)
	})
}

func TestAccountService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewPasswordHasher()
	oldDigest, err := hasher.Hash("OldPass1!")
	require.NoError(t, err)

	t.Run("Replaces Password", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := newAccountService(users)

		stored := &models.User{ID: 1, Username: "moviefan", Password: oldDigest}
		users.On("GetByUsername", ctx, "moviefan").Return(stored, nil)
		users.On("Update", ctx, stored).Return(nil)

		err := svc.ResetPassword(ctx, "moviefan", "NewPass1!", "")
		require.NoError(t, err)
		assert.True(t, hasher.Verify("NewPass1!", stored.Password))
		assert.False(t, hasher.Verify("OldPass1!", stored.Password))
	})

	t.Run("Unknown Account", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := newAccountService(users)

		users.On("GetByUsername", ctx, "ghost").Return(nil, nil)

		err := svc.ResetPassword(ctx, "ghost", "NewPass1!", "")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		users.AssertNotCalled(t, "Update")
	})

	t.Run("Weak Replacement Rejected", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := newAccountService(users)

		err := svc.ResetPassword(ctx, "moviefan", "short", "")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		users.AssertNotCalled(t, "GetByUsername")
	})
}

func TestAccountService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Bio Only Leaves Password Untouched", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := newAccountService(users)

		stored := &models.User{ID: 1, Username: "moviefan", Password: "digest", Bio: "old bio"}
		users.On("GetByID", ctx, uint(1)).Return(stored, nil)
		users.On("Update", ctx, stored).Return(nil)

		bio := "new bio"
		profile, err := svc.UpdateProfile(ctx, 1, UpdateProfileInput{Bio: &bio})
		require.NoError(t, err)
		assert.Equal(t, "new bio", profile.Bio)
		assert.Equal(t, "digest", stored.Password)
	})

	t.Run("Empty String Leaves Field Untouched", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := newAccountService(users)

		stored := &models.User{ID: 1, Username: "moviefan", FullName: "Movie Fan", Bio: "old bio"}
		users.On("GetByID", ctx, uint(1)).Return(stored, nil)
		users.On("Update", ctx, stored).Return(nil)

		empty := ""
		profile, err := svc.UpdateProfile(ctx, 1, UpdateProfileInput{Bio: &empty, FullName: &empty})
		require.NoError(t, err)
		assert.Equal(t, "old bio", profile.Bio)
		assert.Equal(t, "Movie Fan", profile.FullName)
	})

	t.Run("No Fields Is A NoOp That Succeeds", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := newAccountService(users)

		stored := &models.User{ID: 1, Username: "moviefan", Password: "digest", Bio: "old bio"}
		users.On("GetByID", ctx, uint(1)).Return(stored, nil)
		users.On("Update", ctx, stored).Return(nil)

		profile, err := svc.UpdateProfile(ctx, 1, UpdateProfileInput{})
		require.NoError(t, err)
		assert.Equal(t, "old bio", profile.Bio)
		assert.Equal(t, "digest", stored.Password)
	})

	t.Run("New Password Is Rehashed", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := newAccountService(users)
		hasher := auth.NewPasswordHasher()

		stored := &models.User{ID: 1, Username: "moviefan", Password: "digest"}
		users.On("GetByID", ctx, uint(1)).Return(stored, nil)
		users.On("Update", ctx, stored).Return(nil)

		_, err := svc.UpdateProfile(ctx, 1, UpdateProfileInput{NewPassword: "NewPass1!"})
		require.NoError(t, err)
		assert.True(t, hasher.Verify("NewPass1!", stored.Password))
	})
}

func TestAccountService_DeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Requires Confirmation", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := newAccountService(users)

		err := svc.DeleteAccount(ctx, 1, false)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		users.AssertNotCalled(t, "DeleteWithOwnedData")
	})

	t.Run("Confirmed Deletion Cascades", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := newAccountService(users)

		users.On("GetByID", ctx, uint(1)).Return(&models.User{ID: 1}, nil)
		users.On("DeleteWithOwnedData", ctx, uint(1)).Return(nil)

		err := svc.DeleteAccount(ctx, 1, true)
		assert.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("Unknown Account", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := newAccountService(users)

		users.On("GetByID", ctx, uint(99)).Return(nil, models.NewNotFoundError("User", 99))

		err := svc.DeleteAccount(ctx, 99, true)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		users.AssertNotCalled(t, "DeleteWithOwnedData")
	})
}
