// Package service contains the application's business logic, sitting between
// the HTTP handlers and the repositories.
package service

import (
	"context"
	"strings"
	"time"

	"moodmovies/internal/auth"
	"moodmovies/internal/cache"
	"moodmovies/internal/middleware"
	"moodmovies/internal/models"
	"moodmovies/internal/repository"
	"moodmovies/internal/validation"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Dob      string `json:"dob"`
	Bio      string `json:"bio"`
}

// UpdateProfileInput carries the optional profile mutations. Nil pointers and
// empty strings leave the corresponding field untouched.
type UpdateProfileInput struct {
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatar_url"`
	FullName    *string `json:"full_name"`
	NewPassword string  `json:"new_password"`
}

// AccountService implements registration, authentication and profile
// lifecycle operations.
type AccountService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenIssuer
}

// NewAccountService wires an AccountService from its dependencies.
func NewAccountService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenIssuer) *AccountService {
	return &AccountService{users: users, hasher: hasher, tokens: tokens}
}

// Register validates the input and creates the account. No token is issued
// at registration; login is a separate step.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	if err := validation.ValidateUsername(input.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(input.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(input.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	var dob *time.Time
	if input.Dob != "" {
		parsed, err := validation.ParseDob(input.Dob)
		if err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		dob = &parsed
	}

	existing, err := s.users.GetByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("A user with this username or email already exists")
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:    input.Username,
		Email:       input.Email,
		Password:    digest,
		FullName:    input.FullName,
		DateOfBirth: dob,
		Bio:         input.Bio,
	}
	// The unique constraints close the window between the lookup above and
	// this insert.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	middleware.Logger.InfoContext(ctx, "User registered", "user_id", user.ID)
	return user, nil
}

// Login verifies the credentials and returns the user with a fresh bearer
// token. Unknown usernames and wrong passwords produce the same error.
func (s *AccountService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !s.hasher.Verify(password, user.Password) {
		middleware.LoginFailures.Inc()
		return nil, "", models.NewUnauthorizedError("Invalid username or password")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}
	return user, token, nil
}

// VerifyDetails checks that the username, email and date of birth all match a
// single account, and on success issues a single-use reset ticket.
func (s *AccountService) VerifyDetails(ctx context.Context, username, email, dob string) (string, error) {
	parsed, err := validation.ParseDob(dob)
	if err != nil {
		return "", models.NewValidationError(err.Error())
	}

	user, err := s.users.GetByDetails(ctx, username, email, parsed)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", models.NewUnauthorizedError("Details do not match our records")
	}

	ticket, err := cache.IssueResetTicket(ctx, user.Username)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "Failed to issue reset ticket", "error", err)
		return "", models.NewInternalError(err)
	}
	return ticket, nil
}

// ResetPassword replaces the password of the named account. When the ticket
// store is available the caller must present the ticket obtained from
// VerifyDetails; tickets are burned on first use.
func (s *AccountService) ResetPassword(ctx context.Context, username, newPassword, ticket string) error {
	if err := validation.ValidatePassword(newPassword); err != nil {
		return models.NewValidationError(err.Error())
	}

	if cache.TicketsAvailable() && !cache.ConsumeResetTicket(ctx, ticket, username) {
		return models.NewUnauthorizedError("Invalid or expired reset ticket")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return &models.AppError{Code: "NOT_FOUND", Message: "User not found"}
	}

	digest, err := s.hasher.Hash(newPassword)
	if err != nil {
		return models.NewInternalError(err)
	}
	user.Password = digest

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	middleware.Logger.InfoContext(ctx, "Password reset completed", "user_id", user.ID)
	return nil
}

// GetProfile returns the public profile projection for the given user. Only
// the projection is cached; mutation paths always load the row fresh from the
// database.
func (s *AccountService) GetProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := cache.Aside(ctx, cache.UserKey(userID), &profile, cache.UserTTL, func() error {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		profile = *models.ProfileFromUser(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies the provided mutations. Present non-empty fields
// overwrite; absent or empty fields are left untouched.
func (s *AccountService) UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*models.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Bio != nil && *input.Bio != "" {
		user.Bio = *input.Bio
	}
	if input.AvatarURL != nil && *input.AvatarURL != "" {
		user.AvatarURL = *input.AvatarURL
	}
	if input.FullName != nil && *input.FullName != "" {
		user.FullName = *input.FullName
	}
	if input.NewPassword != "" {
		if err := validation.ValidatePassword(input.NewPassword); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		digest, err := s.hasher.Hash(input.NewPassword)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = digest
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return models.ProfileFromUser(user), nil
}

// DeleteAccount removes the user and all owned data in one transaction. The
// caller must explicitly confirm the deletion.
func (s *AccountService) DeleteAccount(ctx context.Context, userID uint, confirmed bool) error {
	if !confirmed {
		return models.NewValidationError("Account deletion must be confirmed")
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}

	if err := s.users.DeleteWithOwnedData(ctx, userID); err != nil {
		return err
	}

	middleware.AccountDeletions.Inc()
	middleware.Logger.InfoContext(ctx, "Account deleted", "user_id", userID)
	return nil
}
