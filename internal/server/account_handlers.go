package server

import (
	"moodmovies/internal/models"
	"moodmovies/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /user/register
func (s *Server) Register(c *fiber.Ctx) error {
	var req service.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username, email, and password are required"))
	}

	user, err := s.accounts.Register(c.UserContext(), req)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":       user.ID,
		"username": user.Username,
	})
}

// Login handles POST /user/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Username == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username and password are required"))
	}

	user, token, err := s.accounts.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// VerifyDetails handles POST /user/verify-details
func (s *Server) VerifyDetails(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Dob      string `json:"dob"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Username == "" || req.Email == "" || req.Dob == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username, email, and dob are required"))
	}

	ticket, err := s.accounts.VerifyDetails(c.UserContext(), req.Username, req.Email, req.Dob)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	resp := fiber.Map{"verified": true}
	if ticket != "" {
		resp["reset_ticket"] = ticket
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// ResetPassword handles POST /user/reset-password
func (s *Server) ResetPassword(c *fiber.Ctx) error {
	var req struct {
		Username    string `json:"username"`
		NewPassword string `json:"new_password"`
		ResetTicket string `json:"reset_ticket"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Username == "" || req.NewPassword == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username and new_password are required"))
	}

	if err := s.accounts.ResetPassword(c.UserContext(), req.Username, req.NewPassword, req.ResetTicket); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Password has been reset",
	})
}

// GetProfile handles GET /user/profile-fetch
func (s *Server) GetProfile(c *fiber.Ctx) error {
	profile, err := s.accounts.GetProfile(c.UserContext(), s.currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// UpdateProfile handles PUT /user/profile-update
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req service.UpdateProfileInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.accounts.UpdateProfile(c.UserContext(), s.currentUserID(c), req)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// DeleteProfile handles DELETE /user/profile-delete
func (s *Server) DeleteProfile(c *fiber.Ctx) error {
	var req struct {
		IsConfirmed bool `json:"is_confirmed"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.accounts.DeleteAccount(c.UserContext(), s.currentUserID(c), req.IsConfirmed); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Account deleted",
	})
}
