package server

import (
	"moodmovies/internal/models"
	"moodmovies/internal/repository"
	"moodmovies/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetWatchList handles GET /list
func (s *Server) GetWatchList(c *fiber.Ctx) error {
	filter := repository.WatchListFilter{
		Status: c.Query("status"),
		Genre:  c.Query("genre"),
		Search: c.Query("search"),
	}

	entries, err := s.watchLists.List(c.UserContext(), s.currentUserID(c), filter)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(entries)
}

// AddWatchListEntry handles POST /list
func (s *Server) AddWatchListEntry(c *fiber.Ctx) error {
	var req service.AddEntryInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	entry, err := s.watchLists.Add(c.UserContext(), s.currentUserID(c), req)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// UpdateWatchListEntry handles PUT /list/:id
func (s *Server) UpdateWatchListEntry(c *fiber.Ctx) error {
	entryID, err := c.ParamsInt("id")
	if err != nil || entryID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid entry ID"))
	}

	var req service.UpdateEntryInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	entry, err := s.watchLists.Update(c.UserContext(), s.currentUserID(c), uint(entryID), req)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(entry)
}

// DeleteWatchListEntry handles DELETE /list/:id
func (s *Server) DeleteWatchListEntry(c *fiber.Ctx) error {
	entryID, err := c.ParamsInt("id")
	if err != nil || entryID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid entry ID"))
	}

	if err := s.watchLists.Remove(c.UserContext(), s.currentUserID(c), uint(entryID)); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Entry removed from watch list",
	})
}
