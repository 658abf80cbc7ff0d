// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"fasttweet/internal/models"
	"fasttweet/internal/observability"
	"fasttweet/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers handles GET /api/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	users, err := s.userService.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	actor := s.currentUser(c)

	user, err := s.userService.GetByID(c.Context(), actor.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateUser handles PUT /api/users/:id
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	actor := s.currentUser(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		BirthDate string `json:"birth_date"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewInvalidOperationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), actor, id, service.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// DeactivateUser handles DELETE /api/users/:id
func (s *Server) DeactivateUser(c *fiber.Ctx) error {
	actor := s.currentUser(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.Deactivate(c.Context(), actor, id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// FollowUser handles POST /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	actor := s.currentUser(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.edgeService.Follow(c.Context(), actor, id); err != nil {
		return respondError(c, err)
	}

	observability.FollowEdgesTotal.WithLabelValues("follow").Inc()
	return c.SendStatus(fiber.StatusNoContent)
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	actor := s.currentUser(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.edgeService.Unfollow(c.Context(), actor, id); err != nil {
		return respondError(c, err)
	}

	observability.FollowEdgesTotal.WithLabelValues("unfollow").Inc()
	return c.SendStatus(fiber.StatusNoContent)
}
