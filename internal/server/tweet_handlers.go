// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"fasttweet/internal/models"
	"fasttweet/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// GetTweets handles GET /api/tweets
func (s *Server) GetTweets(c *fiber.Ctx) error {
	actor := s.currentUser(c)

	tweets, err := s.tweetService.List(c.Context(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tweets)
}

// CreateTweet handles POST /api/tweets
func (s *Server) CreateTweet(c *fiber.Ctx) error {
	actor := s.currentUser(c)

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewInvalidOperationError("Invalid request body"))
	}

	tweet, err := s.tweetService.Create(c.Context(), actor, req.Content)
	if err != nil {
		return respondError(c, err)
	}

	observability.TweetsCreatedTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(tweet)
}

// GetTweet handles GET /api/tweets/:id
func (s *Server) GetTweet(c *fiber.Ctx) error {
	actor := s.currentUser(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tweet, err := s.tweetService.Get(c.Context(), actor, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tweet)
}

// UpdateTweet handles PUT /api/tweets/:id
func (s *Server) UpdateTweet(c *fiber.Ctx) error {
	actor := s.currentUser(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewInvalidOperationError("Invalid request body"))
	}

	tweet, err := s.tweetService.Update(c.Context(), actor, id, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tweet)
}

// DeleteTweet handles DELETE /api/tweets/:id
func (s *Server) DeleteTweet(c *fiber.Ctx) error {
	actor := s.currentUser(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.tweetService.Delete(c.Context(), actor, id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LikeTweet handles POST /api/tweets/:id/like
func (s *Server) LikeTweet(c *fiber.Ctx) error {
	actor := s.currentUser(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.edgeService.Like(c.Context(), actor, id); err != nil {
		return respondError(c, err)
	}

	observability.LikeEdgesTotal.WithLabelValues("like").Inc()
	return c.SendStatus(fiber.StatusNoContent)
}

// UnlikeTweet handles DELETE /api/tweets/:id/like
func (s *Server) UnlikeTweet(c *fiber.Ctx) error {
	actor := s.currentUser(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.edgeService.Unlike(c.Context(), actor, id); err != nil {
		return respondError(c, err)
	}

	observability.LikeEdgesTotal.WithLabelValues("unlike").Inc()
	return c.SendStatus(fiber.StatusNoContent)
}
