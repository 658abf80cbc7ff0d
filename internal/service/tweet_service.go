package service

import (
	"context"

	"fasttweet/internal/models"
	"fasttweet/internal/policy"
	"fasttweet/internal/repository"
	"fasttweet/internal/validation"
)

// TweetService provides tweet lifecycle business logic. Check order on
// mutations: entity existence, then authorization, then validation.
type TweetService struct {
	tweetRepo repository.TweetRepository
}

// NewTweetService returns a new TweetService.
func NewTweetService(tweetRepo repository.TweetRepository) *TweetService {
	return &TweetService{tweetRepo: tweetRepo}
}

// Create posts a new tweet owned by the actor.
func (s *TweetService) Create(ctx context.Context, actor *models.User, content string) (*models.Tweet, error) {
	if err := validation.ValidateTweetContent(content); err != nil {
		return nil, models.NewInvalidOperationError(err.Error())
	}

	tweet := &models.Tweet{
		Content: content,
		UserID:  actor.ID,
		Status:  models.StatusActive,
	}
	if err := s.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, err
	}

	// Reload to include owner data and computed engagement fields
	return s.tweetRepo.GetByID(ctx, tweet.ID, actor.ID)
}

// Get returns the tweet by id. A deactivated tweet resolves only for
// its owner (auditing); everyone else sees NotFound.
func (s *TweetService) Get(ctx context.Context, actor *models.User, id uint) (*models.Tweet, error) {
	tweet, err := s.tweetRepo.GetByID(ctx, id, actor.ID)
	if err != nil {
		return nil, err
	}
	if !tweet.IsActive() && tweet.UserID != actor.ID {
		return nil, models.NewNotFoundError("Tweet", id)
	}
	return tweet, nil
}

// List returns all active tweets in insertion order (the home feed).
func (s *TweetService) List(ctx context.Context, actor *models.User) ([]*models.Tweet, error) {
	return s.tweetRepo.List(ctx, actor.ID)
}

// Update edits the tweet's content. Deactivated tweets are logically
// absent for mutation and yield NotFound regardless of the actor.
func (s *TweetService) Update(ctx context.Context, actor *models.User, id uint, content string) (*models.Tweet, error) {
	tweet, err := s.tweetRepo.GetByID(ctx, id, actor.ID)
	if err != nil {
		return nil, err
	}
	if !tweet.IsActive() {
		return nil, models.NewNotFoundError("Tweet", id)
	}
	if !policy.CanEditTweet(actor, tweet) {
		return nil, models.NewForbiddenError("You can only update your own tweets")
	}
	if err := validation.ValidateTweetContent(content); err != nil {
		return nil, models.NewInvalidOperationError(err.Error())
	}

	tweet.Content = content
	if err := s.tweetRepo.Update(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

// Delete deactivates the tweet. The row persists; deactivation is
// terminal through the exposed operations.
func (s *TweetService) Delete(ctx context.Context, actor *models.User, id uint) error {
	tweet, err := s.tweetRepo.GetByID(ctx, id, actor.ID)
	if err != nil {
		return err
	}
	if !tweet.IsActive() {
		return models.NewNotFoundError("Tweet", id)
	}
	if !policy.CanDeleteTweet(actor, tweet) {
		return models.NewForbiddenError("You can only delete your own tweets")
	}

	tweet.Status = models.StatusDeactivated
	return s.tweetRepo.Update(ctx, tweet)
}
