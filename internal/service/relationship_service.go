// Package service contains the application's business logic.
package service

import (
	"context"

	"fasttweet/internal/models"
	"fasttweet/internal/policy"
	"fasttweet/internal/repository"
)

// RelationshipService manages the follow-graph and like-graph. All
// mutations are idempotent: adding an edge that already exists and
// removing one that does not are both successful no-ops, so retried
// client calls never produce spurious errors or duplicate edges.
type RelationshipService struct {
	edges     repository.RelationshipRepository
	userRepo  repository.UserRepository
	tweetRepo repository.TweetRepository
}

// NewRelationshipService returns a new RelationshipService.
func NewRelationshipService(edges repository.RelationshipRepository, userRepo repository.UserRepository, tweetRepo repository.TweetRepository) *RelationshipService {
	return &RelationshipService{
		edges:     edges,
		userRepo:  userRepo,
		tweetRepo: tweetRepo,
	}
}

// resolveFollowee loads the target user of a follow operation. A
// deactivated account does not resolve: it is logically absent.
func (s *RelationshipService) resolveFollowee(ctx context.Context, followeeID uint) (*models.User, error) {
	followee, err := s.userRepo.GetByID(ctx, followeeID)
	if err != nil {
		return nil, err
	}
	if !followee.IsActive() {
		return nil, models.NewNotFoundError("User", followeeID)
	}
	return followee, nil
}

// resolveTweet loads the target tweet of a like operation. Deactivated
// tweets do not resolve on like paths.
func (s *RelationshipService) resolveTweet(ctx context.Context, tweetID uint) (*models.Tweet, error) {
	tweet, err := s.tweetRepo.GetByID(ctx, tweetID, 0)
	if err != nil {
		return nil, err
	}
	if !tweet.IsActive() {
		return nil, models.NewNotFoundError("Tweet", tweetID)
	}
	return tweet, nil
}

// IsFollowing reports whether the actor currently follows the target user.
func (s *RelationshipService) IsFollowing(ctx context.Context, actor *models.User, followeeID uint) (bool, error) {
	return s.edges.IsFollowing(ctx, actor.ID, followeeID)
}

// Follow adds a follow edge from the actor to the target user.
// Following a user who is already followed is a successful no-op.
func (s *RelationshipService) Follow(ctx context.Context, actor *models.User, followeeID uint) error {
	if !policy.CanFollow(actor, followeeID) {
		return models.NewInvalidOperationError("You cannot follow yourself")
	}
	if _, err := s.resolveFollowee(ctx, followeeID); err != nil {
		return err
	}
	return s.edges.CreateFollow(ctx, actor.ID, followeeID)
}

// Unfollow removes the follow edge from the actor to the target user.
// Unfollowing a user who is not followed is a successful no-op.
func (s *RelationshipService) Unfollow(ctx context.Context, actor *models.User, followeeID uint) error {
	if !policy.CanFollow(actor, followeeID) {
		return models.NewInvalidOperationError("You cannot unfollow yourself")
	}
	if _, err := s.resolveFollowee(ctx, followeeID); err != nil {
		return err
	}
	_, err := s.edges.DeleteFollow(ctx, actor.ID, followeeID)
	return err
}

// IsLiked reports whether the actor currently likes the tweet.
func (s *RelationshipService) IsLiked(ctx context.Context, actor *models.User, tweetID uint) (bool, error) {
	return s.edges.IsLiked(ctx, actor.ID, tweetID)
}

// Like adds a like edge from the actor to the tweet. Liking an
// already-liked tweet is a successful no-op. Liking one's own tweet is
// allowed.
func (s *RelationshipService) Like(ctx context.Context, actor *models.User, tweetID uint) error {
	if _, err := s.resolveTweet(ctx, tweetID); err != nil {
		return err
	}
	return s.edges.CreateLike(ctx, actor.ID, tweetID)
}

// Unlike removes the actor's like edge from the tweet. Unliking a tweet
// that is not liked is a successful no-op.
func (s *RelationshipService) Unlike(ctx context.Context, actor *models.User, tweetID uint) error {
	if _, err := s.resolveTweet(ctx, tweetID); err != nil {
		return err
	}
	_, err := s.edges.DeleteLike(ctx, actor.ID, tweetID)
	return err
}

// FollowingCount returns how many users the given user follows.
func (s *RelationshipService) FollowingCount(ctx context.Context, userID uint) (int64, error) {
	return s.edges.FollowingCount(ctx, userID)
}

// FollowersCount returns how many users follow the given user.
func (s *RelationshipService) FollowersCount(ctx context.Context, userID uint) (int64, error) {
	return s.edges.FollowersCount(ctx, userID)
}
