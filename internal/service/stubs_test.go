package service

import (
	"context"

	"fasttweet/internal/models"
)

type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	updateFn     func(context.Context, *models.User) error
	listFn       func(context.Context) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	return s.listFn(ctx)
}

type tweetRepoStub struct {
	createFn  func(context.Context, *models.Tweet) error
	getByIDFn func(context.Context, uint, uint) (*models.Tweet, error)
	listFn    func(context.Context, uint) ([]*models.Tweet, error)
	updateFn  func(context.Context, *models.Tweet) error
}

func (s *tweetRepoStub) Create(ctx context.Context, tweet *models.Tweet) error {
	return s.createFn(ctx, tweet)
}
func (s *tweetRepoStub) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Tweet, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *tweetRepoStub) List(ctx context.Context, currentUserID uint) ([]*models.Tweet, error) {
	return s.listFn(ctx, currentUserID)
}
func (s *tweetRepoStub) Update(ctx context.Context, tweet *models.Tweet) error {
	return s.updateFn(ctx, tweet)
}

type edgeRepoStub struct {
	isFollowingFn    func(context.Context, uint, uint) (bool, error)
	createFollowFn   func(context.Context, uint, uint) error
	deleteFollowFn   func(context.Context, uint, uint) (bool, error)
	followingCountFn func(context.Context, uint) (int64, error)
	followersCountFn func(context.Context, uint) (int64, error)
	isLikedFn        func(context.Context, uint, uint) (bool, error)
	createLikeFn     func(context.Context, uint, uint) error
	deleteLikeFn     func(context.Context, uint, uint) (bool, error)
	likeCountsFn     func(context.Context, []uint) (map[uint]int64, error)
	likedTweetIDsFn  func(context.Context, uint, []uint) ([]uint, error)
}

func (s *edgeRepoStub) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followeeID)
}
func (s *edgeRepoStub) CreateFollow(ctx context.Context, followerID, followeeID uint) error {
	return s.createFollowFn(ctx, followerID, followeeID)
}
func (s *edgeRepoStub) DeleteFollow(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.deleteFollowFn(ctx, followerID, followeeID)
}
func (s *edgeRepoStub) FollowingCount(ctx context.Context, userID uint) (int64, error) {
	return s.followingCountFn(ctx, userID)
}
func (s *edgeRepoStub) FollowersCount(ctx context.Context, userID uint) (int64, error) {
	return s.followersCountFn(ctx, userID)
}
func (s *edgeRepoStub) IsLiked(ctx context.Context, userID, tweetID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, tweetID)
}
func (s *edgeRepoStub) CreateLike(ctx context.Context, userID, tweetID uint) error {
	return s.createLikeFn(ctx, userID, tweetID)
}
func (s *edgeRepoStub) DeleteLike(ctx context.Context, userID, tweetID uint) (bool, error) {
	return s.deleteLikeFn(ctx, userID, tweetID)
}
func (s *edgeRepoStub) LikeCounts(ctx context.Context, tweetIDs []uint) (map[uint]int64, error) {
	return s.likeCountsFn(ctx, tweetIDs)
}
func (s *edgeRepoStub) LikedTweetIDs(ctx context.Context, userID uint, tweetIDs []uint) ([]uint, error) {
	return s.likedTweetIDsFn(ctx, userID, tweetIDs)
}
