package repository

import (
	"context"

	"fasttweet/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RelationshipRepository defines persistence operations for the two
// many-to-many edge collections: the follow-graph (user -> user) and
// the like-graph (user -> tweet). Edge inserts absorb duplicate-key
// races at the storage layer, so concurrent calls for the same pair
// resolve to a single edge rather than a visible constraint error.
type RelationshipRepository interface {
	IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error)
	CreateFollow(ctx context.Context, followerID, followeeID uint) error
	DeleteFollow(ctx context.Context, followerID, followeeID uint) (bool, error)
	FollowingCount(ctx context.Context, userID uint) (int64, error)
	FollowersCount(ctx context.Context, userID uint) (int64, error)

	IsLiked(ctx context.Context, userID, tweetID uint) (bool, error)
	CreateLike(ctx context.Context, userID, tweetID uint) error
	DeleteLike(ctx context.Context, userID, tweetID uint) (bool, error)
	LikeCounts(ctx context.Context, tweetIDs []uint) (map[uint]int64, error)
	LikedTweetIDs(ctx context.Context, userID uint, tweetIDs []uint) ([]uint, error)
}

// relationshipRepository implements RelationshipRepository
type relationshipRepository struct {
	db *gorm.DB
}

// NewRelationshipRepository creates a new relationship repository
func NewRelationshipRepository(db *gorm.DB) RelationshipRepository {
	return &relationshipRepository{db: db}
}

func (r *relationshipRepository) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// CreateFollow inserts a follow edge. An existing edge is left as-is:
// the insert uses ON CONFLICT DO NOTHING against the composite unique
// index, so a duplicate-insert race never surfaces to the caller.
func (r *relationshipRepository) CreateFollow(ctx context.Context, followerID, followeeID uint) error {
	edge := models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "follower_id"}, {Name: "followee_id"}},
			DoNothing: true,
		}).
		Create(&edge).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteFollow removes a follow edge and reports whether one existed.
func (r *relationshipRepository) DeleteFollow(ctx context.Context, followerID, followeeID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *relationshipRepository) FollowingCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *relationshipRepository) FollowersCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("followee_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *relationshipRepository) IsLiked(ctx context.Context, userID, tweetID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// CreateLike inserts a like edge, absorbing duplicates the same way as
// CreateFollow.
func (r *relationshipRepository) CreateLike(ctx context.Context, userID, tweetID uint) error {
	edge := models.Like{UserID: userID, TweetID: tweetID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "tweet_id"}},
			DoNothing: true,
		}).
		Create(&edge).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteLike removes a like edge and reports whether one existed.
func (r *relationshipRepository) DeleteLike(ctx context.Context, userID, tweetID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Delete(&models.Like{})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// LikeCounts returns like totals for the given tweets, keyed by tweet ID.
// Tweets with no likes are absent from the map.
func (r *relationshipRepository) LikeCounts(ctx context.Context, tweetIDs []uint) (map[uint]int64, error) {
	if len(tweetIDs) == 0 {
		return map[uint]int64{}, nil
	}

	type row struct {
		TweetID uint
		Total   int64
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Select("tweet_id, COUNT(*) AS total").
		Where("tweet_id IN ?", tweetIDs).
		Group("tweet_id").
		Scan(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.TweetID] = r.Total
	}
	return counts, nil
}

func (r *relationshipRepository) LikedTweetIDs(ctx context.Context, userID uint, tweetIDs []uint) ([]uint, error) {
	if len(tweetIDs) == 0 {
		return nil, nil
	}
	var liked []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND tweet_id IN ?", userID, tweetIDs).
		Pluck("tweet_id", &liked).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return liked, nil
}
