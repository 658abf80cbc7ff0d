package repository

import (
	"context"
	"errors"

	"fasttweet/internal/models"

	"gorm.io/gorm"
)

// TweetRepository defines the interface for tweet data operations.
// GetByID returns tweets in any lifecycle state; visibility decisions
// belong to the service layer.
type TweetRepository interface {
	Create(ctx context.Context, tweet *models.Tweet) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Tweet, error)
	List(ctx context.Context, currentUserID uint) ([]*models.Tweet, error)
	Update(ctx context.Context, tweet *models.Tweet) error
}

// tweetRepository implements TweetRepository
type tweetRepository struct {
	db    *gorm.DB
	edges RelationshipRepository
}

// NewTweetRepository creates a new tweet repository
func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db, edges: NewRelationshipRepository(db)}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *models.Tweet) error {
	if err := r.db.WithContext(ctx).Create(tweet).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *tweetRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&tweet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tweet", id)
		}
		return nil, models.NewInternalError(err)
	}
	if err := r.attachEngagement(ctx, []*models.Tweet{&tweet}, currentUserID); err != nil {
		return nil, err
	}
	return &tweet, nil
}

// List returns all active tweets in insertion order.
func (r *tweetRepository) List(ctx context.Context, currentUserID uint) ([]*models.Tweet, error) {
	var tweets []*models.Tweet
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("status = ?", models.StatusActive).
		Order("id ASC").
		Find(&tweets).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := r.attachEngagement(ctx, tweets, currentUserID); err != nil {
		return nil, err
	}
	return tweets, nil
}

func (r *tweetRepository) Update(ctx context.Context, tweet *models.Tweet) error {
	if err := r.db.WithContext(ctx).Save(tweet).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// attachEngagement fills the computed LikesCount and Liked fields via
// explicit count/membership queries against the like-graph.
func (r *tweetRepository) attachEngagement(ctx context.Context, tweets []*models.Tweet, currentUserID uint) error {
	if len(tweets) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(tweets))
	for _, t := range tweets {
		ids = append(ids, t.ID)
	}

	counts, err := r.edges.LikeCounts(ctx, ids)
	if err != nil {
		return err
	}
	for _, t := range tweets {
		t.LikesCount = counts[t.ID]
	}

	if currentUserID == 0 {
		return nil
	}
	liked, err := r.edges.LikedTweetIDs(ctx, currentUserID, ids)
	if err != nil {
		return err
	}
	likedSet := make(map[uint]bool, len(liked))
	for _, id := range liked {
		likedSet[id] = true
	}
	for _, t := range tweets {
		t.Liked = likedSet[t.ID]
	}
	return nil
}
