package seed

import (
	"fmt"
	"math/rand"
	"time"

	"fasttweet/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedPassword is the shared plaintext password for generated accounts.
const seedPassword = "password123"

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db: db,
		r:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample account. Optional
// override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	birth := gofakeit.DateRange(
		time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC),
	)

	user := &models.User{
		Email:     fmt.Sprintf("%d-%s", gofakeit.Number(100, 999), gofakeit.Email()),
		Password:  string(hashed),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		BirthDate: &birth,
		Status:    models.StatusActive,
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUsers persists n generated accounts.
func (f *Factory) CreateUsers(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// CreateTweet constructs and persists a sample tweet for the given user.
func (f *Factory) CreateTweet(user *models.User, overrides ...func(*models.Tweet)) (*models.Tweet, error) {
	content := gofakeit.Sentence(f.r.Intn(20) + 3)
	if len(content) > models.MaxTweetLength {
		content = content[:models.MaxTweetLength]
	}

	tweet := &models.Tweet{
		Content:   content,
		UserID:    user.ID,
		Status:    models.StatusActive,
		CreatedAt: randomPastTime(f.r, 90),
	}

	for _, override := range overrides {
		override(tweet)
	}

	if err := f.db.Create(tweet).Error; err != nil {
		return nil, err
	}
	return tweet, nil
}

// CreateTweets persists n tweets spread over random authors.
func (f *Factory) CreateTweets(users []*models.User, n int) ([]*models.Tweet, error) {
	if len(users) == 0 {
		return nil, nil
	}
	tweets := make([]*models.Tweet, 0, n)
	for i := 0; i < n; i++ {
		author := users[f.r.Intn(len(users))]
		tweet, err := f.CreateTweet(author)
		if err != nil {
			return nil, err
		}
		tweets = append(tweets, tweet)
	}
	return tweets, nil
}

// CreateFollowMesh links each user to a random subset of the others
// and returns the number of edges created.
func (f *Factory) CreateFollowMesh(users []*models.User) (int, error) {
	created := 0
	for _, follower := range users {
		targets := f.r.Intn(len(users))
		for i := 0; i < targets; i++ {
			followee := users[f.r.Intn(len(users))]
			if followee.ID == follower.ID {
				continue
			}
			err := f.db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "follower_id"}, {Name: "followee_id"}},
				DoNothing: true,
			}).Create(&models.Follow{
				FollowerID: follower.ID,
				FolloweeID: followee.ID,
			}).Error
			if err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

// CreateLikeMesh scatters likes over the given tweets and returns the
// number of likes created.
func (f *Factory) CreateLikeMesh(users []*models.User, tweets []*models.Tweet) (int, error) {
	if len(tweets) == 0 {
		return 0, nil
	}
	created := 0
	for _, user := range users {
		likes := f.r.Intn(len(tweets) + 1)
		for i := 0; i < likes; i++ {
			tweet := tweets[f.r.Intn(len(tweets))]
			err := f.db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "tweet_id"}},
				DoNothing: true,
			}).Create(&models.Like{
				UserID:  user.ID,
				TweetID: tweet.ID,
			}).Error
			if err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}
