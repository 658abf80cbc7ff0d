// Package seed provides database seeding utilities for development and
// testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"fasttweet/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumTweets   int
	ShouldClean bool
}

// Seed populates the database with test data: users, tweets, and a
// randomized follow and like mesh between them.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d tweets...", opts.NumUsers, opts.NumTweets)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db)

	users, err := f.CreateUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d test users", len(users))

	tweets, err := f.CreateTweets(users, opts.NumTweets)
	if err != nil {
		return fmt.Errorf("failed to create tweets: %w", err)
	}
	log.Printf("created %d tweets", len(tweets))

	follows, err := f.CreateFollowMesh(users)
	if err != nil {
		return fmt.Errorf("failed to create follow mesh: %w", err)
	}
	log.Printf("created %d follow edges", follows)

	likes, err := f.CreateLikeMesh(users, tweets)
	if err != nil {
		return fmt.Errorf("failed to create likes: %w", err)
	}
	log.Printf("created %d likes", likes)

	return nil
}

// clearData removes all seedable rows. Edges go first so foreign keys
// never dangle mid-cleanup.
func clearData(db *gorm.DB) error {
	for _, model := range []any{
		&models.Like{},
		&models.Follow{},
		&models.Tweet{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// EnsureSuperuser creates the bootstrap superuser account if it does
// not exist yet. The email is stable so repeated runs are idempotent.
func EnsureSuperuser(db *gorm.DB, email, password string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:       email,
		Password:    string(hashed),
		FirstName:   "Admin",
		LastName:    "Root",
		IsSuperuser: true,
		Status:      models.StatusActive,
	}

	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(user).Error
	if err != nil {
		return nil, err
	}

	// Reload in case the account already existed.
	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func randomPastTime(r *rand.Rand, maxDays int) time.Time {
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}
