package repository

import (
	"testing"

	"fasttweet/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory SQLite database with the full
// schema migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Tweet{},
		&models.Follow{},
		&models.Like{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:     email,
		Password:  "hashed",
		FirstName: "Test",
		LastName:  "User",
		Status:    models.StatusActive,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestTweet(t *testing.T, db *gorm.DB, userID uint, content string) *models.Tweet {
	t.Helper()
	tweet := &models.Tweet{
		Content: content,
		UserID:  userID,
		Status:  models.StatusActive,
	}
	require.NoError(t, db.Create(tweet).Error)
	return tweet
}
