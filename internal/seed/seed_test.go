package seed

import (
	"testing"

	"fasttweet/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func TestSeedPopulatesDatabase(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Seed(db, Options{NumUsers: 5, NumTweets: 10, ShouldClean: true}))

	var userCount, tweetCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Tweet{}).Count(&tweetCount).Error)
	assert.Equal(t, int64(5), userCount)
	assert.Equal(t, int64(10), tweetCount)

	// Every tweet has a valid author
	var orphaned int64
	require.NoError(t, db.Model(&models.Tweet{}).
		Where("user_id NOT IN (?)", db.Model(&models.User{}).Select("id")).
		Count(&orphaned).Error)
	assert.Zero(t, orphaned)

	// No self-follow edges in the mesh
	var selfFollows int64
	require.NoError(t, db.Model(&models.Follow{}).
		Where("follower_id = followee_id").
		Count(&selfFollows).Error)
	assert.Zero(t, selfFollows)
}

func TestSeedCleanRemovesPreviousData(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Seed(db, Options{NumUsers: 3, NumTweets: 4, ShouldClean: false}))
	require.NoError(t, Seed(db, Options{NumUsers: 2, NumTweets: 2, ShouldClean: true}))

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(2), userCount)
}

func TestCreateUserOverrides(t *testing.T) {
	db := setupTestDB(t)
	f := NewFactory(db)

	user, err := f.CreateUser(func(u *models.User) {
		u.Email = "fixed@example.com"
		u.IsSuperuser = true
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed@example.com", user.Email)
	assert.True(t, user.IsSuperuser)
}

func TestEnsureSuperuserIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	first, err := EnsureSuperuser(db, "admin@example.com", "ChangeMe123!")
	require.NoError(t, err)
	assert.True(t, first.IsSuperuser)

	second, err := EnsureSuperuser(db, "admin@example.com", "ChangeMe123!")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "admin@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
