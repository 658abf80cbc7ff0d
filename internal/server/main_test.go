package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fasttweet/internal/config"
	"fasttweet/internal/models"
	"fasttweet/internal/repository"
	"fasttweet/internal/service"
	"fasttweet/internal/tokens"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer builds a server over an in-memory SQLite database with
// routes registered. Metrics are left unregistered to keep the default
// Prometheus registry clean across tests.
func newTestServer(t *testing.T, blacklist *tokens.Blacklist) (*fiber.App, *Server, *gorm.DB) {
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

	if blacklist == nil {
		blacklist = tokens.NewBlacklist(nil)
	}

	userRepo := repository.NewUserRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	edgeRepo := repository.NewRelationshipRepository(db)

	s := &Server{
		config:    &config.Config{JWTSecret: "test_secret", TokenExpiryMinutes: 30},
		db:        db,
		blacklist: blacklist,
		userRepo:  userRepo,
		tweetRepo: tweetRepo,
		edgeRepo:  edgeRepo,
	}
	s.userService = service.NewUserService(userRepo, edgeRepo)
	s.tweetService = service.NewTweetService(tweetRepo)
	s.edgeService = service.NewRelationshipService(edgeRepo, userRepo, tweetRepo)

	app := fiber.New()
	s.SetupRoutes(app)

	return app, s, db
}

// doJSON performs a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodes the response body into out and closes it.
func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// signupUser registers an account through the API and returns the
// issued token and user.
func signupUser(t *testing.T, app *fiber.App, email string) (string, models.User) {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":      email,
		"password":   "Password123!",
		"first_name": "Test",
		"last_name":  "User",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var payload struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decodeBody(t, resp, &payload)
	require.NotEmpty(t, payload.Token)
	return payload.Token, payload.User
}
