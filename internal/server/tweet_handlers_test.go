package server

import (
	"net/http"
	"strconv"
	"strings"
	"testing"

	"fasttweet/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tweetPath(id uint) string {
	return "/api/tweets/" + strconv.FormatUint(uint64(id), 10)
}

func TestTweetCRUD(t *testing.T) {
	app, _, _ := newTestServer(t, nil)

	aliceToken, _ := signupUser(t, app, "alice@example.com")
	bobToken, _ := signupUser(t, app, "bob@example.com")

	// Create
	resp := doJSON(t, app, http.MethodPost, "/api/tweets/", aliceToken, map[string]string{
		"content": "hello world",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var tweet models.Tweet
	decodeBody(t, resp, &tweet)
	assert.Equal(t, "hello world", tweet.Content)
	assert.NotZero(t, tweet.ID)

	// Empty content is rejected
	resp = doJSON(t, app, http.MethodPost, "/api/tweets/", aliceToken, map[string]string{
		"content": "",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	// Over-length content is rejected
	resp = doJSON(t, app, http.MethodPost, "/api/tweets/", aliceToken, map[string]string{
		"content": strings.Repeat("x", models.MaxTweetLength+1),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	// Read
	resp = doJSON(t, app, http.MethodGet, tweetPath(tweet.ID), bobToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got models.Tweet
	decodeBody(t, resp, &got)
	assert.Equal(t, tweet.ID, got.ID)
	assert.Equal(t, "alice@example.com", got.User.Email)

	// Update by a non-owner is forbidden
	resp = doJSON(t, app, http.MethodPut, tweetPath(tweet.ID), bobToken, map[string]string{
		"content": "hijacked",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	_ = resp.Body.Close()

	// Update by the owner
	resp = doJSON(t, app, http.MethodPut, tweetPath(tweet.ID), aliceToken, map[string]string{
		"content": "hello again",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &got)
	assert.Equal(t, "hello again", got.Content)

	// Delete by a non-owner is forbidden
	resp = doJSON(t, app, http.MethodDelete, tweetPath(tweet.ID), bobToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	_ = resp.Body.Close()

	// Delete by the owner
	resp = doJSON(t, app, http.MethodDelete, tweetPath(tweet.ID), aliceToken, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	// A deleted tweet is gone for everyone but its owner
	resp = doJSON(t, app, http.MethodGet, tweetPath(tweet.ID), bobToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, tweetPath(tweet.ID), aliceToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	// Deleting again reports not found
	resp = doJSON(t, app, http.MethodDelete, tweetPath(tweet.ID), aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestTweetListExcludesDeleted(t *testing.T) {
	app, _, _ := newTestServer(t, nil)

	aliceToken, _ := signupUser(t, app, "alice@example.com")

	var first models.Tweet
	resp := doJSON(t, app, http.MethodPost, "/api/tweets/", aliceToken, map[string]string{"content": "first"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decodeBody(t, resp, &first)

	resp = doJSON(t, app, http.MethodPost, "/api/tweets/", aliceToken, map[string]string{"content": "second"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, tweetPath(first.ID), aliceToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/tweets/", aliceToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tweets []models.Tweet
	decodeBody(t, resp, &tweets)
	require.Len(t, tweets, 1)
	assert.Equal(t, "second", tweets[0].Content)
}

func TestLikeEndpoints(t *testing.T) {
	app, _, _ := newTestServer(t, nil)

	aliceToken, _ := signupUser(t, app, "alice@example.com")
	bobToken, _ := signupUser(t, app, "bob@example.com")

	var tweet models.Tweet
	resp := doJSON(t, app, http.MethodPost, "/api/tweets/", aliceToken, map[string]string{"content": "likeable"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decodeBody(t, resp, &tweet)

	// Like, then like again; the second call is a no-op
	for i := 0; i < 2; i++ {
		resp = doJSON(t, app, http.MethodPost, tweetPath(tweet.ID)+"/like", bobToken, nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		_ = resp.Body.Close()
	}

	// Liking your own tweet is allowed
	resp = doJSON(t, app, http.MethodPost, tweetPath(tweet.ID)+"/like", aliceToken, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	// The like count reflects distinct likers; liked reflects the viewer
	resp = doJSON(t, app, http.MethodGet, tweetPath(tweet.ID), bobToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got models.Tweet
	decodeBody(t, resp, &got)
	assert.Equal(t, int64(2), got.LikesCount)
	assert.True(t, got.Liked)

	// Unlike, then unlike again; the second call is a no-op
	for i := 0; i < 2; i++ {
		resp = doJSON(t, app, http.MethodDelete, tweetPath(tweet.ID)+"/like", bobToken, nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		_ = resp.Body.Close()
	}

	resp = doJSON(t, app, http.MethodGet, tweetPath(tweet.ID), bobToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &got)
	assert.Equal(t, int64(1), got.LikesCount)
	assert.False(t, got.Liked)

	// A deleted tweet cannot be liked
	resp = doJSON(t, app, http.MethodDelete, tweetPath(tweet.ID), aliceToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, tweetPath(tweet.ID)+"/like", bobToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestTweetUnknownID(t *testing.T) {
	app, _, _ := newTestServer(t, nil)
	token, _ := signupUser(t, app, "alice@example.com")

	resp := doJSON(t, app, http.MethodGet, "/api/tweets/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/tweets/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}
