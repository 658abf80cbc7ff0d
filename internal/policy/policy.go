// Package policy contains pure authorization decision functions.
// Every function answers "may this actor perform this action" without
// side effects; callers resolve entities and map denials to errors.
package policy

import (
	"fasttweet/internal/models"
)

// CanEditTweet reports whether the actor may edit the tweet's content.
// Only the owner may edit, and only while the tweet is active.
func CanEditTweet(actor *models.User, tweet *models.Tweet) bool {
	return actor.ID == tweet.UserID && tweet.IsActive()
}

// CanDeleteTweet reports whether the actor may deactivate the tweet.
// Same rule as editing.
func CanDeleteTweet(actor *models.User, tweet *models.Tweet) bool {
	return CanEditTweet(actor, tweet)
}

// CanDeactivateUser reports whether the actor may deactivate an account.
// Superuser only.
func CanDeactivateUser(actor *models.User) bool {
	return actor.IsSuperuser
}

// CanUpdateUser reports whether the actor may update the target profile.
//
// NOTE: the conjunction (self AND superuser) is preserved exactly from
// the observed system. It means an ordinary user can never update their
// own profile; only a superuser editing their own record succeeds. This
// has been flagged to stakeholders rather than silently changed, and is
// pinned by a test.
func CanUpdateUser(actor *models.User, targetID uint) bool {
	return actor.ID == targetID && actor.IsSuperuser
}

// CanFollow reports whether the actor may follow the target user.
// Self-follow is prohibited.
func CanFollow(actor *models.User, targetID uint) bool {
	return actor.ID != targetID
}
