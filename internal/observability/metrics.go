package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Application-level counters, exposed alongside the per-route HTTP
// metrics on /metrics.
var (
	// SignupsTotal counts successful account registrations.
	SignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fasttweet_signups_total",
		Help: "Total number of successful account registrations.",
	})

	// TweetsCreatedTotal counts successfully created tweets.
	TweetsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fasttweet_tweets_created_total",
		Help: "Total number of tweets created.",
	})

	// FollowEdgesTotal counts follow operations by outcome.
	FollowEdgesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fasttweet_follow_operations_total",
		Help: "Total number of follow graph operations.",
	}, []string{"operation"})

	// LikeEdgesTotal counts like operations by outcome.
	LikeEdgesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fasttweet_like_operations_total",
		Help: "Total number of like graph operations.",
	}, []string{"operation"})
)
