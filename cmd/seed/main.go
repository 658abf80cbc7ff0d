// Command main runs the database seeder for Fasttweet.
package main

import (
	"flag"
	"log"

	"fasttweet/internal/config"
	"fasttweet/internal/database"
	"fasttweet/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 50, "Number of users to create")
	numTweets := flag.Int("tweets", 200, "Number of tweets to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	adminEmail := flag.String("admin-email", "admin@fasttweet.local", "Bootstrap superuser email")
	adminPassword := flag.String("admin-password", "ChangeMe123!", "Bootstrap superuser password")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d tweets, clean=%v\n", *numUsers, *numTweets, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumTweets:   *numTweets,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	if _, err := seed.EnsureSuperuser(db, *adminEmail, *adminPassword); err != nil {
		log.Fatalf("Superuser bootstrap failed: %v", err)
	}

	log.Println("All done! Your database is now populated with test data.")
	log.Printf("All generated users have the password: password123")
}
