package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/ripple/pkg/password"
)

type seedUser struct {
	username string
	email    string
	name     string
	bio      string
	avatar   string
}

type seedPost struct {
	userIdx int
	content string
	image   string
	age     time.Duration
}

var seedUsers = []seedUser{
	{
		username: "john_doe",
		email:    "john@example.com",
		name:     "John Doe",
		bio:      "Software developer and coffee enthusiast ☕",
		avatar:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
	},
	{
		username: "jane_smith",
		email:    "jane@example.com",
		name:     "Jane Smith",
		bio:      "Designer and creative thinker 🎨",
		avatar:   "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
	},
	{
		username: "mike_wilson",
		email:    "mike@example.com",
		name:     "Mike Wilson",
		bio:      "Photographer capturing life's moments 📸",
		avatar:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
	},
}

var seedPosts = []seedPost{
	{
		userIdx: 0,
		content: "Just finished building an amazing React app! The power of modern web development never ceases to amaze me. 🚀 #React #WebDev #Coding",
		image:   "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=600&h=400&fit=crop",
		age:     2 * time.Hour,
	},
	{
		userIdx: 1,
		content: "Working on some new design concepts today. Sometimes the best ideas come from unexpected places! ✨ #Design #Creativity #Inspiration",
		image:   "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=600&h=400&fit=crop",
		age:     4 * time.Hour,
	},
	{
		userIdx: 2,
		content: "Captured this beautiful sunset during my evening walk. Nature never fails to inspire! 🌅 #Photography #Nature #Sunset",
		image:   "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=600&h=400&fit=crop",
		age:     6 * time.Hour,
	},
}

// Seed populates demo users and posts on first boot. It is a no-op
// whenever any user already exists.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var count int64
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	if count > 0 {
		return nil
	}

	userIDs := make([]int64, len(seedUsers))
	for i, u := range seedUsers {
		hash, err := password.Hash("password123")
		if err != nil {
			return fmt.Errorf("hashing seed password: %w", err)
		}

		err = pool.QueryRow(ctx,
			"INSERT INTO users (username, email, password, name, bio, avatar) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id",
			u.username, u.email, hash, u.name, u.bio, u.avatar,
		).Scan(&userIDs[i])
		if err != nil {
			return fmt.Errorf("seeding user %s: %w", u.username, err)
		}
	}

	now := time.Now()
	for _, p := range seedPosts {
		_, err := pool.Exec(ctx,
			"INSERT INTO posts (user_id, content, image, created_at) VALUES ($1, $2, $3, $4)",
			userIDs[p.userIdx], p.content, p.image, now.Add(-p.age),
		)
		if err != nil {
			return fmt.Errorf("seeding post: %w", err)
		}
	}

	return nil
}
