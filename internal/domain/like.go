package domain

import "time"

// Like is unique per (user, post); the database constraint is the
// authority, concurrent toggles must not insert twice.
type Like struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PostID    int64     `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
