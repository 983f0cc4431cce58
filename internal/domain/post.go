package domain

import "time"

// Post carries the author's public fields and per-viewer aggregates,
// filled in by the feed queries. LikeCount, CommentCount and IsLiked
// are derived at read time, never stored.
type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created_at"`

	AuthorUsername string  `json:"username"`
	AuthorName     string  `json:"name"`
	AuthorAvatar   *string `json:"avatar"`
	LikeCount      int64   `json:"likes_count"`
	CommentCount   int64   `json:"comments_count"`
	IsLiked        bool    `json:"is_liked"`
}
