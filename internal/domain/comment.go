package domain

import "time"

type Comment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PostID    int64     `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	AuthorUsername string  `json:"username"`
	AuthorName     string  `json:"name"`
	AuthorAvatar   *string `json:"avatar"`
}
