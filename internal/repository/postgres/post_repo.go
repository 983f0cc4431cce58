package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/ripple/internal/domain"
)

type PostRepo struct {
	pool *pgxpool.Pool
}

func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (user_id, content, image)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		post.UserID, post.Content, post.Image,
	).Scan(&post.ID, &post.CreatedAt)
}

// feedQuery joins each post with its author's public fields and derives
// the like/comment counts and the viewer's like state at read time.
const feedQuery = `
	SELECT p.id, p.user_id, p.content, p.image, p.created_at,
		u.username, u.name, u.avatar,
		COUNT(DISTINCT l.id) AS likes_count,
		COUNT(DISTINCT c.id) AS comments_count,
		EXISTS(SELECT 1 FROM likes WHERE user_id = $1 AND post_id = p.id) AS is_liked
	FROM posts p
	JOIN users u ON p.user_id = u.id
	LEFT JOIN likes l ON l.post_id = p.id
	LEFT JOIN comments c ON c.post_id = p.id
	%s
	GROUP BY p.id, u.username, u.name, u.avatar
	ORDER BY p.created_at DESC, p.id DESC`

func (r *PostRepo) ListFeed(ctx context.Context, viewerID int64) ([]domain.Post, error) {
	return r.queryFeed(ctx, "", viewerID)
}

func (r *PostRepo) SearchFeed(ctx context.Context, viewerID int64, query string) ([]domain.Post, error) {
	where := "WHERE p.content ILIKE $2 OR u.name ILIKE $2 OR u.username ILIKE $2"
	return r.queryFeed(ctx, where, viewerID, "%"+query+"%")
}

func (r *PostRepo) queryFeed(ctx context.Context, where string, args ...any) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(feedQuery, where), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Content, &p.Image, &p.CreatedAt,
			&p.AuthorUsername, &p.AuthorName, &p.AuthorAvatar,
			&p.LikeCount, &p.CommentCount, &p.IsLiked,
		); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
