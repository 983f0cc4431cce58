package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/ripple/internal/domain"
	"github.com/vedran77/ripple/internal/repository"
)

type LikeRepo struct {
	pool *pgxpool.Pool
}

func NewLikeRepo(pool *pgxpool.Pool) *LikeRepo {
	return &LikeRepo{pool: pool}
}

func (r *LikeRepo) Create(ctx context.Context, like *domain.Like) error {
	query := `
		INSERT INTO likes (user_id, post_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, like.UserID, like.PostID).Scan(&like.ID, &like.CreatedAt)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *LikeRepo) GetByUserAndPost(ctx context.Context, userID, postID int64) (*domain.Like, error) {
	var l domain.Like
	err := r.pool.QueryRow(ctx,
		"SELECT id, user_id, post_id, created_at FROM likes WHERE user_id = $1 AND post_id = $2",
		userID, postID,
	).Scan(&l.ID, &l.UserID, &l.PostID, &l.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LikeRepo) Delete(ctx context.Context, userID, postID int64) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM likes WHERE user_id = $1 AND post_id = $2", userID, postID)
	return err
}
