package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/ripple/internal/domain"
	"github.com/vedran77/ripple/internal/repository"
)

type FollowRepo struct {
	pool *pgxpool.Pool
}

func NewFollowRepo(pool *pgxpool.Pool) *FollowRepo {
	return &FollowRepo{pool: pool}
}

func (r *FollowRepo) Create(ctx context.Context, follow *domain.Follow) error {
	query := `
		INSERT INTO follows (follower_id, following_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, follow.FollowerID, follow.FollowingID).Scan(&follow.ID, &follow.CreatedAt)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *FollowRepo) Get(ctx context.Context, followerID, followingID int64) (*domain.Follow, error) {
	var f domain.Follow
	err := r.pool.QueryRow(ctx,
		"SELECT id, follower_id, following_id, created_at FROM follows WHERE follower_id = $1 AND following_id = $2",
		followerID, followingID,
	).Scan(&f.ID, &f.FollowerID, &f.FollowingID, &f.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FollowRepo) Delete(ctx context.Context, followerID, followingID int64) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM follows WHERE follower_id = $1 AND following_id = $2", followerID, followingID)
	return err
}
