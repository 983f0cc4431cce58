package repository

import (
	"context"
	"errors"

	"github.com/vedran77/ripple/internal/domain"
)

// ErrDuplicate is returned when an insert hits a uniqueness constraint.
// The constraint, not the caller's existence check, is the authority
// under concurrent writes.
var ErrDuplicate = errors.New("duplicate row")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.PublicUser, error)
	UpdateProfile(ctx context.Context, userID int64, bio, avatar *string) error
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	ListFeed(ctx context.Context, viewerID int64) ([]domain.Post, error)
	SearchFeed(ctx context.Context, viewerID int64, query string) ([]domain.Post, error)
}

type LikeRepository interface {
	Create(ctx context.Context, like *domain.Like) error
	GetByUserAndPost(ctx context.Context, userID, postID int64) (*domain.Like, error)
	Delete(ctx context.Context, userID, postID int64) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error)
}

type FollowRepository interface {
	Create(ctx context.Context, follow *domain.Follow) error
	Get(ctx context.Context, followerID, followingID int64) (*domain.Follow, error)
	Delete(ctx context.Context, followerID, followingID int64) error
}
