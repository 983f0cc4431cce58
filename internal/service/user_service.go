package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vedran77/ripple/internal/domain"
	"github.com/vedran77/ripple/internal/repository"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

func (s *UserService) List(ctx context.Context) ([]domain.PublicUser, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.PublicUser, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user.Public(), nil
}

type UpdateProfileInput struct {
	Bio    *string
	Avatar *string
}

// UpdateProfile changes only the supplied fields and returns the
// caller's refreshed profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, input UpdateProfileInput) (*domain.User, error) {
	if err := s.userRepo.UpdateProfile(ctx, userID, input.Bio, input.Avatar); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ToggleFollow follows the target when no edge exists and unfollows
// otherwise. Returns whether the caller follows the target afterwards.
func (s *UserService) ToggleFollow(ctx context.Context, followerID, followingID int64) (bool, error) {
	if followerID == followingID {
		return false, ErrSelfFollow
	}

	existing, err := s.followRepo.Get(ctx, followerID, followingID)
	if err != nil {
		return false, err
	}

	if existing != nil {
		if err := s.followRepo.Delete(ctx, followerID, followingID); err != nil {
			return false, fmt.Errorf("unfollowing: %w", err)
		}
		return false, nil
	}

	follow := &domain.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		// A concurrent toggle won the insert; the edge exists either way.
		if errors.Is(err, repository.ErrDuplicate) {
			return true, nil
		}
		return false, fmt.Errorf("following: %w", err)
	}
	return true, nil
}
