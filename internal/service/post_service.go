package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vedran77/ripple/internal/domain"
	"github.com/vedran77/ripple/internal/repository"
)

var (
	ErrEmptyPost    = errors.New("post needs content or an image")
	ErrEmptyComment = errors.New("comment content is required")
	ErrEmptyQuery   = errors.New("search query is required")
)

type PostService struct {
	postRepo    repository.PostRepository
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
}

func NewPostService(postRepo repository.PostRepository, likeRepo repository.LikeRepository, commentRepo repository.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
	}
}

// Feed returns every post newest-first, with the viewer's like state and
// the derived counts attached.
func (s *PostService) Feed(ctx context.Context, viewerID int64) ([]domain.Post, error) {
	return s.postRepo.ListFeed(ctx, viewerID)
}

func (s *PostService) Create(ctx context.Context, userID int64, content string, image *string) (*domain.Post, error) {
	if strings.TrimSpace(content) == "" && image == nil {
		return nil, ErrEmptyPost
	}

	post := &domain.Post{
		UserID:  userID,
		Content: content,
		Image:   image,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}
	return post, nil
}

// ToggleLike likes the post when the caller has no like on it and
// unlikes otherwise. Returns whether the post is liked afterwards.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID int64) (bool, error) {
	existing, err := s.likeRepo.GetByUserAndPost(ctx, userID, postID)
	if err != nil {
		return false, err
	}

	if existing != nil {
		if err := s.likeRepo.Delete(ctx, userID, postID); err != nil {
			return false, fmt.Errorf("unliking post: %w", err)
		}
		return false, nil
	}

	like := &domain.Like{UserID: userID, PostID: postID}
	if err := s.likeRepo.Create(ctx, like); err != nil {
		// A concurrent toggle won the insert; the like exists either way.
		if errors.Is(err, repository.ErrDuplicate) {
			return true, nil
		}
		return false, fmt.Errorf("liking post: %w", err)
	}
	return true, nil
}

func (s *PostService) Comments(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *PostService) AddComment(ctx context.Context, userID, postID int64, content string) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyComment
	}

	comment := &domain.Comment{
		UserID:  userID,
		PostID:  postID,
		Content: content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}
	return comment, nil
}

// Search filters the feed by case-insensitive substring over post
// content and the author's name and username.
func (s *PostService) Search(ctx context.Context, viewerID int64, query string) ([]domain.Post, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	return s.postRepo.SearchFeed(ctx, viewerID, query)
}
