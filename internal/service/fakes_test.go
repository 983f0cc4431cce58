package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vedran77/ripple/internal/domain"
	"github.com/vedran77/ripple/internal/repository"
)

// memStore is an in-memory stand-in for the postgres repositories. It
// mirrors the schema's uniqueness constraints and derives the feed
// aggregates the same way the SQL projection does.
type memStore struct {
	mu       sync.Mutex
	users    map[int64]*domain.User
	posts    []*domain.Post
	likes    map[[2]int64]*domain.Like
	comments []*domain.Comment
	follows  map[[2]int64]*domain.Follow
	nextID   int64
}

func newMemStore() *memStore {
	return &memStore{
		users:   make(map[int64]*domain.User),
		likes:   make(map[[2]int64]*domain.Like),
		follows: make(map[[2]int64]*domain.Follow),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

// UserRepository

func (m *memStore) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = m.id()
	user.CreatedAt = time.Now()
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) List(ctx context.Context) ([]domain.PublicUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var users []domain.PublicUser
	for _, u := range m.users {
		users = append(users, *u.Public())
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *memStore) UpdateProfile(ctx context.Context, userID int64, bio, avatar *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil
	}
	if bio != nil {
		u.Bio = bio
	}
	if avatar != nil {
		u.Avatar = avatar
	}
	return nil
}

// PostRepository

func (m *memStore) CreatePost(ctx context.Context, post *domain.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	post.ID = m.id()
	post.CreatedAt = time.Now()
	cp := *post
	m.posts = append(m.posts, &cp)
	return nil
}

func (m *memStore) ListFeed(ctx context.Context, viewerID int64) ([]domain.Post, error) {
	return m.feed(viewerID, func(p *domain.Post, author *domain.User) bool { return true }), nil
}

func (m *memStore) SearchFeed(ctx context.Context, viewerID int64, query string) ([]domain.Post, error) {
	q := strings.ToLower(query)
	match := func(p *domain.Post, author *domain.User) bool {
		return strings.Contains(strings.ToLower(p.Content), q) ||
			strings.Contains(strings.ToLower(author.Name), q) ||
			strings.Contains(strings.ToLower(author.Username), q)
	}
	return m.feed(viewerID, match), nil
}

func (m *memStore) feed(viewerID int64, match func(*domain.Post, *domain.User) bool) []domain.Post {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Post
	for _, p := range m.posts {
		author := m.users[p.UserID]
		if author == nil || !match(p, author) {
			continue
		}

		cp := *p
		cp.AuthorUsername = author.Username
		cp.AuthorName = author.Name
		cp.AuthorAvatar = author.Avatar
		for key := range m.likes {
			if key[1] == cp.ID {
				cp.LikeCount++
			}
		}
		for _, c := range m.comments {
			if c.PostID == cp.ID {
				cp.CommentCount++
			}
		}
		_, cp.IsLiked = m.likes[[2]int64{viewerID, cp.ID}]
		out = append(out, cp)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// LikeRepository

func (m *memStore) CreateLike(ctx context.Context, like *domain.Like) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]int64{like.UserID, like.PostID}
	if _, exists := m.likes[key]; exists {
		return repository.ErrDuplicate
	}
	like.ID = m.id()
	like.CreatedAt = time.Now()
	cp := *like
	m.likes[key] = &cp
	return nil
}

func (m *memStore) GetByUserAndPost(ctx context.Context, userID, postID int64) (*domain.Like, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.likes[[2]int64{userID, postID}]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (m *memStore) DeleteLike(ctx context.Context, userID, postID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.likes, [2]int64{userID, postID})
	return nil
}

// CommentRepository

func (m *memStore) CreateComment(ctx context.Context, comment *domain.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	comment.ID = m.id()
	comment.CreatedAt = time.Now()
	cp := *comment
	m.comments = append(m.comments, &cp)
	return nil
}

func (m *memStore) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Comment
	for _, c := range m.comments {
		if c.PostID != postID {
			continue
		}
		cp := *c
		if author := m.users[c.UserID]; author != nil {
			cp.AuthorUsername = author.Username
			cp.AuthorName = author.Name
			cp.AuthorAvatar = author.Avatar
		}
		out = append(out, cp)
	}
	return out, nil
}

// FollowRepository

func (m *memStore) CreateFollow(ctx context.Context, follow *domain.Follow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]int64{follow.FollowerID, follow.FollowingID}
	if _, exists := m.follows[key]; exists {
		return repository.ErrDuplicate
	}
	follow.ID = m.id()
	follow.CreatedAt = time.Now()
	cp := *follow
	m.follows[key] = &cp
	return nil
}

func (m *memStore) GetFollow(ctx context.Context, followerID, followingID int64) (*domain.Follow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.follows[[2]int64{followerID, followingID}]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (m *memStore) DeleteFollow(ctx context.Context, followerID, followingID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.follows, [2]int64{followerID, followingID})
	return nil
}

// Per-interface views over memStore, since the repository interfaces
// share method names.

type memPosts struct{ s *memStore }

func (m memPosts) Create(ctx context.Context, post *domain.Post) error {
	return m.s.CreatePost(ctx, post)
}
func (m memPosts) ListFeed(ctx context.Context, viewerID int64) ([]domain.Post, error) {
	return m.s.ListFeed(ctx, viewerID)
}
func (m memPosts) SearchFeed(ctx context.Context, viewerID int64, query string) ([]domain.Post, error) {
	return m.s.SearchFeed(ctx, viewerID, query)
}

type memLikes struct{ s *memStore }

func (m memLikes) Create(ctx context.Context, like *domain.Like) error {
	return m.s.CreateLike(ctx, like)
}
func (m memLikes) GetByUserAndPost(ctx context.Context, userID, postID int64) (*domain.Like, error) {
	return m.s.GetByUserAndPost(ctx, userID, postID)
}
func (m memLikes) Delete(ctx context.Context, userID, postID int64) error {
	return m.s.DeleteLike(ctx, userID, postID)
}

type memComments struct{ s *memStore }

func (m memComments) Create(ctx context.Context, comment *domain.Comment) error {
	return m.s.CreateComment(ctx, comment)
}
func (m memComments) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return m.s.ListByPost(ctx, postID)
}

type memFollows struct{ s *memStore }

func (m memFollows) Create(ctx context.Context, follow *domain.Follow) error {
	return m.s.CreateFollow(ctx, follow)
}
func (m memFollows) Get(ctx context.Context, followerID, followingID int64) (*domain.Follow, error) {
	return m.s.GetFollow(ctx, followerID, followingID)
}
func (m memFollows) Delete(ctx context.Context, followerID, followingID int64) error {
	return m.s.DeleteFollow(ctx, followerID, followingID)
}

const testSecret = "test-secret"

// newTestEnv wires the three services over a shared in-memory store.
func newTestEnv() (*memStore, *AuthService, *UserService, *PostService) {
	store := newMemStore()
	auth := NewAuthService(store, testSecret)
	users := NewUserService(store, memFollows{store})
	posts := NewPostService(memPosts{store}, memLikes{store}, memComments{store})
	return store, auth, users, posts
}
