package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zamm-dev/navedit/internal/models"
	"github.com/zamm-dev/navedit/internal/storage"
)

// PostService interface defines operations for managing posts
type PostService interface {
	CreatePost(title, content string) (*models.Post, error)
	GetPost(id string) (*models.Post, error)
	ListPosts() ([]*models.Post, error)
	UpdatePost(id string, edits models.PostEdits) (*models.Post, error)
	DeletePost(id string) error
}

// postService implements the PostService interface
type postService struct {
	storage storage.Storage
	now     func() time.Time
}

// NewPostService creates a new PostService instance
func NewPostService(storage storage.Storage) PostService {
	return &postService{
		storage: storage,
		now:     time.Now,
	}
}

// CreatePost creates a new post. An empty title is allowed.
func (s *postService) CreatePost(title, content string) (*models.Post, error) {
	post := &models.Post{
		ID:        uuid.New().String(),
		Title:     strings.TrimSpace(title),
		Content:   content,
		UpdatedAt: s.now().UTC(),
	}

	if err := s.storage.CreatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by ID
func (s *postService) GetPost(id string) (*models.Post, error) {
	if id == "" {
		return nil, models.NewNavError(models.ErrTypeValidation, "post ID cannot be empty")
	}
	return s.storage.GetPost(id)
}

// ListPosts retrieves all posts
func (s *postService) ListPosts() ([]*models.Post, error) {
	return s.storage.ListPosts()
}

// UpdatePost applies a partial update
func (s *postService) UpdatePost(id string, edits models.PostEdits) (*models.Post, error) {
	post, err := s.GetPost(id)
	if err != nil {
		return nil, err
	}
	if edits.IsEmpty() {
		return post, nil
	}

	edits.Apply(post)
	post.UpdatedAt = s.now().UTC()

	if err := s.storage.UpdatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost deletes a post
func (s *postService) DeletePost(id string) error {
	if id == "" {
		return models.NewNavError(models.ErrTypeValidation, "post ID cannot be empty")
	}
	return s.storage.DeletePost(id)
}
