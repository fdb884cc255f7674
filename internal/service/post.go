package service

import (
	"context"
	"errors"
	"time"

	"github.com/goblog/blog-service/internal/models"
	"github.com/goblog/blog-service/internal/repository"
	"gorm.io/gorm"
)

var (
	// ErrTitleTaken is returned when a post write would reuse an existing
	// title.
	ErrTitleTaken = errors.New("title already exists")
	// ErrPostNotFound is returned when the referenced post does not exist.
	ErrPostNotFound = errors.New("post not found")
)

// publishDateFormat renders dates like "August 27, 2026".
const publishDateFormat = "January 2, 2006"

// PostInput carries the editable post fields. Author and publish date are
// never part of the input; they are fixed at creation.
type PostInput struct {
	Title    string
	Subtitle string
	ImgURL   string
	Body     string
}

// PostService handles post listing and the admin-managed writes.
type PostService interface {
	List(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, id int64) (*models.Post, error)
	Create(ctx context.Context, authorID int64, in PostInput) (*models.Post, error)
	Update(ctx context.Context, id int64, in PostInput) (*models.Post, error)
	Delete(ctx context.Context, id int64) error
}

type postService struct {
	posts repository.PostRepository
	now   func() time.Time
}

// NewPostService creates a new PostService instance.
func NewPostService(posts repository.PostRepository) PostService {
	return &postService{posts: posts, now: time.Now}
}

// List returns all posts, newest first.
func (s *postService) List(ctx context.Context) ([]models.Post, error) {
	return s.posts.FindAll(ctx)
}

func (s *postService) Get(ctx context.Context, id int64) (*models.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// Create publishes a new post owned by authorID, stamping the publish date
// at creation time.
func (s *postService) Create(ctx context.Context, authorID int64, in PostInput) (*models.Post, error) {
	post := &models.Post{
		Title:    in.Title,
		Subtitle: in.Subtitle,
		ImgURL:   in.ImgURL,
		Body:     in.Body,
		AuthorID: authorID,
		Date:     s.now().Format(publishDateFormat),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTitleTaken
		}
		return nil, err
	}
	return post, nil
}

// Update overwrites title, subtitle, image and body in place. Author and
// publish date are never altered.
func (s *postService) Update(ctx context.Context, id int64, in PostInput) (*models.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Subtitle = in.Subtitle
	post.ImgURL = in.ImgURL
	post.Body = in.Body
	if err := s.posts.Update(ctx, post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTitleTaken
		}
		return nil, err
	}
	return post, nil
}

// Delete removes a post and, transactionally, its comments.
func (s *postService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}
