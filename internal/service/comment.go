package service

import (
	"context"
	"errors"

	"github.com/goblog/blog-service/internal/models"
	"github.com/goblog/blog-service/internal/repository"
	"gorm.io/gorm"
)

// CommentService handles comment submission.
type CommentService interface {
	Create(ctx context.Context, authorID, postID int64, text string) (*models.Comment, error)
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) CommentService {
	return &commentService{comments: comments, posts: posts}
}

// Create attaches a comment to the given post. The caller is responsible for
// only passing an authenticated author id; anonymous submissions never reach
// this method.
func (s *commentService) Create(ctx context.Context, authorID, postID int64, text string) (*models.Comment, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		Text:            text,
		CommentAuthorID: authorID,
		ParentPostID:    postID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
