package services

import (
	"errors"
	"fmt"

	"bramble/app/models"
	"bramble/app/repositories"

	"github.com/microcosm-cc/bluemonday"
)

// commentPolicy is stricter than the post policy: commenters are untrusted.
var commentPolicy = bluemonday.StrictPolicy()

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
	userRepo    repositories.UserRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository, userRepo repositories.UserRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// CreateComment creates a comment on a post. Both the author and the post
// must exist at creation time.
func (s *CommentService) CreateComment(text string, authorID, postID int) (*models.Comment, error) {
	if _, err := s.userRepo.GetByID(authorID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnknownAuthor
		}
		return nil, err
	}
	if _, err := s.postRepo.GetByID(postID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnknownPost
		}
		return nil, err
	}

	comment := &models.Comment{
		Text:     commentPolicy.Sanitize(text),
		AuthorID: authorID,
		PostID:   postID,
	}
	comment.BeforeCreate()
	if err := comment.Validate(); err != nil {
		return nil, fmt.Errorf("invalid comment: %w", err)
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByPost retrieves the comments on a post, oldest first.
func (s *CommentService) ListByPost(postID int) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(postID)
}
