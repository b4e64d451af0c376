package services

import (
	"errors"
	"fmt"

	"bramble/app/models"
	"bramble/app/repositories"

	"github.com/microcosm-cc/bluemonday"
)

// postPolicy keeps the rich-text markup the editor produces while
// stripping anything executable.
var postPolicy = bluemonday.UGCPolicy()

// PostService handles business logic for blog posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	userRepo    repositories.UserRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, userRepo repositories.UserRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
	}
}

// CreatePost creates a new blog post with validation. The author must
// exist; the body is sanitized before storage.
func (s *PostService) CreatePost(post *models.Post) error {
	if _, err := s.userRepo.GetByID(post.AuthorID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUnknownAuthor
		}
		return err
	}

	post.Body = postPolicy.Sanitize(post.Body)
	post.BeforeCreate()
	if err := post.Validate(); err != nil {
		return fmt.Errorf("invalid post: %w", err)
	}

	return s.postRepo.Create(post)
}

// GetPost retrieves a post by ID with its author and comments attached.
func (s *PostService) GetPost(id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if author, err := s.userRepo.GetByID(post.AuthorID); err == nil {
		post.Author = author
	}

	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %v", err)
	}
	for _, comment := range comments {
		if author, err := s.userRepo.GetByID(comment.AuthorID); err == nil {
			comment.Author = author
		}
	}
	post.Comments = comments

	return post, nil
}

// ListPosts retrieves all posts in creation order with authors attached.
func (s *PostService) ListPosts() ([]*models.Post, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		if author, err := s.userRepo.GetByID(post.AuthorID); err == nil {
			post.Author = author
		}
	}

	return posts, nil
}

// UpdatePost mutates the title, subtitle, image URL, and body of an
// existing post. The author and display date are fixed at creation.
func (s *PostService) UpdatePost(id int, title, subtitle, imgURL, body string) (*models.Post, error) {
	existing, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.Title = title
	existing.Subtitle = subtitle
	existing.ImgURL = imgURL
	existing.Body = postPolicy.Sanitize(body)

	if err := existing.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post: %w", err)
	}

	if err := s.postRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeletePost removes a post. Its comments are intentionally left in the
// store; see the repository contract.
func (s *PostService) DeletePost(id int) error {
	return s.postRepo.Delete(id)
}
