package services

import (
	"errors"
	"fmt"

	"bramble/app/auth"
	"bramble/app/models"
	"bramble/app/repositories"
)

// UserService handles registration and authentication.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new member account with a hashed credential. Returns
// repositories.ErrDuplicateEmail if the email is already registered.
func (s *UserService) Register(name, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleMember,
	}
	user.BeforeCreate()
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies an email/password pair. Email matching is exact.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnknownEmail
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrWrongPassword
	}
	return user, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(id int) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
